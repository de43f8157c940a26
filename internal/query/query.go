package query

// Run is the query entry point each listing page calls: filter first, then
// sort, then truncate. The step order is part of the contract — reordering
// changes observable output. A limit of zero (or negative) means no
// truncation. The result is always non-nil.
func (f Fields[T]) Run(records []T, c Criteria, sortKey string, limit int) []T {
	filtered := make([]T, 0, len(records))
	for _, rec := range records {
		if f.Matches(rec, c) {
			filtered = append(filtered, rec)
		}
	}

	out := f.Sort(filtered, sortKey)

	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}
