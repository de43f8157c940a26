// Command query runs one catalog query from the terminal and prints the
// results as a table. Handy for checking fixture edits without a browser.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/marta/city-scout/internal/catalog"
	"github.com/marta/city-scout/internal/models"
	"github.com/marta/city-scout/internal/query"
)

func main() {
	collection := flag.String("collection", "deals", "collection to query (deals, events, restaurants, guides, rankings, posts)")
	search := flag.String("search", "", "free-text search")
	category := flag.String("category", "", "category filter")
	neighborhood := flag.String("neighborhood", "", "neighborhood filter")
	sortKey := flag.String("sort", "", "sort key (defaults per collection)")
	limit := flag.Int("limit", 0, "max rows (0 = all)")
	fixtures := flag.String("fixtures", os.Getenv("FIXTURES_DIR"), "fixtures override directory")
	flag.Parse()

	cat, err := catalog.Load(*fixtures)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	crit := query.Criteria{
		Search:       *search,
		Category:     *category,
		Neighborhood: *neighborhood,
	}

	items, total, err := cat.Query(*collection, crit, *sortKey, *limit)
	if err != nil {
		log.Fatalf("query: %v", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)

	switch rows := items.(type) {
	case []models.Deal:
		t.AppendHeader(table.Row{"ID", "Title", "Category", "Neighborhood", "Savings", "Rating", "Featured"})
		for _, d := range rows {
			t.AppendRow(table.Row{d.ID, d.Title, d.Category, d.Neighborhood, fmt.Sprintf("$%.2f", d.Savings), d.Rating, d.Featured})
		}
	case []models.Event:
		t.AppendHeader(table.Row{"ID", "Title", "Category", "Neighborhood", "Venue", "Starts", "Free"})
		for _, e := range rows {
			t.AppendRow(table.Row{e.ID, e.Title, e.Category, e.Neighborhood, e.Venue, e.StartDate.Format("2006-01-02 15:04"), e.Price.IsFree})
		}
	case []models.Restaurant:
		t.AppendHeader(table.Row{"ID", "Name", "Cuisine", "Neighborhood", "Price", "Rating", "Reviews"})
		for _, r := range rows {
			t.AppendRow(table.Row{r.ID, r.Name, r.Cuisine, r.Neighborhood, r.PriceRange, r.Rating, r.ReviewCount})
		}
	case []models.Guide:
		t.AppendHeader(table.Row{"ID", "Title", "Category", "Neighborhood", "Author", "Views"})
		for _, g := range rows {
			t.AppendRow(table.Row{g.ID, g.Title, g.Category, g.Neighborhood, g.Author, g.Views})
		}
	case []models.RankedItem:
		t.AppendHeader(table.Row{"Rank", "Name", "Category", "Neighborhood", "Rating"})
		for _, r := range rows {
			t.AppendRow(table.Row{r.Rank, r.Name, r.Category, r.Neighborhood, r.Rating})
		}
	case []models.CommunityPost:
		t.AppendHeader(table.Row{"ID", "Title", "Type", "Status", "Neighborhood", "Responses"})
		for _, p := range rows {
			t.AppendRow(table.Row{p.ID, p.Title, p.Type, p.Status, p.Neighborhood, p.Responses})
		}
	default:
		log.Fatalf("unhandled collection %q", *collection)
	}

	t.Render()
	fmt.Printf("%d match(es)\n", total)
}
