package api

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/marta/city-scout/internal/catalog"
	"github.com/marta/city-scout/internal/config"
	"github.com/marta/city-scout/internal/content"
	"github.com/marta/city-scout/internal/livedata"
	"github.com/marta/city-scout/internal/models"
	"github.com/marta/city-scout/internal/query"
)

type Server struct {
	Echo *echo.Echo

	cfg      *config.Config
	catalog  atomic.Pointer[catalog.Catalog]
	live     *livedata.Service
	renderer *content.Renderer
}

var (
	adminSecretOnce    sync.Once
	adminSecretRuntime string
	adminSecretErr     error
)

func NewServer(cfg *config.Config, cat *catalog.Catalog) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "X-Admin-Secret"},
	}))
	e.Use(metricsMiddleware)

	s := &Server{
		Echo:     e,
		cfg:      cfg,
		live:     livedata.New(cfg.LiveTTL.Std()),
		renderer: content.New(),
	}
	s.catalog.Store(cat)

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)
	s.Echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Minimal search contract: the bare match array without the envelope.
	s.Echo.GET("/query/:collection", s.handleQueryBare)

	api := s.Echo.Group("/api/v1")
	api.GET("/stats", s.handleStats)
	api.GET("/aggregations", s.handleAggregations)
	api.GET("/live/:feed", s.handleLiveFeed)
	api.GET("/:collection", s.handleQueryCollection)
	api.GET("/:collection/:id", s.handleGetRecord)

	admin := api.Group("/admin")
	admin.Use(s.adminMiddleware)
	admin.POST("/reload", s.handleReload)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// parseCriteria reads filter parameters from the query string. Parsing is
// deliberately forgiving: a malformed value means that single criterion is
// not applied, never a 400, because listing pages must always render
// something.
func parseCriteria(c echo.Context) query.Criteria {
	crit := query.Criteria{
		Search:       c.QueryParam("search"),
		Category:     c.QueryParam("category"),
		Neighborhood: c.QueryParam("neighborhood"),
		Day:          c.QueryParam("day"),
		PriceRange:   c.QueryParam("price"),
	}
	if crit.Search == "" {
		crit.Search = c.QueryParam("q")
	}
	if v, err := strconv.ParseFloat(c.QueryParam("min_rating"), 64); err == nil && v > 0 {
		crit.MinRating = v
	}
	crit.ActiveOnly = c.QueryParam("active") == "true"
	crit.VerifiedOnly = c.QueryParam("verified") == "true"
	crit.FeaturedOnly = c.QueryParam("featured") == "true"
	crit.TrendingOnly = c.QueryParam("trending") == "true"
	return crit
}

func (s *Server) handleQueryCollection(c echo.Context) error {
	collection := c.Param("collection")
	crit := parseCriteria(c)
	sortKey := c.QueryParam("sort")

	limit := 0
	if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil && l > 0 && l <= 100 {
		limit = l
	}

	items, total, err := s.catalog.Load().Query(collection, crit, sortKey, limit)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownCollection) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown collection"})
		}
		c.Logger().Errorf("query %s failed: %v", collection, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"collection": collection,
		"items":      items,
		"total":      total,
	})
}

func (s *Server) handleQueryBare(c echo.Context) error {
	collection := c.Param("collection")

	limit := 0
	if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil && l > 0 && l <= 100 {
		limit = l
	}

	items, _, err := s.catalog.Load().Query(collection, parseCriteria(c), c.QueryParam("sort"), limit)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownCollection) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown collection"})
		}
		c.Logger().Errorf("query %s failed: %v", collection, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, items)
}

// guideView is the detail payload for guides: the record plus its body
// rendered to sanitized HTML.
type guideView struct {
	models.Guide
	BodyHTML string `json:"body_html"`
}

func (s *Server) handleGetRecord(c echo.Context) error {
	collection := c.Param("collection")
	id := c.Param("id")

	rec, err := s.catalog.Load().Get(collection, id)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownCollection) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown collection"})
		}
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}

	if g, ok := rec.(models.Guide); ok {
		html, err := s.renderer.Render(g.Body)
		if err != nil {
			c.Logger().Errorf("render guide %s: %v", g.ID, err)
			html = ""
		}
		return c.JSON(http.StatusOK, guideView{Guide: g, BodyHTML: html})
	}

	return c.JSON(http.StatusOK, rec)
}

func (s *Server) handleStats(c echo.Context) error {
	return c.JSON(http.StatusOK, s.catalog.Load().Stats())
}

func (s *Server) handleAggregations(c echo.Context) error {
	collection := c.QueryParam("collection")
	if collection == "" {
		collection = "deals"
	}

	aggs, err := s.catalog.Load().Aggregations(collection, parseCriteria(c))
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownCollection) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown collection"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, aggs)
}

func (s *Server) handleLiveFeed(c echo.Context) error {
	snap, err := s.live.Snapshot(c.Param("feed"), time.Now())
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown feed"})
	}
	return c.JSON(http.StatusOK, snap)
}

// handleReload rebuilds the catalog from the fixtures directory and swaps
// it in atomically. In-flight queries keep the catalog they started with.
func (s *Server) handleReload(c echo.Context) error {
	jobID := uuid.New().String()[:8]

	cat, err := catalog.Load(s.cfg.FixturesDir)
	if err != nil {
		log.Printf("[reload %s] failed: %v", jobID, err)
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":  err.Error(),
			"job_id": jobID,
		})
	}

	s.catalog.Store(cat)
	log.Printf("[reload %s] completed", jobID)

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Reload complete",
		"job_id":  jobID,
		"counts":  cat.Counts(),
	})
}

func (s *Server) adminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		secret, err := adminSecret()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Server admin configuration error"})
		}

		authHeader := c.Request().Header.Get("Authorization")
		adminHeader := c.Request().Header.Get("X-Admin-Secret")

		if adminHeader == secret {
			return next(c)
		}
		if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
			if authHeader[7:] == secret {
				return next(c)
			}
		}

		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized admin access"})
	}
}

func adminSecret() (string, error) {
	adminSecretOnce.Do(func() {
		secret := strings.TrimSpace(os.Getenv("ADMIN_SECRET"))
		if secret != "" {
			adminSecretRuntime = secret
			return
		}

		buf := make([]byte, 48)
		if _, err := rand.Read(buf); err != nil {
			adminSecretErr = fmt.Errorf("failed to generate ADMIN_SECRET fallback: %w", err)
			return
		}

		adminSecretRuntime = base64.RawURLEncoding.EncodeToString(buf)
		log.Print("ADMIN_SECRET is not set; using ephemeral in-memory fallback secret")
	})

	if adminSecretErr != nil {
		return "", adminSecretErr
	}
	if adminSecretRuntime == "" {
		return "", fmt.Errorf("admin secret unavailable")
	}

	return adminSecretRuntime, nil
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}
