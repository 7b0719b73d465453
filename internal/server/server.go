package server

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rollcall/config"
	"rollcall/internal/handlers"
	"rollcall/internal/links"
	"rollcall/internal/middleware"
	"rollcall/internal/store"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Start wires configuration, store, and link builder together and serves
// until the listener fails.
func Start() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := store.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	lb := links.NewBuilder(cfg.BaseURL, cfg.AdminKey)

	r := New(cfg, st, lb)

	slog.Info("listening", "port", cfg.Port, "data_dir", cfg.DataDir, "base_url", cfg.BaseURL)
	return r.Run(":" + cfg.Port)
}

// New builds the gin engine. Split from Start so tests can run the full
// route table against a temp directory.
func New(cfg *config.Config, st *store.Store, lb *links.Builder) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.StoreMiddleware(st))
	r.Use(middleware.LinksMiddleware(lb))
	r.Use(middleware.ConfigMiddleware(cfg))

	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	setupRoutes(r, cfg)
	return r
}

func setupRoutes(r *gin.Engine, cfg *config.Config) {
	// The printed links all land on these two; everything is dispatched off
	// the event/mode/key query parameters.
	r.GET("/", handlers.Dispatch)
	r.GET("/index.html", handlers.Dispatch)

	r.POST("/events", handlers.CreateEvent)

	events := r.Group("/events/:id")
	{
		events.POST("/attendees", handlers.SubmitAttendee)
		events.GET("/qr.png", handlers.QRImage)
		events.GET("/export.csv", handlers.ExportCSV)
		events.GET("/export.xlsx", handlers.ExportXLSX)
		events.POST("/reset", handlers.ResetRoster)
		events.POST("/qr", handlers.RegenerateQR)
	}

	if cfg.LogoPath != "" {
		r.StaticFile("/logo", cfg.LogoPath)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", handlers.Health)
}
