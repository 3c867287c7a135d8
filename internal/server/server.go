package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/valpere/trangate/internal/config"
	_ "github.com/valpere/trangate/internal/docs"
	"github.com/valpere/trangate/internal/gateway"
	"github.com/valpere/trangate/internal/translator"
)

const APIPrefix = gateway.APIPrefix

type Server struct {
	cfg    config.ServerConfig
	router *gin.Engine
}

func New(cfg config.ServerConfig, svc translator.Service) *Server {
	gin.SetMode(cfg.Mode)

	h := gateway.NewHandler(svc, gateway.Options{
		StrictErrors: cfg.StrictErrors,
		DocsPath:     cfg.DocsPath,
	})

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(corsConfig(cfg.CORSOrigins))

	// Global Routes
	router.GET("/", h.Index)
	router.GET(gateway.HealthPath, h.Health)
	router.GET(cfg.DocsPath+"/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.NoRoute(h.NotFound)

	// Translator Routes
	api := router.Group(APIPrefix)
	api.GET("/AllLanguages", h.AllLanguages)
	api.GET("/AllLanguages/:scope", h.AllLanguages)
	api.POST("/Translate", h.Translate)
	api.POST("/Detect", h.Detect)
	api.POST("/Transliterate", h.Transliterate)
	api.POST("/BreakSentence", h.BreakSentence)
	api.POST("/AlternateTranslations", h.AlternateTranslations)

	return &Server{cfg: cfg, router: router}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight requests for
// the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Printf("Shutting down, waiting up to %s for in-flight requests", s.cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func corsConfig(origins []string) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return cors.New(c)
}
