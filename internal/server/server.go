// Package server exposes the guide over HTTP: an HTML page for browsers and a
// JSON API over the same per-visitor session state.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"validation-guide/internal/capture"
	"validation-guide/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const sweepInterval = time.Minute

// Server wires the session store, router and listener together
type Server struct {
	config *config.ServerConfig
	logger *zap.Logger
	store  *SessionStore
	engine *gin.Engine
}

// New creates a server whose widgets send analyses to analyzer
func New(serverConfig *config.ServerConfig, analyzer capture.Analyzer, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		config: serverConfig,
		logger: logger,
		store:  NewSessionStore(analyzer, nil),
	}
	s.engine = s.router(tmpl)
	return s, nil
}

// Handler returns the HTTP handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Sessions returns the session store
func (s *Server) Sessions() *SessionStore {
	return s.store
}

func (s *Server) router(tmpl *template.Template) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(s.logger))
	router.SetHTMLTemplate(tmpl)
	router.MaxMultipartMemory = s.config.MaxUploadBytes

	api := router.Group("/api")
	api.GET("/methods", s.listMethods)
	api.GET("/methods/:id", s.getMethod)
	api.GET("/sections", s.listSections)
	api.GET("/timeline", s.listTimeline)
	api.GET("/guides", s.listGuides)

	readOnly := router.Group("/", PeekSession(s.store))
	readOnly.GET("/", s.renderPage)
	readOnly.GET("/api/session", s.showSession)

	stateful := router.Group("/", BindSession(s.store))
	stateful.POST("/toggle/:id", s.toggleItem)
	stateful.POST("/image", s.uploadImage)
	stateful.POST("/analyze", s.analyze)
	stateful.POST("/retry", s.retry)
	stateful.POST("/reset", s.reset)

	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout())
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if n := s.store.Sweep(s.config.SessionIdle()); n > 0 {
					s.logger.Debug("expired sessions", zap.Int("count", n))
				}
			}
		}
	})

	return g.Wait()
}

var templateFuncs = template.FuncMap{
	// previewURL marks an image data URI as safe for an img src attribute
	"previewURL": func(uri string) template.URL {
		if !strings.HasPrefix(uri, "data:image/") {
			return ""
		}
		return template.URL(uri)
	},
}
