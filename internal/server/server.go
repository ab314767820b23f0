// Package server exposes the documents read-only over HTTP for the web
// and mobile viewers.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/linkshelf/internal/jsondoc"
	"github.com/mesh-intelligence/linkshelf/internal/metrics"
	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

// Reader is the part of the store the server reads.
type Reader interface {
	ListCategories() []types.Category
	ListFiles() []types.FileEntry
	ListNotificationsOrdered() []types.Notification
	Search(term string) []types.Category
}

// Reloader refreshes the store from disk.
type Reloader interface {
	Reload() error
}

// Options configures a Server.
type Options struct {
	// ReloadInterval re-reads the documents periodically so edits made by
	// other linkshelf processes become visible. Zero disables reloading.
	ReloadInterval time.Duration
	// Registry serves /metrics. When nil, /metrics is not mounted.
	Registry *prometheus.Registry
	Log      logrus.FieldLogger
}

// Server is the read-only HTTP surface.
type Server struct {
	store  Reader
	opts   Options
	log    logrus.FieldLogger
	engine *gin.Engine
}

// New builds the gin engine and registers every route.
func New(store Reader, opts Options) *Server {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), countRequests(), logRequests(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	s := &Server{store: store, opts: opts, log: log, engine: r}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/data.json", func(c *gin.Context) {
		s.document(c, types.CategoriesDoc{Categories: s.store.ListCategories()})
	})
	r.GET("/files.json", func(c *gin.Context) {
		s.document(c, types.FilesDoc{Files: s.store.ListFiles()})
	})
	r.GET("/notifications.json", func(c *gin.Context) {
		s.document(c, types.NotificationsDoc{Notifications: s.store.ListNotificationsOrdered()})
	})

	api := r.Group("/api")
	{
		api.GET("/search", func(c *gin.Context) {
			s.document(c, types.CategoriesDoc{Categories: s.store.Search(c.Query("q"))})
		})
	}

	if opts.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// document writes v in the same form as the files on disk.
func (s *Server) document(c *gin.Context, v any) {
	data, err := jsondoc.Marshal(v)
	if err != nil {
		s.log.WithError(err).Error("encode document")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
// When reloader is non-nil and a reload interval is set, the store is
// reloaded on that interval.
func (s *Server) Run(ctx context.Context, addr string, reloader Reloader) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("serving")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var tick <-chan time.Time
	if reloader != nil && s.opts.ReloadInterval > 0 {
		ticker := time.NewTicker(s.opts.ReloadInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case err, ok := <-errCh:
			if ok {
				return err
			}
			return nil
		case <-tick:
			if err := reloader.Reload(); err != nil {
				s.log.WithError(err).Warn("reload reported errors")
			}
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			s.log.Info("shutting down")
			return srv.Shutdown(shutdownCtx)
		}
	}
}

func countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

func logRequests(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"elapsed": time.Since(start),
		}).Debug("request")
	}
}
