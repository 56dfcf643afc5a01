package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emrgen/strata/internal/cache"
	"github.com/emrgen/strata/internal/compress"
	"github.com/emrgen/strata/internal/config"
	"github.com/emrgen/strata/internal/jobs"
	"github.com/emrgen/strata/internal/service"
	"github.com/emrgen/strata/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// Server represents the HTTP server.
type Server struct {
	httpPort string
}

// NewServer creates a new server.
func NewServer(httpPort string) *Server {
	return &Server{
		httpPort: httpPort,
	}
}

// Start starts the server and blocks until shutdown.
func (s *Server) Start() {
	if err := Start(s.httpPort); err != nil {
		logrus.Fatalf("error starting server: %v", err)
	}
}

// Start wires the store, cache, services and background jobs, then serves
// the JSON API until interrupted.
func Start(httpPort string) error {
	cnf := config.LoadConfig()
	db := config.GetDb(cnf)

	gormStore := store.NewGormStore(db)
	if err := gormStore.Migrate(); err != nil {
		return err
	}

	var treeCache cache.TreeCache = cache.NewNopTreeCache()
	if cnf.RedisAddr != "" {
		treeCache = cache.NewRedisTreeCache(cnf.RedisAddr, cnf.RedisPassword, cnf.RedisDB,
			compress.ForName(cnf.CacheCodec))
	}

	a := &api{
		types:       service.NewTypeService(gormStore),
		objects:     service.NewObjectService(gormStore, treeCache),
		links:       service.NewLinkService(gormStore, treeCache),
		permissions: service.NewPermissionService(gormStore),
		versioning:  service.NewVersioningService(gormStore),
		attributes:  service.NewAttributeService(gormStore),
		hierarchy:   service.NewHierarchyService(gormStore, treeCache),
	}

	runner := jobs.NewRunner(jobs.NewOrphanSweeper(gormStore, cnf.SweepSchedule))
	runner.Start()
	defer runner.Stop()

	if cnf.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	a.register(router)

	srv := &http.Server{
		Addr:    ":" + httpPort,
		Handler: cors.AllowAll().Handler(router),
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("strata listening on :%s", httpPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logrus.Infof("received %v, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}
