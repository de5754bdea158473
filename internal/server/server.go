// Package server runs the long-lived status server behind `rentaldeploy serve`.
//
// HTTP (chi):
//
//	GET /                 named routes
//	GET /healthz          process is up
//	GET /readyz           200 when ready, 503 otherwise
//	GET /status           full deployment report
//	GET /reports/{name}   a report exported by `check --export`
//	GET /metrics          Prometheus
//
// gRPC (optional): grpc.health.v1.Health, refreshed on an interval.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/shashiranjanraj/rentaldeploy/app/services"
	"github.com/shashiranjanraj/rentaldeploy/config"
	rgrpc "github.com/shashiranjanraj/rentaldeploy/pkg/grpc"
	"github.com/shashiranjanraj/rentaldeploy/pkg/logger"
	"github.com/shashiranjanraj/rentaldeploy/pkg/metrics"
	"github.com/shashiranjanraj/rentaldeploy/pkg/middleware"
	"github.com/shashiranjanraj/rentaldeploy/pkg/response"
	"github.com/shashiranjanraj/rentaldeploy/pkg/router"
	"github.com/shashiranjanraj/rentaldeploy/pkg/storage"
)

// ReportDir is where `check --export` stores reports on the storage disk.
const ReportDir = "reports"

// ReportPath is the storage path of an exported report.
func ReportPath(name string) string {
	return path.Join(ReportDir, name)
}

// Checker produces the deployment report.
type Checker interface {
	Check(ctx context.Context) (*services.Report, error)
}

// Server serves readiness over HTTP and, through OnVerdict hooks, anything
// else that follows the verdict.
type Server struct {
	checker Checker
	disk    storage.Disk
	router  *router.Router

	mu        sync.Mutex
	hooks     []func(ready bool)
	lastReady *bool
}

// New wires the routes. disk may be nil, in which case /reports answers 404.
func New(checker Checker, disk storage.Disk) *Server {
	s := &Server{checker: checker, disk: disk, router: router.New()}

	r := s.router
	r.Use(
		metrics.Middleware(),
		chimw.RequestID,
		middleware.Recovery,
		middleware.Logger,
	)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) { response.NotFound(w) })

	r.Get("/", "index", s.index)
	r.Get("/healthz", "health", s.healthz)
	r.Get("/readyz", "ready", s.readyz)
	r.Get("/status", "status", s.status)
	r.Get("/reports/{name}", "report", s.report)
	r.Get("/metrics", "metrics", metrics.Handler())

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router.Handler()
}

// OnVerdict registers fn to run whenever a check changes the verdict. The
// first check always fires.
func (s *Server) OnVerdict(fn func(ready bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, fn)
}

// Refresh runs a check and notifies hooks when the verdict changed. A failed
// check counts as not ready.
func (s *Server) Refresh(ctx context.Context) (*services.Report, error) {
	rep, err := s.checker.Check(ctx)
	ready := err == nil && rep.Ready
	if err != nil {
		metrics.SetReady(false)
		logger.WithCtx(ctx).Error("status: check failed", "error", err)
	}

	s.mu.Lock()
	changed := s.lastReady == nil || *s.lastReady != ready
	s.lastReady = &ready
	hooks := append([]func(bool){}, s.hooks...)
	s.mu.Unlock()

	if changed {
		logger.WithCtx(ctx).Info("status: verdict", "ready", ready)
		for _, fn := range hooks {
			fn(ready)
		}
	}
	return rep, err
}

// Routes lists the named HTTP routes.
func (s *Server) Routes() []router.Route {
	return s.router.Routes()
}

func (s *Server) index(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, s.Routes())
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{"status": "ok"})
}

type readiness struct {
	Ready   bool     `json:"ready"`
	Missing []string `json:"missing"`
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	rep, err := s.Refresh(r.Context())
	if err != nil {
		response.Error(w, http.StatusServiceUnavailable, "status check failed")
		return
	}

	body := readiness{Ready: rep.Ready, Missing: rep.Missing}
	if !rep.Ready {
		response.WithStatus(w, http.StatusServiceUnavailable, body)
		return
	}
	response.Success(w, body)
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	rep, err := s.Refresh(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(w, rep)
}

func (s *Server) report(w http.ResponseWriter, r *http.Request) {
	if s.disk == nil {
		response.NotFound(w)
		return
	}

	name := chi.URLParam(r, "name")
	if name == "" || strings.HasPrefix(name, ".") {
		response.NotFound(w)
		return
	}

	data, err := s.disk.Get(r.Context(), ReportPath(name))
	if errors.Is(err, storage.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("status: read report", "error", err)
		response.Error(w, http.StatusInternalServerError, "report unavailable")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// Run serves until ctx is cancelled, then shuts both listeners down
// gracefully. The gRPC server is started only when cfg.GRPCAddr is set.
func Run(ctx context.Context, cfg config.Server, s *Server) error {
	lis, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("server: listen on %s: %w", cfg.Addr, err)
	}
	return Serve(ctx, lis, cfg, s)
}

// Serve is Run on an existing listener.
func Serve(ctx context.Context, lis net.Listener, cfg config.Server, s *Server) error {
	log := logger.WithCtx(ctx)

	var grpcSrv *rgrpc.Server
	if cfg.GRPCAddr != "" {
		var err error
		if grpcSrv, err = rgrpc.Start(cfg.GRPCAddr); err != nil {
			_ = lis.Close()
			return err
		}
		s.OnVerdict(grpcSrv.SetReady)
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	refreshCtx, stopRefresh := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.refreshLoop(refreshCtx, cfg.RefreshInterval)
	}()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server: listening", "addr", lis.Addr().String())
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	log.Info("server: shutting down")
	stopRefresh()
	wg.Wait()
	grpcSrv.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if serveErr != nil {
		return fmt.Errorf("server: serve: %w", serveErr)
	}
	return nil
}

func (s *Server) refreshLoop(ctx context.Context, every time.Duration) {
	_, _ = s.Refresh(ctx)
	if every <= 0 {
		return
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = s.Refresh(ctx)
		}
	}
}
