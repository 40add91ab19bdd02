// Package server serves a catalog directory over HTTP in the layout the
// HTTP source expects: <base>/skills.json and <base>/skills/<path>/SKILL.md.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/justinpbarnett/skillcat/internal/catalog"
	"github.com/justinpbarnett/skillcat/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// Server is a read-only static file server for one catalog.
type Server struct {
	addr      string
	fsys      fs.FS
	indexFile string

	mu   sync.Mutex
	srv  *http.Server
	ln   net.Listener
	done chan struct{}
	err  error
}

// New returns a server for fsys that will listen on addr. indexFile is the
// index location relative to the catalog root ("skills.json" when empty).
func New(addr string, fsys fs.FS, indexFile string) *Server {
	if indexFile == "" {
		indexFile = "skills.json"
	}
	return &Server{addr: addr, fsys: fsys, indexFile: indexFile}
}

// Start binds the listener and serves in the background. It returns once
// the address is bound, so Addr is valid afterwards.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv != nil {
		return fmt.Errorf("server already running on %s", s.ln.Addr())
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	done := make(chan struct{})
	s.srv, s.ln, s.done, s.err = srv, ln, done, nil

	go func() {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.mu.Lock()
			s.err = err
			s.mu.Unlock()
			logger.Errorw("catalog server stopped", "error", err)
		}
	}()

	logger.Infow("serving catalog", "addr", ln.Addr().String(), "index", s.indexFile)
	return nil
}

// Addr returns the bound address, or "" before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Stop shuts the server down gracefully, waiting for in-flight requests
// until ctx is done. Stopping a server that is not running is a no-op.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv, done := s.srv, s.done
	s.srv, s.ln = nil, nil
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	if err := srv.Shutdown(ctx); err != nil {
		_ = srv.Close()
		<-done
		return fmt.Errorf("shutting down: %w", err)
	}
	<-done

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Run starts the server and blocks until ctx is cancelled, then stops it.
// onStart, when set, is called with the bound address once the listener is up.
func (s *Server) Run(ctx context.Context, onStart func(addr string)) error {
	if err := s.Start(); err != nil {
		return err
	}
	if onStart != nil {
		onStart(s.Addr())
	}
	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Stop(stopCtx)
}

// Handler returns the request handler. Only GET and HEAD are allowed, only
// the index and files below skills/ are served, and directories are never
// listed.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		s.serve(rec, r)
		logger.Debugw("catalog request", "method", r.Method, "path", r.URL.Path,
			"status", rec.status, "elapsed", time.Since(start))
	})
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if !s.servable(name) {
		http.NotFound(w, r)
		return
	}
	info, err := fs.Stat(s.fsys, name)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFileFS(w, r, s.fsys, name)
}

func (s *Server) servable(name string) bool {
	if name == "" || !fs.ValidPath(name) {
		return false
	}
	return name == s.indexFile || strings.HasPrefix(name, catalog.DocumentRoot+"/")
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
