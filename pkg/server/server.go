package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/logsviewer/logsviewer/pkg/middleware"
	"github.com/logsviewer/logsviewer/pkg/nav"
	"github.com/logsviewer/logsviewer/pkg/render"
	"github.com/logsviewer/logsviewer/pkg/router"
	"github.com/logsviewer/logsviewer/pkg/vdom"
)

// Thin client endpoints.
const (
	WebSocketPath   = "/_nav/ws"
	ClientPath      = "/_nav/client.js"
	HealthPath      = "/healthz"
	contentTypeHTML = "text/html; charset=utf-8"
)

// Layout wraps the rendered view of path in the application shell.
type Layout func(path string, content *vdom.VNode) *vdom.VNode

// Server serves server-rendered pages and live navigation sessions.
type Server struct {
	config   *ServerConfig
	sw       *router.Switch
	layout   Layout
	renderer *render.Renderer
	metrics  *middleware.Metrics

	navMiddleware []router.Middleware
	pipelineOpts  []nav.Option

	upgrader websocket.Upgrader
	handler  http.Handler

	sessionsMu sync.Mutex
	sessions   map[string]*Session
	reserved   int

	httpServer *http.Server
	logger     *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLayout sets the application shell.
func WithLayout(l Layout) Option {
	return func(s *Server) {
		s.layout = l
	}
}

// WithMetrics records navigation, focus and session metrics.
func WithMetrics(m *middleware.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithNavigationMiddleware adds middleware to every navigation, including
// server-rendered initial loads.
func WithNavigationMiddleware(mw ...router.Middleware) Option {
	return func(s *Server) {
		s.navMiddleware = append(s.navMiddleware, mw...)
	}
}

// WithPipelineOptions configures the side-effect pipeline of each session.
func WithPipelineOptions(opts ...nav.Option) Option {
	return func(s *Server) {
		s.pipelineOpts = append(s.pipelineOpts, opts...)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRenderer sets the HTML renderer.
func WithRenderer(r *render.Renderer) Option {
	return func(s *Server) {
		if r != nil {
			s.renderer = r
		}
	}
}

// New creates a server resolving navigations with sw.
func New(sw *router.Switch, config *ServerConfig, opts ...Option) *Server {
	s := &Server{
		config:   config.withDefaults(),
		sw:       sw,
		renderer: render.NewRenderer(render.RendererConfig{}),
		sessions: make(map[string]*Session),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "server")

	if s.metrics != nil {
		// Metrics run outermost so they time the whole chain.
		s.navMiddleware = append([]router.Middleware{s.metrics.Middleware()}, s.navMiddleware...)
		s.pipelineOpts = append([]nav.Option{nav.WithObserver(s.metrics)}, s.pipelineOpts...)
	}

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  s.config.ReadBufferSize,
		WriteBufferSize: s.config.WriteBufferSize,
		CheckOrigin:     s.config.CheckOrigin,
	}

	s.handler = s.routes()
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	r.Get(HealthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if s.config.MetricsPath != "" {
		r.Handle(s.config.MetricsPath, promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))
	}
	r.Get(WebSocketPath, s.HandleWebSocket)
	r.Get(ClientPath, s.serveThinClient)
	r.Head(ClientPath, s.serveThinClient)
	r.Get("/*", s.servePage)
	r.Head("/*", s.servePage)
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// servePage renders the initial load of a path.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	outlet := router.NewOutlet(s.sw, nil,
		router.WithMiddleware(s.navMiddleware...),
		router.WithOutletLogger(s.logger),
	)
	res, err := outlet.Navigate(r.Context(), r.URL.EscapedPath())
	if err != nil || res == nil {
		if err == nil {
			err = errors.New("navigation dropped")
		}
		s.logger.Warn("page navigation failed", "path", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}

	body := res.Node
	if s.layout != nil {
		body = s.layout(res.Path, res.Node)
	}

	var buf bytes.Buffer
	err = s.renderer.RenderPage(&buf, render.PageData{
		Body:        body,
		Title:       res.Title,
		StyleSheets: s.config.StyleSheets,
		Scripts:     []render.ScriptTag{{Src: ClientPath, Defer: true}},
		Lang:        s.config.Lang,
	})
	if err != nil {
		s.logger.Error("page render failed", "path", res.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if res.NotFound {
		status = http.StatusNotFound
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, _ = w.Write(buf.Bytes())
	}
}

// HandleWebSocket upgrades the connection and starts a session.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	if !s.reserveSession() {
		s.logger.Warn("session limit reached", "max", s.config.MaxSessions)
		http.Error(w, ErrSessionLimit.Error(), http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.releaseSession()
		if s.metrics != nil {
			s.metrics.WebSocketError("upgrade")
		}
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	session := newSession(conn, s.config, sessionParams{
		sw:           s.sw,
		layout:       s.layout,
		renderer:     s.renderer,
		middleware:   s.navMiddleware,
		pipelineOpts: s.pipelineOpts,
		onClose:      s.removeSession,
	}, s.logger)

	s.sessionsMu.Lock()
	s.reserved--
	s.sessions[session.ID] = session
	s.sessionsMu.Unlock()

	if s.metrics != nil {
		s.metrics.SessionOpened()
	}
	s.logger.Info("session started", "session_id", session.ID, "remote", r.RemoteAddr)
	session.Start()
}

// reserveSession checks the session limit and holds a slot until the
// upgrade completes.
func (s *Server) reserveSession() bool {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	if s.config.MaxSessions > 0 && len(s.sessions)+s.reserved >= s.config.MaxSessions {
		return false
	}
	s.reserved++
	return true
}

func (s *Server) releaseSession() {
	s.sessionsMu.Lock()
	s.reserved--
	s.sessionsMu.Unlock()
}

func (s *Server) removeSession(session *Session) {
	s.sessionsMu.Lock()
	_, ok := s.sessions[session.ID]
	delete(s.sessions, session.ID)
	s.sessionsMu.Unlock()

	if ok && s.metrics != nil {
		s.metrics.SessionClosed()
	}
}

// SessionCount returns the number of live sessions.
func (s *Server) SessionCount() int {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	return len(s.sessions)
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.handler,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes all sessions and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.sessionsMu.Lock()
	sessions := make([]*Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	s.sessionsMu.Unlock()

	for _, session := range sessions {
		session.Close()
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}
