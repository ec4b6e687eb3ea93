package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/logsviewer/logsviewer/internal/errors"
	"github.com/logsviewer/logsviewer/pkg/nav"
	"github.com/logsviewer/logsviewer/pkg/render"
	"github.com/logsviewer/logsviewer/pkg/router"
	"github.com/logsviewer/logsviewer/pkg/vdom"
)

// Session is one live navigation context: a WebSocket connection with its
// own outlet, side-effect pipeline and event loop.
type Session struct {
	// Identity
	ID        string
	CreatedAt time.Time

	// Connection
	conn   *websocket.Conn
	mu     sync.Mutex // Protects conn writes
	closed atomic.Bool

	// Navigation
	outlet   *router.Outlet
	pipeline *nav.Pipeline
	layout   Layout
	renderer *render.Renderer

	// currentTree is the last committed tree. Only the event loop touches it.
	currentTree *vdom.VNode

	// Channels
	events     chan ClientFrame // Incoming frames
	dispatchCh chan func()      // Functions to run on the event loop
	done       chan struct{}    // Shutdown signal

	ctx    context.Context
	cancel context.CancelFunc

	config  *ServerConfig
	logger  *slog.Logger
	onClose func(*Session)

	// Stats
	navigations atomic.Uint64
	framesSent  atomic.Uint64
}

// sessionDocument is the pipeline's view of the client document.
type sessionDocument struct {
	s *Session
}

func (d sessionDocument) SetTitle(title string) {
	d.s.send(ServerFrame{Type: FrameTitle, Title: title})
}

func (d sessionDocument) Focus(id string) bool {
	if vdom.FindByID(d.s.currentTree, id) == nil {
		return false
	}
	return d.s.send(ServerFrame{Type: FrameFocus, ID: id}) == nil
}

type sessionParams struct {
	sw           *router.Switch
	layout       Layout
	renderer     *render.Renderer
	middleware   []router.Middleware
	pipelineOpts []nav.Option
	onClose      func(*Session)
}

func newSession(conn *websocket.Conn, config *ServerConfig, p sessionParams, logger *slog.Logger) *Session {
	id := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())

	s := &Session{
		ID:         id,
		CreatedAt:  time.Now(),
		conn:       conn,
		layout:     p.layout,
		renderer:   p.renderer,
		events:     make(chan ClientFrame, config.MaxEventQueue),
		dispatchCh: make(chan func(), config.MaxEventQueue),
		done:       make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
		config:     config,
		logger:     logger.With("session_id", id),
		onClose:    p.onClose,
	}

	// Timers fire on their own goroutine; the callback is handed to the
	// event loop so it never races a navigation.
	opts := append([]nav.Option{
		nav.WithScheduler(nav.NewTimerScheduler(s.Dispatch)),
		nav.WithLogger(s.logger),
	}, p.pipelineOpts...)
	s.pipeline = nav.New(sessionDocument{s: s}, opts...)

	s.outlet = router.NewOutlet(p.sw, s.pipeline,
		router.WithCommit(s.commit),
		router.WithMiddleware(p.middleware...),
		router.WithOutletLogger(s.logger),
	)
	return s
}

// commit renders the resolution inside the layout and sends it.
func (s *Session) commit(res *router.Resolution) error {
	tree := res.Node
	if s.layout != nil {
		tree = s.layout(res.Path, res.Node)
	}

	html, err := s.renderer.RenderToString(tree)
	if err != nil {
		return &FrameError{Session: s.ID, Stage: "render", Err: err}
	}
	if err := s.send(ServerFrame{Type: FrameRender, Path: res.Path, HTML: html}); err != nil {
		return err
	}

	s.currentTree = tree
	return nil
}

// navigate runs on the event loop.
func (s *Session) navigate(path string) {
	s.navigations.Add(1)
	res, err := s.outlet.Navigate(s.ctx, path)
	if err != nil {
		return
	}
	if res != nil {
		s.logger.Debug("navigated", "path", res.Path, "title", res.Title, "not_found", res.NotFound)
	}
}

// handleFrame processes a client frame on the event loop.
func (s *Session) handleFrame(f ClientFrame) {
	switch f.Type {
	case FrameNavigate:
		s.navigate(f.Path)
	default:
		s.logger.Warn("unknown frame type", "type", f.Type)
		s.sendError(errors.New("E401").WithDetailf("unknown frame type %q", f.Type))
	}
}

// send writes a frame to the client.
func (s *Session) send(f ServerFrame) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	if s.conn == nil {
		return ErrNotConnected
	}

	data, err := json.Marshal(f)
	if err != nil {
		return &FrameError{Session: s.ID, Stage: "encode", Frame: f.Type, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.logger.Debug("write failed", "type", f.Type, "error", err)
		return &FrameError{Session: s.ID, Stage: "write", Frame: f.Type, Err: err}
	}
	s.framesSent.Add(1)
	return nil
}

func (s *Session) sendError(e *errors.Error) {
	_ = s.send(ServerFrame{Type: FrameErrorType, Code: e.Code, Message: e.Message})
}

// QueueFrame queues a client frame for the event loop.
func (s *Session) QueueFrame(f ClientFrame) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	select {
	case s.events <- f:
		return nil
	case <-s.done:
		return ErrSessionClosed
	default:
		s.logger.Warn("event queue full, dropping frame", "type", f.Type)
		return ErrFrameQueueFull
	}
}

// Dispatch queues a function to run on the session's event loop and
// reports whether it was queued. It is safe to call from any goroutine.
func (s *Session) Dispatch(fn func()) bool {
	if s.closed.Load() {
		return false
	}
	select {
	case s.dispatchCh <- fn:
		return true
	case <-s.done:
		return false
	default:
		s.logger.Warn("dispatch queue full, discarding callback")
		return false
	}
}

// Close tears the session down. The pending focus move is cancelled and the
// connection is closed. Safe to call more than once.
func (s *Session) Close() {
	if s.closed.Swap(true) {
		return
	}

	close(s.done)
	s.cancel()
	s.pipeline.Close()

	if s.conn != nil {
		s.mu.Lock()
		s.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		s.mu.Unlock()
		s.conn.Close()
	}

	if s.onClose != nil {
		s.onClose(s)
	}

	s.logger.Info("session closed",
		"navigations", s.navigations.Load(),
		"frames_sent", s.framesSent.Load(),
		"duration", time.Since(s.CreatedAt))
}

// IsClosed returns whether the session is closed.
func (s *Session) IsClosed() bool {
	return s.closed.Load()
}

// Done returns a channel that's closed when the session is done.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Current returns the last committed resolution, or nil.
func (s *Session) Current() *router.Resolution {
	return s.outlet.Current()
}
