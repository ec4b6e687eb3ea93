package nav

import (
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultFocusDelay is the wait between a navigation and the focus move.
	DefaultFocusDelay = 50 * time.Millisecond

	// DefaultFocusTarget is the id of the primary content container.
	DefaultFocusTarget = "primary-app-container"
)

// Document is the host surface the pipeline writes to.
type Document interface {
	// SetTitle sets the document title.
	SetTitle(title string)

	// Focus moves keyboard focus to the element with the given id and
	// reports whether the element exists.
	Focus(id string) bool
}

// Observer is notified of pipeline activity. Implementations must be
// cheap and must not call back into the pipeline.
type Observer interface {
	TitleApplied(title string)
	FocusArmed()
	FocusCancelled()
	FocusRetargeted(found bool)
}

type nopObserver struct{}

func (nopObserver) TitleApplied(string)  {}
func (nopObserver) FocusArmed()          {}
func (nopObserver) FocusCancelled()      {}
func (nopObserver) FocusRetargeted(bool) {}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithFocusDelay sets the delay before focus moves.
func WithFocusDelay(d time.Duration) Option {
	return func(p *Pipeline) {
		if d >= 0 {
			p.delay = d
		}
	}
}

// WithFocusTarget sets the id of the element that receives focus.
func WithFocusTarget(id string) Option {
	return func(p *Pipeline) {
		if id != "" {
			p.target = id
		}
	}
}

// WithScheduler sets the timer source. The default runs callbacks on the
// timer goroutine.
func WithScheduler(s Scheduler) Option {
	return func(p *Pipeline) {
		if s != nil {
			p.sched = s
		}
	}
}

// WithObserver registers an observer.
func WithObserver(o Observer) Option {
	return func(p *Pipeline) {
		if o != nil {
			p.observer = o
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// Pipeline applies title and focus effects for one navigation context.
// It is safe for concurrent use.
type Pipeline struct {
	doc      Document
	sched    Scheduler
	delay    time.Duration
	target   string
	observer Observer
	logger   *slog.Logger

	mu         sync.Mutex
	pending    Timer
	generation uint64
	closed     bool
}

// New creates a pipeline writing to doc.
func New(doc Document, opts ...Option) *Pipeline {
	p := &Pipeline{
		doc:      doc,
		sched:    NewTimerScheduler(nil),
		delay:    DefaultFocusDelay,
		target:   DefaultFocusTarget,
		observer: nopObserver{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Navigated applies title for a matched route and re-arms the focus move.
// It runs on every navigation, including one to the current path.
func (p *Pipeline) Navigated(path, title string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	p.setTitleLocked(title)
	p.cancelLocked()

	p.generation++
	gen := p.generation
	p.pending = p.sched.AfterFunc(p.delay,
		func() { p.fire(gen) },
		func() { p.drop(gen) },
	)
	p.observer.FocusArmed()
	p.logger.Debug("focus retarget armed", "path", path, "target", p.target, "delay", p.delay)
}

// NotFound applies the fallback title. It cancels any pending focus move
// and arms none.
func (p *Pipeline) NotFound(title string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.cancelLocked()
	p.setTitleLocked(title)
}

// Close cancels the pending focus move. Later calls to any method are
// no-ops.
func (p *Pipeline) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	p.cancelLocked()
}

// Pending reports whether a focus move is scheduled.
func (p *Pipeline) Pending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending != nil
}

func (p *Pipeline) setTitleLocked(title string) {
	p.doc.SetTitle(title)
	p.observer.TitleApplied(title)
}

func (p *Pipeline) cancelLocked() {
	if p.pending == nil {
		return
	}
	p.pending.Stop()
	p.pending = nil
	p.generation++
	p.observer.FocusCancelled()
}

// drop forgets a retarget whose callback never reached the host.
func (p *Pipeline) drop(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || gen != p.generation {
		return
	}
	p.pending = nil
	p.generation++
	p.observer.FocusCancelled()
	p.logger.Warn("focus retarget dropped", "target", p.target)
}

func (p *Pipeline) fire(gen uint64) {
	p.mu.Lock()
	if p.closed || gen != p.generation {
		p.mu.Unlock()
		return
	}
	p.pending = nil
	target := p.target
	p.mu.Unlock()

	found := p.doc.Focus(target)
	p.observer.FocusRetargeted(found)
	if !found {
		p.logger.Debug("focus target not present", "target", target)
	}
}
