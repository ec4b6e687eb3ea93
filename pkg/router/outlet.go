package router

import (
	"context"
	"log/slog"
	"sync"
)

// Effects receives the side effects of committed navigations.
// *nav.Pipeline implements it.
type Effects interface {
	// Navigated is called after a matched entry has been committed.
	Navigated(path, title string)

	// NotFound is called after the fallback has been committed.
	NotFound(title string)
}

// Outlet is the routing surface of one navigation context.
type Outlet struct {
	sw         *Switch
	effects    Effects
	commit     func(*Resolution) error
	middleware []Middleware
	logger     *slog.Logger

	mu      sync.Mutex
	current *Resolution
}

// OutletOption configures an Outlet.
type OutletOption func(*Outlet)

// WithCommit sets the function that makes a resolution visible, for
// example by sending its rendered node to the client. Effects run only
// after commit succeeds.
func WithCommit(fn func(*Resolution) error) OutletOption {
	return func(o *Outlet) {
		o.commit = fn
	}
}

// WithMiddleware appends navigation middleware.
func WithMiddleware(mw ...Middleware) OutletOption {
	return func(o *Outlet) {
		o.middleware = append(o.middleware, mw...)
	}
}

// WithOutletLogger sets the outlet's logger.
func WithOutletLogger(logger *slog.Logger) OutletOption {
	return func(o *Outlet) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewOutlet creates an outlet. effects may be nil.
func NewOutlet(sw *Switch, effects Effects, opts ...OutletOption) *Outlet {
	o := &Outlet{
		sw:      sw,
		effects: effects,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Navigate resolves path, commits the result and triggers the side effects
// once. An unmatched path is not an error; it commits the fallback.
func (o *Outlet) Navigate(ctx context.Context, path string) (*Resolution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	nav := &Navigation{ctx: ctx, Path: path}
	err := ComposeMiddleware(nav, o.middleware, func() error {
		// A middleware calling next twice must not repeat the effects.
		if nav.Result != nil {
			return nil
		}
		res := o.sw.Resolve(path)
		nav.Result = &res

		if o.commit != nil {
			if err := o.commit(&res); err != nil {
				return err
			}
		}

		o.mu.Lock()
		o.current = &res
		o.mu.Unlock()

		o.apply(&res)
		return nil
	})
	if err != nil {
		o.logger.Warn("navigation failed", "path", path, "error", err)
		return nav.Result, err
	}
	return nav.Result, nil
}

func (o *Outlet) apply(res *Resolution) {
	if o.effects == nil {
		return
	}
	if res.NotFound {
		o.effects.NotFound(res.Title)
		return
	}
	o.effects.Navigated(res.Path, res.Title)
}

// Current returns the last committed resolution, or nil.
func (o *Outlet) Current() *Resolution {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}
