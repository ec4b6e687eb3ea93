package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ServerConfig configures the HTTP surface and live sessions.
type ServerConfig struct {
	// Address is the listen address (e.g., ":8080").
	Address string

	// ReadHeaderTimeout bounds reading request headers.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// SessionReadTimeout closes a session that has been silent this long.
	// Heartbeat pongs count as activity.
	SessionReadTimeout time.Duration

	// WriteTimeout bounds a single frame write.
	WriteTimeout time.Duration

	// HeartbeatInterval is the interval between pings.
	HeartbeatInterval time.Duration

	// MaxSessions limits concurrent sessions. Zero means unlimited.
	MaxSessions int

	// MaxEventQueue is the per-session inbound frame buffer.
	MaxEventQueue int

	// MaxFrameSize is the largest accepted client frame in bytes.
	MaxFrameSize int64

	// ReadBufferSize and WriteBufferSize size the WebSocket buffers.
	ReadBufferSize  int
	WriteBufferSize int

	// CheckOrigin validates the Origin header of WebSocket upgrades.
	// Nil enforces same origin.
	CheckOrigin func(r *http.Request) bool

	// MetricsPath mounts the Prometheus handler. Empty disables it.
	MetricsPath string

	// Gatherer is scraped at MetricsPath (default: prometheus.DefaultGatherer).
	Gatherer prometheus.Gatherer

	// Lang is the document language.
	Lang string

	// StyleSheets are linked from every page.
	StyleSheets []string
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:            ":8080",
		ReadHeaderTimeout:  5 * time.Second,
		ShutdownTimeout:    15 * time.Second,
		SessionReadTimeout: 60 * time.Second,
		WriteTimeout:       10 * time.Second,
		HeartbeatInterval:  30 * time.Second,
		MaxEventQueue:      64,
		MaxFrameSize:       4 << 10,
		ReadBufferSize:     1024,
		WriteBufferSize:    4096,
		Gatherer:           prometheus.DefaultGatherer,
		Lang:               "en",
	}
}

// withDefaults fills unset fields from DefaultServerConfig.
func (c *ServerConfig) withDefaults() *ServerConfig {
	d := DefaultServerConfig()
	if c == nil {
		return d
	}
	out := *c
	if out.Address == "" {
		out.Address = d.Address
	}
	if out.ReadHeaderTimeout <= 0 {
		out.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if out.ShutdownTimeout <= 0 {
		out.ShutdownTimeout = d.ShutdownTimeout
	}
	if out.SessionReadTimeout <= 0 {
		out.SessionReadTimeout = d.SessionReadTimeout
	}
	if out.WriteTimeout <= 0 {
		out.WriteTimeout = d.WriteTimeout
	}
	if out.HeartbeatInterval <= 0 {
		out.HeartbeatInterval = d.HeartbeatInterval
	}
	if out.MaxEventQueue <= 0 {
		out.MaxEventQueue = d.MaxEventQueue
	}
	if out.MaxFrameSize <= 0 {
		out.MaxFrameSize = d.MaxFrameSize
	}
	if out.ReadBufferSize <= 0 {
		out.ReadBufferSize = d.ReadBufferSize
	}
	if out.WriteBufferSize <= 0 {
		out.WriteBufferSize = d.WriteBufferSize
	}
	if out.Gatherer == nil {
		out.Gatherer = d.Gatherer
	}
	if out.Lang == "" {
		out.Lang = d.Lang
	}
	return &out
}
