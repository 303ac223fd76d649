package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docshelf"
)

// Ensure LoggingRegistry implements docshelf.RendererRegistry.
var _ docshelf.RendererRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a RendererRegistry so that every renderer it hands
// out logs its render calls.
type LoggingRegistry struct {
	next   docshelf.RendererRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next docshelf.RendererRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Get returns the renderer for a format, wrapped with logging.
// Returns nil if no renderer is registered for the format.
func (r *LoggingRegistry) Get(format docshelf.Format) docshelf.Renderer {
	renderer := r.next.Get(format)
	if renderer == nil {
		return nil
	}
	return &loggingRenderer{next: renderer, logger: r.logger}
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(renderer docshelf.Renderer) {
	r.next.Register(renderer)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []docshelf.Format {
	return r.next.List()
}

// loggingRenderer logs each render call.
type loggingRenderer struct {
	next   docshelf.Renderer
	logger *slog.Logger
}

func (r *loggingRenderer) RenderDocument(doc *docshelf.Document, opts docshelf.RenderOptions) (out string, err error) {
	slug := ""
	if doc != nil {
		slug = doc.Slug
	}
	defer func(begin time.Time) {
		r.logger.Debug("render document",
			"slug", slug,
			"format", string(r.next.Format()),
			"bytes", len(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RenderDocument(doc, opts)
}

func (r *loggingRenderer) Format() docshelf.Format {
	return r.next.Format()
}
