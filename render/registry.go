// Package render provides the renderer registry and the dependency-free
// output formats. Renderers with heavier dependencies live in their own
// packages (chroma/, blackfriday/).
package render

import (
	"sort"

	"github.com/fwojciec/docshelf"
)

var _ docshelf.RendererRegistry = (*Registry)(nil)

// Registry maps output formats to renderers.
type Registry struct {
	renderers map[docshelf.Format]docshelf.Renderer
}

// NewRegistry creates a Registry holding the given renderers.
func NewRegistry(renderers ...docshelf.Renderer) *Registry {
	r := &Registry{renderers: make(map[docshelf.Format]docshelf.Renderer)}
	for _, renderer := range renderers {
		r.Register(renderer)
	}
	return r
}

// Get returns the renderer for a format.
// Returns nil if no renderer is registered for the format.
func (r *Registry) Get(format docshelf.Format) docshelf.Renderer {
	return r.renderers[format]
}

// Register adds a renderer for its format.
// If a renderer is already registered for the format, it is replaced.
func (r *Registry) Register(renderer docshelf.Renderer) {
	r.renderers[renderer.Format()] = renderer
}

// List returns all registered formats in stable order.
func (r *Registry) List() []docshelf.Format {
	formats := make([]docshelf.Format, 0, len(r.renderers))
	for f := range r.renderers {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}
