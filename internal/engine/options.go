package engine

import "github.com/dshills/quill/internal/engine/doc"

// Option configures an Engine during creation.
type Option func(*Engine)

// WithDocument sets the initial document.
func WithDocument(d *doc.Node) Option {
	return func(e *Engine) {
		e.initDoc = d
	}
}

// WithJSON sets the initial document from its JSON form. Takes effect
// only when WithDocument is not given.
func WithJSON(data string) Option {
	return func(e *Engine) {
		e.initJSON = data
	}
}

// WithReadOnly creates a read-only engine.
// Write operations will return ErrReadOnly.
func WithReadOnly() Option {
	return func(e *Engine) {
		e.readOnly = true
	}
}
