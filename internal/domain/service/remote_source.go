// Package service defines interfaces for external collaborators of the
// domain, implemented by the infra layer.
package service

import "context"

// RemoteSource is the read surface of the remote content store. A source
// that is not configured, unreachable, or returns malformed data always
// degrades to zero records, never an error.
type RemoteSource interface {
	// IsConfigured reports whether a base endpoint is set at all.
	IsConfigured() bool

	// FetchCollection performs one collection read and returns the raw
	// documents. Any failure yields an empty slice.
	FetchCollection(ctx context.Context, collection string, limit, depth int) []map[string]any

	// ResolveMediaURL turns an inline path or a nested media object into
	// an absolute URL, or "" when no usable URL exists.
	ResolveMediaURL(ref any) string
}

// DocumentCreator is the gated write surface of the remote content store.
type DocumentCreator interface {
	// IsConfigured reports whether the store accepts writes at all.
	IsConfigured() bool

	// CreateDocument writes one document into the named collection.
	CreateDocument(ctx context.Context, collection string, doc any) error
}
