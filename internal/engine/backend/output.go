package backend

import (
	"bytes"
	"context"
)

// OutputFile is a staged, in-memory buffer for one output stream. A build
// step writes into it and then either keeps it, handing the bytes to the
// backend's store/finalize chain, or discards it, leaving no trace in the
// store or cache.
type OutputFile struct {
	backend *Backend
	path    string
	route   route
	buf     bytes.Buffer
	closed  bool
}

// Path returns the resolved output path this file was opened for.
func (f *OutputFile) Path() string {
	return f.path
}

// Write appends to the staging buffer. It never blocks on I/O.
func (f *OutputFile) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

// Keep commits the buffered bytes. For the diagnostics pseudo-kind the bytes
// bypass the content store and the job's completeness check entirely; for
// every other kind they are stored and counted toward the job's completion,
// finalizing the cache entry once the job's last declared kind arrives.
func (f *OutputFile) Keep(ctx context.Context) error {
	if f.closed {
		return nil
	}
	f.closed = true

	if !f.route.kind.Cacheable() {
		f.buf.Reset()
		return nil
	}
	return f.backend.storeArtifact(ctx, f.route, f.buf.Bytes())
}

// Discard releases the buffer with no side effects.
func (f *OutputFile) Discard() {
	f.closed = true
	f.buf.Reset()
}
