// Package registry owns every text buffer in the editor.
//
// Buffers are addressed by BufferID. Panels hold only an id, so several
// panels can view one buffer without copying it. The registry counts how
// many panels reference each buffer and frees a buffer when the last
// reference is released.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/linestorm/internal/engine/buffer"
)

// Errors returned by registry operations.
var (
	ErrBufferNotFound = errors.New("buffer not found")
	ErrBufferInUse    = errors.New("buffer still referenced")
)

// BufferID identifies a buffer. Ids are generated monotonically by a
// Registry and never reused by it.
type BufferID uint64

// String returns a human-readable representation of the id.
func (id BufferID) String() string {
	return fmt.Sprintf("buffer#%d", id)
}

type entry struct {
	buf  *buffer.Buffer
	refs int
}

// Registry is the sole owner of buffers.
// The id counter and the entry table share one mutex.
type Registry struct {
	mu      sync.Mutex
	nextID  BufferID
	entries map[BufferID]*entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[BufferID]*entry),
	}
}

// Create takes ownership of buf and returns its new id.
// The buffer starts with no references.
func (r *Registry) Create(buf *buffer.Buffer) BufferID {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	r.entries[id] = &entry{buf: buf}
	return id
}

// Get returns the buffer for id.
func (r *Registry) Get(id BufferID) (*buffer.Buffer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return e.buf, true
}

// MustGet returns the buffer for id and panics if it is missing.
// A panel referencing a missing buffer is an internal invariant violation.
func (r *Registry) MustGet(id BufferID) *buffer.Buffer {
	buf, ok := r.Get(id)
	if !ok {
		panic(fmt.Sprintf("internal error: missing %s", id))
	}
	return buf
}

// Retain records one more reference to id.
func (r *Registry) Retain(id BufferID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("retain %s: %w", id, ErrBufferNotFound)
	}
	e.refs++
	return nil
}

// Release drops one reference to id. The buffer is freed when no
// references remain; freed reports whether that happened.
func (r *Registry) Release(id BufferID) (freed bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return false, fmt.Errorf("release %s: %w", id, ErrBufferNotFound)
	}
	if e.refs > 0 {
		e.refs--
	}
	if e.refs == 0 {
		delete(r.entries, id)
		return true, nil
	}
	return false, nil
}

// Remove frees an unreferenced buffer.
func (r *Registry) Remove(id BufferID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("remove %s: %w", id, ErrBufferNotFound)
	}
	if e.refs > 0 {
		return fmt.Errorf("remove %s (%d refs): %w", id, e.refs, ErrBufferInUse)
	}
	delete(r.entries, id)
	return nil
}

// Refs returns the reference count of id, or 0 if it does not exist.
func (r *Registry) Refs(id BufferID) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[id]; ok {
		return e.refs
	}
	return 0
}

// Len returns the number of live buffers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// IDs returns the ids of all live buffers in creation order.
func (r *Registry) IDs() []BufferID {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]BufferID, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
