/*
   Copyright 2025 The mrpt-go Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package registry

import (
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/jjxforever/mrpt/apis"
)

var (
	// ErrNilDescriptor is returned when a nil descriptor is provided.
	ErrNilDescriptor = errors.New("mrpt(registry): nil descriptor provided")
	// ErrEmptyName is returned when an empty class name or alias is provided.
	ErrEmptyName = errors.New("mrpt(registry): empty name provided")
	// ErrDuplicateName indicates an attempt to register a different
	// descriptor under an already-taken name. The first registration wins;
	// the registry state is unchanged apart from the class list.
	ErrDuplicateName = errors.New("mrpt(registry): duplicate class name, first registration wins")
)

// New constructs an empty class Registry. Duplicate-name conditions are
// reported through cfg.Logger.
func New(cfg apis.Config) apis.Registry {
	r := &classRegistry{cfg: cfg, log: cfg.Log()}
	r.seen = make(map[*apis.Descriptor]struct{})
	r.aliases = make(map[string]*apis.Descriptor)
	empty := make([]*apis.Descriptor, 0)
	r.ordered.Store(&empty)
	return r
}

// classRegistry is an append-only class directory. Writers serialize on mu;
// readers are lock-free: name and alias lookups go through a sync.Map, and
// the registration-ordered class list is published as an immutable snapshot
// behind an atomic pointer (copy-on-write on every registration).
type classRegistry struct {
	// cfg is the configuration the registry was built with.
	cfg apis.Config
	// log receives duplicate-name reports.
	log *zap.Logger

	// mu guards seen, aliases, pending and snapshot swaps.
	mu sync.Mutex
	// seen tracks registered descriptor identities for idempotency.
	seen map[*apis.Descriptor]struct{}
	// aliases is the authoritative alias table (alias -> descriptor).
	aliases map[string]*apis.Descriptor
	// byName maps primary names and aliases to descriptors.
	byName sync.Map // map[string]*apis.Descriptor
	// ordered is the published registration-order snapshot. The pointed-to
	// slice is never mutated after Store.
	ordered atomic.Pointer[[]*apis.Descriptor]
	// pending holds deferred registration callbacks.
	pending []func(apis.Registry)
	// dirty is set while deferred registrations are pending.
	dirty atomic.Bool
}

// Register appends d to the class list if its identity is not already
// present. The name index is first-wins: a second descriptor claiming a
// taken name stays enumerable via All but is not reachable by Find, and
// the call reports ErrDuplicateName.
func (r *classRegistry) Register(d *apis.Descriptor) error {
	// Validate inputs early.
	if d == nil {
		return ErrNilDescriptor
	}
	if d.Name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Idempotent by identity: re-registering the same pointer is a no-op.
	if _, ok := r.seen[d]; ok {
		return nil
	}
	r.seen[d] = struct{}{}

	// Publish the extended class list as a fresh snapshot.
	old := *r.ordered.Load()
	next := make([]*apis.Descriptor, len(old)+1)
	copy(next, old)
	next[len(old)] = d
	r.ordered.Store(&next)

	if prev, loaded := r.byName.LoadOrStore(d.Name, d); loaded && prev.(*apis.Descriptor) != d {
		r.log.Warn("duplicate class name, first registration wins",
			zap.String("class", d.Name))
		return ErrDuplicateName
	}
	return nil
}

// RegisterAlias adds a secondary name for d. Registering the same
// (alias, descriptor) pair again is a no-op; pointing an existing alias or
// class name at a different descriptor reports ErrDuplicateName.
func (r *classRegistry) RegisterAlias(alias string, d *apis.Descriptor) error {
	if d == nil {
		return ErrNilDescriptor
	}
	if alias == "" || d.Name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, loaded := r.byName.LoadOrStore(alias, d); loaded {
		if prev.(*apis.Descriptor) == d {
			return nil
		}
		r.log.Warn("alias collides with an existing name, first registration wins",
			zap.String("alias", alias),
			zap.String("class", d.Name))
		return ErrDuplicateName
	}
	r.aliases[alias] = d
	return nil
}

// Defer queues fn to run at the next FlushPending checkpoint. Nil callbacks
// are ignored.
func (r *classRegistry) Defer(fn func(apis.Registry)) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	r.pending = append(r.pending, fn)
	r.dirty.Store(true)
	r.mu.Unlock()
}

// FlushPending runs queued registration callbacks until the queue is empty,
// including callbacks queued by other callbacks. It returns the number of
// callbacks run; a flush with an empty queue returns 0 and changes nothing.
func (r *classRegistry) FlushPending() int {
	n := 0
	for {
		r.mu.Lock()
		if len(r.pending) == 0 {
			r.dirty.Store(false)
			r.mu.Unlock()
			return n
		}
		batch := r.pending
		r.pending = nil
		r.mu.Unlock()

		// Callbacks re-enter the registry; run them without the lock.
		for _, fn := range batch {
			fn(r)
			n++
		}
	}
}

// Dirty reports whether deferred registrations are pending.
func (r *classRegistry) Dirty() bool {
	return r.dirty.Load()
}

// Find returns the descriptor registered under name (primary or alias).
// Exact, case-sensitive match.
func (r *classRegistry) Find(name string) (*apis.Descriptor, bool) {
	if name == "" {
		return nil, false
	}
	if v, ok := r.byName.Load(name); ok {
		return v.(*apis.Descriptor), true
	}
	return nil, false
}

// All returns the registered descriptors in registration order.
func (r *classRegistry) All() []*apis.Descriptor {
	snap := *r.ordered.Load()
	out := make([]*apis.Descriptor, len(snap))
	copy(out, snap)
	return out
}

// ChildrenOf returns the registered descriptors derived from base,
// excluding base itself, preserving registration order.
func (r *classRegistry) ChildrenOf(base *apis.Descriptor) []*apis.Descriptor {
	out := make([]*apis.Descriptor, 0)
	if base == nil {
		return out
	}
	for _, d := range *r.ordered.Load() {
		if d != base && d.DerivedFrom(base) {
			out = append(out, d)
		}
	}
	return out
}

// Aliases returns a snapshot of the alias table (order unspecified).
func (r *classRegistry) Aliases() []apis.Alias {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]apis.Alias, 0, len(r.aliases))
	for name, d := range r.aliases {
		out = append(out, apis.Alias{Name: name, Class: d})
	}
	return out
}

// Count returns the number of registered descriptors.
func (r *classRegistry) Count() int {
	return len(*r.ordered.Load())
}

// Reset clears all registered descriptors, aliases and pending callbacks.
func (r *classRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = make(map[*apis.Descriptor]struct{})
	r.aliases = make(map[string]*apis.Descriptor)
	r.byName = sync.Map{}
	empty := make([]*apis.Descriptor, 0)
	r.ordered.Store(&empty)
	r.pending = nil
	r.dirty.Store(false)
}
