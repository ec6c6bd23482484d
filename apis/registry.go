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

package apis

// Registry is the process-wide directory of class descriptors.
// Writers are serialized internally; lookup methods must be safe for
// unsynchronized concurrent readers.
type Registry interface {
	// Register appends d to the registry. Re-registering the same
	// descriptor pointer is a no-op. Registering a different descriptor
	// under an already-taken name keeps the first mapping and returns
	// ErrDuplicateName.
	Register(d *Descriptor) error
	// RegisterAlias adds a secondary name under which d is also
	// discoverable. Alias lookups behave identically to primary-name
	// lookups. Collisions are first-wins.
	RegisterAlias(alias string, d *Descriptor) error

	// Defer queues a registration callback to be run by FlushPending.
	// Intended for package init functions, whose execution order across
	// packages is unspecified: a base class may otherwise become
	// enumerable after its subclasses.
	Defer(fn func(Registry))
	// FlushPending drains the deferred-registration queue and returns the
	// number of callbacks run. A flush with an empty queue is a no-op.
	FlushPending() int
	// Dirty reports whether deferred registrations are pending.
	Dirty() bool

	// Find returns the descriptor whose primary name or alias equals
	// name. Matching is exact and case-sensitive.
	Find(name string) (*Descriptor, bool)
	// All returns every registered descriptor in registration order,
	// without duplicates.
	All() []*Descriptor
	// ChildrenOf returns the registered descriptors derived from base,
	// excluding base itself, in registration order.
	ChildrenOf(base *Descriptor) []*Descriptor
	// Aliases returns a snapshot of the alias table (order unspecified).
	Aliases() []Alias

	// Count returns the number of registered descriptors.
	Count() int
	// Reset clears all registered descriptors, aliases and pending
	// registrations. Test/reconfiguration use only.
	Reset()
}

// Alias is a single secondary-name association in a Registry snapshot.
type Alias struct {
	// Name is the alias.
	Name string
	// Class is the descriptor the alias points at.
	Class *Descriptor
}
