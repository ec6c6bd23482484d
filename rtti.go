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

package mrpt

import (
	"errors"
	"fmt"

	"github.com/jjxforever/mrpt/apis"
)

var (
	// ErrClassNotFound is returned when no registered class matches the
	// requested name or alias.
	ErrClassNotFound = errors.New("mrpt: class not found")
	// ErrNotInstantiable mirrors apis.ErrNotInstantiable for callers that
	// only import the root package.
	ErrNotInstantiable = apis.ErrNotInstantiable
)

// RegisterClass adds d to the global class registry.
// Safe to call from init functions; see RegisterClassDeferred for
// registrations whose base class may not have registered yet.
func RegisterClass(d *apis.Descriptor) error {
	return st.Load().reg.Register(d)
}

// RegisterClassCustomName makes d also discoverable under name.
// Used when the same concrete class must keep more than one legacy name.
func RegisterClassCustomName(name string, d *apis.Descriptor) error {
	return st.Load().reg.RegisterAlias(name, d)
}

// RegisterClassDeferred queues a registration callback to run at the next
// RegisterAllPendingClasses checkpoint. Init-time registrations across
// packages run in an unspecified order; deferring them makes the complete
// hierarchy visible atomically at the checkpoint.
func RegisterClassDeferred(fn func(apis.Registry)) {
	st.Load().reg.Defer(fn)
}

// RegisterAllPendingClasses drains the deferred-registration queue.
// Call it before any lookup that depends on full base-chain resolution,
// e.g. just before deserializing objects by class name. A second
// consecutive call is a no-op. Returns the number of callbacks run.
func RegisterAllPendingClasses() int {
	return st.Load().reg.FlushPending()
}

// FindRegisteredClass returns the descriptor registered under name
// (primary name or alias), with exact case-sensitive matching.
func FindRegisteredClass(name string) (*apis.Descriptor, bool) {
	s := st.Load()
	maybeFlush(s)
	return s.res.ResolveName(name, s.cfg)
}

// GetAllRegisteredClasses returns every registered descriptor in
// registration order.
func GetAllRegisteredClasses() []*apis.Descriptor {
	s := st.Load()
	maybeFlush(s)
	return s.reg.All()
}

// GetAllRegisteredClassesChildrenOf returns the registered descriptors
// derived from base, excluding base itself, in registration order.
func GetAllRegisteredClassesChildrenOf(base *apis.Descriptor) []*apis.Descriptor {
	s := st.Load()
	maybeFlush(s)
	return s.reg.ChildrenOf(base)
}

// CreateInstanceByName builds a default-constructed instance of the class
// registered under name. It returns ErrClassNotFound for unknown names and
// ErrNotInstantiable for abstract classes.
func CreateInstanceByName(name string) (apis.Object, error) {
	s := st.Load()
	maybeFlush(s)
	d, ok := s.res.ResolveName(name, s.cfg)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrClassNotFound, name)
	}
	obj, err := d.CreateObject()
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, name)
	}
	return obj, nil
}

// QueryTypeIdentity returns the class descriptor for v, or nil if v's
// class cannot be determined. Values implementing apis.RuntimeClassed
// answer directly; everything else goes through the reflect fallback.
func QueryTypeIdentity(v any) *apis.Descriptor {
	s := st.Load()
	maybeFlush(s)
	if d, ok := s.res.Resolve(v, s.cfg); ok {
		return d
	}
	return nil
}

// IsInstanceOf reports whether v's class is exactly d.
func IsInstanceOf(v any, d *apis.Descriptor) bool {
	if d == nil {
		return false
	}
	return QueryTypeIdentity(v) == d
}

// IsDerivedFrom reports whether v's class is base or inherits from it.
func IsDerivedFrom(v any, base *apis.Descriptor) bool {
	if base == nil {
		return false
	}
	return QueryTypeIdentity(v).DerivedFrom(base)
}

// As attempts a narrowing conversion of o to concrete type T.
// It returns the zero value and false on mismatch, never panics.
func As[T apis.Object](o apis.Object) (T, bool) {
	t, ok := o.(T)
	return t, ok
}

// maybeFlush runs the pending-registration checkpoint when the
// configuration asks for it and registrations are actually pending.
func maybeFlush(s *state) {
	if s.cfg.AutoFlushPending && s.reg.Dirty() {
		s.reg.FlushPending()
	}
}
