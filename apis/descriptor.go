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

import "errors"

// ErrNotInstantiable is returned by CreateObject on abstract descriptors
// (those with a nil Factory).
var ErrNotInstantiable = errors.New("mrpt(apis): class is not instantiable")

// maxDerivationDepth bounds base-chain walks. Descriptors are expected to
// form trees; the bound only protects against accidentally cyclic Base links.
const maxDerivationDepth = 64

// Descriptor holds runtime class type information for one registered class.
// Exactly one Descriptor exists per class, declared as a package-level var
// with program lifetime; registries index the pointer and never copy it.
// Identity comparisons between descriptors are therefore pointer comparisons.
type Descriptor struct {
	// Name is the unique human-readable class identifier.
	Name string
	// Factory creates a default-constructed instance of the class.
	// Nil for abstract/virtual base classes.
	Factory func() Object
	// Base returns the descriptor of the immediate base class.
	// Nil only for the root descriptor.
	Base func() *Descriptor
}

// ObjectClassID is the root of every class hierarchy. It is abstract
// (no Factory) and has no base. Builders seed every new registry with it.
var ObjectClassID = &Descriptor{Name: "Object"}

// CreateObject invokes the class factory.
// It returns ErrNotInstantiable for abstract classes.
func (d *Descriptor) CreateObject() (Object, error) {
	if d.Factory == nil {
		return nil, ErrNotInstantiable
	}
	return d.Factory(), nil
}

// IsAbstract reports whether the class cannot be instantiated directly.
func (d *Descriptor) IsAbstract() bool { return d.Factory == nil }

// DerivedFrom reports whether d is base or inherits from it, walking the
// Base chain upward. It is reflexive: d.DerivedFrom(d) is always true for
// a non-nil d.
func (d *Descriptor) DerivedFrom(base *Descriptor) bool {
	if d == nil || base == nil {
		return false
	}
	cur := d
	for i := 0; cur != nil && i < maxDerivationDepth; i++ {
		if cur == base {
			return true
		}
		if cur.Base == nil {
			return false
		}
		cur = cur.Base()
	}
	return false
}

// DerivedFromName is DerivedFrom comparing class names instead of
// identity. It exists for cases where two descriptors for logically the
// same class coexist (versioning across independently built components).
func (d *Descriptor) DerivedFromName(name string) bool {
	if d == nil || name == "" {
		return false
	}
	cur := d
	for i := 0; cur != nil && i < maxDerivationDepth; i++ {
		if cur.Name == name {
			return true
		}
		if cur.Base == nil {
			return false
		}
		cur = cur.Base()
	}
	return false
}
