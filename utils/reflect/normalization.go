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

package reflect

import (
	"errors"
	"reflect"

	"github.com/jjxforever/mrpt/apis"
	"github.com/jjxforever/mrpt/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after
	// unwrapping containers) does not contain a named type (e.g.,
	// anonymous struct, func, interface{}).
	ErrReflectTypeNotNamed = errors.New("reflect: type has no named base")
)

// Normalize unwraps containers according to config (MaxUnwrap/MapPreferElem)
// and returns the nearest named inner type, or an error if none is found.
// It lets the reflect fallback match a registered class for *T, []T,
// map[K]T and similar shapes without a descriptor per container type.
//
// Unwrapping policy:
//   - ptr/slice/array/chan  -> Elem()
//   - map[K]V: try preferred side first (Elem if MapPreferElem; otherwise Key);
//     if the preferred side is named, return it;
//     else try the other side; if still unnamed, continue unwrapping Elem().
//   - default: if t.Name() != "", return t; otherwise ErrReflectTypeNotNamed.
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	depth := cfg.MaxUnwrap
	if depth <= 0 {
		depth = config.DefaultMaxUnwrap
	}

	for step := 0; t != nil && step < depth; step++ {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Chan:
			t = t.Elem()

		case reflect.Map:
			if side, ok := namedMapSide(t, cfg.MapPreferElem); ok {
				return side, nil
			}
			// Neither side named: keep unwrapping the element.
			t = t.Elem()

		default:
			return ensureNamed(t)
		}
	}

	// Depth exhausted; whatever the walk ended on must be named.
	return ensureNamed(t)
}

// namedMapSide returns the first named side of a map type, honoring the
// configured preference order (value side first when preferElem).
func namedMapSide(m reflect.Type, preferElem bool) (reflect.Type, bool) {
	first, second := m.Key(), m.Elem()
	if preferElem {
		first, second = second, first
	}
	if first != nil && first.Name() != "" {
		return first, true
	}
	if second != nil && second.Name() != "" {
		return second, true
	}
	return nil, false
}

// ensureNamed accepts only named types as a normalization result.
func ensureNamed(t reflect.Type) (reflect.Type, error) {
	if t != nil && t.Name() != "" {
		return t, nil
	}
	return nil, ErrReflectTypeNotNamed
}
