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

import "reflect"

// Resolver coordinates strategies to resolve class descriptors for names,
// values and types. Typical chain:
// RuntimeClassStrategy -> RegistryStrategy -> ReflectStrategy.
type Resolver interface {
	// ResolveName returns the descriptor registered under name (primary
	// or alias), or (nil, false) if unknown.
	ResolveName(name string, cfg Config) (*Descriptor, bool)

	// Resolve returns the descriptor for value v, or (nil, false) if the
	// value's class cannot be determined.
	Resolve(v any, cfg Config) (*Descriptor, bool)

	// ResolveType returns the descriptor for reflect.Type t, or
	// (nil, false) if none is registered for it.
	ResolveType(t reflect.Type, cfg Config) (*Descriptor, bool)
}
