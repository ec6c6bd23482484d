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

// Strategy is a pluggable resolution step. A Resolver chains multiple
// strategies in order (e.g., RuntimeClass -> Registry -> Reflect).
type Strategy interface {
	// TryResolveName attempts to resolve a descriptor for a class name.
	// It returns (d, true) if handled; otherwise (nil, false) to fall through.
	TryResolveName(name string, cfg Config) (d *Descriptor, handled bool)

	// TryResolve attempts to resolve a descriptor for value v.
	TryResolve(v any, cfg Config) (d *Descriptor, handled bool)

	// TryResolveType attempts to resolve a descriptor for reflect.Type t.
	TryResolveType(t reflect.Type, cfg Config) (d *Descriptor, handled bool)
}
