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

package strategy

import (
	"reflect"

	"github.com/jjxforever/mrpt/apis"
)

// NewRegistryStrategy creates an apis.Strategy that answers name lookups
// from a class Registry (primary names and aliases).
func NewRegistryStrategy(reg apis.Registry) apis.Strategy {
	return &registryStrategy{reg: reg}
}

// registryStrategy consults a provided Registry (reflection-free lookup).
type registryStrategy struct {
	reg apis.Registry
}

// Ensure registryStrategy implements apis.Strategy.
var _ apis.Strategy = (*registryStrategy)(nil)

// TryResolveName looks the name up in the registry.
func (s *registryStrategy) TryResolveName(name string, _ apis.Config) (*apis.Descriptor, bool) {
	if name == "" || s.reg == nil {
		return nil, false
	}
	return s.reg.Find(name)
}

// TryResolve always returns false: value resolution is handled by the
// runtime-class fast path or the reflect fallback.
func (s *registryStrategy) TryResolve(_ any, _ apis.Config) (*apis.Descriptor, bool) {
	return nil, false
}

// TryResolveType always returns false: type resolution is the reflect
// fallback's job.
func (s *registryStrategy) TryResolveType(_ reflect.Type, _ apis.Config) (*apis.Descriptor, bool) {
	return nil, false
}
