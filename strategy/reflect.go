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
	"path"
	"reflect"
	"strings"
	"sync"

	"github.com/jjxforever/mrpt/apis"
	uref "github.com/jjxforever/mrpt/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that maps Go types to
// registered descriptors via utils/reflect.Normalize and memoization.
func NewReflectStrategy(reg apis.Registry) apis.Strategy {
	return &reflectStrategy{reg: reg}
}

// reflectStrategy is the universal fallback for values that do not carry
// their own runtime class. It unwraps containers (ptr/slice/array/chan/map)
// via Normalize, strips generic instantiation parameters, and matches the
// resulting type name (bare, then "pkg.Type") against the registry.
type reflectStrategy struct {
	reg apis.Registry

	// hits caches successful (type, knobs) -> descriptor resolutions.
	// Misses are never cached: the registry is append-only, so a miss can
	// become a hit after a later registration.
	hits sync.Map // key: cacheKey, val: *apis.Descriptor
}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// cacheKey ensures memoization respects all config knobs that affect resolution.
type cacheKey struct {
	t             reflect.Type
	maxUnwrap     int16
	mapPreferElem bool
}

// TryResolveName always returns false: plain names are the registry
// strategy's job.
func (s *reflectStrategy) TryResolveName(_ string, _ apis.Config) (*apis.Descriptor, bool) {
	return nil, false
}

// TryResolve resolves the descriptor for v's dynamic type.
func (s *reflectStrategy) TryResolve(v any, cfg apis.Config) (*apis.Descriptor, bool) {
	if v == nil {
		return nil, false
	}
	return s.byType(reflect.TypeOf(v), cfg)
}

// TryResolveType resolves the descriptor for t.
func (s *reflectStrategy) TryResolveType(t reflect.Type, cfg apis.Config) (*apis.Descriptor, bool) {
	if t == nil {
		return nil, false
	}
	return s.byType(t, cfg)
}

// byType resolves the descriptor for t with memoization of hits.
func (s *reflectStrategy) byType(t reflect.Type, cfg apis.Config) (*apis.Descriptor, bool) {
	if s.reg == nil {
		return nil, false
	}
	key := cacheKey{
		t:             t,
		maxUnwrap:     int16(cfg.MaxUnwrap),
		mapPreferElem: cfg.MapPreferElem,
	}
	if v, ok := s.hits.Load(key); ok {
		return v.(*apis.Descriptor), true
	}

	base, err := uref.Normalize(t, cfg)
	if err != nil || base == nil {
		return nil, false
	}

	name := stripTypeParams(base.Name())
	if d, ok := s.reg.Find(name); ok {
		s.hits.Store(key, d)
		return d, true
	}
	// Retry with a package-qualified name before giving up.
	if p := base.PkgPath(); p != "" {
		if d, ok := s.reg.Find(path.Base(p) + "." + name); ok {
			s.hits.Store(key, d)
			return d, true
		}
	}
	return nil, false
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
