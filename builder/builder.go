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

package builder

import (
	"github.com/jjxforever/mrpt/apis"
	"github.com/jjxforever/mrpt/registry"
	"github.com/jjxforever/mrpt/resolver"
	"github.com/jjxforever/mrpt/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds a new apis.Registry seeded with the root class
// descriptor. If a pre-existing registry is provided, its descriptors and
// aliases are migrated into the new registry in their original order.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg)
	_ = nreg.Register(apis.ObjectClassID)
	if prev != nil {
		// Resolve the previous registry's pending batch so queued
		// registrations are not lost across a rebuild.
		if prev.Dirty() {
			prev.FlushPending()
		}
		for _, d := range prev.All() {
			_ = nreg.Register(d)
		}
		for _, a := range prev.Aliases() {
			_ = nreg.RegisterAlias(a.Name, a.Class)
		}
	}
	return nreg
}

// BuildResolver builds a new apis.Resolver chaining the runtime-class fast
// path, the registry name lookup and the reflect fallback over reg.
func (b *builder) BuildResolver(cfg apis.Config, reg apis.Registry, _ apis.Resolver, _ any) apis.Resolver {
	return resolver.New(
		strategy.NewRuntimeClassStrategy(),
		strategy.NewRegistryStrategy(reg),
		strategy.NewReflectStrategy(reg),
	)
}
