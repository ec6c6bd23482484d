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

// NewRuntimeClassStrategy creates an apis.Strategy that uses apis.RuntimeClassed.
func NewRuntimeClassStrategy() apis.Strategy {
	return &runtimeClassStrategy{}
}

// runtimeClassStrategy is a zero-cost fast path: if v implements
// apis.RuntimeClassed, return its own class descriptor and stop the chain.
type runtimeClassStrategy struct{}

// Ensure runtimeClassStrategy implements apis.Strategy.
var _ apis.Strategy = (*runtimeClassStrategy)(nil)

// TryResolveName always returns false: a name carries no instance.
func (*runtimeClassStrategy) TryResolveName(_ string, _ apis.Config) (*apis.Descriptor, bool) {
	return nil, false
}

// TryResolve checks if v implements apis.RuntimeClassed and returns its
// GetRuntimeClass().
func (*runtimeClassStrategy) TryResolve(v any, _ apis.Config) (*apis.Descriptor, bool) {
	if v == nil {
		return nil, false
	}
	if rc, ok := v.(apis.RuntimeClassed); ok {
		if d := rc.GetRuntimeClass(); d != nil {
			return d, true
		}
	}
	return nil, false
}

// TryResolveType always returns false: RuntimeClassed requires an instance.
func (*runtimeClassStrategy) TryResolveType(_ reflect.Type, _ apis.Config) (*apis.Descriptor, bool) {
	// No instance -> cannot use RuntimeClassed.
	return nil, false
}
