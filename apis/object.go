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

// RuntimeClassed is the zero-reflection fast path for type identity:
// values implementing it answer their own class descriptor and resolvers
// MUST prefer it over any other strategy.
type RuntimeClassed interface {
	// GetRuntimeClass returns the descriptor of the value's concrete class.
	GetRuntimeClass() *Descriptor
}

// Object is the capability set every registered class implements:
// runtime class identity plus generic deep copying. It is the Go rendition
// of a polymorphic base with a pure-virtual clone.
type Object interface {
	RuntimeClassed

	// Clone returns a deep copy of the object, independently of its class.
	Clone() Object
}
