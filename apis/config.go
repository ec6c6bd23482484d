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

import "go.uber.org/zap"

// Config carries read-only registry and resolution knobs.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// MaxUnwrap limits container unwrapping depth (ptr/slice/array/chan/map)
	// in the reflect-based fallback. Acts as a safety guard against
	// pathological nesting.
	MaxUnwrap int

	// MapPreferElem controls which side of map[K]V is considered primary
	// when searching for a nearest named inner type. If true, prefer V;
	// otherwise K.
	MapPreferElem bool

	// AutoFlushPending makes name-dependent facade lookups drain the
	// deferred-registration queue first. When false, callers must invoke
	// the flush checkpoint themselves before hierarchy-dependent queries.
	AutoFlushPending bool

	// Logger receives duplicate-registration and alias-collision reports.
	// Nil disables logging.
	Logger *zap.Logger
}

// Log returns the configured logger, or a no-op logger when unset.
func (c Config) Log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
