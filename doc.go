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

// Package mrpt provides a process-wide run-time class registry: class
// identity by name, hierarchy introspection and generic instantiation of
// registered classes, without callers knowing concrete types at compile
// time.
//
// # Design
//
// The core is a read-mostly global snapshot (state) holding four things:
//
//   - Config: knobs controlling the reflect fallback (container unwrap
//     depth, map side preference), the pending-registration auto-flush
//     behavior and the logger for duplicate-name reports.
//
//   - Registry: the process-wide class directory. Every registered class
//     contributes one statically allocated apis.Descriptor (name, optional
//     factory, base-class link); the registry indexes descriptor pointers
//     and never owns or mutates them. The directory is append-only:
//     descriptors are never removed and the class list never shrinks.
//
//   - Resolver: a read-only object answering "what class is this name /
//     value / type?". The default chain tries, in order:
//     1. The runtime-class fast path (apis.RuntimeClassed values).
//     2. The registry (primary names and backward-compatibility aliases).
//     3. A reflect fallback that unwraps containers and matches the
//     nearest named inner type against the registry.
//
//   - Builder: a pluggable factory constructing Registry and Resolver for
//     a given Config, with optional state migration from prior instances.
//
// Readers load the current snapshot through an atomic pointer and never
// take locks; writers (SetConfig, SetRegistry, ...) build a brand-new
// snapshot under a short build mutex and swap it in. Registration itself
// is serialized by a mutex inside the registry, so init-time registration
// is safe even when the runtime runs initializers concurrently; steady
// state lookups (FindRegisteredClass, GetAllRegisteredClasses,
// GetAllRegisteredClassesChildrenOf) stay lock-free.
//
// # Registration
//
// Each class declares one package-level descriptor and registers it at
// init time. Because cross-package init order is unspecified, a subclass
// could otherwise register before its base; packages therefore queue their
// registrations and the complete batch becomes visible at an explicit
// checkpoint:
//
//	func init() {
//		mrpt.RegisterClassDeferred(func(r apis.Registry) {
//			_ = r.Register(ObservationClassID)
//			_ = r.Register(ObservationIMUClassID)
//		})
//	}
//
//	// Before any lookup that needs the full hierarchy:
//	mrpt.RegisterAllPendingClasses()
//
// With the default configuration the facade lookups run the checkpoint
// themselves when registrations are pending (Config.AutoFlushPending).
//
// # Failure semantics
//
// All registry conditions are local and recoverable: unknown names yield
// ErrClassNotFound, abstract classes yield ErrNotInstantiable, and a
// duplicate name for a distinct descriptor keeps the first mapping
// (logged, reported as registry.ErrDuplicateName). The registry never
// aborts the process.
//
// # Scope
//
// mrpt-go is intentionally small: it resolves names and types to class
// descriptors and creates or clones instances generically. Serialization
// layers consuming the registry define their own wire formats and call in
// purely for name-to-class resolution.
package mrpt
