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

// Package introspect renders the contents of a class registry for
// diagnostics, docs and tooling: a per-class summary keyed by name,
// preserving registration order.
package introspect

import (
	"encoding/json"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/jjxforever/mrpt/apis"
)

// ClassInfo summarizes one registered class.
type ClassInfo struct {
	Name         string   `yaml:"name" json:"name"`
	Base         string   `yaml:"base,omitempty" json:"base,omitempty"`
	Instantiable bool     `yaml:"instantiable" json:"instantiable"`
	Aliases      []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// Report is an ordered snapshot of a registry: name lookup plus
// registration-order iteration. When distinct descriptors share a name,
// the report keeps the first one, mirroring lookup semantics.
type Report struct {
	classes *orderedmap.OrderedMap[string, ClassInfo]
}

// Build captures the current contents of reg.
func Build(reg apis.Registry) *Report {
	aliases := make(map[*apis.Descriptor][]string)
	for _, a := range reg.Aliases() {
		aliases[a.Class] = append(aliases[a.Class], a.Name)
	}
	for _, names := range aliases {
		sort.Strings(names)
	}

	classes := orderedmap.New[string, ClassInfo]()
	for _, d := range reg.All() {
		if _, ok := classes.Get(d.Name); ok {
			continue // shadowed duplicate, first registration wins
		}
		info := ClassInfo{
			Name:         d.Name,
			Instantiable: !d.IsAbstract(),
			Aliases:      aliases[d],
		}
		if d.Base != nil {
			if b := d.Base(); b != nil {
				info.Base = b.Name
			}
		}
		classes.Set(d.Name, info)
	}
	return &Report{classes: classes}
}

// Len returns the number of classes in the report.
func (r *Report) Len() int { return r.classes.Len() }

// Class returns the summary for a class by primary name.
func (r *Report) Class(name string) (ClassInfo, bool) {
	return r.classes.Get(name)
}

// Classes returns the summaries in registration order.
func (r *Report) Classes() []ClassInfo {
	out := make([]ClassInfo, 0, r.classes.Len())
	for pair := r.classes.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// ChildrenOf returns the names of the classes derived from base,
// excluding base itself, in registration order.
func ChildrenOf(reg apis.Registry, base *apis.Descriptor) []string {
	children := reg.ChildrenOf(base)
	out := make([]string, 0, len(children))
	for _, d := range children {
		out = append(out, d.Name)
	}
	return out
}

// YAML renders the report as a YAML sequence in registration order.
func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r.Classes())
}

// JSON renders the report as a JSON array in registration order.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r.Classes(), "", "  ")
}
