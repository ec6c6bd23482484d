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

package apis_test

import (
	"errors"
	"testing"

	"github.com/jjxforever/mrpt/apis"
)

// widget is a minimal concrete class used across the descriptor tests.
type widget struct{ n int }

func (w *widget) GetRuntimeClass() *apis.Descriptor { return widgetClassID }
func (w *widget) Clone() apis.Object                { c := *w; return &c }

var widgetClassID = &apis.Descriptor{
	Name:    "widget",
	Factory: func() apis.Object { return &widget{} },
	Base:    func() *apis.Descriptor { return apis.ObjectClassID },
}

// chain builds a linear hierarchy of n descriptors rooted at ObjectClassID.
// chain(n)[0] is the deepest leaf.
func chain(n int) []*apis.Descriptor {
	out := make([]*apis.Descriptor, n)
	for i := n - 1; i >= 0; i-- {
		base := apis.ObjectClassID
		if i < n-1 {
			base = out[i+1]
		}
		out[i] = &apis.Descriptor{Name: "C" + string(rune('0'+i)), Base: fixedBase(base)}
	}
	return out
}

func fixedBase(base *apis.Descriptor) func() *apis.Descriptor {
	return func() *apis.Descriptor { return base }
}

func TestCreateObject_Concrete(t *testing.T) {
	obj, err := widgetClassID.CreateObject()
	if err != nil {
		t.Fatalf("CreateObject: unexpected error: %v", err)
	}
	if obj == nil {
		t.Fatal("CreateObject returned nil object")
	}
	if obj.GetRuntimeClass() != widgetClassID {
		t.Fatalf("GetRuntimeClass() = %v, want widgetClassID", obj.GetRuntimeClass())
	}
}

func TestCreateObject_Abstract(t *testing.T) {
	abstract := &apis.Descriptor{Name: "abstractThing"}
	obj, err := abstract.CreateObject()
	if !errors.Is(err, apis.ErrNotInstantiable) {
		t.Fatalf("CreateObject on abstract: err = %v, want ErrNotInstantiable", err)
	}
	if obj != nil {
		t.Fatalf("CreateObject on abstract: obj = %v, want nil", obj)
	}
	if !abstract.IsAbstract() {
		t.Fatal("IsAbstract() = false, want true")
	}
	if widgetClassID.IsAbstract() {
		t.Fatal("IsAbstract() = true for concrete class, want false")
	}
}

func TestDerivedFrom_Reflexive(t *testing.T) {
	for _, d := range append(chain(4), apis.ObjectClassID, widgetClassID) {
		if !d.DerivedFrom(d) {
			t.Fatalf("%s.DerivedFrom(self) = false, want true", d.Name)
		}
	}
}

func TestDerivedFrom_ChainWalk(t *testing.T) {
	cs := chain(4)
	leaf := cs[0]

	for _, anc := range cs[1:] {
		if !leaf.DerivedFrom(anc) {
			t.Fatalf("leaf.DerivedFrom(%s) = false, want true", anc.Name)
		}
		if anc.DerivedFrom(leaf) {
			t.Fatalf("%s.DerivedFrom(leaf) = true, want false", anc.Name)
		}
	}
	if !leaf.DerivedFrom(apis.ObjectClassID) {
		t.Fatal("leaf.DerivedFrom(root) = false, want true")
	}

	// Unrelated hierarchy.
	if leaf.DerivedFrom(widgetClassID) {
		t.Fatal("leaf.DerivedFrom(widget) = true, want false")
	}
}

func TestDerivedFrom_NilArguments(t *testing.T) {
	var nilD *apis.Descriptor
	if nilD.DerivedFrom(apis.ObjectClassID) {
		t.Fatal("nil.DerivedFrom(root) = true, want false")
	}
	if widgetClassID.DerivedFrom(nil) {
		t.Fatal("widget.DerivedFrom(nil) = true, want false")
	}
}

func TestDerivedFrom_CyclicBaseTerminates(t *testing.T) {
	// Accidentally cyclic Base links must not hang the walk.
	a := &apis.Descriptor{Name: "cycA"}
	b := &apis.Descriptor{Name: "cycB"}
	a.Base = fixedBase(b)
	b.Base = fixedBase(a)

	if a.DerivedFrom(widgetClassID) {
		t.Fatal("cyclic chain resolved to unrelated class")
	}
	if !a.DerivedFrom(b) {
		t.Fatal("a.DerivedFrom(b) = false, want true (direct base)")
	}
}

func TestDerivedFromName(t *testing.T) {
	cs := chain(3)
	leaf := cs[0]

	if !leaf.DerivedFromName(leaf.Name) {
		t.Fatal("DerivedFromName(self name) = false, want true")
	}
	if !leaf.DerivedFromName(cs[2].Name) {
		t.Fatalf("DerivedFromName(%q) = false, want true", cs[2].Name)
	}
	if !leaf.DerivedFromName("Object") {
		t.Fatal("DerivedFromName(root name) = false, want true")
	}
	if leaf.DerivedFromName("nosuch") {
		t.Fatal("DerivedFromName(unknown) = true, want false")
	}
	if leaf.DerivedFromName("") {
		t.Fatal("DerivedFromName(empty) = true, want false")
	}

	// Name-based matching works across distinct descriptor identities:
	// a second descriptor for the same logical class still matches.
	twin := &apis.Descriptor{Name: cs[1].Name, Base: fixedBase(apis.ObjectClassID)}
	if twin == cs[1] {
		t.Fatal("fixture broken: twin must be a distinct identity")
	}
	if !leaf.DerivedFromName(twin.Name) {
		t.Fatal("DerivedFromName across identities = false, want true")
	}
}

func TestClone_IndependentCopy(t *testing.T) {
	w := &widget{n: 7}
	c, ok := w.Clone().(*widget)
	if !ok {
		t.Fatalf("Clone returned %T, want *widget", w.Clone())
	}
	if c == w {
		t.Fatal("Clone returned the receiver, want a copy")
	}
	if c.n != 7 {
		t.Fatalf("clone n = %d, want 7", c.n)
	}
	c.n = 9
	if w.n != 7 {
		t.Fatalf("mutating the clone changed the original: n = %d", w.n)
	}
}
