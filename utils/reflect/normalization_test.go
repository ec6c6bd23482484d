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

package reflect_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/jjxforever/mrpt/config"
	uref "github.com/jjxforever/mrpt/utils/reflect"
)

type inner struct{}
type keyT string

func TestNormalize_Containers(t *testing.T) {
	cfg := config.NewConfig()
	want := reflect.TypeOf(inner{})

	cases := []struct {
		name string
		t    reflect.Type
	}{
		{"bare", reflect.TypeOf(inner{})},
		{"ptr", reflect.TypeOf(&inner{})},
		{"ptr-ptr", reflect.TypeOf(new(*inner))},
		{"slice", reflect.TypeOf([]inner{})},
		{"array", reflect.TypeOf([4]inner{})},
		{"chan", reflect.TypeOf(make(chan inner))},
		{"slice-of-ptr", reflect.TypeOf([]*inner{})},
		{"chan-of-slice", reflect.TypeOf(make(chan []inner))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Normalize(tc.t, cfg)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if got != want {
				t.Fatalf("Normalize = %v, want %v", got, want)
			}
		})
	}
}

func TestNormalize_MapSides(t *testing.T) {
	m := reflect.TypeOf(map[keyT]inner{})

	elemCfg := config.NewConfig(config.WithMapPreferElem(true))
	got, err := uref.Normalize(m, elemCfg)
	if err != nil || got != reflect.TypeOf(inner{}) {
		t.Fatalf("Normalize(map, prefer elem) = (%v, %v), want inner", got, err)
	}

	keyCfg := config.NewConfig(config.WithMapPreferElem(false))
	got, err = uref.Normalize(m, keyCfg)
	if err != nil || got != reflect.TypeOf(keyT("")) {
		t.Fatalf("Normalize(map, prefer key) = (%v, %v), want keyT", got, err)
	}

	// Preferred side unnamed: fall back to the other side.
	unnamedElem := reflect.TypeOf(map[keyT][]int{})
	got, err = uref.Normalize(unnamedElem, elemCfg)
	if err != nil || got != reflect.TypeOf(keyT("")) {
		t.Fatalf("Normalize(map with unnamed elem) = (%v, %v), want keyT", got, err)
	}

	// Both sides unnamed: keep unwrapping the element.
	bothUnnamed := reflect.TypeOf(map[*inner][]inner{})
	got, err = uref.Normalize(bothUnnamed, elemCfg)
	if err != nil || got != reflect.TypeOf(inner{}) {
		t.Fatalf("Normalize(map both unnamed) = (%v, %v), want inner", got, err)
	}
}

func TestNormalize_DepthBound(t *testing.T) {
	deep := reflect.TypeOf([][][]inner{})

	if _, err := uref.Normalize(deep, config.NewConfig(config.WithMaxUnwrap(2))); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("Normalize beyond depth: err = %v, want ErrReflectTypeNotNamed", err)
	}
	if got, err := uref.Normalize(deep, config.NewConfig(config.WithMaxUnwrap(3))); err != nil || got != reflect.TypeOf(inner{}) {
		t.Fatalf("Normalize within depth = (%v, %v), want inner", got, err)
	}

	// Non-positive MaxUnwrap falls back to the default depth.
	zero := config.NewConfig()
	zero.MaxUnwrap = 0
	if got, err := uref.Normalize(deep, zero); err != nil || got != reflect.TypeOf(inner{}) {
		t.Fatalf("Normalize with MaxUnwrap=0 = (%v, %v), want inner", got, err)
	}
}

func TestNormalize_Errors(t *testing.T) {
	cfg := config.NewConfig()

	if _, err := uref.Normalize(nil, cfg); !errors.Is(err, uref.ErrReflectNilType) {
		t.Fatalf("Normalize(nil): err = %v, want ErrReflectNilType", err)
	}
	if _, err := uref.Normalize(reflect.TypeOf(struct{ a int }{}), cfg); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("Normalize(anonymous struct): err = %v, want ErrReflectTypeNotNamed", err)
	}
	if _, err := uref.Normalize(reflect.TypeOf(func() {}), cfg); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("Normalize(func): err = %v, want ErrReflectTypeNotNamed", err)
	}
}
