// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package coffee

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/tdd-katas/pkg/errors"
)

//go:embed data/recipes.yaml
var recipesYAML []byte

var (
	defaultBookOnce sync.Once
	cachedBook      *Book
	cachedBookErr   error
)

// Book holds the cup volumes and the formula of every drink.
type Book struct {
	Cups   map[CupSize]int `json:"cups" yaml:"cups"`
	Drinks []*Formula      `json:"drinks" yaml:"drinks"`
}

// Formula describes one drink independent of cup size.
type Formula struct {
	Drink DrinkType `json:"drink" yaml:"drink"`

	// Temperature is the serving temperature; nil means none is set.
	Temperature *int `json:"temperature,omitempty" yaml:"temperature,omitempty"`

	Portions []Portion `json:"portions" yaml:"portions"`
}

// Portion is a share of the cup: Volume / Divisor grams of Kind.
type Portion struct {
	Kind    Kind `json:"kind" yaml:"kind"`
	Divisor int  `json:"divisor" yaml:"divisor"`
}

// LoadBook decodes and validates a recipe book from YAML.
func LoadBook(r io.Reader) (*Book, error) {
	var b Book
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to decode recipe book", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// DefaultBook returns the embedded recipe book. It is parsed once.
func DefaultBook() (*Book, error) {
	defaultBookOnce.Do(func() {
		b, err := LoadBook(bytes.NewReader(recipesYAML))
		if err != nil {
			cachedBookErr = errors.Wrap(errors.ErrCodeInternal, "embedded recipe book is invalid", err)
			return
		}
		slog.Debug("recipe book loaded", "drinks", len(b.Drinks))
		cachedBook = b
	})
	return cachedBook, cachedBookErr
}

// Validate checks that the book covers every drink and cup size exactly once
// and that every portion is well formed.
func (b *Book) Validate() error {
	if b == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "recipe book cannot be nil")
	}

	for _, size := range []CupSize{CupSmall, CupBig} {
		if v, ok := b.Cups[size]; !ok || v <= 0 {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest, "cup volume must be positive",
				map[string]any{"size": size, "volume": v})
		}
	}
	for size := range b.Cups {
		if !size.IsValid() {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest, "unknown cup size in book",
				map[string]any{"size": size})
		}
	}

	seen := make(map[DrinkType]bool, len(b.Drinks))
	for i, f := range b.Drinks {
		if f == nil {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest, "empty drink entry",
				map[string]any{"index": i})
		}
		if !f.Drink.IsValid() {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest, "unknown drink in book",
				map[string]any{"drink": f.Drink})
		}
		if seen[f.Drink] {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest, "duplicate drink in book",
				map[string]any{"drink": f.Drink})
		}
		seen[f.Drink] = true

		if len(f.Portions) == 0 {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest, "drink has no portions",
				map[string]any{"drink": f.Drink})
		}
		if f.Temperature != nil && *f.Temperature < 0 {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest, "temperature cannot be negative",
				map[string]any{"drink": f.Drink, "temperature": *f.Temperature})
		}
		for _, p := range f.Portions {
			if !p.Kind.IsValid() || p.Kind == KindTemperature {
				return errors.NewWithContext(errors.ErrCodeInvalidRequest, "invalid portion kind",
					map[string]any{"drink": f.Drink, "kind": p.Kind})
			}
			if p.Divisor <= 0 {
				return errors.NewWithContext(errors.ErrCodeInvalidRequest, "portion divisor must be positive",
					map[string]any{"drink": f.Drink, "kind": p.Kind, "divisor": p.Divisor})
			}
		}
	}

	for _, d := range allDrinkTypes {
		if !seen[d] {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest, "drink missing from book",
				map[string]any{"drink": d})
		}
	}
	return nil
}

// Formula returns the formula for drink.
func (b *Book) Formula(drink DrinkType) (*Formula, error) {
	for _, f := range b.Drinks {
		if f.Drink == drink {
			return f, nil
		}
	}
	return nil, errors.NewWithContext(errors.ErrCodeNotFound, "unknown drink type",
		map[string]any{"drink": drink})
}

// Volume returns the cup volume in grams for size.
func (b *Book) Volume(size CupSize) (int, error) {
	v, ok := b.Cups[size]
	if !ok || !size.IsValid() {
		return 0, errors.NewWithContext(errors.ErrCodeInvalidRequest, "invalid cup size",
			map[string]any{"size": size, "supported": GetCupSizes()})
	}
	return v, nil
}

// Ingredients returns a fresh, ordered ingredient list for drink in a cup of size.
func (b *Book) Ingredients(drink DrinkType, size CupSize) ([]Ingredient, error) {
	f, err := b.Formula(drink)
	if err != nil {
		return nil, err
	}
	volume, err := b.Volume(size)
	if err != nil {
		return nil, err
	}
	return f.Ingredients(volume), nil
}

// Ingredients expands the formula for a cup of volume grams.
// The serving temperature, if any, comes last.
func (f *Formula) Ingredients(volume int) []Ingredient {
	out := make([]Ingredient, 0, len(f.Portions)+1)
	for _, p := range f.Portions {
		out = append(out, Ingredient{Kind: p.Kind, Quantity: volume / p.Divisor})
	}
	if f.Temperature != nil {
		out = append(out, Temperature(*f.Temperature))
	}
	return out
}

// String returns the formula in ratio notation, e.g. "water 1:2, coffee 1:2, 60C".
func (f *Formula) String() string {
	var buf bytes.Buffer
	for i, p := range f.Portions {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s 1:%d", p.Kind, p.Divisor)
	}
	if f.Temperature != nil {
		fmt.Fprintf(&buf, ", %dC", *f.Temperature)
	}
	return buf.String()
}
