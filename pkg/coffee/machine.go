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
	"log/slog"
	"reflect"
	"sort"

	"github.com/NVIDIA/tdd-katas/pkg/errors"
)

// Machine dispatches drink orders to recipes.
// The recipes are borrowed; the machine never rebuilds or releases them.
type Machine struct {
	recipes map[DrinkType]Recipe
}

// NewMachine creates a Machine from a mapping that must cover every DrinkType.
// A missing drink, a nil recipe, or a recipe registered under the wrong key
// is rejected here so MakeCoffee never has to guess.
func NewMachine(recipes map[DrinkType]Recipe) (*Machine, error) {
	for _, d := range allDrinkTypes {
		r, ok := recipes[d]
		if !ok || isNilRecipe(r) {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "no recipe for drink type",
				map[string]any{"drink": d})
		}
		if r.Drink() != d {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "recipe registered under wrong drink type",
				map[string]any{"key": d, "drink": r.Drink()})
		}
	}

	m := &Machine{recipes: make(map[DrinkType]Recipe, len(recipes))}
	for d, r := range recipes {
		if !d.IsValid() {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "unknown drink type in mapping",
				map[string]any{"drink": d})
		}
		m.recipes[d] = r
	}
	return m, nil
}

// isNilRecipe reports a nil interface or an interface holding a nil pointer.
func isNilRecipe(r Recipe) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// NewDefaultMachine builds a Machine whose recipes come from the embedded book
// and dispense into src.
func NewDefaultMachine(src Source) (*Machine, error) {
	book, err := DefaultBook()
	if err != nil {
		return nil, err
	}
	return NewMachineFromBook(src, book)
}

// NewMachineFromBook builds one TableRecipe per drink in book.
func NewMachineFromBook(src Source, book *Book) (*Machine, error) {
	recipes := make(map[DrinkType]Recipe, len(allDrinkTypes))
	for _, d := range allDrinkTypes {
		r, err := NewTableRecipe(src, book, d)
		if err != nil {
			return nil, err
		}
		recipes[d] = r
	}
	return NewMachine(recipes)
}

// MakeCoffee makes drink in a cup of size.
func (m *Machine) MakeCoffee(drink DrinkType, size CupSize) error {
	r, ok := m.recipes[drink]
	if !ok {
		return errors.NewWithContext(errors.ErrCodeNotFound, "unknown drink type",
			map[string]any{"drink": drink, "supported": GetDrinkTypes()})
	}
	if err := r.Make(size); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInvalidRequest, "failed to make drink", err,
			map[string]any{"drink": drink, "size": size})
	}

	drinksTotal.WithLabelValues(drink.String(), size.String()).Inc()
	slog.Info("drink made", "drink", drink, "size", size)
	return nil
}

// Menu returns the drinks the machine can make, sorted alphabetically.
func (m *Machine) Menu() []DrinkType {
	out := make([]DrinkType, 0, len(m.recipes))
	for d := range m.recipes {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
