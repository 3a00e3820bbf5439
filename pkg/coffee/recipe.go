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

	"github.com/NVIDIA/tdd-katas/pkg/errors"
)

// Recipe makes one drink.
type Recipe interface {
	// Drink returns the drink this recipe makes.
	Drink() DrinkType

	// Make dispenses the drink for the given cup size.
	Make(size CupSize) error
}

// TableRecipe is a Recipe backed by a Formula from a Book.
// It owns its ingredient list and rebuilds it on every Make, so a single
// TableRecipe must not be used from multiple goroutines.
type TableRecipe struct {
	src     Source
	book    *Book
	formula *Formula

	ingredients []Ingredient
}

// NewTableRecipe binds the formula for drink in book to src.
func NewTableRecipe(src Source, book *Book, drink DrinkType) (*TableRecipe, error) {
	if src == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "ingredient source cannot be nil")
	}
	if book == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "recipe book cannot be nil")
	}
	f, err := book.Formula(drink)
	if err != nil {
		return nil, err
	}
	return &TableRecipe{
		src:     src,
		book:    book,
		formula: f,
	}, nil
}

// Drink implements Recipe. A nil or unbound recipe has no drink.
func (r *TableRecipe) Drink() DrinkType {
	if r == nil || r.formula == nil {
		return ""
	}
	return r.formula.Drink
}

// Make rebuilds the ingredient list for size and dispenses it in order.
// An invalid size dispenses nothing.
func (r *TableRecipe) Make(size CupSize) error {
	volume, err := r.book.Volume(size)
	if err != nil {
		return err
	}

	r.ingredients = r.formula.Ingredients(volume)

	slog.Debug("making drink",
		"drink", r.formula.Drink,
		"size", size,
		"ingredients", len(r.ingredients))

	for _, i := range r.ingredients {
		i.Dispense(r.src)
		if i.Quantity > 0 {
			dispensedTotal.WithLabelValues(i.Kind.String()).Add(float64(i.Quantity))
		}
	}
	return nil
}

// Ingredients returns a copy of the list built by the last Make.
func (r *TableRecipe) Ingredients() []Ingredient {
	out := make([]Ingredient, len(r.ingredients))
	copy(out, r.ingredients)
	return out
}
