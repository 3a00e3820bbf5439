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
	"strings"

	"github.com/NVIDIA/tdd-katas/pkg/errors"
)

// Kind identifies an ingredient.
type Kind string

// Kind constants for every ingredient the source can dispense.
const (
	KindWater       Kind = "water"
	KindCoffee      Kind = "coffee"
	KindMilk        Kind = "milk"
	KindMilkFoam    Kind = "milk-foam"
	KindChocolate   Kind = "chocolate"
	KindSugar       Kind = "sugar"
	KindCream       Kind = "cream"
	KindTemperature Kind = "temperature"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is a known ingredient kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindWater, KindCoffee, KindMilk, KindMilkFoam,
		KindChocolate, KindSugar, KindCream, KindTemperature:
		return true
	default:
		return false
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k == "milkfoam" || k == "milk_foam" {
		k = KindMilkFoam
	}
	if !k.IsValid() {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest, "invalid ingredient kind",
			map[string]any{"kind": s})
	}
	return k, nil
}

// CupSize selects which quantity table a recipe uses.
type CupSize string

// CupSize constants.
const (
	CupSmall CupSize = "small"
	CupBig   CupSize = "big"
)

// String returns the string representation of the cup size.
func (c CupSize) String() string {
	return string(c)
}

// IsValid reports whether c is a known cup size.
func (c CupSize) IsValid() bool {
	return c == CupSmall || c == CupBig
}

// ParseCupSize parses a string into a CupSize. "little" is accepted for small.
func ParseCupSize(s string) (CupSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small", "little":
		return CupSmall, nil
	case "big":
		return CupBig, nil
	default:
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest, "invalid cup size",
			map[string]any{"size": s, "supported": GetCupSizes()})
	}
}

// GetCupSizes returns all supported cup sizes sorted alphabetically.
func GetCupSizes() []string {
	return []string{"big", "small"}
}

// DrinkType keys the machine's recipe mapping.
type DrinkType string

// DrinkType constants for every drink on the menu.
const (
	DrinkAmericano  DrinkType = "americano"
	DrinkCappuccino DrinkType = "cappuccino"
	DrinkLatte      DrinkType = "latte"
	DrinkMarochino  DrinkType = "marochino"
)

// String returns the string representation of the drink type.
func (d DrinkType) String() string {
	return string(d)
}

// IsValid reports whether d is a known drink type.
func (d DrinkType) IsValid() bool {
	switch d {
	case DrinkAmericano, DrinkCappuccino, DrinkLatte, DrinkMarochino:
		return true
	default:
		return false
	}
}

// ParseDrinkType parses a string into a DrinkType.
func ParseDrinkType(s string) (DrinkType, error) {
	d := DrinkType(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest, "invalid drink type",
			map[string]any{"drink": s, "supported": GetDrinkTypes()})
	}
	return d, nil
}

// GetDrinkTypes returns all supported drink types sorted alphabetically.
func GetDrinkTypes() []string {
	return []string{"americano", "cappuccino", "latte", "marochino"}
}

// allDrinkTypes is the closed set a machine mapping must cover.
var allDrinkTypes = []DrinkType{DrinkAmericano, DrinkCappuccino, DrinkLatte, DrinkMarochino}
