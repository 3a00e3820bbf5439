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

import "fmt"

// Source is the collaborator that dispenses ingredients.
// Quantities are grams, except Temperature which is degrees Celsius.
type Source interface {
	Water(grams int)
	Coffee(grams int)
	Milk(grams int)
	MilkFoam(grams int)
	Chocolate(grams int)
	Sugar(grams int)
	Cream(grams int)
	Temperature(degrees int)
}

// Ingredient is a single portion of one kind.
type Ingredient struct {
	Kind     Kind `json:"kind" yaml:"kind"`
	Quantity int  `json:"quantity" yaml:"quantity"`
}

// Water returns a water ingredient.
func Water(grams int) Ingredient { return Ingredient{Kind: KindWater, Quantity: grams} }

// Coffee returns a coffee ingredient.
func Coffee(grams int) Ingredient { return Ingredient{Kind: KindCoffee, Quantity: grams} }

// Milk returns a milk ingredient.
func Milk(grams int) Ingredient { return Ingredient{Kind: KindMilk, Quantity: grams} }

// MilkFoam returns a milk foam ingredient.
func MilkFoam(grams int) Ingredient { return Ingredient{Kind: KindMilkFoam, Quantity: grams} }

// Chocolate returns a chocolate ingredient.
func Chocolate(grams int) Ingredient { return Ingredient{Kind: KindChocolate, Quantity: grams} }

// Sugar returns a sugar ingredient.
func Sugar(grams int) Ingredient { return Ingredient{Kind: KindSugar, Quantity: grams} }

// Cream returns a cream ingredient.
func Cream(grams int) Ingredient { return Ingredient{Kind: KindCream, Quantity: grams} }

// Temperature returns a serving temperature.
func Temperature(degrees int) Ingredient {
	return Ingredient{Kind: KindTemperature, Quantity: degrees}
}

// String returns "kind:quantity".
func (i Ingredient) String() string {
	return fmt.Sprintf("%s:%d", i.Kind, i.Quantity)
}

// Dispense reports the ingredient to src with exactly one call.
// Zero quantities are reported as well.
func (i Ingredient) Dispense(src Source) {
	switch i.Kind {
	case KindWater:
		src.Water(i.Quantity)
	case KindCoffee:
		src.Coffee(i.Quantity)
	case KindMilk:
		src.Milk(i.Quantity)
	case KindMilkFoam:
		src.MilkFoam(i.Quantity)
	case KindChocolate:
		src.Chocolate(i.Quantity)
	case KindSugar:
		src.Sugar(i.Quantity)
	case KindCream:
		src.Cream(i.Quantity)
	case KindTemperature:
		src.Temperature(i.Quantity)
	default:
		// Kinds are validated when the book loads.
		panic(fmt.Sprintf("coffee: dispense of unknown ingredient kind %q", i.Kind))
	}
}
