// Package coffee implements a coffee machine that composes drinks from
// ingredients reported to an external ingredient source.
//
// # Overview
//
// The machine never touches hardware. Every ingredient is reported to a Source,
// the collaborator that actually dispenses it (or, in tests, records it):
//
//	type Source interface {
//	    Water(grams int)
//	    Coffee(grams int)
//	    Milk(grams int)
//	    MilkFoam(grams int)
//	    Chocolate(grams int)
//	    Sugar(grams int)
//	    Cream(grams int)
//	    Temperature(degrees int)
//	}
//
// # Core Types
//
// Ingredient: one kind and one quantity. Dispense reports it to a Source.
//
// Book: the recipe tables, loaded from embedded YAML. Each drink lists its
// portions as a divisor of the cup volume (small 100 g, big 140 g) and an
// optional serving temperature.
//
// Recipe: builds the ordered ingredient list for a cup size and dispenses it.
// TableRecipe is the Book-backed implementation.
//
// Machine: maps every DrinkType to a Recipe and forwards MakeCoffee calls.
//
// # Usage
//
//	rec := coffee.NewRecorder()
//	machine, err := coffee.NewDefaultMachine(rec)
//	if err != nil {
//	    return err
//	}
//	if err := machine.MakeCoffee(coffee.DrinkLatte, coffee.CupBig); err != nil {
//	    return err
//	}
//	receipt := coffee.NewReceipt(coffee.DrinkLatte, coffee.CupBig, rec)
//
// # Recipes
//
//	americano   water 1:2, coffee 1:2, 60C
//	cappuccino  milk 1:3, coffee 1:3, milk foam 1:3, 80C
//	latte       milk 1:4, coffee 1:2, milk foam 1:4, 90C
//	marochino   chocolate 1:4, coffee 1:4, milk foam 1:4
//
// Quantities use integer division, so a big cappuccino is 46 g of each portion.
//
// # Metrics
//
//   - katas_coffee_drinks_total{drink,size}
//   - katas_coffee_dispensed_total{kind}
package coffee
