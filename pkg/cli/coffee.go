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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/tdd-katas/pkg/coffee"
)

func coffeeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "coffee",
		EnableShellCompletion: true,
		Usage:                 "Make a drink and print the receipt",
		Description: `Runs the coffee machine against a recording ingredient source and prints
what was dispensed, in order. Temperature, when the drink has one, comes last.

Examples:
  katas coffee --drink latte --size big
  katas coffee --drink americano --book my-recipes.yaml -t json
  katas coffee menu -t table`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "drink",
				Aliases: []string{"d"},
				Usage:   fmt.Sprintf("Drink to make, required (supported values: %v)", coffee.GetDrinkTypes()),
			},
			&cli.StringFlag{
				Name:    "size",
				Aliases: []string{"s"},
				Value:   string(coffee.CupSmall),
				Usage:   fmt.Sprintf("Cup size (supported values: %v)", coffee.GetCupSizes()),
			},
			bookFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			drink, err := coffee.ParseDrinkType(cmd.String("drink"))
			if err != nil {
				return fmt.Errorf("invalid --drink: %w", err)
			}
			size, err := coffee.ParseCupSize(cmd.String("size"))
			if err != nil {
				return fmt.Errorf("invalid --size: %w", err)
			}

			book, err := loadBook(cmd.String("book"))
			if err != nil {
				return err
			}

			rec := coffee.NewRecorder()
			machine, err := coffee.NewMachineFromBook(coffee.NewLoggingSource(rec, nil), book)
			if err != nil {
				return fmt.Errorf("failed to build coffee machine: %w", err)
			}
			if err := machine.MakeCoffee(drink, size); err != nil {
				return fmt.Errorf("failed to make %s: %w", drink, err)
			}

			return writeResult(ctx, cmd, coffee.NewReceipt(drink, size, rec))
		},
		Commands: []*cli.Command{
			coffeeMenuCmd(),
		},
	}
}

func bookFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "book",
		Usage: "Path to a recipe book YAML file (default: built-in recipes)",
	}
}

func coffeeMenuCmd() *cli.Command {
	return &cli.Command{
		Name:  "menu",
		Usage: "List every drink with its formula and per-size quantities",
		Flags: []cli.Flag{
			bookFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			book, err := loadBook(cmd.String("book"))
			if err != nil {
				return err
			}
			m, err := buildMenu(book)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, m)
		},
	}
}

// loadBook reads the recipe book at path, or the built-in one when path is empty.
func loadBook(path string) (*coffee.Book, error) {
	if path == "" {
		return coffee.DefaultBook()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recipe book %q: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close recipe book", "path", path, "error", err)
		}
	}()

	book, err := coffee.LoadBook(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe book %q: %w", path, err)
	}
	return book, nil
}

type menuItem struct {
	Drink   coffee.DrinkType                       `json:"drink" yaml:"drink"`
	Formula string                                 `json:"formula" yaml:"formula"`
	Sizes   map[coffee.CupSize][]coffee.Ingredient `json:"sizes" yaml:"sizes"`
}

type menu []menuItem

func buildMenu(book *coffee.Book) (menu, error) {
	m := make(menu, 0, len(coffee.GetDrinkTypes()))
	for _, d := range coffee.GetDrinkTypes() {
		drink := coffee.DrinkType(d)
		formula, err := book.Formula(drink)
		if err != nil {
			return nil, err
		}
		item := menuItem{
			Drink:   drink,
			Formula: formula.String(),
			Sizes:   make(map[coffee.CupSize][]coffee.Ingredient),
		}
		for _, s := range coffee.GetCupSizes() {
			size := coffee.CupSize(s)
			ingredients, err := book.Ingredients(drink, size)
			if err != nil {
				return nil, err
			}
			item.Sizes[size] = ingredients
		}
		m = append(m, item)
	}
	return m, nil
}

// TableHeader implements serializer.Tabular.
func (m menu) TableHeader() []string {
	header := []string{"DRINK", "FORMULA"}
	for _, s := range coffee.GetCupSizes() {
		header = append(header, "GRAMS ("+s+")")
	}
	return header
}

// TableRows implements serializer.Tabular.
func (m menu) TableRows() [][]string {
	rows := make([][]string, 0, len(m))
	for _, item := range m {
		row := []string{string(item.Drink), item.Formula}
		for _, s := range coffee.GetCupSizes() {
			total := 0
			for _, in := range item.Sizes[coffee.CupSize(s)] {
				if in.Kind != coffee.KindTemperature {
					total += in.Quantity
				}
			}
			row = append(row, strconv.Itoa(total))
		}
		rows = append(rows, row)
	}
	return rows
}
