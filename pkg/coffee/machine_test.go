package coffee

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/tdd-katas/pkg/errors"
)

// spyRecipe records the sizes it was asked to make.
type spyRecipe struct {
	drink DrinkType
	made  []CupSize
	err   error
}

func (s *spyRecipe) Drink() DrinkType { return s.drink }

func (s *spyRecipe) Make(size CupSize) error {
	s.made = append(s.made, size)
	return s.err
}

func spyRecipes() map[DrinkType]*spyRecipe {
	out := make(map[DrinkType]*spyRecipe)
	for _, d := range allDrinkTypes {
		out[d] = &spyRecipe{drink: d}
	}
	return out
}

func asRecipes(spies map[DrinkType]*spyRecipe) map[DrinkType]Recipe {
	out := make(map[DrinkType]Recipe, len(spies))
	for d, s := range spies {
		out[d] = s
	}
	return out
}

func TestMachine_MakeCoffeeForwardsToRecipe(t *testing.T) {
	spies := spyRecipes()
	m, err := NewMachine(asRecipes(spies))
	require.NoError(t, err)

	for _, d := range allDrinkTypes {
		for _, s := range []CupSize{CupSmall, CupBig} {
			require.NoError(t, m.MakeCoffee(d, s))
		}
	}

	for _, d := range allDrinkTypes {
		assert.Equal(t, []CupSize{CupSmall, CupBig}, spies[d].made, "drink %s", d)
	}
}

func TestMachine_UnknownDrink(t *testing.T) {
	m, err := NewMachine(asRecipes(spyRecipes()))
	require.NoError(t, err)

	err = m.MakeCoffee("mocha", CupSmall)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
	assert.Contains(t, err.Error(), "unknown drink type")
}

func TestMachine_RecipeErrorIsWrapped(t *testing.T) {
	spies := spyRecipes()
	spies[DrinkLatte].err = errors.New(errors.ErrCodeInvalidRequest, "invalid cup size")
	m, err := NewMachine(asRecipes(spies))
	require.NoError(t, err)

	err = m.MakeCoffee(DrinkLatte, "medium")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))
}

func TestNewMachine_RequiresTotalMapping(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[DrinkType]Recipe)
	}{
		{
			name:   "missing drink",
			mutate: func(m map[DrinkType]Recipe) { delete(m, DrinkMarochino) },
		},
		{
			name:   "nil recipe",
			mutate: func(m map[DrinkType]Recipe) { m[DrinkLatte] = nil },
		},
		{
			name:   "typed nil table recipe",
			mutate: func(m map[DrinkType]Recipe) { m[DrinkLatte] = (*TableRecipe)(nil) },
		},
		{
			name:   "typed nil spy recipe",
			mutate: func(m map[DrinkType]Recipe) { m[DrinkCappuccino] = (*spyRecipe)(nil) },
		},
		{
			name: "every recipe typed nil",
			mutate: func(m map[DrinkType]Recipe) {
				for d := range m {
					m[d] = (*TableRecipe)(nil)
				}
			},
		},
		{
			name:   "unbound table recipe",
			mutate: func(m map[DrinkType]Recipe) { m[DrinkLatte] = &TableRecipe{} },
		},
		{
			name:   "wrong key",
			mutate: func(m map[DrinkType]Recipe) { m[DrinkLatte] = &spyRecipe{drink: DrinkAmericano} },
		},
		{
			name:   "unknown extra drink",
			mutate: func(m map[DrinkType]Recipe) { m["mocha"] = &spyRecipe{drink: "mocha"} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipes := asRecipes(spyRecipes())
			tt.mutate(recipes)

			_, err := NewMachine(recipes)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))
		})
	}
}

func TestDefaultMachine_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		drink DrinkType
		size  CupSize
		want  map[Kind]int
	}{
		{
			name:  "americano small",
			drink: DrinkAmericano,
			size:  CupSmall,
			want:  map[Kind]int{KindWater: 50, KindCoffee: 50, KindTemperature: 60},
		},
		{
			name:  "cappuccino big",
			drink: DrinkCappuccino,
			size:  CupBig,
			want:  map[Kind]int{KindMilk: 46, KindCoffee: 46, KindMilkFoam: 46, KindTemperature: 80},
		},
		{
			name:  "marochino small has no temperature",
			drink: DrinkMarochino,
			size:  CupSmall,
			want:  map[Kind]int{KindChocolate: 25, KindCoffee: 25, KindMilkFoam: 25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecorder()
			m, err := NewDefaultMachine(rec)
			require.NoError(t, err)

			require.NoError(t, m.MakeCoffee(tt.drink, tt.size))

			got := make(map[Kind]int)
			for _, i := range rec.Dispensed() {
				_, dup := got[i.Kind]
				require.False(t, dup, "kind %s reported twice", i.Kind)
				got[i.Kind] = i.Quantity
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultMachine_EveryPairMatchesTable(t *testing.T) {
	rec := NewRecorder()
	m, err := NewDefaultMachine(rec)
	require.NoError(t, err)

	for _, tt := range expectedDrinks {
		rec.Reset()
		require.NoError(t, m.MakeCoffee(tt.drink, tt.size))
		assert.ElementsMatch(t, tt.want, rec.Dispensed(), "%s/%s", tt.drink, tt.size)
	}
}

func TestMachine_Menu(t *testing.T) {
	m, err := NewDefaultMachine(NewRecorder())
	require.NoError(t, err)

	assert.Equal(t, []DrinkType{DrinkAmericano, DrinkCappuccino, DrinkLatte, DrinkMarochino}, m.Menu())
}

func TestLoggingSource_Forwards(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	rec := NewRecorder()
	m, err := NewDefaultMachine(NewLoggingSource(rec, logger))
	require.NoError(t, err)

	require.NoError(t, m.MakeCoffee(DrinkAmericano, CupBig))
	assert.Equal(t, []Ingredient{Water(70), Coffee(70), Temperature(60)}, rec.Dispensed())
	assert.Contains(t, buf.String(), "kind=water")
	assert.Contains(t, buf.String(), "quantity=70")
}

func TestNewReceipt(t *testing.T) {
	rec := NewRecorder()
	m, err := NewDefaultMachine(rec)
	require.NoError(t, err)
	require.NoError(t, m.MakeCoffee(DrinkLatte, CupBig))

	r := NewReceipt(DrinkLatte, CupBig, rec)
	assert.Len(t, r.ID, 36)
	assert.Equal(t, DrinkLatte, r.Drink)
	assert.Equal(t, CupBig, r.Size)
	assert.Equal(t, 70, r.Quantity(KindCoffee))
	assert.Equal(t, 90, r.Quantity(KindTemperature))
	assert.Zero(t, r.Quantity(KindSugar))

	other := NewReceipt(DrinkLatte, CupBig, rec)
	assert.NotEqual(t, r.ID, other.ID)
}
