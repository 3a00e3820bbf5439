package coffee

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/tdd-katas/pkg/errors"
)

// expectedDrinks is the full quantity table, in dispense order.
var expectedDrinks = []struct {
	drink DrinkType
	size  CupSize
	want  []Ingredient
}{
	{DrinkAmericano, CupSmall, []Ingredient{Water(50), Coffee(50), Temperature(60)}},
	{DrinkAmericano, CupBig, []Ingredient{Water(70), Coffee(70), Temperature(60)}},
	{DrinkCappuccino, CupSmall, []Ingredient{Milk(33), Coffee(33), MilkFoam(33), Temperature(80)}},
	{DrinkCappuccino, CupBig, []Ingredient{Milk(46), Coffee(46), MilkFoam(46), Temperature(80)}},
	{DrinkLatte, CupSmall, []Ingredient{Milk(25), Coffee(50), MilkFoam(25), Temperature(90)}},
	{DrinkLatte, CupBig, []Ingredient{Milk(35), Coffee(70), MilkFoam(35), Temperature(90)}},
	{DrinkMarochino, CupSmall, []Ingredient{Chocolate(25), Coffee(25), MilkFoam(25)}},
	{DrinkMarochino, CupBig, []Ingredient{Chocolate(35), Coffee(35), MilkFoam(35)}},
}

func TestDefaultBook_Valid(t *testing.T) {
	book, err := DefaultBook()
	require.NoError(t, err)
	require.NoError(t, book.Validate())
	assert.Equal(t, 100, book.Cups[CupSmall])
	assert.Equal(t, 140, book.Cups[CupBig])
	assert.Len(t, book.Drinks, len(allDrinkTypes))
}

func TestBook_Ingredients(t *testing.T) {
	book, err := DefaultBook()
	require.NoError(t, err)

	for _, tt := range expectedDrinks {
		t.Run(string(tt.drink)+"/"+string(tt.size), func(t *testing.T) {
			got, err := book.Ingredients(tt.drink, tt.size)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Ingredients() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTableRecipe_Make(t *testing.T) {
	book, err := DefaultBook()
	require.NoError(t, err)

	for _, tt := range expectedDrinks {
		t.Run(string(tt.drink)+"/"+string(tt.size), func(t *testing.T) {
			rec := NewRecorder()
			r, err := NewTableRecipe(rec, book, tt.drink)
			require.NoError(t, err)

			require.NoError(t, r.Make(tt.size))
			if diff := cmp.Diff(tt.want, rec.Dispensed()); diff != "" {
				t.Errorf("dispensed mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.want, r.Ingredients())
		})
	}
}

func TestTableRecipe_MakeDoesNotLeakBetweenCalls(t *testing.T) {
	book, err := DefaultBook()
	require.NoError(t, err)

	rec := NewRecorder()
	r, err := NewTableRecipe(rec, book, DrinkLatte)
	require.NoError(t, err)

	require.NoError(t, r.Make(CupBig))
	rec.Reset()
	require.NoError(t, r.Make(CupSmall))

	want := []Ingredient{Milk(25), Coffee(50), MilkFoam(25), Temperature(90)}
	assert.Equal(t, want, rec.Dispensed())
	assert.Equal(t, want, r.Ingredients())
}

func TestTableRecipe_MakeInvalidSize(t *testing.T) {
	book, err := DefaultBook()
	require.NoError(t, err)

	rec := NewRecorder()
	r, err := NewTableRecipe(rec, book, DrinkAmericano)
	require.NoError(t, err)

	err = r.Make("medium")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))
	assert.Empty(t, rec.Dispensed())
}

func TestNewTableRecipe_Errors(t *testing.T) {
	book, err := DefaultBook()
	require.NoError(t, err)

	_, err = NewTableRecipe(nil, book, DrinkLatte)
	assert.Error(t, err)

	_, err = NewTableRecipe(NewRecorder(), nil, DrinkLatte)
	assert.Error(t, err)

	_, err = NewTableRecipe(NewRecorder(), book, "mocha")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}

func TestLoadBook_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "malformed",
			yaml: "cups: [",
		},
		{
			name: "unknown field",
			yaml: "cups: {small: 100, big: 140}\nflavour: vanilla\n",
		},
		{
			name: "missing big cup",
			yaml: "cups: {small: 100}\ndrinks: []\n",
		},
		{
			name: "missing drinks",
			yaml: "cups: {small: 100, big: 140}\ndrinks: []\n",
		},
		{
			name: "zero divisor",
			yaml: `cups: {small: 100, big: 140}
drinks:
  - drink: americano
    portions: [{kind: water, divisor: 0}]
`,
		},
		{
			name: "temperature as portion",
			yaml: `cups: {small: 100, big: 140}
drinks:
  - drink: americano
    portions: [{kind: temperature, divisor: 2}]
`,
		},
		{
			name: "unknown drink",
			yaml: `cups: {small: 100, big: 140}
drinks:
  - drink: mocha
    portions: [{kind: coffee, divisor: 2}]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBook(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest), "got %v", err)
		})
	}
}

func TestLoadBook_CustomVolumes(t *testing.T) {
	doc := `cups: {small: 200, big: 300}
drinks:
  - drink: americano
    temperature: 65
    portions: [{kind: water, divisor: 2}, {kind: coffee, divisor: 2}]
  - drink: cappuccino
    portions: [{kind: milk, divisor: 3}, {kind: coffee, divisor: 3}, {kind: milk-foam, divisor: 3}]
  - drink: latte
    portions: [{kind: milk, divisor: 4}, {kind: coffee, divisor: 2}, {kind: milk-foam, divisor: 4}]
  - drink: marochino
    portions: [{kind: chocolate, divisor: 4}, {kind: coffee, divisor: 4}, {kind: milk-foam, divisor: 4}, {kind: sugar, divisor: 20}]
`
	book, err := LoadBook(strings.NewReader(doc))
	require.NoError(t, err)

	got, err := book.Ingredients(DrinkAmericano, CupBig)
	require.NoError(t, err)
	assert.Equal(t, []Ingredient{Water(150), Coffee(150), Temperature(65)}, got)

	got, err = book.Ingredients(DrinkMarochino, CupSmall)
	require.NoError(t, err)
	assert.Equal(t, []Ingredient{Chocolate(50), Coffee(50), MilkFoam(50), Sugar(10)}, got)
}

func TestFormula_String(t *testing.T) {
	book, err := DefaultBook()
	require.NoError(t, err)

	f, err := book.Formula(DrinkLatte)
	require.NoError(t, err)
	assert.Equal(t, "milk 1:4, coffee 1:2, milk-foam 1:4, 90C", f.String())

	f, err = book.Formula(DrinkMarochino)
	require.NoError(t, err)
	assert.Equal(t, "chocolate 1:4, coffee 1:4, milk-foam 1:4", f.String())
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestTableRecipe_MakeCountsDispensed(t *testing.T) {
	book, err := DefaultBook()
	require.NoError(t, err)
	r, err := NewTableRecipe(NewRecorder(), book, DrinkAmericano)
	require.NoError(t, err)

	water := dispensedTotal.WithLabelValues(KindWater.String())
	before := counterValue(t, water)

	require.NoError(t, r.Make(CupBig))
	assert.InDelta(t, before+70, counterValue(t, water), 1e-9)

	// Dispensing on its own only talks to the source.
	Water(30).Dispense(NewRecorder())
	assert.InDelta(t, before+70, counterValue(t, water), 1e-9)
}
