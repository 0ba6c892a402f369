package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMealCloneIsDeep(t *testing.T) {
	src := &Meal{
		Name:        "Oatmeal",
		Ingredients: []string{"oats", "milk"},
		Drinks:      []Drink{{Name: "Milk", Quantity: "1 glass", Type: DrinkMilk}},
	}

	clone := src.Clone()
	clone.Name = "Porridge"
	clone.Ingredients[0] = "quinoa"
	clone.Drinks[0].Name = "Water"

	assert.Equal(t, "Oatmeal", src.Name)
	assert.Equal(t, "oats", src.Ingredients[0])
	assert.Equal(t, "Milk", src.Drinks[0].Name)
}

func TestMealCloneNil(t *testing.T) {
	var m *Meal
	assert.Nil(t, m.Clone())
}

func TestNutrientsNormalize(t *testing.T) {
	n := Nutrients{Calories: -50, Protein: 10, Iron: math.NaN()}
	got := n.Normalize()

	assert.Equal(t, 0.0, got.Calories)
	assert.Equal(t, 10.0, got.Protein)
	assert.Equal(t, 0.0, got.Iron)
}

func TestHasMeals(t *testing.T) {
	empty := &DailyMealPlanRecord{Date: "2025-07-17"}
	assert.False(t, empty.HasMeals())

	withSnack := &DailyMealPlanRecord{Date: "2025-07-17", AfternoonSnack: &Meal{Name: "Fruit"}}
	assert.True(t, withSnack.HasMeals())
}

func TestDayPlanCloneIsDeep(t *testing.T) {
	day := DayPlan{
		Date:      "2025-07-14",
		Breakfast: &Meal{Name: "Eggs"},
		Lunch:     &Meal{Name: "Rice"},
		Dinner:    &Meal{Name: "Soup"},
	}

	clone := day.Clone()
	clone.Breakfast.Name = "Toast"

	assert.Equal(t, "Eggs", day.Breakfast.Name)
	assert.Nil(t, clone.Snack)
}
