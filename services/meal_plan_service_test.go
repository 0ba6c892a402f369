package services

import (
	"testing"
	"time"

	"github.com/jomariabejo/orpha/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBreakfast() *models.Meal {
	return &models.Meal{
		Name:        "Oatmeal with banana",
		Ingredients: []string{"oats", "banana", "milk"},
		AgeRange:    models.AgeAll,
		MealType:    models.MealBreakfast,
		PrepTime:    15,
		ServingSize: "1 bowl",
		Nutrients:   models.Nutrients{Calories: 300, Protein: 9, Fiber: 4},
		Drinks:      []models.Drink{{Name: "Milk", Quantity: "1 glass", Type: models.DrinkMilk}},
	}
}

func sampleLunch() *models.Meal {
	return &models.Meal{
		Name:      "Chicken rice",
		MealType:  models.MealLunch,
		Nutrients: models.Nutrients{Calories: 550, Protein: 30},
	}
}

func TestCreateGetRoundTrip(t *testing.T) {
	svc := NewMealPlanService(testDB(t))

	created, err := svc.Create(adminCaller(), DailyMealPlanFormData{
		Date:      "2025-07-17",
		Breakfast: sampleBreakfast(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	assert.Equal(t, "admin-1", created.CreatedBy)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.Equal(t, []string{}, created.Tags)

	got, err := svc.Get(adminCaller(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-17", got.Date)
	require.NotNil(t, got.Breakfast)
	assert.Equal(t, "Oatmeal with banana", got.Breakfast.Name)
	assert.Equal(t, []string{"oats", "banana", "milk"}, got.Breakfast.Ingredients)
	assert.Nil(t, got.Lunch)
}

func TestCreateValidation(t *testing.T) {
	svc := NewMealPlanService(testDB(t))

	_, err := svc.Create(adminCaller(), DailyMealPlanFormData{Breakfast: sampleBreakfast()})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "date", vErr.Field)

	_, err = svc.Create(adminCaller(), DailyMealPlanFormData{Date: "2025-07-17"})
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "at least one meal")
}

func TestListNewestFirst(t *testing.T) {
	db := testDB(t)
	svc := NewMealPlanService(db)

	first, err := svc.Create(adminCaller(), DailyMealPlanFormData{Date: "2025-07-14", Lunch: sampleLunch()})
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	second, err := svc.Create(adminCaller(), DailyMealPlanFormData{Date: "2025-07-15", Lunch: sampleLunch()})
	require.NoError(t, err)

	plans, err := svc.List(adminCaller())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, second.ID, plans[0].ID)
	assert.Equal(t, first.ID, plans[1].ID)
}

func TestUpdatePreservesIdentity(t *testing.T) {
	svc := NewMealPlanService(testDB(t))

	created, err := svc.Create(adminCaller(), DailyMealPlanFormData{
		Date:      "2025-07-17",
		Breakfast: sampleBreakfast(),
	})
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	updated, err := svc.Update(adminCaller(), created.ID, MealPlanPatch{Lunch: sampleLunch()})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedBy, updated.CreatedBy)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	require.NotNil(t, updated.Breakfast) // untouched slot survives the patch
	require.NotNil(t, updated.Lunch)
	assert.Equal(t, "Chicken rice", updated.Lunch.Name)
}

func TestUpdateMissingRecord(t *testing.T) {
	svc := NewMealPlanService(testDB(t))

	_, err := svc.Update(adminCaller(), "no-such-id", MealPlanPatch{Lunch: sampleLunch()})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRejectsEmptyDate(t *testing.T) {
	svc := NewMealPlanService(testDB(t))

	created, err := svc.Create(adminCaller(), DailyMealPlanFormData{Date: "2025-07-17", Breakfast: sampleBreakfast()})
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(adminCaller(), created.ID, MealPlanPatch{Date: &empty})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "date", vErr.Field)
}

func TestDeleteThenGet(t *testing.T) {
	svc := NewMealPlanService(testDB(t))

	created, err := svc.Create(adminCaller(), DailyMealPlanFormData{Date: "2025-07-17", Breakfast: sampleBreakfast()})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(adminCaller(), created.ID))

	_, err = svc.Get(adminCaller(), created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(adminCaller(), created.ID), ErrNotFound)
}

func TestCloneProducesIndependentCopy(t *testing.T) {
	svc := NewMealPlanService(testDB(t))

	src, err := svc.Create(adminCaller(), DailyMealPlanFormData{
		Date:      "2025-07-17",
		Breakfast: sampleBreakfast(),
		Tags:      []string{"summer"},
	})
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	clone, err := svc.Clone(adminCaller(), src.ID, CloneOptions{Date: "2025-07-24"})
	require.NoError(t, err)

	assert.NotEqual(t, src.ID, clone.ID)
	assert.Equal(t, "2025-07-24", clone.Date)
	assert.True(t, clone.IsActive)
	assert.Equal(t, []string{"summer"}, clone.Tags)
	assert.True(t, clone.CreatedAt.After(src.CreatedAt))

	// mutating the clone must not touch the source
	clone.Breakfast.Name = "Something else"
	clone.Breakfast.Ingredients[0] = "quinoa"

	original, err := svc.Get(adminCaller(), src.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oatmeal with banana", original.Breakfast.Name)
	assert.Equal(t, "oats", original.Breakfast.Ingredients[0])
}

func TestCloneMissingRecord(t *testing.T) {
	svc := NewMealPlanService(testDB(t))

	_, err := svc.Clone(adminCaller(), "no-such-id", CloneOptions{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnauthorizedCallersCauseNoWrites(t *testing.T) {
	db := testDB(t)
	svc := NewMealPlanService(db)

	form := DailyMealPlanFormData{Date: "2025-07-17", Breakfast: sampleBreakfast()}

	for _, caller := range []*Identity{nil, staffCaller()} {
		_, err := svc.Create(caller, form)
		assert.ErrorIs(t, err, ErrUnauthorized)

		_, err = svc.List(caller)
		assert.ErrorIs(t, err, ErrUnauthorized)

		_, err = svc.Update(caller, "any", MealPlanPatch{})
		assert.ErrorIs(t, err, ErrUnauthorized)

		assert.ErrorIs(t, svc.Delete(caller, "any"), ErrUnauthorized)

		_, err = svc.Clone(caller, "any", CloneOptions{})
		assert.ErrorIs(t, err, ErrUnauthorized)
	}

	var count int64
	require.NoError(t, db.Model(&models.DailyMealPlanRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}
