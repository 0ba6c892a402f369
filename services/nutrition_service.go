package services

import "github.com/jomariabejo/orpha/models"

// SumMeals folds the nutrient vectors of the present meals into one
// total. Absent slots (nil) contribute nothing; each vector is
// normalized first so malformed values count as zero. Pure summation,
// so the result is independent of slot order.
func SumMeals(meals ...*models.Meal) models.Nutrients {
	var total models.Nutrients
	for _, m := range meals {
		if m == nil {
			continue
		}
		total = total.Add(m.Nutrients.Normalize())
	}
	return total
}

// DailyTotals aggregates the five slots of a daily plan.
func DailyTotals(p *models.DailyMealPlanRecord) models.Nutrients {
	if p == nil {
		return models.Nutrients{}
	}
	return SumMeals(p.Slots()...)
}

// DayTotals aggregates the four slots of a day nested in a weekly plan.
func DayTotals(d models.DayPlan) models.Nutrients {
	return SumMeals(d.Slots()...)
}

// WeeklyTotals sums every day of a weekly plan.
func WeeklyTotals(p *models.MealPlanRecord) models.Nutrients {
	var total models.Nutrients
	if p == nil {
		return total
	}
	for _, day := range p.Days {
		total = total.Add(DayTotals(day))
	}
	return total
}
