package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DrinkType string

const (
	DrinkWater    DrinkType = "water"
	DrinkMilk     DrinkType = "milk"
	DrinkJuice    DrinkType = "juice"
	DrinkSmoothie DrinkType = "smoothie"
	DrinkTea      DrinkType = "tea"
	DrinkOther    DrinkType = "other"
)

// Drink served with a meal; quantity is free text ("1 glass", "250ml").
type Drink struct {
	Name     string    `json:"name"`
	Quantity string    `json:"quantity"`
	Type     DrinkType `json:"type"`
}

// Nutrients is the fixed ten-field vector attached to every meal.
type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	VitaminA float64 `json:"vitaminA"`
	VitaminC float64 `json:"vitaminC"`
	VitaminD float64 `json:"vitaminD"`
	Calcium  float64 `json:"calcium"`
	Iron     float64 `json:"iron"`
}

// Normalize clamps negative or NaN values to zero so that malformed
// input degrades to "no contribution" instead of failing the record.
func (n Nutrients) Normalize() Nutrients {
	clamp := func(v float64) float64 {
		if v != v || v < 0 { // NaN or negative
			return 0
		}
		return v
	}
	return Nutrients{
		Calories: clamp(n.Calories),
		Protein:  clamp(n.Protein),
		Carbs:    clamp(n.Carbs),
		Fat:      clamp(n.Fat),
		Fiber:    clamp(n.Fiber),
		VitaminA: clamp(n.VitaminA),
		VitaminC: clamp(n.VitaminC),
		VitaminD: clamp(n.VitaminD),
		Calcium:  clamp(n.Calcium),
		Iron:     clamp(n.Iron),
	}
}

func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
		Fiber:    n.Fiber + o.Fiber,
		VitaminA: n.VitaminA + o.VitaminA,
		VitaminC: n.VitaminC + o.VitaminC,
		VitaminD: n.VitaminD + o.VitaminD,
		Calcium:  n.Calcium + o.Calcium,
		Iron:     n.Iron + o.Iron,
	}
}

type AgeRange string

const (
	AgeAll      AgeRange = "all"
	AgeToddler  AgeRange = "1-5"
	AgeChild    AgeRange = "6-12"
	AgeTeenager AgeRange = "13-17"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealSnack     MealType = "snack"
	MealDinner    MealType = "dinner"
)

// Meal describes one dish in a plan slot. It is embedded in plan records
// as a JSON column, not a table of its own.
type Meal struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Ingredients []string  `json:"ingredients"`
	AgeRange    AgeRange  `json:"ageRange"`
	Nutrients   Nutrients `json:"nutrients"`
	MealType    MealType  `json:"mealType"`
	PrepTime    int       `json:"prepTime"` // minutes
	ServingSize string    `json:"servingSize"`
	Notes       string    `json:"notes"`
	Drinks      []Drink   `json:"drinks"`
}

// Clone returns a deep copy so that cloned plans can be edited without
// touching the source. Nil-safe for empty slots.
func (m *Meal) Clone() *Meal {
	if m == nil {
		return nil
	}
	out := *m
	if m.Ingredients != nil {
		out.Ingredients = append([]string(nil), m.Ingredients...)
	}
	if m.Drinks != nil {
		out.Drinks = append([]Drink(nil), m.Drinks...)
	}
	return &out
}

// DailyMealPlanRecord is the canonical persisted plan: one date with up
// to five optional meal slots.
type DailyMealPlanRecord struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Date           string    `gorm:"index;not null" json:"date"` // YYYY-MM-DD
	Breakfast      *Meal     `gorm:"serializer:json" json:"breakfast,omitempty"`
	Lunch          *Meal     `gorm:"serializer:json" json:"lunch,omitempty"`
	Dinner         *Meal     `gorm:"serializer:json" json:"dinner,omitempty"`
	MorningSnack   *Meal     `gorm:"serializer:json" json:"morningSnack,omitempty"`
	AfternoonSnack *Meal     `gorm:"serializer:json" json:"afternoonSnack,omitempty"`
	CreatedBy      string    `gorm:"index" json:"createdBy"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	IsActive       bool      `json:"isActive"`
	Tags           []string  `gorm:"serializer:json" json:"tags"`
}

func (DailyMealPlanRecord) TableName() string { return "meal_plans" }

func (p *DailyMealPlanRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Slots returns the five meal slots in a fixed order; absent slots are nil.
func (p *DailyMealPlanRecord) Slots() []*Meal {
	return []*Meal{p.Breakfast, p.Lunch, p.Dinner, p.MorningSnack, p.AfternoonSnack}
}

// HasMeals reports whether at least one slot is populated.
func (p *DailyMealPlanRecord) HasMeals() bool {
	for _, m := range p.Slots() {
		if m != nil {
			return true
		}
	}
	return false
}

// DayPlan is one day inside the legacy weekly plan, with four slots.
type DayPlan struct {
	Date      string `json:"date"`
	Breakfast *Meal  `json:"breakfast,omitempty"`
	Lunch     *Meal  `json:"lunch,omitempty"`
	Snack     *Meal  `json:"snack,omitempty"`
	Dinner    *Meal  `json:"dinner,omitempty"`
}

func (d DayPlan) Slots() []*Meal {
	return []*Meal{d.Breakfast, d.Lunch, d.Snack, d.Dinner}
}

func (d DayPlan) Clone() DayPlan {
	return DayPlan{
		Date:      d.Date,
		Breakfast: d.Breakfast.Clone(),
		Lunch:     d.Lunch.Clone(),
		Snack:     d.Snack.Clone(),
		Dinner:    d.Dinner.Clone(),
	}
}

// MealPlanRecord is the legacy weekly variant: a named plan spanning a
// week of DayPlan entries. Kept as its own resource; its validation rules
// differ from the daily record and are never mixed with it.
type MealPlanRecord struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `json:"description,omitempty"`
	WeekStartDate string    `gorm:"index;not null" json:"weekStartDate"`
	Days          []DayPlan `gorm:"serializer:json" json:"days"`
	CreatedBy     string    `gorm:"index" json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	IsActive      bool      `json:"isActive"`
	Tags          []string  `gorm:"serializer:json" json:"tags"`
}

func (MealPlanRecord) TableName() string { return "weekly_meal_plans" }

func (p *MealPlanRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
