package services

import (
	"errors"

	"github.com/jomariabejo/orpha/models"
	"gorm.io/gorm"
)

// MealPlanService is the repository for daily meal plans. Every
// operation checks the caller's role before touching storage.
type MealPlanService struct {
	db *gorm.DB
}

func NewMealPlanService(db *gorm.DB) *MealPlanService {
	return &MealPlanService{db: db}
}

// DailyMealPlanFormData is the create payload: one date plus up to five
// optional meal slots.
type DailyMealPlanFormData struct {
	Date           string       `json:"date"`
	Breakfast      *models.Meal `json:"breakfast"`
	Lunch          *models.Meal `json:"lunch"`
	Dinner         *models.Meal `json:"dinner"`
	MorningSnack   *models.Meal `json:"morningSnack"`
	AfternoonSnack *models.Meal `json:"afternoonSnack"`
	Tags           []string     `json:"tags"`
}

func (f *DailyMealPlanFormData) validate() error {
	if f.Date == "" {
		return invalidField("date", "missing required field")
	}
	hasMeals := f.Breakfast != nil || f.Lunch != nil || f.Dinner != nil ||
		f.MorningSnack != nil || f.AfternoonSnack != nil
	if !hasMeals {
		return invalidField("meals", "at least one meal must be provided")
	}
	return nil
}

// MealPlanPatch is the typed update command: nil fields are left
// untouched. A slot can be replaced but not cleared; the original UI
// always resubmits whole slot objects.
type MealPlanPatch struct {
	Date           *string      `json:"date"`
	Breakfast      *models.Meal `json:"breakfast"`
	Lunch          *models.Meal `json:"lunch"`
	Dinner         *models.Meal `json:"dinner"`
	MorningSnack   *models.Meal `json:"morningSnack"`
	AfternoonSnack *models.Meal `json:"afternoonSnack"`
	IsActive       *bool        `json:"isActive"`
	Tags           []string     `json:"tags"`
}

// CloneOptions carries the optional overrides for Clone. Everything not
// overridden is copied from the source record.
type CloneOptions struct {
	Date string `json:"date"`
}

// List returns all plans, newest first.
func (s *MealPlanService) List(caller *Identity) ([]models.DailyMealPlanRecord, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	var plans []models.DailyMealPlanRecord
	if err := s.db.Order("created_at DESC").Find(&plans).Error; err != nil {
		return nil, storageErr("list meal plans", err)
	}
	return plans, nil
}

// Get fetches one plan by its application-level id.
func (s *MealPlanService) Get(caller *Identity, id string) (*models.DailyMealPlanRecord, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	var plan models.DailyMealPlanRecord
	if err := s.db.First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr("get meal plan", err)
	}
	return &plan, nil
}

// Create validates the form, stamps ownership and lifecycle fields, and
// persists a new record with a fresh id.
func (s *MealPlanService) Create(caller *Identity, form DailyMealPlanFormData) (*models.DailyMealPlanRecord, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if err := form.validate(); err != nil {
		return nil, err
	}

	tags := form.Tags
	if tags == nil {
		tags = []string{}
	}
	plan := models.DailyMealPlanRecord{
		Date:           form.Date,
		Breakfast:      form.Breakfast,
		Lunch:          form.Lunch,
		Dinner:         form.Dinner,
		MorningSnack:   form.MorningSnack,
		AfternoonSnack: form.AfternoonSnack,
		CreatedBy:      caller.UserID,
		IsActive:       true,
		Tags:           tags,
	}
	if err := s.db.Create(&plan).Error; err != nil {
		return nil, storageErr("create meal plan", err)
	}
	return &plan, nil
}

// Update merges the patch into the stored record. Identity fields (id,
// createdBy, createdAt) never change; updatedAt is advanced by the save.
func (s *MealPlanService) Update(caller *Identity, id string, patch MealPlanPatch) (*models.DailyMealPlanRecord, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if patch.Date != nil && *patch.Date == "" {
		return nil, invalidField("date", "must not be empty")
	}

	var plan models.DailyMealPlanRecord
	if err := s.db.First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr("get meal plan", err)
	}

	if patch.Date != nil {
		plan.Date = *patch.Date
	}
	if patch.Breakfast != nil {
		plan.Breakfast = patch.Breakfast
	}
	if patch.Lunch != nil {
		plan.Lunch = patch.Lunch
	}
	if patch.Dinner != nil {
		plan.Dinner = patch.Dinner
	}
	if patch.MorningSnack != nil {
		plan.MorningSnack = patch.MorningSnack
	}
	if patch.AfternoonSnack != nil {
		plan.AfternoonSnack = patch.AfternoonSnack
	}
	if patch.IsActive != nil {
		plan.IsActive = *patch.IsActive
	}
	if patch.Tags != nil {
		plan.Tags = patch.Tags
	}
	if !plan.HasMeals() {
		return nil, invalidField("meals", "at least one meal must be provided")
	}

	if err := s.db.Save(&plan).Error; err != nil {
		return nil, storageErr("update meal plan", err)
	}
	return &plan, nil
}

// Delete removes a plan by id.
func (s *MealPlanService) Delete(caller *Identity, id string) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	res := s.db.Delete(&models.DailyMealPlanRecord{}, "id = ?", id)
	if res.Error != nil {
		return storageErr("delete meal plan", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Clone creates a sibling record: meal content and tags copied by value,
// fresh id and timestamps, isActive true, ownership stamped from the
// caller. The date may be overridden.
func (s *MealPlanService) Clone(caller *Identity, id string, opts CloneOptions) (*models.DailyMealPlanRecord, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	var src models.DailyMealPlanRecord
	if err := s.db.First(&src, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr("get meal plan", err)
	}

	date := src.Date
	if opts.Date != "" {
		date = opts.Date
	}
	tags := append([]string{}, src.Tags...)
	clone := models.DailyMealPlanRecord{
		Date:           date,
		Breakfast:      src.Breakfast.Clone(),
		Lunch:          src.Lunch.Clone(),
		Dinner:         src.Dinner.Clone(),
		MorningSnack:   src.MorningSnack.Clone(),
		AfternoonSnack: src.AfternoonSnack.Clone(),
		CreatedBy:      caller.UserID,
		IsActive:       true,
		Tags:           tags,
	}
	if err := s.db.Create(&clone).Error; err != nil {
		return nil, storageErr("clone meal plan", err)
	}
	return &clone, nil
}
