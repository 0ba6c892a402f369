package services

import (
	"errors"
	"fmt"

	"github.com/jomariabejo/orpha/models"
	"gorm.io/gorm"
)

// WeeklyPlanService manages the legacy weekly plan variant. It follows
// the stricter validation policy of the two found in the data: every
// day needs breakfast, lunch and dinner.
type WeeklyPlanService struct {
	db *gorm.DB
}

func NewWeeklyPlanService(db *gorm.DB) *WeeklyPlanService {
	return &WeeklyPlanService{db: db}
}

type WeeklyPlanFormData struct {
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	WeekStartDate string           `json:"weekStartDate"`
	Days          []models.DayPlan `json:"days"`
	Tags          []string         `json:"tags"`
}

func (f *WeeklyPlanFormData) validate() error {
	if f.Name == "" {
		return invalidField("name", "missing required field")
	}
	if f.WeekStartDate == "" {
		return invalidField("weekStartDate", "missing required field")
	}
	if len(f.Days) == 0 {
		return invalidField("days", "at least one day must be provided")
	}
	for i, day := range f.Days {
		if day.Date == "" {
			return invalidField(fmt.Sprintf("days[%d].date", i), "missing required field")
		}
		if day.Breakfast == nil || day.Lunch == nil || day.Dinner == nil {
			return invalidField(fmt.Sprintf("days[%d]", i), "breakfast, lunch and dinner are required")
		}
	}
	return nil
}

// WeeklyCloneOptions: the caller supplies a display name for the copy;
// the week start date may be moved as well.
type WeeklyCloneOptions struct {
	Name          string `json:"name"`
	WeekStartDate string `json:"weekStartDate"`
}

func (s *WeeklyPlanService) List(caller *Identity) ([]models.MealPlanRecord, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	var plans []models.MealPlanRecord
	if err := s.db.Order("created_at DESC").Find(&plans).Error; err != nil {
		return nil, storageErr("list weekly plans", err)
	}
	return plans, nil
}

func (s *WeeklyPlanService) Get(caller *Identity, id string) (*models.MealPlanRecord, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	var plan models.MealPlanRecord
	if err := s.db.First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr("get weekly plan", err)
	}
	return &plan, nil
}

func (s *WeeklyPlanService) Create(caller *Identity, form WeeklyPlanFormData) (*models.MealPlanRecord, error) {
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
	plan := models.MealPlanRecord{
		Name:          form.Name,
		Description:   form.Description,
		WeekStartDate: form.WeekStartDate,
		Days:          form.Days,
		CreatedBy:     caller.UserID,
		IsActive:      true,
		Tags:          tags,
	}
	if err := s.db.Create(&plan).Error; err != nil {
		return nil, storageErr("create weekly plan", err)
	}
	return &plan, nil
}

// Update replaces the plan content wholesale, as the legacy edit form
// did. Identity and lifecycle fields are preserved.
func (s *WeeklyPlanService) Update(caller *Identity, id string, form WeeklyPlanFormData) (*models.MealPlanRecord, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if err := form.validate(); err != nil {
		return nil, err
	}

	var plan models.MealPlanRecord
	if err := s.db.First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr("get weekly plan", err)
	}

	plan.Name = form.Name
	plan.Description = form.Description
	plan.WeekStartDate = form.WeekStartDate
	plan.Days = form.Days
	if form.Tags != nil {
		plan.Tags = form.Tags
	}

	if err := s.db.Save(&plan).Error; err != nil {
		return nil, storageErr("update weekly plan", err)
	}
	return &plan, nil
}

func (s *WeeklyPlanService) Delete(caller *Identity, id string) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	res := s.db.Delete(&models.MealPlanRecord{}, "id = ?", id)
	if res.Error != nil {
		return storageErr("delete weekly plan", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *WeeklyPlanService) Clone(caller *Identity, id string, opts WeeklyCloneOptions) (*models.MealPlanRecord, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if opts.Name == "" {
		return nil, invalidField("name", "missing required field")
	}

	var src models.MealPlanRecord
	if err := s.db.First(&src, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr("get weekly plan", err)
	}

	weekStart := src.WeekStartDate
	if opts.WeekStartDate != "" {
		weekStart = opts.WeekStartDate
	}
	days := make([]models.DayPlan, len(src.Days))
	for i, day := range src.Days {
		days[i] = day.Clone()
	}
	clone := models.MealPlanRecord{
		Name:          opts.Name,
		Description:   src.Description,
		WeekStartDate: weekStart,
		Days:          days,
		CreatedBy:     caller.UserID,
		IsActive:      true,
		Tags:          append([]string{}, src.Tags...),
	}
	if err := s.db.Create(&clone).Error; err != nil {
		return nil, storageErr("clone weekly plan", err)
	}
	return &clone, nil
}
