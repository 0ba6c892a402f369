package services

import (
	"errors"
	"fmt"

	"github.com/jomariabejo/orpha/models"
	"github.com/jomariabejo/orpha/utils"
	"gorm.io/gorm"
)

// ChildService backs the monitoring surface: staff record growth and
// health observations per child. Open to both roles.
type ChildService struct {
	db *gorm.DB
}

func NewChildService(db *gorm.DB) *ChildService {
	return &ChildService{db: db}
}

type ChildFormData struct {
	Name          string `json:"name"`
	Age           *int   `json:"age"`
	Gender        string `json:"gender"`
	AdmissionDate string `json:"admissionDate"`
	Photo         string `json:"photo"` // optional base64 data URL
	Caregiver     string `json:"caregiver"`
}

func (f *ChildFormData) validate() error {
	if f.Name == "" {
		return invalidField("name", "missing required field")
	}
	if f.Age == nil {
		return invalidField("age", "missing required field")
	}
	if f.Gender != "male" && f.Gender != "female" {
		return invalidField("gender", "must be male or female")
	}
	if f.AdmissionDate == "" {
		return invalidField("admissionDate", "missing required field")
	}
	return nil
}

// ObservationInput carries exactly one observation to append to a
// child's history. Date is always required.
type ObservationInput struct {
	Date         string   `json:"date"`
	Weight       *float64 `json:"weight"`
	Height       *float64 `json:"height"`
	MealNote     string   `json:"mealNote"`
	HealthRemark string   `json:"healthRemark"`
}

func (s *ChildService) List(caller *Identity) ([]models.ChildRecord, error) {
	if err := requireStaff(caller); err != nil {
		return nil, err
	}
	var children []models.ChildRecord
	if err := s.db.Order("name ASC").Find(&children).Error; err != nil {
		return nil, storageErr("list children", err)
	}
	return children, nil
}

func (s *ChildService) Get(caller *Identity, id string) (*models.ChildRecord, error) {
	if err := requireStaff(caller); err != nil {
		return nil, err
	}
	var child models.ChildRecord
	if err := s.db.First(&child, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr("get child", err)
	}
	return &child, nil
}

func (s *ChildService) Create(caller *Identity, form ChildFormData) (*models.ChildRecord, error) {
	if err := requireStaff(caller); err != nil {
		return nil, err
	}
	if err := form.validate(); err != nil {
		return nil, err
	}

	child := models.ChildRecord{
		Name:          form.Name,
		Age:           *form.Age,
		Gender:        form.Gender,
		AdmissionDate: form.AdmissionDate,
		Caregiver:     form.Caregiver,
		WeightHistory: []models.WeightEntry{},
		HeightHistory: []models.HeightEntry{},
		MealNotes:     []models.NoteEntry{},
		HealthRemarks: []models.NoteEntry{},
	}
	if form.Photo != "" {
		url, err := utils.UploadBase64ImageToS3(form.Photo, "child-"+form.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to upload photo: %w", err)
		}
		child.PhotoURL = url
	}
	if err := s.db.Create(&child).Error; err != nil {
		return nil, storageErr("create child", err)
	}
	return &child, nil
}

// AddObservation appends one dated entry to the matching history. The
// input must carry exactly one observation kind.
func (s *ChildService) AddObservation(caller *Identity, childID string, in ObservationInput) (*models.ChildRecord, error) {
	if err := requireStaff(caller); err != nil {
		return nil, err
	}
	if in.Date == "" {
		return nil, invalidField("date", "missing required field")
	}
	kinds := 0
	if in.Weight != nil {
		kinds++
	}
	if in.Height != nil {
		kinds++
	}
	if in.MealNote != "" {
		kinds++
	}
	if in.HealthRemark != "" {
		kinds++
	}
	if kinds != 1 {
		return nil, invalidField("observation", "exactly one of weight, height, mealNote or healthRemark is required")
	}

	var child models.ChildRecord
	if err := s.db.First(&child, "id = ?", childID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr("get child", err)
	}

	switch {
	case in.Weight != nil:
		child.WeightHistory = append(child.WeightHistory, models.WeightEntry{Date: in.Date, Weight: *in.Weight})
	case in.Height != nil:
		child.HeightHistory = append(child.HeightHistory, models.HeightEntry{Date: in.Date, Height: *in.Height})
	case in.MealNote != "":
		child.MealNotes = append(child.MealNotes, models.NoteEntry{Date: in.Date, Note: in.MealNote})
	default:
		child.HealthRemarks = append(child.HealthRemarks, models.NoteEntry{Date: in.Date, Note: in.HealthRemark})
	}

	if err := s.db.Save(&child).Error; err != nil {
		return nil, storageErr("update child", err)
	}
	return &child, nil
}
