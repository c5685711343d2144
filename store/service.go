package store

import (
	"fmt"
	"time"

	"serenefit-backend/models"
	"serenefit-backend/utils"

	"gorm.io/gorm"
)

// ServiceStore manages the service catalog.
type ServiceStore struct {
	DB *gorm.DB
}

func NewServiceStore(db *gorm.DB) *ServiceStore {
	return &ServiceStore{DB: db}
}

// DefaultServices are the four programs seeded into an empty catalog.
func DefaultServices() []models.Service {
	weekdays := []string{"Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	morning := []string{"6:00 AM - 7:00 AM", "7:00 AM - 8:00 AM"}
	evening := []string{"5:00 PM - 6:00 PM", "6:00 PM - 7:00 PM"}

	avail := func(slots []string) models.Availability {
		a := make(models.Availability, 0, len(weekdays))
		for _, d := range weekdays {
			a = append(a, models.DaySlots{Day: d, TimeSlots: slots})
		}
		return a
	}

	return []models.Service{
		{
			ID:               "personal-training",
			Title:            "Personal Training",
			ShortDescription: "One-on-one coaching tailored to your goals.",
			LongDescription:  "Private sessions covering strength, mobility and conditioning, with a plan built around your fitness level and schedule.",
			Includes:         models.StringList{"Fitness assessment", "Custom workout plan", "Weekly progress review"},
			Benefits:         models.StringList{"Faster results", "Correct form", "Accountability"},
			Fee:              2999,
			Duration:         60,
			Availability:     avail(morning),
			Timezone:         "Asia/Kolkata",
			SupportPhone:     "+91 98765 43210",
			SupportEmail:     "support@serenefit.in",
			IsActive:         true,
			IsBookable:       true,
			Icon:             "dumbbell",
		},
		{
			ID:               "yoga-classes",
			Title:            "Yoga Classes",
			ShortDescription: "Group yoga for strength, balance and calm.",
			LongDescription:  "Hatha and vinyasa flows for all levels, guided breathing and relaxation to close every session.",
			Includes:         models.StringList{"Mat and props", "Guided breathing", "Cool-down meditation"},
			Benefits:         models.StringList{"Flexibility", "Stress relief", "Better posture"},
			Fee:              1499,
			Duration:         60,
			Availability:     avail(morning),
			Timezone:         "Asia/Kolkata",
			SupportPhone:     "+91 98765 43210",
			SupportEmail:     "support@serenefit.in",
			IsActive:         true,
			IsBookable:       true,
			Icon:             "lotus",
		},
		{
			ID:               "nutrition-coaching",
			Title:            "Nutrition Coaching",
			ShortDescription: "Meal planning that fits your life.",
			LongDescription:  "Personalised nutrition guidance with weekly check-ins, grounded in what you actually like to eat.",
			Includes:         models.StringList{"Diet assessment", "Weekly meal plans", "Recipe library"},
			Benefits:         models.StringList{"Sustainable habits", "More energy", "Weight management"},
			Fee:              1999,
			Duration:         45,
			Availability:     avail(evening),
			Timezone:         "Asia/Kolkata",
			SupportPhone:     "+91 98765 43210",
			SupportEmail:     "support@serenefit.in",
			IsActive:         true,
			IsBookable:       true,
			Icon:             "apple",
		},
		{
			ID:               "group-fitness",
			Title:            "Group Fitness",
			ShortDescription: "High-energy group workouts.",
			LongDescription:  "Circuit, HIIT and functional training in small groups that keep you moving and motivated.",
			Includes:         models.StringList{"All equipment", "Heart-rate tracking", "Monthly fitness test"},
			Benefits:         models.StringList{"Community", "Motivation", "Full-body conditioning"},
			Fee:              999,
			Duration:         45,
			Availability:     avail(evening),
			Timezone:         "Asia/Kolkata",
			SupportPhone:     "+91 98765 43210",
			SupportEmail:     "support@serenefit.in",
			IsActive:         true,
			IsBookable:       true,
			Icon:             "users",
		},
	}
}

// All returns the catalog. Public pages pass activeOnly=true; the admin panel
// sees everything.
func (s *ServiceStore) All(activeOnly bool) ([]models.Service, error) {
	var services []models.Service
	query := s.DB.Order("created_at ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// Get returns one service by slug id.
func (s *ServiceStore) Get(id string) (models.Service, error) {
	var svc models.Service
	err := s.DB.Where("id = ?", id).First(&svc).Error
	return svc, err
}

// Create persists a new service. When no id is given one is derived from the
// title; a slug collision falls back to a timestamped id.
func (s *ServiceStore) Create(svc *models.Service) error {
	if svc.ID == "" {
		svc.ID = utils.Slugify(svc.Title)
	}
	if svc.ID == "" {
		svc.ID = fmt.Sprintf("service-%d", time.Now().Unix())
	}
	var count int64
	s.DB.Model(&models.Service{}).Where("id = ?", svc.ID).Count(&count)
	if count > 0 {
		svc.ID = fmt.Sprintf("service-%d", time.Now().Unix())
	}
	return s.DB.Create(svc).Error
}

// Save overwrites an existing service record.
func (s *ServiceStore) Save(svc *models.Service) error {
	return s.DB.Save(svc).Error
}

// ToggleActive flips the active flag and returns the updated record. Toggling
// twice restores the original state.
func (s *ServiceStore) ToggleActive(id string) (models.Service, error) {
	return s.toggle(id, "is_active")
}

// ToggleBookable flips the bookable flag and returns the updated record.
func (s *ServiceStore) ToggleBookable(id string) (models.Service, error) {
	return s.toggle(id, "is_bookable")
}

func (s *ServiceStore) toggle(id, column string) (models.Service, error) {
	var svc models.Service
	if err := s.DB.Where("id = ?", id).First(&svc).Error; err != nil {
		return models.Service{}, err
	}
	var next bool
	switch column {
	case "is_active":
		next = !svc.IsActive
		svc.IsActive = next
	case "is_bookable":
		next = !svc.IsBookable
		svc.IsBookable = next
	default:
		return models.Service{}, fmt.Errorf("unknown toggle column %q", column)
	}
	// Update the column directly: gorm's Save skips zero-value bools on some
	// setups, which would make toggling off a silent no-op.
	if err := s.DB.Model(&models.Service{}).Where("id = ?", id).Update(column, next).Error; err != nil {
		return models.Service{}, err
	}
	return svc, nil
}

// Delete removes a service. Deleting an absent id is a no-op.
func (s *ServiceStore) Delete(id string) error {
	return s.DB.Delete(&models.Service{}, "id = ?", id).Error
}
