package database

import (
	"log"
	"os"
	"time"

	"serenefit-backend/models"
	"serenefit-backend/store"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=serenefit port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates/updates all tables. The models carry no database-specific
// column defaults, so the same migration runs on Postgres and on the SQLite
// databases the tests use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.ConsultationSettings{},
		&models.Booking{},
		&models.Service{},
		&models.ScheduleDay{},
		&models.ScheduleTimings{},
		&models.ImageCalendar{},
		&models.HomeVideo{},
		&models.VideoTestimonial{},
		&models.TestimonialImage{},
		&models.ServiceVideo{},
	)
}

// CreateDefaultAdmin seeds the admin account from env when none exists. The
// fallback credentials are demo-grade on purpose; this is a content-admin
// login, not a security boundary.
func CreateDefaultAdmin(db *gorm.DB) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" {
		adminEmail = "admin@serenefit.in"
	}
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	var existing models.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:    adminEmail,
		Password: string(hashed),
		Role:     "admin",
		Name:     "Studio Admin",
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Default admin created: %s", adminEmail)
	return nil
}

// SeedDefaults fills every empty domain with its documented default content so
// the public site renders something meaningful on first boot: consultation
// settings, the four starter services, three months of generated schedule, the
// image calendar and the sample media lists.
func SeedDefaults(db *gorm.DB) error {
	if _, err := store.NewSettingsStore(db).Get(); err != nil {
		return err
	}

	var serviceCount int64
	if err := db.Model(&models.Service{}).Count(&serviceCount).Error; err != nil {
		return err
	}
	if serviceCount == 0 {
		for _, svc := range store.DefaultServices() {
			s := svc
			if err := db.Create(&s).Error; err != nil {
				return err
			}
		}
		log.Println("Seeded default services")
	}

	scheduleStore := store.NewScheduleStore(db)
	var dayCount int64
	if err := db.Model(&models.ScheduleDay{}).Count(&dayCount).Error; err != nil {
		return err
	}
	if dayCount == 0 {
		if err := scheduleStore.Seed(time.Now(), 3); err != nil {
			return err
		}
		log.Println("Seeded workout schedule for current + 2 months")
	}
	if _, err := scheduleStore.Timings(); err != nil {
		return err
	}

	if _, err := store.NewImageCalendarStore(db).Get(); err != nil {
		return err
	}

	var homeVideoCount int64
	if err := db.Model(&models.HomeVideo{}).Count(&homeVideoCount).Error; err != nil {
		return err
	}
	if homeVideoCount == 0 {
		for _, v := range store.DefaultHomeVideos() {
			video := v
			if err := db.Create(&video).Error; err != nil {
				return err
			}
		}
	}

	var testimonialCount int64
	if err := db.Model(&models.VideoTestimonial{}).Count(&testimonialCount).Error; err != nil {
		return err
	}
	if testimonialCount == 0 {
		for _, v := range store.DefaultVideoTestimonials() {
			video := v
			if err := db.Create(&video).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
