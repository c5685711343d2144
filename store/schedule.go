package store

import (
	"errors"
	"fmt"
	"time"

	"serenefit-backend/models"

	"gorm.io/gorm"
)

// ScheduleStore manages the per-day workout calendar and its timings banner.
type ScheduleStore struct {
	DB *gorm.DB
}

func NewScheduleStore(db *gorm.DB) *ScheduleStore {
	return &ScheduleStore{DB: db}
}

// GenerateMonth assigns a workout to every day of the given month. Sundays and
// Mondays rest; other days cycle through the fixed rotation by day-of-month
// mod 5. Pure function of (year, month), so regenerated calendars are always
// identical.
func GenerateMonth(year int, month time.Month) map[string]models.WorkoutType {
	out := make(map[string]models.WorkoutType)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		key := date.Format("2006-01-02")
		switch date.Weekday() {
		case time.Sunday, time.Monday:
			out[key] = models.WorkoutRest
		default:
			out[key] = models.WorkoutRotation[day%5]
		}
	}
	return out
}

// DefaultScheduleTimings is the timings banner before any admin edit.
func DefaultScheduleTimings() models.ScheduleTimings {
	return models.ScheduleTimings{
		WeekdayTimings: "6:00 AM - 9:00 PM",
		WeekendTimings: "7:00 AM - 1:00 PM",
	}
}

// Seed writes generated assignments for months consecutive months starting at
// start's month. Existing rows are left alone.
func (s *ScheduleStore) Seed(start time.Time, months int) error {
	var days []models.ScheduleDay
	for i := 0; i < months; i++ {
		m := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0)
		for date, workout := range GenerateMonth(m.Year(), m.Month()) {
			days = append(days, models.ScheduleDay{Date: date, Workout: workout})
		}
	}
	for i := range days {
		var existing models.ScheduleDay
		err := s.DB.Where("date = ?", days[i].Date).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := s.DB.Create(&days[i]).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}

// DayCell is one rendered calendar cell.
type DayCell struct {
	Date    string             `json:"date"`
	Day     int                `json:"day"`
	Workout models.WorkoutType `json:"workout,omitempty"`
}

// MonthView is the calendar grid for one month. Offset is the weekday of the
// 1st (0 = Sunday); renderers left-pad the grid with that many empty cells.
type MonthView struct {
	Year    int                    `json:"year"`
	Month   int                    `json:"month"`
	Offset  int                    `json:"offset"`
	Days    []DayCell              `json:"days"`
	Timings models.ScheduleTimings `json:"timings"`
}

// Month returns the grid for one month, carrying each day's assigned workout
// or none where the admin never set one.
func (s *ScheduleStore) Month(year int, month time.Month) (MonthView, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	from := first.Format("2006-01-02")
	to := first.AddDate(0, 1, -1).Format("2006-01-02")

	var rows []models.ScheduleDay
	if err := s.DB.Where("date >= ? AND date <= ?", from, to).Find(&rows).Error; err != nil {
		return MonthView{}, err
	}
	assigned := make(map[string]models.WorkoutType, len(rows))
	for _, r := range rows {
		assigned[r.Date] = r.Workout
	}

	view := MonthView{
		Year:   year,
		Month:  int(month),
		Offset: int(first.Weekday()),
		Days:   make([]DayCell, 0, daysInMonth),
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		view.Days = append(view.Days, DayCell{Date: date, Day: day, Workout: assigned[date]})
	}

	timings, err := s.Timings()
	if err != nil {
		return MonthView{}, err
	}
	view.Timings = timings
	return view, nil
}

// SetDay assigns a workout to one date, creating or replacing the row.
func (s *ScheduleStore) SetDay(date string, workout models.WorkoutType) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
	}
	if !models.ValidWorkoutType(workout) {
		return fmt.Errorf("invalid workout type %q", workout)
	}
	day := models.ScheduleDay{Date: date, Workout: workout}
	var existing models.ScheduleDay
	err := s.DB.Where("date = ?", date).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.DB.Create(&day).Error
	}
	if err != nil {
		return err
	}
	return s.DB.Model(&models.ScheduleDay{}).Where("date = ?", date).Update("workout", workout).Error
}

// Reset discards all assignments and regenerates the current month plus the
// following two, matching the first-read seeding.
func (s *ScheduleStore) Reset(now time.Time) error {
	if err := s.DB.Where("1 = 1").Delete(&models.ScheduleDay{}).Error; err != nil {
		return err
	}
	return s.Seed(now, 3)
}

// Timings returns the class-hours banner, seeding the default row when none
// exists.
func (s *ScheduleStore) Timings() (models.ScheduleTimings, error) {
	var t models.ScheduleTimings
	err := s.DB.First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		t = DefaultScheduleTimings()
		if err := s.DB.Create(&t).Error; err != nil {
			return DefaultScheduleTimings(), err
		}
		return t, nil
	}
	if err != nil {
		return DefaultScheduleTimings(), err
	}
	return t, nil
}

// SaveTimings overwrites the banner wholesale.
func (s *ScheduleStore) SaveTimings(t models.ScheduleTimings) (models.ScheduleTimings, error) {
	current, err := s.Timings()
	if err != nil {
		return t, err
	}
	t.ID = current.ID
	if err := s.DB.Save(&t).Error; err != nil {
		return t, err
	}
	return t, nil
}
