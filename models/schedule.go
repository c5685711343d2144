package models

import "time"

type WorkoutType string

const (
	WorkoutRest      WorkoutType = "rest"
	WorkoutYoga      WorkoutType = "yoga"
	WorkoutUpperBody WorkoutType = "upper_body"
	WorkoutAbs       WorkoutType = "abs"
	WorkoutLowerBody WorkoutType = "lower_body"
	WorkoutFullBody  WorkoutType = "full_body"
)

// WorkoutRotation is the fixed 5-day cycle used to seed non-rest days.
var WorkoutRotation = [5]WorkoutType{
	WorkoutYoga,
	WorkoutUpperBody,
	WorkoutAbs,
	WorkoutLowerBody,
	WorkoutFullBody,
}

// ValidWorkoutType reports whether w is a known workout type.
func ValidWorkoutType(w WorkoutType) bool {
	switch w {
	case WorkoutRest, WorkoutYoga, WorkoutUpperBody, WorkoutAbs, WorkoutLowerBody, WorkoutFullBody:
		return true
	}
	return false
}

// ScheduleDay assigns a workout type to one calendar date. One row per day
// keyed by the ISO date string, so admin edits touch only the affected row.
type ScheduleDay struct {
	Date      string      `gorm:"primaryKey" json:"date"` // YYYY-MM-DD
	Workout   WorkoutType `gorm:"type:varchar(32);not null" json:"workout"`
	UpdatedAt time.Time   `json:"-"`
}

// ScheduleTimings is the single-row class-hours banner shown beside the
// monthly calendar.
type ScheduleTimings struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	WeekdayTimings string    `json:"weekday_timings"`
	WeekendTimings string    `json:"weekend_timings"`
	UpdatedAt      time.Time `json:"updated_at"`
}
