package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList stores a []string as a JSON text column so the same model works
// on both Postgres and sqlite.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = StringList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for StringList")
	}
	if len(data) == 0 {
		*s = StringList{}
		return nil
	}
	return json.Unmarshal(data, s)
}

// DaySlots lists the bookable time slots for one day of the week.
type DaySlots struct {
	Day       string   `json:"day"`
	TimeSlots []string `json:"time_slots"`
}

// Availability is a week's worth of DaySlots, stored as a JSON text column.
type Availability []DaySlots

func (a Availability) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (a *Availability) Scan(value interface{}) error {
	if value == nil {
		*a = Availability{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for Availability")
	}
	if len(data) == 0 {
		*a = Availability{}
		return nil
	}
	return json.Unmarshal(data, a)
}
