package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorSchedule is a doctor's recurring working window for one weekday.
// DayOfWeek follows time.Weekday: 0 = Sunday ... 6 = Saturday.
type DoctorSchedule struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_doctor_schedules_doctor_day" json:"doctor_id"`
	DayOfWeek int       `gorm:"not null;uniqueIndex:idx_doctor_schedules_doctor_day" json:"day_of_week"`
	StartTime string    `gorm:"type:time;not null" json:"start_time"`
	EndTime   string    `gorm:"type:time;not null" json:"end_time"`
	IsActive  bool      `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (DoctorSchedule) TableName() string {
	return "doctor_schedules"
}

// Weekday returns the schedule day as a time.Weekday.
func (s *DoctorSchedule) Weekday() time.Weekday {
	return time.Weekday(s.DayOfWeek)
}

// Contains reports whether clock lies within [StartTime, EndTime].
func (s *DoctorSchedule) Contains(clock string) bool {
	start, err := ParseClock(s.StartTime)
	if err != nil {
		return false
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return false
	}
	t, err := ParseClock(clock)
	if err != nil {
		return false
	}
	return t >= start && t <= end
}
