package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is a practitioner patients can book with.
type Doctor struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Speciality     string    `gorm:"type:varchar(100);not null;index" json:"speciality"`
	Experience     int       `gorm:"not null" json:"experience"`
	RegistrationNo *string   `gorm:"type:varchar(50);uniqueIndex" json:"registration_no,omitempty"`
	ImageURL       string    `gorm:"type:text" json:"image_url,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Schedules []DoctorSchedule `gorm:"foreignKey:DoctorID" json:"schedules,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
