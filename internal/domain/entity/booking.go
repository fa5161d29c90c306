package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// BookingStatuses lists every status in lifecycle order.
var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted},
}

// IsValid reports whether s is a known status.
func (s BookingStatus) IsValid() bool {
	for _, status := range BookingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking is a patient's reserved appointment with a doctor at a date and clock time.
type Booking struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID     `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"doctor_id"`
	BookingDate time.Time     `gorm:"type:date;not null;index" json:"booking_date"`
	BookingTime string        `gorm:"type:time;not null" json:"booking_time"`
	Status      BookingStatus `gorm:"type:booking_status;not null;index" json:"status"`
	Notes       string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsPending checks if booking is in pending status
func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

// IsConfirmed checks if booking is confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}

// IsCancelled checks if booking is cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// CancelledBooking is the archived copy of a booking written when it is cancelled.
type CancelledBooking struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"booking_id"`
	PatientID          uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID           uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	BookingDate        time.Time `gorm:"type:date;not null" json:"booking_date"`
	BookingTime        string    `gorm:"type:time;not null" json:"booking_time"`
	Notes              string    `gorm:"type:text" json:"notes,omitempty"`
	CancellationReason string    `gorm:"type:text" json:"cancellation_reason,omitempty"`
	CancelledAt        time.Time `gorm:"autoCreateTime" json:"cancelled_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (CancelledBooking) TableName() string {
	return "cancelled_bookings"
}

// NewCancelledBooking copies b into an archive record carrying reason.
func NewCancelledBooking(b *Booking, reason string) *CancelledBooking {
	return &CancelledBooking{
		BookingID:          b.ID,
		PatientID:          b.PatientID,
		DoctorID:           b.DoctorID,
		BookingDate:        b.BookingDate,
		BookingTime:        b.BookingTime,
		Notes:              b.Notes,
		CancellationReason: reason,
	}
}
