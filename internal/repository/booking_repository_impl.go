package repository

import (
	"context"
	"errors"
	"time"

	"clinic-booking/internal/domain/entity"
	domainRepo "clinic-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) domainRepo.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) CreateWithPatient(ctx context.Context, patient *entity.Patient, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if patient.ID == uuid.Nil {
			if err := tx.Omit(clause.Associations).Create(patient).Error; err != nil {
				return err
			}
		} else if patient.Email != "" {
			err := tx.Model(&entity.Patient{}).
				Where("id = ? AND email IS DISTINCT FROM ?", patient.ID, patient.Email).
				Update("email", patient.Email).Error
			if err != nil {
				return err
			}
		}
		booking.PatientID = patient.ID
		return tx.Omit(clause.Associations).Create(booking).Error
	})
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).Preload("Patient").Preload("Doctor").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, filter *entity.BookingFilter) ([]entity.Booking, error) {
	var bookings []entity.Booking
	query := r.db.WithContext(ctx).
		Joins("JOIN patients ON patients.id = bookings.patient_id").
		Joins("JOIN doctors ON doctors.id = bookings.doctor_id")

	if filter != nil {
		if filter.Status != "" {
			query = query.Where("bookings.status = ?", filter.Status)
		}
		if filter.Search != "" {
			like := "%" + filter.Search + "%"
			query = query.Where("(patients.name ILIKE ? OR doctors.name ILIKE ? OR patients.phone LIKE ?)", like, like, like)
		}
		if filter.From != nil {
			query = query.Where("bookings.booking_date >= ?", filter.From.Format(entity.DateLayout))
		}
		if filter.To != nil {
			query = query.Where("bookings.booking_date <= ?", filter.To.Format(entity.DateLayout))
		}
		if filter.PatientID != uuid.Nil {
			query = query.Where("bookings.patient_id = ?", filter.PatientID)
		}
		if filter.DoctorID != uuid.Nil {
			query = query.Where("bookings.doctor_id = ?", filter.DoctorID)
		}
	}

	err := query.
		Preload("Patient").Preload("Doctor").
		Order("bookings.booking_date DESC, bookings.booking_time DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByPatientEmail(ctx context.Context, email string) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.WithContext(ctx).
		Joins("JOIN patients ON patients.id = bookings.patient_id").
		Where("LOWER(patients.email) = LOWER(?)", email).
		Preload("Patient").Preload("Doctor").
		Order("bookings.booking_date DESC, bookings.booking_time DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindBookedTimes(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error) {
	var times []string
	err := r.db.WithContext(ctx).Model(&entity.Booking{}).
		Where("doctor_id = ? AND booking_date = ? AND status <> ?", doctorID, date.Format(entity.DateLayout), entity.BookingStatusCancelled).
		Pluck("to_char(booking_time, 'HH24:MI')", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

// UpdateStatus returns affected rows: 0 means the booking left from before the update ran.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

// Cancel atomically cancels a booking ONLY if it is still pending and records the archive row.
// Returns affected rows: 1 = success, 0 = no longer pending (prevents double-cancel race).
func (r *bookingRepository) Cancel(ctx context.Context, booking *entity.Booking, reason string) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.Booking{}).
			Where("id = ? AND status = ?", booking.ID, entity.BookingStatusPending).
			Update("status", entity.BookingStatusCancelled)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		if affected == 0 {
			return nil
		}
		return tx.Omit(clause.Associations).Create(entity.NewCancelledBooking(booking, reason)).Error
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (r *bookingRepository) CountByStatus(ctx context.Context) (map[entity.BookingStatus]int64, error) {
	var rows []struct {
		Status entity.BookingStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&entity.Booking{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.BookingStatus]int64, len(entity.BookingStatuses))
	for _, status := range entity.BookingStatuses {
		counts[status] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

type cancelledBookingRepository struct {
	db *gorm.DB
}

func NewCancelledBookingRepository(db *gorm.DB) domainRepo.CancelledBookingRepository {
	return &cancelledBookingRepository{db: db}
}

func (r *cancelledBookingRepository) FindAll(ctx context.Context) ([]entity.CancelledBooking, error) {
	var records []entity.CancelledBooking
	err := r.db.WithContext(ctx).
		Preload("Patient").Preload("Doctor").
		Order("cancelled_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *cancelledBookingRepository) FindByPatientEmail(ctx context.Context, email string) ([]entity.CancelledBooking, error) {
	var records []entity.CancelledBooking
	err := r.db.WithContext(ctx).
		Joins("JOIN patients ON patients.id = cancelled_bookings.patient_id").
		Where("LOWER(patients.email) = LOWER(?)", email).
		Preload("Patient").Preload("Doctor").
		Order("cancelled_bookings.booking_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
