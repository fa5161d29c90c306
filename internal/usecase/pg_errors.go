package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-booking/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint names from db/migrations
const (
	constraintUserEmail         = "idx_users_email"
	constraintRegistrationNo    = "idx_doctors_registration_no"
	constraintScheduleDoctorDay = "idx_doctor_schedules_doctor_day"
	constraintScheduleWindow    = "chk_doctor_schedules_window"
	constraintActiveSlot        = "idx_bookings_active_slot"
	constraintTimeSlotTime      = "time_slots_slot_time_key"
	constraintBookingDoctorFK   = "bookings_doctor_id_fkey"
	constraintScheduleDoctorFK  = "doctor_schedules_doctor_id_fkey"
	pgUniqueViolation           = "23505"
	pgForeignKeyViolation       = "23503"
	pgCheckViolation            = "23514"
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	return isConstraintError(err, pgUniqueViolation, constraintName)
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	return isConstraintError(err, pgForeignKeyViolation, constraintName)
}

func isCheckViolation(err error, constraintName string) bool {
	return isConstraintError(err, pgCheckViolation, constraintName)
}

func isConstraintError(err error, code, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return false
}

// actorID returns the signed-in user for audit records, nil for anonymous calls.
func actorID(ctx context.Context) *uuid.UUID {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &userID
}
