package usecase

import (
	"context"
	"io"
	"time"

	"clinic-booking/internal/delivery/http/middleware"
	"clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func sessionContext(roleID int, email string) (context.Context, uuid.UUID) {
	userID := uuid.New()
	ctx := middleware.WithSession(context.Background(), &entity.Session{
		UserID:  userID,
		Email:   email,
		RoleID:  roleID,
		TokenID: uuid.NewString(),
	})
	return ctx, userID
}

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 8, 0, 0, 0, time.UTC)
	}
}
