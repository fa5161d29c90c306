package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/infrastructure/mail"

	"github.com/sirupsen/logrus"
)

const notificationTimeout = 15 * time.Second

// NotificationService emails patients about their bookings. Delivery is best
// effort and never blocks or fails the request that triggered it.
type NotificationService interface {
	BookingReceived(ctx context.Context, booking *entity.Booking)
	BookingConfirmed(ctx context.Context, booking *entity.Booking)
}

type notificationService struct {
	log        *logrus.Logger
	mailer     mail.Mailer
	clinicName string
}

func NewNotificationService(log *logrus.Logger, mailer mail.Mailer, clinicName string) NotificationService {
	return &notificationService{
		log:        log,
		mailer:     mailer,
		clinicName: clinicName,
	}
}

func (s *notificationService) BookingReceived(ctx context.Context, booking *entity.Booking) {
	subject := fmt.Sprintf("%s: appointment request received", s.clinicName)
	body := fmt.Sprintf(
		"Dear %s,\n\nWe received your appointment request with %s on %s at %s.\nWe will confirm it shortly.\n\n%s",
		booking.Patient.Name, booking.Doctor.Name, booking.BookingDate.Format(entity.DateLayout), booking.BookingTime, s.clinicName,
	)
	s.dispatch(ctx, booking, subject, body)
}

func (s *notificationService) BookingConfirmed(ctx context.Context, booking *entity.Booking) {
	subject := fmt.Sprintf("%s: appointment confirmed", s.clinicName)
	body := fmt.Sprintf(
		"Dear %s,\n\nYour appointment with %s on %s at %s is confirmed.\n\n%s",
		booking.Patient.Name, booking.Doctor.Name, booking.BookingDate.Format(entity.DateLayout), booking.BookingTime, s.clinicName,
	)
	s.dispatch(ctx, booking, subject, body)
}

func (s *notificationService) dispatch(ctx context.Context, booking *entity.Booking, subject, body string) {
	to := booking.Patient.Email
	if to == "" {
		return
	}

	msg := mail.Message{To: to, Subject: subject, TextBody: body}
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notificationTimeout)

	go func() {
		defer cancel()
		if err := s.mailer.Send(sendCtx, msg); err != nil {
			if errors.Is(err, mail.ErrDisabled) {
				s.log.Debugf("Mail disabled, skipped notification for booking %s", booking.ID)
				return
			}
			s.log.Warnf("Failed to send notification for booking %s: %+v", booking.ID, err)
			return
		}
		s.log.Infof("Sent notification for booking %s", booking.ID)
	}()
}
