package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrMessageNotFound = errors.New("message not found")
)

type ContactMessageUsecase interface {
	CreateMessage(ctx context.Context, req *dto.CreateContactMessageRequest) (*dto.ContactMessageResponse, error)
	GetAllMessages(ctx context.Context) (*dto.ContactMessageListResponse, error)
	MarkRead(ctx context.Context, messageID uuid.UUID) error
	DeleteMessage(ctx context.Context, messageID uuid.UUID) error
}

type contactMessageUsecase struct {
	log          *logrus.Logger
	messageRepo  repository.ContactMessageRepository
	auditService service.AuditService
}

func NewContactMessageUsecase(
	log *logrus.Logger,
	messageRepo repository.ContactMessageRepository,
	auditService service.AuditService,
) ContactMessageUsecase {
	return &contactMessageUsecase{
		log:          log,
		messageRepo:  messageRepo,
		auditService: auditService,
	}
}

func (u *contactMessageUsecase) CreateMessage(ctx context.Context, req *dto.CreateContactMessageRequest) (*dto.ContactMessageResponse, error) {
	message := &entity.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	}

	if err := u.messageRepo.Create(ctx, message); err != nil {
		u.log.Warnf("Failed to create contact message: %+v", err)
		return nil, err
	}

	return converter.ContactMessageToResponse(message), nil
}

func (u *contactMessageUsecase) GetAllMessages(ctx context.Context) (*dto.ContactMessageListResponse, error) {
	messages, err := u.messageRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find contact messages: %+v", err)
		return nil, err
	}

	unread := 0
	for _, m := range messages {
		if !m.Read {
			unread++
		}
	}

	return &dto.ContactMessageListResponse{
		Messages: converter.ContactMessagesToResponses(messages),
		Total:    len(messages),
		Unread:   unread,
	}, nil
}

func (u *contactMessageUsecase) MarkRead(ctx context.Context, messageID uuid.UUID) error {
	affectedRows, err := u.messageRepo.MarkRead(ctx, messageID)
	if err != nil {
		u.log.Warnf("Failed to mark message read: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (u *contactMessageUsecase) DeleteMessage(ctx context.Context, messageID uuid.UUID) error {
	affectedRows, err := u.messageRepo.Delete(ctx, messageID)
	if err != nil {
		u.log.Warnf("Failed to delete message: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrMessageNotFound
	}

	if err := u.auditService.LogDelete(ctx, actorID(ctx), entity.AuditActionMessageDelete, "contact_message", messageID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}
