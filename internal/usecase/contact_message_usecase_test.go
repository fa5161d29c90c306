package usecase

import (
	"context"
	"testing"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContactTestUsecase() (ContactMessageUsecase, *mocks.ContactMessageRepository, *mocks.AuditService) {
	repo := new(mocks.ContactMessageRepository)
	audit := new(mocks.AuditService)
	audit.On("LogDelete", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	return NewContactMessageUsecase(quietLogger(), repo, audit), repo, audit
}

func TestContact_CreateStartsUnread(t *testing.T) {
	uc, repo, _ := newContactTestUsecase()
	ctx := context.Background()
	repo.On("Create", ctx, mock.MatchedBy(func(m *entity.ContactMessage) bool {
		return m.Name == "Ravi" && !m.Read
	})).Return(nil)

	resp, err := uc.CreateMessage(ctx, &dto.CreateContactMessageRequest{Name: " Ravi ", Email: "ravi@example.com", Message: "Do you open on Sundays?"})
	require.NoError(t, err)
	assert.False(t, resp.Read)
}

func TestContact_ListCountsUnread(t *testing.T) {
	uc, repo, _ := newContactTestUsecase()
	ctx := context.Background()
	repo.On("FindAll", ctx).Return([]entity.ContactMessage{
		{ID: uuid.New(), Read: false},
		{ID: uuid.New(), Read: true},
		{ID: uuid.New(), Read: false},
	}, nil)

	resp, err := uc.GetAllMessages(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 2, resp.Unread)
}

func TestContact_MarkReadAndDelete(t *testing.T) {
	uc, repo, audit := newContactTestUsecase()
	ctx := context.Background()
	known, unknown := uuid.New(), uuid.New()
	repo.On("MarkRead", ctx, known).Return(int64(1), nil)
	repo.On("MarkRead", ctx, unknown).Return(int64(0), nil)
	repo.On("Delete", ctx, known).Return(int64(1), nil)
	repo.On("Delete", ctx, unknown).Return(int64(0), nil)

	assert.NoError(t, uc.MarkRead(ctx, known))
	assert.ErrorIs(t, uc.MarkRead(ctx, unknown), ErrMessageNotFound)
	assert.NoError(t, uc.DeleteMessage(ctx, known))
	assert.ErrorIs(t, uc.DeleteMessage(ctx, unknown), ErrMessageNotFound)

	audit.AssertNumberOfCalls(t, "LogDelete", 1)
}
