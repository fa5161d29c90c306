package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newHoldService(t *testing.T, ttl time.Duration) (*SlotHoldService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSlotHoldService(client, quietLogger(), ttl), mr
}

func TestSlotHold_AcquireIsExclusive(t *testing.T) {
	svc, mr := newHoldService(t, time.Minute)
	ctx := context.Background()
	doctorID := uuid.New()
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	token, err := svc.Acquire(ctx, doctorID, date, "10:00")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	key := SlotHoldKey(doctorID, date, "10:00")
	assert.Equal(t, "slot_hold:"+doctorID.String()+":2026-10-19:10:00", key)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute, mr.TTL(key))

	_, err = svc.Acquire(ctx, doctorID, date, "10:00")
	assert.ErrorIs(t, err, ErrSlotHeld)

	_, err = svc.Acquire(ctx, doctorID, date, "10:30")
	assert.NoError(t, err)
}

func TestSlotHold_ReleaseOnlyWithOwnToken(t *testing.T) {
	svc, mr := newHoldService(t, time.Minute)
	ctx := context.Background()
	doctorID := uuid.New()
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	key := SlotHoldKey(doctorID, date, "10:00")

	token, err := svc.Acquire(ctx, doctorID, date, "10:00")
	require.NoError(t, err)

	svc.Release(ctx, doctorID, date, "10:00", "someone-else")
	assert.True(t, mr.Exists(key))

	svc.Release(ctx, doctorID, date, "10:00", token)
	assert.False(t, mr.Exists(key))

	_, err = svc.Acquire(ctx, doctorID, date, "10:00")
	assert.NoError(t, err)
}

func TestSlotHold_ExpiresAfterTTL(t *testing.T) {
	svc, mr := newHoldService(t, 5*time.Second)
	ctx := context.Background()
	doctorID := uuid.New()
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	_, err := svc.Acquire(ctx, doctorID, date, "09:00")
	require.NoError(t, err)

	mr.FastForward(6 * time.Second)

	_, err = svc.Acquire(ctx, doctorID, date, "09:00")
	assert.NoError(t, err)
}

func TestSlotHold_RedisDown(t *testing.T) {
	svc, mr := newHoldService(t, time.Minute)
	mr.Close()

	_, err := svc.Acquire(context.Background(), uuid.New(), time.Now(), "09:00")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSlotHeld)
}
