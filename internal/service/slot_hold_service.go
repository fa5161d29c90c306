package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// Errors
// =============================================================================

// ErrSlotHeld is returned when another submission is already booking the slot
var ErrSlotHeld = errors.New("slot is being booked by another request")

// releaseHoldScript deletes the hold only when it still carries our token, so an
// expired hold re-acquired by another request is never released by us.
var releaseHoldScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// =============================================================================
// Constants
// =============================================================================

const (
	// Redis key prefix for in-flight booking holds
	RedisSlotHoldKeyPrefix = "slot_hold:"

	defaultSlotHoldTTL = 30 * time.Second
)

// =============================================================================
// Types
// =============================================================================

// SlotHolder serializes concurrent submissions for the same doctor, date and time.
type SlotHolder interface {
	Acquire(ctx context.Context, doctorID uuid.UUID, date time.Time, clock string) (string, error)
	Release(ctx context.Context, doctorID uuid.UUID, date time.Time, clock, token string)
}

// SlotHoldService is a short-lived Redis lock per slot.
//
// The database partial unique index is the final guard against double booking;
// the hold only keeps concurrent submitters from racing into the insert.
type SlotHoldService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

// =============================================================================
// Constructor
// =============================================================================

func NewSlotHoldService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *SlotHoldService {
	if ttl <= 0 {
		ttl = defaultSlotHoldTTL
	}
	return &SlotHoldService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Acquire takes the hold with SET NX and returns the token needed to release it.
func (s *SlotHoldService) Acquire(ctx context.Context, doctorID uuid.UUID, date time.Time, clock string) (string, error) {
	key := SlotHoldKey(doctorID, date, clock)
	token := uuid.NewString()

	ok, err := s.redisClient.SetNX(ctx, key, token, s.ttl).Result()
	if err != nil {
		s.log.Warnf("Failed to acquire slot hold %s: %+v", key, err)
		return "", fmt.Errorf("acquire slot hold %s: %w", key, err)
	}
	if !ok {
		return "", ErrSlotHeld
	}

	s.log.Debugf("Acquired slot hold %s", key)
	return token, nil
}

// Release drops the hold if token still owns it. Failures only delay the next
// submitter until the TTL expires, so they are logged and not returned.
func (s *SlotHoldService) Release(ctx context.Context, doctorID uuid.UUID, date time.Time, clock, token string) {
	key := SlotHoldKey(doctorID, date, clock)

	// Uses package-level releaseHoldScript for EVALSHA optimization
	if err := releaseHoldScript.Run(ctx, s.redisClient, []string{key}, token).Err(); err != nil {
		s.log.Warnf("Failed to release slot hold %s: %+v", key, err)
		return
	}

	s.log.Debugf("Released slot hold %s", key)
}

// SlotHoldKey returns slot_hold:<doctor>:<YYYY-MM-DD>:<HH:MM>.
func SlotHoldKey(doctorID uuid.UUID, date time.Time, clock string) string {
	return fmt.Sprintf("%s%s:%s:%s", RedisSlotHoldKeyPrefix, doctorID, date.Format("2006-01-02"), clock)
}
