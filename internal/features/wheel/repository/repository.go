package repository

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNoPendingDraw means no live pending-draw record exists for the
	// contact (never drawn, expired, or already consumed).
	ErrNoPendingDraw = errors.New("no pending draw for contact")
)

// ParticipationRepository is the shared mutable state of the game: the set of
// contacts that finished a play, the per-prize award sets, and the short-lived
// pending-draw records linking a draw to the prize it returned.
//
// Mutating operations use set semantics and report whether the member was
// newly added, so callers can distinguish a first write from an idempotent
// replay without a separate read.
type ParticipationRepository interface {
	// HasPlayed reports whether the contact already completed a play.
	HasPlayed(ctx context.Context, contactID string) (bool, error)

	// MarkPlayed adds the contact to the played set. Returns false when the
	// contact was already present.
	MarkPlayed(ctx context.Context, contactID string) (bool, error)

	// AwardCount returns how many contacts have been awarded the prize.
	AwardCount(ctx context.Context, prizeCode string) (int64, error)

	// AwardCounts returns the award count for every given code. Absent codes
	// count as zero.
	AwardCounts(ctx context.Context, prizeCodes []string) (map[string]int64, error)

	// RecordAward adds the contact to the prize's award set. Returns false
	// when the award was already recorded.
	RecordAward(ctx context.Context, prizeCode, contactID string) (bool, error)

	// SetPendingDraw stores the prize code drawn for a contact, replacing any
	// previous record, expiring after ttl.
	SetPendingDraw(ctx context.Context, contactID, prizeCode string, ttl time.Duration) error

	// GetPendingDraw returns the prize code of the contact's live pending
	// draw, or ErrNoPendingDraw.
	GetPendingDraw(ctx context.Context, contactID string) (string, error)

	// ClearPendingDraw consumes the contact's pending-draw record.
	ClearPendingDraw(ctx context.Context, contactID string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
