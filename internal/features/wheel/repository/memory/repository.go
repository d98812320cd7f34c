package memory

import (
	"context"
	"sync"
	"time"

	"spinwheel-backend/internal/features/wheel/repository"
)

type pendingDraw struct {
	prizeCode string
	expiresAt time.Time
}

type memoryRepository struct {
	mu      sync.RWMutex
	played  map[string]bool
	awards  map[string]map[string]bool // prizeCode -> contactID set
	pending map[string]pendingDraw

	now func() time.Time
}

// NewParticipationRepository returns an in-process store for single-instance
// deployments. State starts empty and is lost on restart.
func NewParticipationRepository() repository.ParticipationRepository {
	return &memoryRepository{
		played:  make(map[string]bool),
		awards:  make(map[string]map[string]bool),
		pending: make(map[string]pendingDraw),
		now:     time.Now,
	}
}

func (r *memoryRepository) HasPlayed(ctx context.Context, contactID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.played[contactID], nil
}

func (r *memoryRepository) MarkPlayed(ctx context.Context, contactID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.played[contactID] {
		return false, nil
	}
	r.played[contactID] = true
	return true, nil
}

func (r *memoryRepository) AwardCount(ctx context.Context, prizeCode string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.awards[prizeCode])), nil
}

func (r *memoryRepository) AwardCounts(ctx context.Context, prizeCodes []string) (map[string]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int64, len(prizeCodes))
	for _, code := range prizeCodes {
		counts[code] = int64(len(r.awards[code]))
	}
	return counts, nil
}

func (r *memoryRepository) RecordAward(ctx context.Context, prizeCode, contactID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := r.awards[prizeCode]
	if set == nil {
		set = make(map[string]bool)
		r.awards[prizeCode] = set
	}
	if set[contactID] {
		return false, nil
	}
	set[contactID] = true
	return true, nil
}

func (r *memoryRepository) SetPendingDraw(ctx context.Context, contactID, prizeCode string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pending[contactID] = pendingDraw{
		prizeCode: prizeCode,
		expiresAt: r.now().Add(ttl),
	}
	return nil
}

func (r *memoryRepository) GetPendingDraw(ctx context.Context, contactID string) (string, error) {
	r.mu.RLock()
	p, ok := r.pending[contactID]
	r.mu.RUnlock()

	if !ok {
		return "", repository.ErrNoPendingDraw
	}
	if r.now().After(p.expiresAt) {
		// Lazily drop the expired record.
		r.mu.Lock()
		if cur, stillThere := r.pending[contactID]; stillThere && cur == p {
			delete(r.pending, contactID)
		}
		r.mu.Unlock()
		return "", repository.ErrNoPendingDraw
	}
	return p.prizeCode, nil
}

func (r *memoryRepository) ClearPendingDraw(ctx context.Context, contactID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pending, contactID)
	return nil
}

func (r *memoryRepository) Ping(ctx context.Context) error {
	return nil
}
