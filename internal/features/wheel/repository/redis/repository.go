package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"spinwheel-backend/internal/features/wheel/repository"
)

const (
	keyPlayedSet     = "wheel:played"
	keyPrefixAwards  = "wheel:awards:"
	keyPrefixPending = "wheel:pending:"
)

type redisRepository struct {
	client *redis.Client
}

// NewParticipationRepository returns a redis-backed store. Played contacts
// and per-prize awards are plain sets, so membership, add and count are each
// a single atomic command; SADD's reply doubles as the "newly added" result.
func NewParticipationRepository(client *redis.Client) repository.ParticipationRepository {
	return &redisRepository{client: client}
}

func makeAwardsKey(prizeCode string) string {
	return keyPrefixAwards + prizeCode
}

func makePendingKey(contactID string) string {
	return keyPrefixPending + contactID
}

func (r *redisRepository) HasPlayed(ctx context.Context, contactID string) (bool, error) {
	return r.client.SIsMember(ctx, keyPlayedSet, contactID).Result()
}

func (r *redisRepository) MarkPlayed(ctx context.Context, contactID string) (bool, error) {
	added, err := r.client.SAdd(ctx, keyPlayedSet, contactID).Result()
	if err != nil {
		return false, err
	}
	return added > 0, nil
}

func (r *redisRepository) AwardCount(ctx context.Context, prizeCode string) (int64, error) {
	return r.client.SCard(ctx, makeAwardsKey(prizeCode)).Result()
}

func (r *redisRepository) AwardCounts(ctx context.Context, prizeCodes []string) (map[string]int64, error) {
	pipe := r.client.Pipeline()
	cmds := make(map[string]*redis.IntCmd, len(prizeCodes))
	for _, code := range prizeCodes {
		cmds[code] = pipe.SCard(ctx, makeAwardsKey(code))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(prizeCodes))
	for code, cmd := range cmds {
		counts[code] = cmd.Val()
	}
	return counts, nil
}

func (r *redisRepository) RecordAward(ctx context.Context, prizeCode, contactID string) (bool, error) {
	added, err := r.client.SAdd(ctx, makeAwardsKey(prizeCode), contactID).Result()
	if err != nil {
		return false, err
	}
	return added > 0, nil
}

func (r *redisRepository) SetPendingDraw(ctx context.Context, contactID, prizeCode string, ttl time.Duration) error {
	return r.client.Set(ctx, makePendingKey(contactID), prizeCode, ttl).Err()
}

func (r *redisRepository) GetPendingDraw(ctx context.Context, contactID string) (string, error) {
	code, err := r.client.Get(ctx, makePendingKey(contactID)).Result()
	if err == redis.Nil {
		return "", repository.ErrNoPendingDraw
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

func (r *redisRepository) ClearPendingDraw(ctx context.Context, contactID string) error {
	return r.client.Del(ctx, makePendingKey(contactID)).Err()
}

func (r *redisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
