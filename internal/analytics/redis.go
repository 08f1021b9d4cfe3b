package analytics

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"shortlink/internal/domain"
)

const (
	keyPrefix = "analytics:"
	scanBatch = 500
)

// incrementScript bumps the counters of a tracked code. Untracked codes are
// left alone so clicks never resurrect an expired hash.
var incrementScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return 0
end
redis.call('HINCRBY', KEYS[1], 'click_count', 1)
local last = tonumber(redis.call('HGET', KEYS[1], 'last_accessed_at') or '0')
if tonumber(ARGV[1]) > last then
	redis.call('HSET', KEYS[1], 'last_accessed_at', ARGV[1])
end
if redis.call('HGET', KEYS[1], 'day') == ARGV[2] then
	redis.call('HINCRBY', KEYS[1], 'day_clicks', 1)
else
	redis.call('HSET', KEYS[1], 'day', ARGV[2], 'day_clicks', 1)
end
return 1
`)

var markInactiveScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	redis.call('HSET', KEYS[1], 'is_active', '0')
	return 1
end
return 0
`)

func Key(code string) string {
	return keyPrefix + code
}

// RedisRepository keeps one hash per code under analytics:<code>. The hash
// expires together with its mapping.
type RedisRepository struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client, now: time.Now}
}

func (r *RedisRepository) Track(ctx context.Context, a *domain.Analytics) error {
	key := Key(a.ShortCode)

	fields := map[string]any{
		"short_code":   a.ShortCode,
		"original_url": a.OriginalURL,
		"short_url":    a.ShortURL,
		"created_at":   a.CreatedAt.Format(time.RFC3339Nano),
		"expires_at":   "",
		"is_active":    boolField(a.IsActive),
		"click_count":  a.ClickCount,
		"day":          a.Day,
		"day_clicks":   a.DayClicks,
	}
	if a.ExpiresAt != nil {
		fields["expires_at"] = a.ExpiresAt.Format(time.RFC3339Nano)
	}
	if a.LastAccessedAt != nil {
		fields["last_accessed_at"] = a.LastAccessedAt.UnixMicro()
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields)
		if a.ExpiresAt != nil {
			pipe.PExpire(ctx, key, max(a.ExpiresAt.Sub(r.now()), time.Millisecond))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to track analytics: %w", err)
	}
	return nil
}

func (r *RedisRepository) Increment(ctx context.Context, code string, at time.Time, day string) error {
	err := incrementScript.Run(ctx, r.client, []string{Key(code)}, at.UnixMicro(), day).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to increment clicks: %w", err)
	}
	return nil
}

func (r *RedisRepository) MarkInactive(ctx context.Context, code string) error {
	err := markInactiveScript.Run(ctx, r.client, []string{Key(code)}).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to mark analytics inactive: %w", err)
	}
	return nil
}

func (r *RedisRepository) Get(ctx context.Context, code string) (*domain.Analytics, error) {
	fields, err := r.client.HGetAll(ctx, Key(code)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get analytics: %w", err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrNotFound
	}
	return parseFields(fields)
}

func (r *RedisRepository) All(ctx context.Context) ([]domain.Analytics, error) {
	var out []domain.Analytics
	keys := make([]string, 0, scanBatch)

	load := func() error {
		if len(keys) == 0 {
			return nil
		}
		cmds := make([]*redis.MapStringStringCmd, len(keys))
		_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
			for i, k := range keys {
				cmds[i] = pipe.HGetAll(ctx, k)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to load analytics: %w", err)
		}
		for _, cmd := range cmds {
			fields := cmd.Val()
			if len(fields) == 0 {
				continue
			}
			a, err := parseFields(fields)
			if err != nil {
				return err
			}
			out = append(out, *a)
		}
		keys = keys[:0]
		return nil
	}

	iter := r.client.Scan(ctx, 0, keyPrefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) == scanBatch {
			if err := load(); err != nil {
				return nil, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan analytics: %w", err)
	}
	if err := load(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseFields(f map[string]string) (*domain.Analytics, error) {
	a := &domain.Analytics{
		ShortCode:   f["short_code"],
		OriginalURL: f["original_url"],
		ShortURL:    f["short_url"],
		IsActive:    f["is_active"] == "1",
		Day:         f["day"],
	}

	var err error
	if a.CreatedAt, err = time.Parse(time.RFC3339Nano, f["created_at"]); err != nil {
		return nil, fmt.Errorf("failed to decode analytics %s: %w", a.ShortCode, err)
	}
	if v := f["expires_at"]; v != "" {
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, fmt.Errorf("failed to decode analytics %s: %w", a.ShortCode, err)
		}
		a.ExpiresAt = &t
	}
	if v := f["last_accessed_at"]; v != "" {
		us, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode analytics %s: %w", a.ShortCode, err)
		}
		t := time.UnixMicro(us)
		a.LastAccessedAt = &t
	}
	if a.ClickCount, err = parseCount(f["click_count"]); err != nil {
		return nil, fmt.Errorf("failed to decode analytics %s: %w", a.ShortCode, err)
	}
	if a.DayClicks, err = parseCount(f["day_clicks"]); err != nil {
		return nil, fmt.Errorf("failed to decode analytics %s: %w", a.ShortCode, err)
	}
	return a, nil
}

func parseCount(v string) (int64, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.ParseInt(v, 10, 64)
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
