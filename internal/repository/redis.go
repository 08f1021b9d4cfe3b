package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"shortlink/internal/config"
	"shortlink/internal/domain"
)

const (
	urlKeyPrefix = "url:"
	urlSeqKey    = "seq:url"

	scanBatch          = 500
	deactivateAttempts = 5
)

func URLKey(code string) string {
	return urlKeyPrefix + code
}

func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// URLRedisRepository stores one JSON document per code under url:<code>.
// Keys carry a native TTL matching ExpiresAt, so expired mappings vanish on
// their own.
type URLRedisRepository struct {
	client *redis.Client
	now    func() time.Time
}

func NewURLRedisRepository(client *redis.Client) *URLRedisRepository {
	return &URLRedisRepository{client: client, now: time.Now}
}

func (r *URLRedisRepository) Put(ctx context.Context, m *domain.Mapping) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode mapping: %w", err)
	}

	if err := r.client.Set(ctx, URLKey(m.ShortCode), data, r.ttl(m)).Err(); err != nil {
		return fmt.Errorf("failed to store mapping: %w", err)
	}
	return nil
}

func (r *URLRedisRepository) Get(ctx context.Context, code string) (*domain.Mapping, error) {
	data, err := r.client.Get(ctx, URLKey(code)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mapping: %w", err)
	}

	var m domain.Mapping
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode mapping: %w", err)
	}
	return &m, nil
}

func (r *URLRedisRepository) Exists(ctx context.Context, code string) (bool, error) {
	n, err := r.client.Exists(ctx, URLKey(code)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check mapping: %w", err)
	}
	return n > 0, nil
}

// Deactivate rewrites the document inside an optimistic transaction and keeps
// the remaining TTL. It reports false when the mapping is missing or already
// inactive.
func (r *URLRedisRepository) Deactivate(ctx context.Context, code string) (bool, error) {
	key := URLKey(code)
	var changed bool

	txf := func(tx *redis.Tx) error {
		changed = false
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}

		var m domain.Mapping
		if err := json.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("failed to decode mapping: %w", err)
		}
		if !m.IsActive {
			return nil
		}
		m.IsActive = false

		updated, err := json.Marshal(&m)
		if err != nil {
			return fmt.Errorf("failed to encode mapping: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, redis.KeepTTL)
			return nil
		})
		if err != nil {
			return err
		}
		changed = true
		return nil
	}

	for range deactivateAttempts {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("failed to deactivate mapping: %w", err)
		}
		return changed, nil
	}
	return false, fmt.Errorf("failed to deactivate mapping: %w", redis.TxFailedErr)
}

// All scans url:* and loads the documents in batches. Keys expiring between
// the scan and the read are skipped.
func (r *URLRedisRepository) All(ctx context.Context) ([]domain.Mapping, error) {
	var out []domain.Mapping
	keys := make([]string, 0, scanBatch)

	load := func() error {
		if len(keys) == 0 {
			return nil
		}
		vals, err := r.client.MGet(ctx, keys...).Result()
		if err != nil {
			return fmt.Errorf("failed to load mappings: %w", err)
		}
		for _, v := range vals {
			s, ok := v.(string)
			if !ok {
				continue
			}
			var m domain.Mapping
			if err := json.Unmarshal([]byte(s), &m); err != nil {
				return fmt.Errorf("failed to decode mapping: %w", err)
			}
			out = append(out, m)
		}
		keys = keys[:0]
		return nil
	}

	iter := r.client.Scan(ctx, 0, urlKeyPrefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) == scanBatch {
			if err := load(); err != nil {
				return nil, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan mappings: %w", err)
	}
	if err := load(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *URLRedisRepository) NextID(ctx context.Context) (uint64, error) {
	id, err := r.client.Incr(ctx, urlSeqKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get next id: %w", err)
	}
	return uint64(id), nil
}

// ttl returns 0 (no expiry) for mappings without ExpiresAt. Mappings already
// past their expiry get the shortest TTL redis accepts.
func (r *URLRedisRepository) ttl(m *domain.Mapping) time.Duration {
	if m.ExpiresAt == nil {
		return 0
	}
	return max(m.ExpiresAt.Sub(r.now()), time.Millisecond)
}
