package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"finlit_academy/internal/middleware"
	"finlit_academy/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const bossCacheKeyPrefix = "finlit:boss_battles:"

// cachedBossRepository はボス定義を Redis に載せる読み取りキャッシュ。
// Redis の障害は握りつぶして DB にフォールバックする
type cachedBossRepository struct {
	next BossRepository
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCachedBossRepository(next BossRepository, rdb *redis.Client, ttl time.Duration) BossRepository {
	return &cachedBossRepository{next: next, rdb: rdb, ttl: ttl}
}

func (r *cachedBossRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Boss, error) {
	key := bossCacheKeyPrefix + "all"
	var bosses []*model.Boss
	if r.get(ctx, key, &bosses) {
		return bosses, nil
	}

	bosses, err := r.next.FindAll(ctx, db)
	if err != nil {
		return nil, err
	}
	r.set(ctx, key, bosses)
	return bosses, nil
}

func (r *cachedBossRepository) FindByID(ctx context.Context, db *gorm.DB, bossID uint) (*model.Boss, error) {
	key := fmt.Sprintf("%s%d", bossCacheKeyPrefix, bossID)
	var boss model.Boss
	if r.get(ctx, key, &boss) {
		return &boss, nil
	}

	found, err := r.next.FindByID(ctx, db, bossID)
	if err != nil {
		return nil, err
	}
	r.set(ctx, key, found)
	return found, nil
}

// InvalidateBossCache はキャッシュ済みのボス定義を全て削除する (シード投入後に使う)
func InvalidateBossCache(ctx context.Context, rdb *redis.Client) error {
	iter := rdb.Scan(ctx, 0, bossCacheKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("InvalidateBossCache: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("InvalidateBossCache: %w", err)
	}
	return nil
}

func (r *cachedBossRepository) get(ctx context.Context, key string, dst interface{}) bool {
	logger := middleware.GetLogger(ctx)
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("Boss cache read failed, falling back to DB", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		logger.Warn("Boss cache entry is corrupted", "key", key, "error", err)
		return false
	}
	return true
}

func (r *cachedBossRepository) set(ctx context.Context, key string, value interface{}) {
	logger := middleware.GetLogger(ctx)
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to encode boss cache entry", "key", key, "error", err)
		return
	}
	if err := r.rdb.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		logger.Warn("Boss cache write failed", "key", key, "error", err)
	}
}
