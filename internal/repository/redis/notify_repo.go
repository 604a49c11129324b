package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	UnreadCntTTL       = 24 * time.Hour
	UnreadCntKeyPrefix = "notify:cnt:user"   // 缓存用户未读通知数量
	LockKeyPrefix      = "lock:notify:user:" // 分布式锁
	LockTTL            = 300 * time.Millisecond
)

// UnreadCacheRepository caches per-user unread notification counts. Writers
// invalidate; the read side rebuilds from MySQL under a short lock.
type UnreadCacheRepository struct {
	unreadTTL time.Duration
}

type DistLock struct {
	RDB *redis.Client
}

func NewUnreadCacheRepository() *UnreadCacheRepository {
	return &UnreadCacheRepository{unreadTTL: UnreadCntTTL}
}

func (r *UnreadCacheRepository) unreadKey(userID uint64) string {
	return fmt.Sprintf("%s:%d", UnreadCntKeyPrefix, userID)
}

// GetUnreadCached 从缓存读取未读数量
func (r *UnreadCacheRepository) GetUnreadCached(ctx context.Context, userID uint64) (int64, bool, error) {
	val, err := Client.Get(ctx, r.unreadKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	return val, true, err
}

// SetUnread 回填未读数量
func (r *UnreadCacheRepository) SetUnread(ctx context.Context, userID uint64, cnt int64) error {
	return Client.Set(ctx, r.unreadKey(userID), cnt, r.unreadTTL).Err()
}

// DeleteCount drops the cached counter, with an optional delayed second
// delete to close the concurrent-refill window.
func (r *UnreadCacheRepository) DeleteCount(ctx context.Context, userID uint64, delay ...time.Duration) error {
	key := r.unreadKey(userID)
	if err := Client.Del(ctx, key).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	if len(delay) > 0 && delay[0] > 0 {
		d := delay[0]
		go func() {
			t := time.NewTimer(d)
			defer t.Stop()
			<-t.C
			_ = Client.Del(context.Background(), key).Err()
		}()
	}
	return nil
}

// Acquire 请求加分布式锁
func (l *DistLock) Acquire(ctx context.Context, userID uint64, token string) (bool, error) {
	key := fmt.Sprintf("%s:%d", LockKeyPrefix, userID)
	return l.RDB.SetNX(ctx, key, token, LockTTL).Result()
}

// Release 用lua保证原子性
func (l *DistLock) Release(ctx context.Context, userID uint64, token string) error {
	key := fmt.Sprintf("%s:%d", LockKeyPrefix, userID)
	_, err := redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
  return redis.call("del", KEYS[1])
else
  return 0
end`).Run(ctx, l.RDB, []string{key}, token).Result()
	return err
}
