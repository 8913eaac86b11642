package wechat

import (
	"context"
	"sync"
	"time"
)

// TokenCache 带过期窗口的 access_token 缓存。
// 刷新动作整体串行化，避免临近过期时的重复换取
type TokenCache struct {
	mu        sync.Mutex
	value     string
	fetchedAt time.Time
	ttl       time.Duration
	fetch     func(context.Context) (string, error)
	now       func() time.Time
}

func NewTokenCache(ttl time.Duration, fetch func(context.Context) (string, error)) *TokenCache {
	return &TokenCache{
		ttl:   ttl,
		fetch: fetch,
		now:   time.Now,
	}
}

// Get 在过期窗口内返回缓存值，否则重新换取
func (t *TokenCache) Get(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.value != "" && t.now().Sub(t.fetchedAt) < t.ttl {
		return t.value, nil
	}

	value, err := t.fetch(ctx)
	if err != nil {
		return "", err
	}

	t.value = value
	t.fetchedAt = t.now()
	return value, nil
}
