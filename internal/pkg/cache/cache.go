// Package cache 提供分析结果的读穿缓存。
//
// 缓存是尽力而为、有时效的：写入后在 TTL 内返回同一份字节，期间新增的点赞不会反映到已缓存的结果中，
// 过期后由调用方重新计算。
package cache

import (
	"context"
	"time"
)

// Cache 以字符串为 key、字节串为 value 的带过期缓存
type Cache interface {
	// Get 仅当条目存在且尚未过期时命中
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put 覆盖已有条目，过期时间为 now + ttl
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
