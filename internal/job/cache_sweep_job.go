package job

import (
	"SocialNetwork/internal/pkg/logger"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// Sweeper 可批量清理过期条目的缓存
type Sweeper interface {
	Sweep() int
	Len() int
}

// CacheSweepJob 定期清理进程内缓存中的过期条目
type CacheSweepJob struct {
	cache Sweeper
}

func NewCacheSweepJob(cache Sweeper) *CacheSweepJob {
	return &CacheSweepJob{cache: cache}
}

func (s *CacheSweepJob) Run() {
	ctx := logger.WithTraceID(context.Background(), "job-cache-sweep-"+uuid.NewString())

	removed := s.cache.Sweep()
	if removed > 0 {
		log.InfoContext(ctx, "cache sweep finished", "removed", removed, "remaining", s.cache.Len())
		return
	}
	log.DebugContext(ctx, "cache sweep finished, nothing expired")
}
