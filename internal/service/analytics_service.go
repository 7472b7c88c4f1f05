package service

import (
	"SocialNetwork/internal/api/dto"
	"SocialNetwork/internal/model"
	"SocialNetwork/internal/pkg/cache"
	"SocialNetwork/internal/pkg/consts"
	"SocialNetwork/internal/pkg/util"
	"SocialNetwork/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/singleflight"
)

// Aggregator 按 UTC 日统计点赞数
type Aggregator interface {
	// Aggregate from、to 为闭区间的日期，结果稀疏且按日期升序
	Aggregate(ctx context.Context, from, to time.Time) ([]model.DailyLikes, error)
}

type likeAggregator struct {
	likeRepo repository.LikeRepo
}

func NewAggregator(likeRepo repository.LikeRepo) Aggregator {
	return &likeAggregator{likeRepo: likeRepo}
}

func (a *likeAggregator) Aggregate(ctx context.Context, from, to time.Time) ([]model.DailyLikes, error) {
	start := truncateDay(from)
	end := truncateDay(to).AddDate(0, 0, 1)

	rows, err := a.likeRepo.CountLikesByDay(ctx, start, end)
	if err != nil {
		return nil, storageError("aggregate likes", err)
	}

	days := make([]model.DailyLikes, 0, len(rows))
	for _, row := range rows {
		if row.Count <= 0 {
			continue
		}
		days = append(days, model.DailyLikes{Day: truncateDay(row.Day), Count: row.Count})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Day.Before(days[j].Day)
	})
	return days, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AnalyticsResult 查询结果
type AnalyticsResult struct {
	Days      []dto.DailyLikesDTO
	FromCache bool
}

// AnalyticsService 读穿缓存的点赞统计。缓存 key 使用调用方传入的原始日期字符串，
// 点赞/取消点赞不会使缓存失效，结果在 TTL 内可能滞后
type AnalyticsService interface {
	Query(ctx context.Context, rawFrom, rawTo string) (*AnalyticsResult, error)
}

type analyticsServiceImpl struct {
	aggregator Aggregator
	cache      cache.Cache
	ttl        time.Duration
	group      singleflight.Group
}

func NewAnalyticsService(aggregator Aggregator, c cache.Cache, ttl time.Duration) AnalyticsService {
	return &analyticsServiceImpl{
		aggregator: aggregator,
		cache:      c,
		ttl:        ttl,
	}
}

func (s *analyticsServiceImpl) Query(ctx context.Context, rawFrom, rawTo string) (*AnalyticsResult, error) {
	from, to, err := parseRange(rawFrom, rawTo)
	if err != nil {
		return nil, err
	}

	key := consts.AnalyticsKey + rawFrom + ":" + rawTo
	if days, ok := s.lookup(ctx, key); ok {
		return &AnalyticsResult{Days: days, FromCache: true}, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		// 合并后的请求不应受首个调用方取消的影响
		return s.compute(context.WithoutCancel(ctx), key, from, to)
	})
	if err != nil {
		return nil, err
	}

	days, err := decodeDays(v.([]byte))
	if err != nil {
		return nil, err
	}
	return &AnalyticsResult{Days: days}, nil
}

func (s *analyticsServiceImpl) compute(ctx context.Context, key string, from, to time.Time) ([]byte, error) {
	rows, err := s.aggregator.Aggregate(ctx, from, to)
	if err != nil {
		return nil, err
	}

	days := make([]dto.DailyLikesDTO, 0, len(rows))
	for _, row := range rows {
		days = append(days, dto.DailyLikesDTO{Day: row.Day.Format(consts.DateLayout), Count: row.Count})
	}
	payload, err := json.Marshal(days)
	if err != nil {
		return nil, err
	}

	if err = s.cache.Put(ctx, key, payload, s.ttl); err != nil {
		log.WarnContext(ctx, "analytics cache put failed", "key", key, "err", err)
	}
	return payload, nil
}

func (s *analyticsServiceImpl) lookup(ctx context.Context, key string) ([]dto.DailyLikesDTO, bool) {
	payload, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "analytics cache get failed", "key", key, "err", err)
		return nil, false
	}
	if !hit {
		return nil, false
	}

	days, err := decodeDays(payload)
	if err != nil {
		log.WarnContext(ctx, "analytics cache payload corrupted", "key", key, "err", err)
		return nil, false
	}
	return days, true
}

func decodeDays(payload []byte) ([]dto.DailyLikesDTO, error) {
	days := make([]dto.DailyLikesDTO, 0)
	if err := json.Unmarshal(payload, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func parseRange(rawFrom, rawTo string) (time.Time, time.Time, error) {
	from, err := util.ParseDate(rawFrom)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: date_from: %v", ErrInvalidRange, err)
	}
	to, err := util.ParseDate(rawTo)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: date_to: %v", ErrInvalidRange, err)
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return from, to, nil
}
