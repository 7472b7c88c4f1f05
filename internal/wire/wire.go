package wire

import (
	"SocialNetwork/internal/api"
	"SocialNetwork/internal/api/config"
	"SocialNetwork/internal/api/handler"
	"SocialNetwork/internal/job"
	"SocialNetwork/internal/pkg/cache"
	"SocialNetwork/internal/pkg/cron"
	"SocialNetwork/internal/pkg/security"
	"SocialNetwork/internal/repository"
	"SocialNetwork/internal/service"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

// BuildApplication rdb 仅在 cache.driver 为 redis 时需要
func BuildApplication(db *gorm.DB, rdb redis.Cmdable, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	likeRepo := repository.NewLikeRepo(db)

	var (
		resultCache cache.Cache
		sweepJob    *job.CacheSweepJob
	)
	switch cfg.Cache.Driver {
	case config.CacheDriverRedis:
		if rdb == nil {
			return nil, errors.New("cache driver redis requires a redis client")
		}
		resultCache = cache.NewRedisCache(rdb, cfg.Cache.KeyPrefix)
	default:
		memCache := cache.NewMemoryCache()
		resultCache = memCache
		sweepJob = job.NewCacheSweepJob(memCache)
	}

	jwtManager := security.NewJWTManager(cfg.JWT)

	userService := service.NewUserService(userRepo, jwtManager)
	postService := service.NewPostService(postRepo, likeRepo)
	actionService := service.NewPostActionService(likeRepo, postRepo)
	analyticsService := service.NewAnalyticsService(service.NewAggregator(likeRepo), resultCache, cfg.Analytics.CacheTTL)

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService),
		PostHandler:       handler.NewPostHandler(postService),
		PostActionHandler: handler.NewPostActionHandler(actionService, postService, userService),
		AnalyticsHandler:  handler.NewAnalyticsHandler(analyticsService),
		TokenVerifier:     userService,
	}

	return &ApplicationContainer{
		Router:  api.SetupRouter(handlers),
		DB:      db,
		CronMgr: cron.NewCronManager(cfg.Cache.SweepSpec, sweepJob),
	}, nil
}
