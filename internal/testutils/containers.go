// Package testutils 提供集成测试所需的 MySQL 与 Redis 测试容器。
//
// 容器在测试结束时自动清理；-short 模式或 Docker 不可用时跳过测试。
package testutils

import (
	"SocialNetwork/internal/api/config"
	"SocialNetwork/internal/pkg/database"
	rdbutil "SocialNetwork/internal/pkg/redis"
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"gorm.io/gorm"
)

const (
	mysqlImage = "mysql:8.0.36"
	redisImage = "redis:7-alpine"
)

// MySQLEnv 已完成迁移的 MySQL 测试环境
type MySQLEnv struct {
	DB  *gorm.DB
	DSN string
}

// RequireDocker 在 -short 模式或无可用容器运行时的情况下跳过测试
func RequireDocker(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	tc.SkipIfProviderIsNotHealthy(t)
}

// SetupMySQL 启动 MySQL 容器并执行迁移
func SetupMySQL(t *testing.T) *MySQLEnv {
	t.Helper()
	RequireDocker(t)

	ctx := context.Background()
	container, err := tcmysql.Run(ctx, mysqlImage,
		tcmysql.WithDatabase("socialnetwork"),
		tcmysql.WithUsername("sn"),
		tcmysql.WithPassword("sn-secret"),
	)
	if err != nil {
		t.Fatalf("failed to start mysql container: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	dsn, err := container.ConnectionString(ctx,
		"charset=utf8mb4", "parseTime=true", "loc=UTC", "clientFoundRows=true")
	if err != nil {
		t.Fatalf("failed to get mysql connection string: %v", err)
	}

	if err = database.Migrate(dsn); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	db, err := database.NewGormDB(&config.DBConfig{DSN: dsn, MaxIdle: 5, MaxOpen: 20, MaxLifetime: 5})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return &MySQLEnv{DB: db, DSN: dsn}
}

// Reset 清空业务表，按外键依赖顺序删除
func (env *MySQLEnv) Reset(t *testing.T) {
	t.Helper()
	for _, table := range []string{"likes", "posts", "users"} {
		if err := env.DB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("failed to clean table %s: %v", table, err)
		}
	}
}

// SetupRedis 启动 Redis 容器并返回已连通的客户端
func SetupRedis(t *testing.T) *redis.Client {
	t.Helper()
	RequireDocker(t)

	ctx := context.Background()
	container, err := tcredis.Run(ctx, redisImage)
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatalf("failed to get redis endpoint: %v", err)
	}

	rdb, err := rdbutil.NewClient(ctx, config.RedisConfig{Addr: endpoint, PoolSize: 10})
	if err != nil {
		t.Fatalf("failed to connect redis: %v", err)
	}
	t.Cleanup(func() {
		_ = rdb.Close()
	})
	return rdb
}
