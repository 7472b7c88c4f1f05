package cron

import (
	"SocialNetwork/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine        *cron.Cron
	sweepSpec     string
	cacheSweepJob *job.CacheSweepJob
}

// NewCronManager cacheSweepJob 为 nil 时不注册清理任务（缓存由 Redis 负责过期）
func NewCronManager(sweepSpec string, cacheSweepJob *job.CacheSweepJob) *Manager {
	return &Manager{
		engine:        cron.New(cron.WithSeconds(), cron.WithChain(cron.Recover(cron.DefaultLogger))),
		sweepSpec:     sweepSpec,
		cacheSweepJob: cacheSweepJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if s.cacheSweepJob == nil {
		return nil
	}
	if _, err := s.engine.AddJob(s.sweepSpec, s.cacheSweepJob); err != nil {
		return err
	}
	log.Info("cron job registered", "job", "cache_sweep", "spec", s.sweepSpec)
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

// Stop 停止调度并等待运行中的任务结束
func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
