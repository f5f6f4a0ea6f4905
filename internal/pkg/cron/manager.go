package cron

import (
	"PulseOS/internal/api/config"
	"PulseOS/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine           *cron.Cron
	dailyPipelineJob *job.DailyPipelineJob
}

func NewCronManager(dailyPipelineJob *job.DailyPipelineJob) *Manager {
	return &Manager{
		engine:           cron.New(cron.WithSeconds()),
		dailyPipelineJob: dailyPipelineJob,
	}
}

// RegisterJobs 注册定时任务，daily_spec 为空时不启用每日流水线
func (s *Manager) RegisterJobs() error {
	spec := config.Cfg.Pipeline.DailySpec
	if spec == "" {
		log.Info("daily pipeline job disabled, pipeline.daily_spec is empty")
		return nil
	}
	if _, err := s.engine.AddJob(spec, s.dailyPipelineJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
