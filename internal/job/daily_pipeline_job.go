package job

import (
	"PulseOS/internal/pkg/logger"
	"PulseOS/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

type DailyPipelineJob struct {
	pipelineSvc service.PipelineService
}

func NewDailyPipelineJob(pipelineSvc service.PipelineService) *DailyPipelineJob {
	return &DailyPipelineJob{
		pipelineSvc: pipelineSvc,
	}
}

func (s *DailyPipelineJob) Run() {
	traceID := "job-daily-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	start := time.Now()
	log.InfoContext(ctx, "DailyPipelineJob start")

	if err := s.pipelineSvc.RunDaily(ctx); err != nil {
		log.ErrorContext(ctx, "daily pipeline failed", "err", err)
		return
	}

	log.InfoContext(ctx, "DailyPipelineJob finished", "cost", time.Since(start).String())
}
