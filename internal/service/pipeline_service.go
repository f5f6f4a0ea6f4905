package service

import (
	"PulseOS/internal/api/dto"
	"PulseOS/internal/pkg/pipeline"
	"context"
	"errors"
	"fmt"
	"strings"
)

type PipelineService interface {
	// GenerateReply 同步调用外部流水线为会话生成建议回复
	GenerateReply(ctx context.Context, conversationID uint64) (*dto.GenerateReplyDTO, error)
	// CapturePersona 同步执行人设抓取，返回脚本输出的结果对象
	CapturePersona(ctx context.Context, req *dto.CreatorRunDTO) (*dto.CaptureResultDTO, error)
	// RunDaily 触发每日流水线
	RunDaily(ctx context.Context) error
}

type pipelineServiceImpl struct {
	runner *pipeline.Runner
}

func NewPipelineService(runner *pipeline.Runner) PipelineService {
	return &pipelineServiceImpl{runner: runner}
}

func (s *pipelineServiceImpl) GenerateReply(ctx context.Context, conversationID uint64) (*dto.GenerateReplyDTO, error) {
	reply, err := s.runner.GenerateReply(ctx, conversationID)
	if err != nil {
		return nil, translatePipelineError(err)
	}
	return &dto.GenerateReplyDTO{Reply: reply}, nil
}

func (s *pipelineServiceImpl) CapturePersona(ctx context.Context, req *dto.CreatorRunDTO) (*dto.CaptureResultDTO, error) {
	handle := strings.TrimPrefix(strings.TrimSpace(req.Handle), "@")
	if handle == "" {
		return nil, ErrParamInvalid
	}

	result, err := s.runner.CapturePersona(ctx, pipeline.CaptureRequest{
		Handle:     handle,
		WindowDays: req.WindowDays,
		Limit:      req.Limit,
		TopN:       req.TopN,
		Force:      req.Force,
	})
	if err != nil {
		return nil, translatePipelineError(err)
	}
	return &dto.CaptureResultDTO{Result: result}, nil
}

func (s *pipelineServiceImpl) RunDaily(ctx context.Context) error {
	if err := s.runner.RunDaily(ctx); err != nil {
		return translatePipelineError(err)
	}
	return nil
}

// translatePipelineError 把执行器错误翻译为领域错误，保留诊断信息
func translatePipelineError(err error) error {
	if errors.Is(err, pipeline.ErrBadOutput) {
		return fmt.Errorf("%w: %v", ErrPipelineOutput, err)
	}
	return fmt.Errorf("%w: %v", ErrPipelineFailed, err)
}
