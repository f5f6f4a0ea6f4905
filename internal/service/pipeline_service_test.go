package service

import (
	"PulseOS/internal/api/dto"
	"PulseOS/internal/pkg/pipeline"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineService_CapturePersona_EmptyHandle(t *testing.T) {
	svc := NewPipelineService(nil)

	_, err := svc.CapturePersona(context.Background(), &dto.CreatorRunDTO{Handle: ""})
	require.ErrorIs(t, err, ErrParamInvalid)

	// 只有 @ 前缀等价于空
	_, err = svc.CapturePersona(context.Background(), &dto.CreatorRunDTO{Handle: "  @  "})
	require.ErrorIs(t, err, ErrParamInvalid)
}

func TestTranslatePipelineError(t *testing.T) {
	badOutput := fmt.Errorf("%w: {truncated", pipeline.ErrBadOutput)
	err := translatePipelineError(badOutput)
	assert.ErrorIs(t, err, ErrPipelineOutput)
	assert.Contains(t, err.Error(), "{truncated")

	failed := fmt.Errorf("%w: Traceback ...", pipeline.ErrProcessFailed)
	err = translatePipelineError(failed)
	assert.ErrorIs(t, err, ErrPipelineFailed)

	timeout := fmt.Errorf("%w: run.py", pipeline.ErrTimeout)
	err = translatePipelineError(timeout)
	assert.ErrorIs(t, err, ErrPipelineFailed)
}
