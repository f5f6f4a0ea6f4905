package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
	BadGateway          = 502
	ServiceUnavailable  = 503
)

var (
	ErrParamInvalid    = errors.New("参数错误")
	ErrSkillNotFound   = errors.New("技能不存在")
	ErrPersonaNotFound = errors.New("人设不存在")
	ErrStoreNotReady   = errors.New("数据表未就绪，请先运行流水线")
	ErrPipelineFailed  = errors.New("外部流水线执行失败")
	ErrPipelineOutput  = errors.New("外部流水线输出无法解析")
	UnExpectedError    = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:    BadRequest,
	ErrSkillNotFound:   NotFound,
	ErrPersonaNotFound: NotFound,
	ErrStoreNotReady:   ServiceUnavailable,
	ErrPipelineFailed:  BadGateway,
	ErrPipelineOutput:  BadGateway,
	UnExpectedError:    InternalServerError,
}
