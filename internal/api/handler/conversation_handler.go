package handler

import (
	"PulseOS/internal/api/dto"
	"PulseOS/internal/pkg/response"
	"PulseOS/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ConversationHandler struct {
	convSvc     service.ConversationService
	pipelineSvc service.PipelineService
}

func NewConversationHandler(convSvc service.ConversationService, pipelineSvc service.PipelineService) *ConversationHandler {
	return &ConversationHandler{
		convSvc:     convSvc,
		pipelineSvc: pipelineSvc,
	}
}

func (s *ConversationHandler) UpdateReply(c *gin.Context) {
	conversationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.ConversationReplyDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err = s.convSvc.UpdateReply(c.Request.Context(), conversationID, *req.SuggestedReply); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *ConversationHandler) UpdateStatus(c *gin.Context) {
	conversationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.ConversationStatusDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err = s.convSvc.UpdateStatus(c.Request.Context(), conversationID, req.Status); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// Generate 同步调用外部流水线生成建议回复
func (s *ConversationHandler) Generate(c *gin.Context) {
	conversationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.pipelineSvc.GenerateReply(c.Request.Context(), conversationID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
