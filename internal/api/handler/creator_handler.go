package handler

import (
	"PulseOS/internal/api/dto"
	"PulseOS/internal/pkg/response"
	"PulseOS/internal/service"

	"github.com/gin-gonic/gin"
)

type CreatorHandler struct {
	creatorSvc  service.CreatorService
	pipelineSvc service.PipelineService
}

func NewCreatorHandler(creatorSvc service.CreatorService, pipelineSvc service.PipelineService) *CreatorHandler {
	return &CreatorHandler{
		creatorSvc:  creatorSvc,
		pipelineSvc: pipelineSvc,
	}
}

func (s *CreatorHandler) List(c *gin.Context) {
	items, err := s.creatorSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

func (s *CreatorHandler) Get(c *gin.Context) {
	item, err := s.creatorSvc.Get(c.Request.Context(), c.Param("handle"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

func (s *CreatorHandler) UpdateStatus(c *gin.Context) {
	var req dto.PersonaStatusDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.creatorSvc.UpdateStatus(c.Request.Context(), c.Param("handle"), req.Status); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *CreatorHandler) Delete(c *gin.Context) {
	if err := s.creatorSvc.Delete(c.Request.Context(), c.Param("handle")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Run 同步执行人设抓取流水线
func (s *CreatorHandler) Run(c *gin.Context) {
	var req dto.CreatorRunDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.pipelineSvc.CapturePersona(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
