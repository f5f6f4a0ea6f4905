package handler

import (
	"PulseOS/internal/api/dto"
	"PulseOS/internal/pkg/response"
	"PulseOS/internal/service"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillSvc service.SkillService
}

func NewSkillHandler(skillSvc service.SkillService) *SkillHandler {
	return &SkillHandler{skillSvc: skillSvc}
}

func (s *SkillHandler) GetSkills(c *gin.Context) {
	skills, err := s.skillSvc.GetSkills(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, skills)
}

func (s *SkillHandler) GetSkill(c *gin.Context) {
	skill, err := s.skillSvc.GetSkill(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, skill)
}

func (s *SkillHandler) UpdateConfig(c *gin.Context) {
	var req dto.SkillConfigDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.skillSvc.UpdateConfig(c.Request.Context(), c.Param("slug"), req.ConfigJSON); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
