package handler

import (
	"PulseOS/internal/pkg/response"
	"PulseOS/internal/service"

	"github.com/gin-gonic/gin"
)

type TodayHandler struct {
	todaySvc service.TodayService
}

func NewTodayHandler(todaySvc service.TodayService) *TodayHandler {
	return &TodayHandler{todaySvc: todaySvc}
}

func (s *TodayHandler) GetToday(c *gin.Context) {
	today, err := s.todaySvc.GetToday(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, today)
}
