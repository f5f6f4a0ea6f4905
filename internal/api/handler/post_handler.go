package handler

import (
	"PulseOS/internal/api/dto"
	"PulseOS/internal/pkg/response"
	"PulseOS/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

func (s *PostHandler) Patch(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.PostPatchDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err = s.postSvc.Patch(c.Request.Context(), postID, &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
