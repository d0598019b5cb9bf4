package handler

import (
	"Dramaboard/internal/api/dto"
	"Dramaboard/internal/pkg/response"
	"Dramaboard/internal/service"

	"github.com/gin-gonic/gin"
)

type DramaHandler struct {
	dramaSvc      service.DramaService
	membershipSvc service.MembershipService
}

func NewDramaHandler(dramaSvc service.DramaService, membershipSvc service.MembershipService) *DramaHandler {
	return &DramaHandler{
		dramaSvc:      dramaSvc,
		membershipSvc: membershipSvc,
	}
}

func (s *DramaHandler) ListDramas(c *gin.Context) {
	dramas, err := s.dramaSvc.ListDramas(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dramas)
}

func (s *DramaHandler) GetDrama(c *gin.Context) {
	slug := c.Param("slug")

	drama, err := s.dramaSvc.GetDrama(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, drama)
}

// GetMembership 可选登录：未登录只返回计数与颜色，is_member 恒为 false
func (s *DramaHandler) GetMembership(c *gin.Context) {
	slug := c.Param("slug")
	userID := c.GetString("user_id")

	membership, err := s.membershipSvc.CheckMembership(c.Request.Context(), slug, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, membership)
}

func (s *DramaHandler) SetMembership(c *gin.Context) {
	slug := c.Param("slug")
	userID := c.GetString("user_id")

	var req dto.MembershipActionDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	membership, err := s.membershipSvc.SetMembership(c.Request.Context(), slug, userID, req.Action)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, membership)
}
