package handler

import (
	"Dramaboard/internal/api/dto"
	"Dramaboard/internal/pkg/response"
	"Dramaboard/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
	voteSvc    service.VoteService
}

func NewCommentHandler(commentSvc service.CommentService, voteSvc service.VoteService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
		voteSvc:    voteSvc,
	}
}

func (s *CommentHandler) ListComments(c *gin.Context) {
	postID := c.Query("post_id")
	if postID == "" {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	comments, err := s.commentSvc.ListByPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

func (s *CommentHandler) CreateComment(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.CommentCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.CreateComment(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *CommentHandler) UpdateComment(c *gin.Context) {
	userID := c.GetString("user_id")
	commentID := c.Param("comment_id")

	var req dto.CommentUpdateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.commentSvc.UpdateComment(c.Request.Context(), userID, commentID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CommentHandler) DeleteComment(c *gin.Context) {
	userID := c.GetString("user_id")
	commentID := c.Param("comment_id")

	if err := s.commentSvc.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CommentHandler) VoteComment(c *gin.Context) {
	userID := c.GetString("user_id")
	commentID := c.Param("comment_id")

	var req dto.VoteDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	direction := 0
	if req.Direction != nil {
		direction = *req.Direction
	}

	result, err := s.voteSvc.CastCommentVote(c.Request.Context(), commentID, userID, direction)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
