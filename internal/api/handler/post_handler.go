package handler

import (
	"Dramaboard/internal/api/dto"
	"Dramaboard/internal/pkg/response"
	"Dramaboard/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
	voteSvc service.VoteService
}

func NewPostHandler(postSvc service.PostService, voteSvc service.VoteService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
		voteSvc: voteSvc,
	}
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	posts, err := s.postSvc.ListPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID := c.Param("post_id")

	post, err := s.postSvc.GetPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.PostCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("post_id")

	var req dto.PostUpdateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.postSvc.UpdatePost(c.Request.Context(), userID, postID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("post_id")

	if err := s.postSvc.DeletePost(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) VotePost(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("post_id")

	var req dto.VoteDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	// direction 为 null 视为显式撤票
	direction := 0
	if req.Direction != nil {
		direction = *req.Direction
	}

	result, err := s.voteSvc.CastPostVote(c.Request.Context(), postID, userID, direction)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
