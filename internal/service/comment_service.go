package service

import (
	"Dramaboard/internal/api/dto"
	"Dramaboard/internal/model"
	"Dramaboard/internal/repository"
	"context"
	"strings"
	"time"

	"github.com/jinzhu/copier"
)

type CommentService interface {
	CreateComment(ctx context.Context, userID string, req *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	ListByPost(ctx context.Context, postID string) ([]*dto.CommentDTO, error)
	UpdateComment(ctx context.Context, userID, id string, req *dto.CommentUpdateDTO) error
	DeleteComment(ctx context.Context, userID, id string) error
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
	userRepo    repository.UserRepo
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	postRepo repository.PostRepo,
	userRepo repository.UserRepo,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

func (s *commentServiceImpl) CreateComment(ctx context.Context, userID string, req *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrFieldRequired
	}

	postOID, err := parseObjectID(req.PostID)
	if err != nil {
		return nil, err
	}
	post, err := s.postRepo.GetPost(ctx, postOID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	uid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetUserByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	comment := &model.Comment{
		PostID:  req.PostID,
		Content: req.Content,
		Author: model.AuthorRef{
			ID:       userID,
			Username: user.Username,
		},
		Votes:     0,
		Voters:    []model.Vote{},
		CreatedAt: time.Now(),
	}

	created, err := s.commentRepo.CreateComment(ctx, comment)
	if err != nil {
		return nil, err
	}
	return toCommentDTO(created), nil
}

func (s *commentServiceImpl) ListByPost(ctx context.Context, postID string) ([]*dto.CommentDTO, error) {
	if _, err := parseObjectID(postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		result = append(result, toCommentDTO(c))
	}
	return result, nil
}

// UpdateComment 仅作者可编辑
func (s *commentServiceImpl) UpdateComment(ctx context.Context, userID, id string, req *dto.CommentUpdateDTO) error {
	if strings.TrimSpace(req.Content) == "" {
		return ErrFieldRequired
	}

	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	comment, err := s.commentRepo.GetComment(ctx, oid)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.Author.ID != userID {
		return ErrNotOwner
	}

	matched, err := s.commentRepo.UpdateCommentContent(ctx, oid, req.Content, time.Now())
	if err != nil {
		return err
	}
	if !matched {
		return ErrCommentNotFound
	}
	return nil
}

// DeleteComment 仅作者可删除
func (s *commentServiceImpl) DeleteComment(ctx context.Context, userID, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	comment, err := s.commentRepo.GetComment(ctx, oid)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.Author.ID != userID {
		return ErrNotOwner
	}

	deleted, err := s.commentRepo.DeleteComment(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCommentNotFound
	}
	return nil
}

func toCommentDTO(comment *model.Comment) *dto.CommentDTO {
	commentDTO := &dto.CommentDTO{}
	_ = copier.Copy(commentDTO, comment)
	commentDTO.ID = comment.ID.Hex()
	commentDTO.Author = dto.AuthorDTO{
		ID:       comment.Author.ID,
		Username: comment.Author.Username,
	}
	return commentDTO
}
