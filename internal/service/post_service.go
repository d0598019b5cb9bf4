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

type PostService interface {
	CreatePost(ctx context.Context, userID string, req *dto.PostCreateDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, id string) (*dto.PostDTO, error)
	ListPosts(ctx context.Context) ([]*dto.PostDTO, error)
	UpdatePost(ctx context.Context, userID, id string, req *dto.PostUpdateDTO) error
	DeletePost(ctx context.Context, userID, id string) error
}

type postServiceImpl struct {
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
	userRepo    repository.UserRepo
	dramaRepo   repository.DramaRepo
}

func NewPostService(
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	userRepo repository.UserRepo,
	dramaRepo repository.DramaRepo,
) PostService {
	return &postServiceImpl{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		dramaRepo:   dramaRepo,
	}
}

func (s *postServiceImpl) CreatePost(ctx context.Context, userID string, req *dto.PostCreateDTO) (*dto.PostDTO, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, ErrFieldRequired
	}

	uid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	// 作者引用来自登录态，不信任请求体
	user, err := s.userRepo.GetUserByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.DramaSlug != "" {
		drama, err := s.dramaRepo.GetBySlug(ctx, req.DramaSlug)
		if err != nil {
			return nil, err
		}
		if drama == nil {
			return nil, ErrDramaNotFound
		}
	}

	post := &model.Post{
		Title:   req.Title,
		Content: req.Content,
		Author: model.AuthorRef{
			ID:       userID,
			Username: user.Username,
		},
		DramaSlug: req.DramaSlug,
		Votes:     0,
		Voters:    []model.Vote{},
		CreatedAt: time.Now(),
	}

	created, err := s.postRepo.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}
	return toPostDTO(created), nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, id string) (*dto.PostDTO, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetPost(ctx, oid)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return toPostDTO(post), nil
}

func (s *postServiceImpl) ListPosts(ctx context.Context) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	return toPostDTOs(posts), nil
}

// UpdatePost 仅作者可编辑；编辑不重置票数
func (s *postServiceImpl) UpdatePost(ctx context.Context, userID, id string, req *dto.PostUpdateDTO) error {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return ErrFieldRequired
	}

	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	post, err := s.postRepo.GetPost(ctx, oid)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.Author.ID != userID {
		return ErrNotOwner
	}

	matched, err := s.postRepo.UpdatePostContent(ctx, oid, req.Title, req.Content, time.Now())
	if err != nil {
		return err
	}
	if !matched {
		return ErrPostNotFound
	}
	return nil
}

// DeletePost 仅作者可删除，硬删除并连带清理评论
func (s *postServiceImpl) DeletePost(ctx context.Context, userID, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	post, err := s.postRepo.GetPost(ctx, oid)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.Author.ID != userID {
		return ErrNotOwner
	}

	deleted, err := s.postRepo.DeletePost(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPostNotFound
	}

	if _, err = s.commentRepo.DeleteByPost(ctx, id); err != nil {
		return err
	}
	return nil
}

func toPostDTO(post *model.Post) *dto.PostDTO {
	postDTO := &dto.PostDTO{}
	_ = copier.Copy(postDTO, post)
	postDTO.ID = post.ID.Hex()
	postDTO.Author = dto.AuthorDTO{
		ID:       post.Author.ID,
		Username: post.Author.Username,
	}
	return postDTO
}

func toPostDTOs(posts []*model.Post) []*dto.PostDTO {
	result := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		result = append(result, toPostDTO(p))
	}
	return result
}
