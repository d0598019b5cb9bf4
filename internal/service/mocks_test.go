package service

import (
	"Dramaboard/internal/model"
	"Dramaboard/internal/pkg/catalog"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) FindByUsernameOrEmail(ctx context.Context, credential string) (*model.User, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) AddMembership(ctx context.Context, userID primitive.ObjectID, membership model.DramaMembership) (bool, error) {
	args := m.Called(ctx, userID, membership)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) RemoveMembership(ctx context.Context, userID primitive.ObjectID, slug string) (bool, error) {
	args := m.Called(ctx, userID, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) HasMembership(ctx context.Context, userID primitive.ObjectID, slug string) (bool, error) {
	args := m.Called(ctx, userID, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) GetMemberships(ctx context.Context, userID primitive.ObjectID) ([]model.DramaMembership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DramaMembership), args.Error(1)
}

func (m *MockUserRepo) CountMembers(ctx context.Context, slug string) (int64, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(int64), args.Error(1)
}

type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) CreatePost(ctx context.Context, post *model.Post) (*model.Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepo) GetPost(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepo) ListPosts(ctx context.Context) ([]*model.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *MockPostRepo) ListPostsByDrama(ctx context.Context, slug string) ([]*model.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *MockPostRepo) UpdatePostContent(ctx context.Context, id primitive.ObjectID, title, content string, editedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, title, content, editedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepo) DeletePost(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepo) ApplyVote(ctx context.Context, id primitive.ObjectID, userID string, direction int) (int, bool, error) {
	args := m.Called(ctx, id, userID, direction)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockPostRepo) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepo) SumVotesByAuthor(ctx context.Context, authorID string) (int64, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepo) FindVoteMismatches(ctx context.Context) ([]*model.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) CreateComment(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepo) GetComment(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepo) ListByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockCommentRepo) UpdateCommentContent(ctx context.Context, id primitive.ObjectID, content string, editedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, content, editedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentRepo) DeleteComment(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentRepo) DeleteByPost(ctx context.Context, postID string) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepo) ApplyVote(ctx context.Context, id primitive.ObjectID, userID string, direction int) (int, bool, error) {
	args := m.Called(ctx, id, userID, direction)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockCommentRepo) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(int64), args.Error(1)
}

type MockDramaRepo struct {
	mock.Mock
}

func (m *MockDramaRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDramaRepo) InsertMany(ctx context.Context, dramas []*model.Drama) error {
	args := m.Called(ctx, dramas)
	return args.Error(0)
}

func (m *MockDramaRepo) List(ctx context.Context) ([]*model.Drama, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Drama), args.Error(1)
}

func (m *MockDramaRepo) GetBySlug(ctx context.Context, slug string) (*model.Drama, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Drama), args.Error(1)
}

func (m *MockDramaRepo) IncMemberCount(ctx context.Context, slug string, delta int64) (int64, bool, error) {
	args := m.Called(ctx, slug, delta)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockDramaRepo) SetMemberCount(ctx context.Context, slug string, count int64) error {
	args := m.Called(ctx, slug, count)
	return args.Error(0)
}

type MockScraper struct {
	mock.Mock
}

func (m *MockScraper) Fetch(ctx context.Context) ([]catalog.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Entry), args.Error(1)
}
