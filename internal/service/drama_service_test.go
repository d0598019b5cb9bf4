package service

import (
	"Dramaboard/internal/model"
	"Dramaboard/internal/pkg/catalog"
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListDramas_SeedsOnEmptyCatalog(t *testing.T) {
	dramaRepo := new(MockDramaRepo)
	scraper := new(MockScraper)
	svc := NewDramaService(dramaRepo, new(MockPostRepo), scraper)

	dramaRepo.On("Count", mock.Anything).Return(int64(0), nil)
	scraper.On("Fetch", mock.Anything).Return([]catalog.Entry{
		{Title: "goblin", Slug: "goblin", ImageURL: "https://img/goblin.jpg", Link: "https://site/en/goblin"},
		{Title: "signal", Slug: "signal", ImageURL: "https://img/signal.jpg", Link: "https://site/en/signal"},
	}, nil)
	dramaRepo.On("InsertMany", mock.Anything, mock.MatchedBy(func(dramas []*model.Drama) bool {
		return len(dramas) == 2 && dramas[0].Slug == "goblin" && dramas[0].MemberCount == 0
	})).Return(nil)
	dramaRepo.On("List", mock.Anything).Return([]*model.Drama{
		{Slug: "goblin", Title: "goblin"},
		{Slug: "signal", Title: "signal"},
	}, nil)

	result, err := svc.ListDramas(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.NotEmpty(t, result[0].Color)
	dramaRepo.AssertExpectations(t)
	scraper.AssertExpectations(t)
}

func TestListDramas_NoSeedWhenPopulated(t *testing.T) {
	dramaRepo := new(MockDramaRepo)
	scraper := new(MockScraper)
	svc := NewDramaService(dramaRepo, new(MockPostRepo), scraper)

	dramaRepo.On("Count", mock.Anything).Return(int64(12), nil)
	dramaRepo.On("List", mock.Anything).Return([]*model.Drama{{Slug: "goblin"}}, nil)

	_, err := svc.ListDramas(context.Background())

	assert.NoError(t, err)
	scraper.AssertNotCalled(t, "Fetch", mock.Anything)
}

func TestListDramas_SeedFailureIsNotFatal(t *testing.T) {
	dramaRepo := new(MockDramaRepo)
	scraper := new(MockScraper)
	svc := NewDramaService(dramaRepo, new(MockPostRepo), scraper)

	dramaRepo.On("Count", mock.Anything).Return(int64(0), nil)
	scraper.On("Fetch", mock.Anything).Return(nil, errors.New("upstream unreachable"))
	dramaRepo.On("List", mock.Anything).Return([]*model.Drama{}, nil)

	result, err := svc.ListDramas(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestGetDrama_WithPosts(t *testing.T) {
	dramaRepo := new(MockDramaRepo)
	postRepo := new(MockPostRepo)
	svc := NewDramaService(dramaRepo, postRepo, new(MockScraper))

	dramaRepo.On("GetBySlug", mock.Anything, "goblin").
		Return(&model.Drama{Slug: "goblin", Title: "goblin", MemberCount: 33}, nil)
	postRepo.On("ListPostsByDrama", mock.Anything, "goblin").
		Return([]*model.Post{{Title: "finale"}}, nil)

	result, err := svc.GetDrama(context.Background(), "goblin")

	assert.NoError(t, err)
	assert.Equal(t, int64(33), result.MemberCount)
	assert.Len(t, result.Posts, 1)
}

func TestGetDrama_NotFound(t *testing.T) {
	dramaRepo := new(MockDramaRepo)
	dramaRepo.On("GetBySlug", mock.Anything, "nope").Return(nil, nil)
	svc := NewDramaService(dramaRepo, new(MockPostRepo), new(MockScraper))

	_, err := svc.GetDrama(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrDramaNotFound)
}
