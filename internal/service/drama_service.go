package service

import (
	"Dramaboard/internal/api/dto"
	"Dramaboard/internal/model"
	"Dramaboard/internal/pkg/catalog"
	"Dramaboard/internal/pkg/color"
	"Dramaboard/internal/repository"
	"context"
	log "log/slog"
	"sync"
	"time"

	"github.com/jinzhu/copier"
)

type DramaService interface {
	ListDramas(ctx context.Context) ([]*dto.DramaDTO, error)
	GetDrama(ctx context.Context, slug string) (*dto.DramaDetailDTO, error)
}

type dramaServiceImpl struct {
	dramaRepo repository.DramaRepo
	postRepo  repository.PostRepo
	scraper   catalog.Scraper
	seedMu    sync.Mutex
}

func NewDramaService(dramaRepo repository.DramaRepo, postRepo repository.PostRepo, scraper catalog.Scraper) DramaService {
	return &dramaServiceImpl{
		dramaRepo: dramaRepo,
		postRepo:  postRepo,
		scraper:   scraper,
	}
}

// ListDramas 目录为空时先做一次冷启动填充，之后永远只读本地目录。
// 填充失败只记日志，不影响读取。
func (s *dramaServiceImpl) ListDramas(ctx context.Context) ([]*dto.DramaDTO, error) {
	if err := s.seedIfEmpty(ctx); err != nil {
		log.WarnContext(ctx, "Drama catalog seeding failed", "err", err)
	}

	dramas, err := s.dramaRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DramaDTO, 0, len(dramas))
	for _, d := range dramas {
		result = append(result, toDramaDTO(d))
	}
	return result, nil
}

func (s *dramaServiceImpl) GetDrama(ctx context.Context, slug string) (*dto.DramaDetailDTO, error) {
	drama, err := s.dramaRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if drama == nil {
		return nil, ErrDramaNotFound
	}

	posts, err := s.postRepo.ListPostsByDrama(ctx, slug)
	if err != nil {
		return nil, err
	}

	return &dto.DramaDetailDTO{
		DramaDTO: *toDramaDTO(drama),
		Posts:    toPostDTOs(posts),
	}, nil
}

// seedIfEmpty 冷启动填充：仅当目录为空时抓一次外部源，不是同步任务
func (s *dramaServiceImpl) seedIfEmpty(ctx context.Context) error {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	count, err := s.dramaRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	entries, err := s.scraper.Fetch(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	now := time.Now()
	dramas := make([]*model.Drama, 0, len(entries))
	for _, e := range entries {
		dramas = append(dramas, &model.Drama{
			Slug:        e.Slug,
			Title:       e.Title,
			ImageURL:    e.ImageURL,
			Link:        e.Link,
			MemberCount: 0,
			CreatedAt:   now,
		})
	}

	if err := s.dramaRepo.InsertMany(ctx, dramas); err != nil {
		return err
	}

	log.InfoContext(ctx, "Drama catalog seeded", "count", len(dramas))
	return nil
}

func toDramaDTO(drama *model.Drama) *dto.DramaDTO {
	dramaDTO := &dto.DramaDTO{}
	_ = copier.Copy(dramaDTO, drama)
	dramaDTO.ID = drama.ID.Hex()
	dramaDTO.Color = color.HSLFor(drama.Slug)
	return dramaDTO
}
