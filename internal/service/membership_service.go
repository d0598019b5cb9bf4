package service

import (
	"Dramaboard/internal/api/dto"
	"Dramaboard/internal/model"
	"Dramaboard/internal/pkg/color"
	"Dramaboard/internal/pkg/consts"
	"Dramaboard/internal/pkg/keymutex"
	"Dramaboard/internal/repository"
	"context"
	log "log/slog"
	"time"
)

// MembershipService 成员账本：users.joined_dramas 集合是权威数据，
// dramas.member_count 只是投影。加入与退出都是幂等操作。
type MembershipService interface {
	SetMembership(ctx context.Context, slug, userID, action string) (*dto.MembershipDTO, error)
	CheckMembership(ctx context.Context, slug, userID string) (*dto.MembershipDTO, error)
	AuditMemberCounts(ctx context.Context) (int, error)
}

type membershipServiceImpl struct {
	userRepo  repository.UserRepo
	dramaRepo repository.DramaRepo
	locks     *keymutex.KeyMutex
}

func NewMembershipService(userRepo repository.UserRepo, dramaRepo repository.DramaRepo) MembershipService {
	return &membershipServiceImpl{
		userRepo:  userRepo,
		dramaRepo: dramaRepo,
		locks:     keymutex.New(),
	}
}

// SetMembership 集合写入与计数更新跨两个文档，按 (slug, user) 串行执行；
// 计数只在集合真正变化时调整，重复 join/leave 不影响计数
func (s *membershipServiceImpl) SetMembership(ctx context.Context, slug, userID, action string) (*dto.MembershipDTO, error) {
	if action != consts.MembershipActionJoin && action != consts.MembershipActionLeave {
		return nil, ErrActionInvalid
	}

	uid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	drama, err := s.dramaRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if drama == nil {
		return nil, ErrDramaNotFound
	}

	key := "membership:" + slug + ":" + userID
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	var changed bool
	if action == consts.MembershipActionJoin {
		changed, err = s.userRepo.AddMembership(ctx, uid, model.DramaMembership{
			Slug:     slug,
			JoinedAt: time.Now(),
			Color:    color.HSLFor(slug),
		})
	} else {
		changed, err = s.userRepo.RemoveMembership(ctx, uid, slug)
	}
	if err != nil {
		return nil, err
	}

	memberCount := drama.MemberCount
	if changed {
		delta := int64(1)
		if action == consts.MembershipActionLeave {
			delta = -1
		}

		count, found, err := s.dramaRepo.IncMemberCount(ctx, slug, delta)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, ErrDramaNotFound
		}
		memberCount = count
	} else {
		// 集合未变化时计数不动，读一次最新值即可
		fresh, err := s.dramaRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if fresh != nil {
			memberCount = fresh.MemberCount
		}
	}

	return &dto.MembershipDTO{
		IsMember:    action == consts.MembershipActionJoin,
		MemberCount: memberCount,
		Color:       color.HSLFor(slug),
	}, nil
}

// CheckMembership 纯读操作，无副作用
func (s *membershipServiceImpl) CheckMembership(ctx context.Context, slug, userID string) (*dto.MembershipDTO, error) {
	drama, err := s.dramaRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if drama == nil {
		return nil, ErrDramaNotFound
	}

	isMember := false
	if userID != "" {
		uid, err := parseObjectID(userID)
		if err != nil {
			return nil, err
		}
		isMember, err = s.userRepo.HasMembership(ctx, uid, slug)
		if err != nil {
			return nil, err
		}
	}

	return &dto.MembershipDTO{
		IsMember:    isMember,
		MemberCount: drama.MemberCount,
		Color:       color.HSLFor(slug),
	}, nil
}

// AuditMemberCounts 逐剧集用成员集合重算计数，修正漂移，返回修正条数
func (s *membershipServiceImpl) AuditMemberCounts(ctx context.Context) (int, error) {
	dramas, err := s.dramaRepo.List(ctx)
	if err != nil {
		return 0, err
	}

	corrected := 0
	for _, drama := range dramas {
		real, err := s.userRepo.CountMembers(ctx, drama.Slug)
		if err != nil {
			return corrected, err
		}
		if real == drama.MemberCount {
			continue
		}

		log.WarnContext(ctx, "Member count drift detected",
			"slug", drama.Slug,
			"counter", drama.MemberCount,
			"actual", real,
		)

		if err := s.dramaRepo.SetMemberCount(ctx, drama.Slug, real); err != nil {
			return corrected, err
		}
		corrected++
	}
	return corrected, nil
}
