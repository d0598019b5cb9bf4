package service

import (
	"Dramaboard/internal/api/dto"
	"Dramaboard/internal/model"
	"Dramaboard/internal/pkg/consts"
	"Dramaboard/internal/pkg/keymutex"
	"Dramaboard/internal/repository"
	"context"
	log "log/slog"
)

// VoteService 计票账本：每个用户对同一目标至多一票，重复投同方向视为撤票，
// 投反方向视为改票。帖子与评论共用同一套语义。
type VoteService interface {
	CastPostVote(ctx context.Context, postID, userID string, direction int) (*dto.VoteResultDTO, error)
	CastCommentVote(ctx context.Context, commentID, userID string, direction int) (*dto.VoteResultDTO, error)
	AuditVoteTotals(ctx context.Context) (int, error)
}

type voteServiceImpl struct {
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
	locks       *keymutex.KeyMutex
}

func NewVoteService(postRepo repository.PostRepo, commentRepo repository.CommentRepo) VoteService {
	return &voteServiceImpl{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		locks:       keymutex.New(),
	}
}

func (s *voteServiceImpl) CastPostVote(ctx context.Context, postID, userID string, direction int) (*dto.VoteResultDTO, error) {
	if !validDirection(direction) {
		return nil, ErrVoteInvalid
	}

	oid, err := parseObjectID(postID)
	if err != nil {
		return nil, err
	}

	// 同一帖子的读改写串行执行
	key := "vote:post:" + postID
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	post, err := s.postRepo.GetPost(ctx, oid)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	effective := resolveDirection(post.Voters, userID, direction)

	total, found, err := s.postRepo.ApplyVote(ctx, oid, userID, effective)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrPostNotFound
	}

	return &dto.VoteResultDTO{TotalVotes: total, Direction: effective}, nil
}

func (s *voteServiceImpl) CastCommentVote(ctx context.Context, commentID, userID string, direction int) (*dto.VoteResultDTO, error) {
	if !validDirection(direction) {
		return nil, ErrVoteInvalid
	}

	oid, err := parseObjectID(commentID)
	if err != nil {
		return nil, err
	}

	key := "vote:comment:" + commentID
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	comment, err := s.commentRepo.GetComment(ctx, oid)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	effective := resolveDirection(comment.Voters, userID, direction)

	total, found, err := s.commentRepo.ApplyVote(ctx, oid, userID, effective)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrCommentNotFound
	}

	return &dto.VoteResultDTO{TotalVotes: total, Direction: effective}, nil
}

// AuditVoteTotals 找出 votes 与 voters 不一致的帖子并按投票集合修复。
// 单文档更新本身是原子的，正常情况下不应发现任何不一致。
func (s *voteServiceImpl) AuditVoteTotals(ctx context.Context) (int, error) {
	mismatched, err := s.postRepo.FindVoteMismatches(ctx)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, post := range mismatched {
		log.WarnContext(ctx, "Vote total mismatch detected",
			"post_id", post.ID.Hex(),
			"votes", post.Votes,
		)

		// 空 userID 不命中任何 voter，等价于只按集合重算 votes
		if _, _, err := s.postRepo.ApplyVote(ctx, post.ID, "", 0); err != nil {
			return repaired, err
		}
		repaired++
	}
	return repaired, nil
}

func validDirection(direction int) bool {
	return direction == consts.VoteDown || direction == consts.VoteRetract || direction == consts.VoteUp
}

// resolveDirection 实现重复点击撤票：当前已投方向与请求方向相同时转为撤票，
// 其余情况照请求执行
func resolveDirection(voters []model.Vote, userID string, direction int) int {
	if direction == 0 {
		return 0
	}
	for _, v := range voters {
		if v.UserID == userID && v.Vote == direction {
			return 0
		}
	}
	return direction
}
