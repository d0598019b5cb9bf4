package job

import (
	"Dramaboard/internal/pkg/consts"
	"Dramaboard/internal/pkg/logger"
	"Dramaboard/internal/pkg/redis"
	"Dramaboard/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// LedgerAuditJob 每日核对两类台账：成员计数与投票总分。
// 多实例部署时通过 Redis 锁保证同一轮只有一个实例执行。
type LedgerAuditJob struct {
	membershipService service.MembershipService
	voteService       service.VoteService
}

func NewLedgerAuditJob(membershipService service.MembershipService, voteService service.VoteService) *LedgerAuditJob {
	return &LedgerAuditJob{
		membershipService: membershipService,
		voteService:       voteService,
	}
}

func (s *LedgerAuditJob) Run() {
	traceID := "job-ledger-audit-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	locked, err := redis.TryLock(ctx, consts.LedgerAuditLock, traceID, 30*time.Minute, 1)
	if err != nil {
		log.ErrorContext(ctx, "acquire ledger audit lock error", "err", err)
		return
	}
	if !locked {
		log.InfoContext(ctx, "ledger audit already running elsewhere, skip")
		return
	}
	defer redis.UnLock(ctx, consts.LedgerAuditLock, traceID)

	start := time.Now()
	log.InfoContext(ctx, "LedgerAuditJob starting")

	memberRepaired, err := s.membershipService.AuditMemberCounts(ctx)
	if err != nil {
		log.ErrorContext(ctx, "audit member counts error", "err", err)
	}

	voteRepaired, err := s.voteService.AuditVoteTotals(ctx)
	if err != nil {
		log.ErrorContext(ctx, "audit vote totals error", "err", err)
	}

	log.InfoContext(ctx, "LedgerAuditJob finished",
		"member_repaired", memberRepaired,
		"vote_repaired", voteRepaired,
		"elapsed", time.Since(start),
	)
}
