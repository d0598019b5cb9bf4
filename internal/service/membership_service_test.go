package service

import (
	"Dramaboard/internal/model"
	"Dramaboard/internal/pkg/color"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSlug = "crash-landing-on-you"

func TestSetMembership_JoinThenLeave(t *testing.T) {
	uid := primitive.NewObjectID()
	userID := uid.Hex()

	tests := []struct {
		name      string
		action    string
		changed   bool
		delta     int64
		newCount  int64
		freshRead int64
		wantCount int64
		wantIs    bool
	}{
		{name: "首次加入计数加一", action: "join", changed: true, delta: 1, newCount: 1, wantCount: 1, wantIs: true},
		{name: "重复加入计数不变", action: "join", changed: false, freshRead: 1, wantCount: 1, wantIs: true},
		{name: "退出计数减一", action: "leave", changed: true, delta: -1, newCount: 0, wantCount: 0, wantIs: false},
		{name: "重复退出计数不变", action: "leave", changed: false, freshRead: 0, wantCount: 0, wantIs: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepo)
			dramaRepo := new(MockDramaRepo)
			svc := NewMembershipService(userRepo, dramaRepo)

			dramaRepo.On("GetBySlug", mock.Anything, testSlug).
				Return(&model.Drama{Slug: testSlug, MemberCount: tt.freshRead}, nil)

			if tt.action == "join" {
				userRepo.On("AddMembership", mock.Anything, uid, mock.AnythingOfType("model.DramaMembership")).
					Return(tt.changed, nil)
			} else {
				userRepo.On("RemoveMembership", mock.Anything, uid, testSlug).
					Return(tt.changed, nil)
			}
			if tt.changed {
				dramaRepo.On("IncMemberCount", mock.Anything, testSlug, tt.delta).
					Return(tt.newCount, true, nil)
			}

			result, err := svc.SetMembership(context.Background(), testSlug, userID, tt.action)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantCount, result.MemberCount)
			assert.Equal(t, tt.wantIs, result.IsMember)
			assert.NotEmpty(t, result.Color)
			userRepo.AssertExpectations(t)
			dramaRepo.AssertExpectations(t)
		})
	}
}

func TestSetMembership_JoinRecordsColor(t *testing.T) {
	uid := primitive.NewObjectID()
	userRepo := new(MockUserRepo)
	dramaRepo := new(MockDramaRepo)
	svc := NewMembershipService(userRepo, dramaRepo)

	dramaRepo.On("GetBySlug", mock.Anything, testSlug).
		Return(&model.Drama{Slug: testSlug}, nil)
	userRepo.On("AddMembership", mock.Anything, uid, mock.MatchedBy(func(m model.DramaMembership) bool {
		return m.Slug == testSlug && m.Color != "" && !m.JoinedAt.IsZero()
	})).Return(true, nil)
	dramaRepo.On("IncMemberCount", mock.Anything, testSlug, int64(1)).
		Return(int64(1), true, nil)

	result, err := svc.SetMembership(context.Background(), testSlug, uid.Hex(), "join")

	assert.NoError(t, err)
	// 相同 slug 的颜色在任何路径上都一致
	assert.Equal(t, color.HSLFor(testSlug), result.Color)
	userRepo.AssertExpectations(t)
}

func TestSetMembership_InvalidAction(t *testing.T) {
	svc := NewMembershipService(new(MockUserRepo), new(MockDramaRepo))

	_, err := svc.SetMembership(context.Background(), testSlug, primitive.NewObjectID().Hex(), "subscribe")

	assert.ErrorIs(t, err, ErrActionInvalid)
}

func TestSetMembership_DramaNotFound(t *testing.T) {
	dramaRepo := new(MockDramaRepo)
	dramaRepo.On("GetBySlug", mock.Anything, "nope").Return(nil, nil)
	svc := NewMembershipService(new(MockUserRepo), dramaRepo)

	_, err := svc.SetMembership(context.Background(), "nope", primitive.NewObjectID().Hex(), "join")

	assert.ErrorIs(t, err, ErrDramaNotFound)
}

func TestCheckMembership_Anonymous(t *testing.T) {
	dramaRepo := new(MockDramaRepo)
	dramaRepo.On("GetBySlug", mock.Anything, testSlug).
		Return(&model.Drama{Slug: testSlug, MemberCount: 42}, nil)
	svc := NewMembershipService(new(MockUserRepo), dramaRepo)

	result, err := svc.CheckMembership(context.Background(), testSlug, "")

	assert.NoError(t, err)
	assert.False(t, result.IsMember)
	assert.Equal(t, int64(42), result.MemberCount)
}

func TestCheckMembership_Member(t *testing.T) {
	uid := primitive.NewObjectID()
	userRepo := new(MockUserRepo)
	dramaRepo := new(MockDramaRepo)
	dramaRepo.On("GetBySlug", mock.Anything, testSlug).
		Return(&model.Drama{Slug: testSlug, MemberCount: 7}, nil)
	userRepo.On("HasMembership", mock.Anything, uid, testSlug).Return(true, nil)
	svc := NewMembershipService(userRepo, dramaRepo)

	result, err := svc.CheckMembership(context.Background(), testSlug, uid.Hex())

	assert.NoError(t, err)
	assert.True(t, result.IsMember)
	assert.Equal(t, int64(7), result.MemberCount)
}

func TestAuditMemberCounts_RepairsDrift(t *testing.T) {
	userRepo := new(MockUserRepo)
	dramaRepo := new(MockDramaRepo)
	dramaRepo.On("List", mock.Anything).Return([]*model.Drama{
		{Slug: "goblin", MemberCount: 10},
		{Slug: "signal", MemberCount: 5},
	}, nil)
	userRepo.On("CountMembers", mock.Anything, "goblin").Return(int64(10), nil)
	userRepo.On("CountMembers", mock.Anything, "signal").Return(int64(3), nil)
	dramaRepo.On("SetMemberCount", mock.Anything, "signal", int64(3)).Return(nil)
	svc := NewMembershipService(userRepo, dramaRepo)

	corrected, err := svc.AuditMemberCounts(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, corrected)
	dramaRepo.AssertExpectations(t)
}
