package dto

import "time"

// RegisterDTO 注册
type RegisterDTO struct {
	Username        string `json:"username" binding:"required" validate:"min=3,max=20"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required" validate:"min=6,max=72"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// CredentialDTO 登录凭证，username 字段同时接受用户名或邮箱
type CredentialDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserDTO 用户公开信息
type UserDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserStatsDTO 用户统计
type UserStatsDTO struct {
	Posts      int64 `json:"posts"`
	Comments   int64 `json:"comments"`
	TotalVotes int64 `json:"total_votes"`
}

// JoinedDramaDTO 已加入的剧集（剧集详情 + 加入时间）
type JoinedDramaDTO struct {
	DramaDTO `json:",inline"`
	JoinedAt time.Time `json:"joined_at"`
	Color    string    `json:"color"`
}
