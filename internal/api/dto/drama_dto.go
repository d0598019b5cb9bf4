package dto

import "time"

// DramaDTO 剧集社区视图
type DramaDTO struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	ImageURL    string    `json:"image_url"`
	Link        string    `json:"link"`
	MemberCount int64     `json:"member_count"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}

// DramaDetailDTO 剧集详情，附带帖子列表（新帖在前）
type DramaDetailDTO struct {
	DramaDTO `json:",inline"`
	Posts    []*PostDTO `json:"posts"`
}

// MembershipActionDTO 加入/退出请求
type MembershipActionDTO struct {
	Action string `json:"action" binding:"required"`
}

// MembershipDTO 成员关系状态
type MembershipDTO struct {
	IsMember    bool   `json:"is_member"`
	MemberCount int64  `json:"member_count"`
	Color       string `json:"color"`
}
