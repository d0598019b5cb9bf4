package dto

import "time"

// CommentCreateDTO 发表评论
type CommentCreateDTO struct {
	PostID  string `json:"post_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CommentUpdateDTO 编辑评论，仅作者可用
type CommentUpdateDTO struct {
	Content string `json:"content" binding:"required"`
}

// CommentDTO 评论视图
type CommentDTO struct {
	ID        string     `json:"id"`
	PostID    string     `json:"post_id"`
	Content   string     `json:"content"`
	Author    AuthorDTO  `json:"author"`
	Votes     int        `json:"votes"`
	CreatedAt time.Time  `json:"created_at"`
	EditedAt  *time.Time `json:"edited_at,omitempty"`
}
