package dto

import "time"

// PostCreateDTO 发帖
type PostCreateDTO struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	DramaSlug string `json:"drama_slug"`
}

// PostUpdateDTO 编辑帖子，仅作者可用
type PostUpdateDTO struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// AuthorDTO 作者引用
type AuthorDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// PostDTO 帖子视图，voters 不下发
type PostDTO struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Author    AuthorDTO  `json:"author"`
	DramaSlug string     `json:"drama_slug,omitempty"`
	Votes     int        `json:"votes"`
	CreatedAt time.Time  `json:"created_at"`
	EditedAt  *time.Time `json:"edited_at,omitempty"`
}
