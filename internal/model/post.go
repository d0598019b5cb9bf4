package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Author    AuthorRef          `bson:"author" json:"author"`
	DramaSlug string             `bson:"drama_slug,omitempty" json:"drama_slug,omitempty"`
	Votes     int                `bson:"votes" json:"votes"`
	Voters    []Vote             `bson:"voters" json:"voters"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	EditedAt  *time.Time         `bson:"edited_at,omitempty" json:"edited_at,omitempty"`
}

// AuthorRef 作者冗余引用，创建时从登录态写入
type AuthorRef struct {
	ID       string `bson:"id" json:"id"`
	Username string `bson:"username" json:"username"`
}

// Vote 每个用户在同一文档的 voters 数组中至多一条；votes 恒等于 voters[].vote 之和
type Vote struct {
	UserID string `bson:"user_id" json:"user_id"`
	Vote   int    `bson:"vote" json:"vote"`
}
