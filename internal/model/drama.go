package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Drama 剧集社区，member_count 是 joined_dramas 集合的投影，集合为准
type Drama struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug        string             `bson:"slug" json:"slug"`
	Title       string             `bson:"title" json:"title"`
	ImageURL    string             `bson:"image_url" json:"image_url"`
	Link        string             `bson:"link" json:"link"`
	MemberCount int64              `bson:"member_count" json:"member_count"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
