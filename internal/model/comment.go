package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID    string             `bson:"post_id" json:"post_id"`
	Content   string             `bson:"content" json:"content"`
	Author    AuthorRef          `bson:"author" json:"author"`
	Votes     int                `bson:"votes" json:"votes"`
	Voters    []Vote             `bson:"voters" json:"voters"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	EditedAt  *time.Time         `bson:"edited_at,omitempty" json:"edited_at,omitempty"`
}
