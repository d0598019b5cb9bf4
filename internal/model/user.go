package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	JoinedDramas []DramaMembership  `bson:"joined_dramas,omitempty" json:"joined_dramas,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// DramaMembership 内嵌在 users.joined_dramas 数组中，每个 (user, slug) 至多一条
type DramaMembership struct {
	Slug     string    `bson:"slug" json:"slug"`
	JoinedAt time.Time `bson:"joined_at" json:"joined_at"`
	Color    string    `bson:"color" json:"color"`
}
