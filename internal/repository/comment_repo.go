package repository

import (
	"Dramaboard/internal/model"
	"Dramaboard/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	GetComment(ctx context.Context, id primitive.ObjectID) (*model.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]*model.Comment, error)
	UpdateCommentContent(ctx context.Context, id primitive.ObjectID, content string, editedAt time.Time) (bool, error)
	DeleteComment(ctx context.Context, id primitive.ObjectID) (bool, error)
	DeleteByPost(ctx context.Context, postID string) (int64, error)

	ApplyVote(ctx context.Context, id primitive.ObjectID, userID string, direction int) (int, bool, error)

	CountByAuthor(ctx context.Context, authorID string) (int64, error)
}

type commentRepoImpl struct {
	col *mongo.Collection
}

func NewCommentRepo(db *mongo.Database) CommentRepo {
	return &commentRepoImpl{
		col: db.Collection(consts.CollectionComments),
	}
}

func (s *commentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	res, err := s.col.InsertOne(ctx, comment)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		comment.ID = oid
	}
	return comment, nil
}

func (s *commentRepoImpl) GetComment(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	var comment model.Comment
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (s *commentRepoImpl) ListByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.col.Find(ctx, bson.M{"post_id": postID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var comments []*model.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *commentRepoImpl) UpdateCommentContent(ctx context.Context, id primitive.ObjectID, content string, editedAt time.Time) (bool, error) {
	update := bson.M{"$set": bson.M{
		"content":   content,
		"edited_at": editedAt,
	}}

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *commentRepoImpl) DeleteComment(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// DeleteByPost 帖子删除后连带清理其全部评论
func (s *commentRepoImpl) DeleteByPost(ctx context.Context, postID string) (int64, error) {
	res, err := s.col.DeleteMany(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ApplyVote 与帖子投票共用同一条原子更新管道
func (s *commentRepoImpl) ApplyVote(ctx context.Context, id primitive.ObjectID, userID string, direction int) (int, bool, error) {
	return applyVote(ctx, s.col, id, userID, direction)
}

func (s *commentRepoImpl) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"author.id": authorID})
}
