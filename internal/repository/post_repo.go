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

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) (*model.Post, error)
	GetPost(ctx context.Context, id primitive.ObjectID) (*model.Post, error)
	ListPosts(ctx context.Context) ([]*model.Post, error)
	ListPostsByDrama(ctx context.Context, slug string) ([]*model.Post, error)
	UpdatePostContent(ctx context.Context, id primitive.ObjectID, title, content string, editedAt time.Time) (bool, error)
	DeletePost(ctx context.Context, id primitive.ObjectID) (bool, error)

	ApplyVote(ctx context.Context, id primitive.ObjectID, userID string, direction int) (int, bool, error)

	CountByAuthor(ctx context.Context, authorID string) (int64, error)
	SumVotesByAuthor(ctx context.Context, authorID string) (int64, error)
	FindVoteMismatches(ctx context.Context) ([]*model.Post, error)
}

type postRepoImpl struct {
	col *mongo.Collection
}

func NewPostRepo(db *mongo.Database) PostRepo {
	return &postRepoImpl{
		col: db.Collection(consts.CollectionPosts),
	}
}

func (s *postRepoImpl) CreatePost(ctx context.Context, post *model.Post) (*model.Post, error) {
	res, err := s.col.InsertOne(ctx, post)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return post, nil
}

func (s *postRepoImpl) GetPost(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	var post model.Post
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *postRepoImpl) ListPosts(ctx context.Context) ([]*model.Post, error) {
	return s.findSorted(ctx, bson.M{})
}

func (s *postRepoImpl) ListPostsByDrama(ctx context.Context, slug string) ([]*model.Post, error) {
	return s.findSorted(ctx, bson.M{"drama_slug": slug})
}

// findSorted 统一按创建时间倒序返回
func (s *postRepoImpl) findSorted(ctx context.Context, filter bson.M) ([]*model.Post, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var posts []*model.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *postRepoImpl) UpdatePostContent(ctx context.Context, id primitive.ObjectID, title, content string, editedAt time.Time) (bool, error) {
	update := bson.M{"$set": bson.M{
		"title":     title,
		"content":   content,
		"edited_at": editedAt,
	}}

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *postRepoImpl) DeletePost(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// ApplyVote 单次原子更新内完成去重写入与总票数重算：先从 voters 过滤掉该
// 用户的旧票，direction 非 0 时追加新票，再把 votes 改写为 voters[].vote
// 之和。votes 与 voters 不可能被观察到不一致。返回更新后的总票数。
func (s *postRepoImpl) ApplyVote(ctx context.Context, id primitive.ObjectID, userID string, direction int) (int, bool, error) {
	total, found, err := applyVote(ctx, s.col, id, userID, direction)
	return total, found, err
}

func (s *postRepoImpl) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"author.id": authorID})
}

// SumVotesByAuthor 该作者全部帖子收到的票数合计
func (s *postRepoImpl) SumVotesByAuthor(ctx context.Context, authorID string) (int64, error) {
	pipeline := bson.A{
		bson.M{"$match": bson.M{"author.id": authorID}},
		bson.M{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$votes"},
		}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// FindVoteMismatches 找出 votes 与 voters 求和不一致的帖子，仅审计用
func (s *postRepoImpl) FindVoteMismatches(ctx context.Context) ([]*model.Post, error) {
	filter := bson.M{"$expr": bson.M{"$ne": bson.A{
		"$votes",
		bson.M{"$sum": "$voters.vote"},
	}}}

	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var posts []*model.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// applyVote posts 与 comments 共用的投票更新管道
func applyVote(ctx context.Context, col *mongo.Collection, id primitive.ObjectID, userID string, direction int) (int, bool, error) {
	filtered := bson.M{"$filter": bson.M{
		"input": bson.M{"$ifNull": bson.A{"$voters", bson.A{}}},
		"as":    "v",
		"cond":  bson.M{"$ne": bson.A{"$$v.user_id", userID}},
	}}

	var newVoters interface{} = filtered
	if direction != 0 {
		newVoters = bson.M{"$concatArrays": bson.A{
			filtered,
			bson.A{bson.M{"user_id": userID, "vote": direction}},
		}}
	}

	pipeline := bson.A{
		bson.M{"$set": bson.M{"voters": newVoters}},
		bson.M{"$set": bson.M{"votes": bson.M{"$sum": "$voters.vote"}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated struct {
		Votes int `bson:"votes"`
	}
	err := col.FindOneAndUpdate(ctx, bson.M{"_id": id}, pipeline, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return updated.Votes, true, nil
}
