package repository

import (
	"Dramaboard/internal/model"
	"Dramaboard/internal/pkg/consts"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DramaRepo interface {
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, dramas []*model.Drama) error
	List(ctx context.Context) ([]*model.Drama, error)
	GetBySlug(ctx context.Context, slug string) (*model.Drama, error)
	IncMemberCount(ctx context.Context, slug string, delta int64) (int64, bool, error)
	SetMemberCount(ctx context.Context, slug string, count int64) error
}

type dramaRepoImpl struct {
	col *mongo.Collection
}

func NewDramaRepo(db *mongo.Database) DramaRepo {
	return &dramaRepoImpl{
		col: db.Collection(consts.CollectionDramas),
	}
}

func (s *dramaRepoImpl) Count(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{})
}

func (s *dramaRepoImpl) InsertMany(ctx context.Context, dramas []*model.Drama) error {
	if len(dramas) == 0 {
		return nil
	}

	docs := make([]interface{}, len(dramas))
	for i, d := range dramas {
		docs[i] = d
	}

	_, err := s.col.InsertMany(ctx, docs)
	return err
}

func (s *dramaRepoImpl) List(ctx context.Context) ([]*model.Drama, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "title", Value: 1}})

	cursor, err := s.col.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var dramas []*model.Drama
	if err := cursor.All(ctx, &dramas); err != nil {
		return nil, err
	}
	return dramas, nil
}

func (s *dramaRepoImpl) GetBySlug(ctx context.Context, slug string) (*model.Drama, error) {
	var drama model.Drama
	err := s.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&drama)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &drama, nil
}

// IncMemberCount 调整成员计数并返回新值。递减带 member_count > 0 守卫，
// 计数永不为负；守卫未命中但剧集存在时返回当前计数。
func (s *dramaRepoImpl) IncMemberCount(ctx context.Context, slug string, delta int64) (int64, bool, error) {
	filter := bson.M{"slug": slug}
	if delta < 0 {
		filter["member_count"] = bson.M{"$gt": int64(0)}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated struct {
		MemberCount int64 `bson:"member_count"`
	}
	err := s.col.FindOneAndUpdate(ctx, filter, bson.M{"$inc": bson.M{"member_count": delta}}, opts).Decode(&updated)
	if err == nil {
		return updated.MemberCount, true, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return 0, false, err
	}

	// 守卫挡住了递减，或剧集不存在
	drama, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return 0, false, err
	}
	if drama == nil {
		return 0, false, nil
	}
	return drama.MemberCount, true, nil
}

func (s *dramaRepoImpl) SetMemberCount(ctx context.Context, slug string, count int64) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"slug": slug}, bson.M{"$set": bson.M{"member_count": count}})
	return err
}
