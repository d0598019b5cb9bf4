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
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByUsernameOrEmail(ctx context.Context, credential string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	AddMembership(ctx context.Context, userID primitive.ObjectID, m model.DramaMembership) (bool, error)
	RemoveMembership(ctx context.Context, userID primitive.ObjectID, slug string) (bool, error)
	HasMembership(ctx context.Context, userID primitive.ObjectID, slug string) (bool, error)
	GetMemberships(ctx context.Context, userID primitive.ObjectID) ([]model.DramaMembership, error)
	CountMembers(ctx context.Context, slug string) (int64, error)
}

type userRepoImpl struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepo {
	return &userRepoImpl{
		col: db.Collection(consts.CollectionUsers),
	}
}

func (s *userRepoImpl) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	user.CreatedAt = time.Now()
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return user, nil
}

func (s *userRepoImpl) GetUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsernameOrEmail 同一个凭证字段同时匹配用户名与邮箱
func (s *userRepoImpl) FindByUsernameOrEmail(ctx context.Context, credential string) (*model.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": credential},
		bson.M{"email": credential},
	}}

	var user model.User
	err := s.col.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *userRepoImpl) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}

	count, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddMembership 集合语义加入：过滤条件排除已持有该 slug 的用户，
// 重复加入不会产生第二条记录。返回值表示本次是否真正写入。
func (s *userRepoImpl) AddMembership(ctx context.Context, userID primitive.ObjectID, m model.DramaMembership) (bool, error) {
	filter := bson.M{
		"_id":                userID,
		"joined_dramas.slug": bson.M{"$ne": m.Slug},
	}
	update := bson.M{"$push": bson.M{"joined_dramas": m}}

	res, err := s.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// RemoveMembership 返回值表示本次是否真正移除了成员关系
func (s *userRepoImpl) RemoveMembership(ctx context.Context, userID primitive.ObjectID, slug string) (bool, error) {
	filter := bson.M{"_id": userID}
	update := bson.M{"$pull": bson.M{"joined_dramas": bson.M{"slug": slug}}}

	res, err := s.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (s *userRepoImpl) HasMembership(ctx context.Context, userID primitive.ObjectID, slug string) (bool, error) {
	filter := bson.M{
		"_id":                userID,
		"joined_dramas.slug": slug,
	}

	count, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *userRepoImpl) GetMemberships(ctx context.Context, userID primitive.ObjectID) ([]model.DramaMembership, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return user.JoinedDramas, nil
}

// CountMembers 以成员集合为准统计某剧集的真实成员数，审计时用来校正计数器
func (s *userRepoImpl) CountMembers(ctx context.Context, slug string) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"joined_dramas.slug": slug})
}
