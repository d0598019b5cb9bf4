package service

import (
	"Dramaboard/internal/api/dto"
	"Dramaboard/internal/model"
	"Dramaboard/internal/pkg/consts"
	"Dramaboard/internal/pkg/redis"
	"Dramaboard/internal/pkg/security"
	"Dramaboard/internal/repository"
	"context"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, credDTO *dto.CredentialDTO) (string, *dto.UserDTO, error)
	Logout(ctx context.Context, token string) error
	GetStats(ctx context.Context, userID string) (*dto.UserStatsDTO, error)
	GetJoinedDramas(ctx context.Context, userID string) ([]*dto.JoinedDramaDTO, error)
}

type userServiceImpl struct {
	userRepo    repository.UserRepo
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
	dramaRepo   repository.DramaRepo
}

func NewUserService(
	userRepo repository.UserRepo,
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	dramaRepo repository.DramaRepo,
) UserService {
	return &userServiceImpl{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		dramaRepo:   dramaRepo,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, regDTO.Username, regDTO.Email)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: regDTO.Username,
		Email:    regDTO.Email,
		Password: passwordHash,
	}

	_, err = s.userRepo.CreateUser(ctx, user)
	return err
}

// Login 凭证字段同时接受用户名或邮箱，校验通过后签发 JWT
func (s *userServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (string, *dto.UserDTO, error) {
	user, err := s.userRepo.FindByUsernameOrEmail(ctx, credDTO.Username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrPasswordIncorrect
	}

	if err = security.CheckPasswordHash(credDTO.Password, user.Password); err != nil {
		return "", nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID.Hex())
	if err != nil {
		return "", nil, err
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return "", nil, err
	}
	userDTO.ID = user.ID.Hex()

	return token, userDTO, nil
}

// Logout 将 Token 签名写入黑名单，有效期与 Token 剩余寿命上限一致
func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, consts.TokenDenyKey+signature, true, security.JWTExpirationTime)
}

func (s *userServiceImpl) GetStats(ctx context.Context, userID string) (*dto.UserStatsDTO, error) {
	if _, err := parseObjectID(userID); err != nil {
		return nil, err
	}

	postCount, err := s.postRepo.CountByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	commentCount, err := s.commentRepo.CountByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalVotes, err := s.postRepo.SumVotesByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.UserStatsDTO{
		Posts:      postCount,
		Comments:   commentCount,
		TotalVotes: totalVotes,
	}, nil
}

// GetJoinedDramas 按成员关系取完整剧集详情并附加加入时间；目录里已不存在的
// slug 直接跳过
func (s *userServiceImpl) GetJoinedDramas(ctx context.Context, userID string) ([]*dto.JoinedDramaDTO, error) {
	uid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	memberships, err := s.userRepo.GetMemberships(ctx, uid)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.JoinedDramaDTO, 0, len(memberships))
	for _, m := range memberships {
		drama, err := s.dramaRepo.GetBySlug(ctx, m.Slug)
		if err != nil {
			return nil, err
		}
		if drama == nil {
			continue
		}

		result = append(result, &dto.JoinedDramaDTO{
			DramaDTO: *toDramaDTO(drama),
			JoinedAt: m.JoinedAt,
			Color:    m.Color,
		})
	}

	return result, nil
}

// parseObjectID 统一把格式非法的 id 映射为参数错误
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrParamInvalid
	}
	return oid, nil
}
