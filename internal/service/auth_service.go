//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_langlearn_quiz/internal/config"
	"go_langlearn_quiz/internal/middleware"
	"go_langlearn_quiz/internal/model"
	"go_langlearn_quiz/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error hashing password", "error", err)
		return nil, model.ErrInternalServer
	}

	user := &model.User{
		UserID:       uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, s.db, user); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("DUPLICATE_USER", "その名前またはメールアドレスは既に使われています。", "email", model.ErrConflict)
		}
		logger.Error("Error creating user", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("User registered", "user_id", user.UserID.String())
	return user, nil
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// ユーザーの存在有無を悟らせないよう、パスワード不一致と同じエラーを返す
			return nil, model.NewAppError("INVALID_CREDENTIALS", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrForbidden)
		}
		logger.Error("Error finding user for login", "error", err)
		return nil, model.ErrInternalServer
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.NewAppError("INVALID_CREDENTIALS", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrForbidden)
	}

	token, err := s.issueAccessToken(user.UserID)
	if err != nil {
		logger.Error("Error signing access token", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("User logged in", "user_id", user.UserID.String())
	return &model.LoginResponse{AccessToken: token}, nil
}

// issueAccessToken はHS256で署名したアクセストークンを発行します
func (s *authService) issueAccessToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(time.Duration(s.cfg.JWT.AccessTokenTTLMinutes) * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.SecretKey))
}
