package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"stockroom/internal/config"
	"stockroom/internal/domain"
	"stockroom/internal/dto"
	apperrors "stockroom/internal/errors"
)

const minPasswordLength = 6

type Repository interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user domain.User) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
}

type claims struct {
	UserID   int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService struct {
	repo       Repository
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
	now        func() time.Time
}

func NewAuthService(repo Repository, cfg config.AuthConfig) *AuthService {
	return &AuthService{
		repo:       repo,
		secret:     []byte(cfg.JWTSecret),
		tokenTTL:   cfg.TokenTTL,
		bcryptCost: cfg.BcryptCost,
		now:        time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByUsername(ctx, req.Username); err == nil {
		return nil, apperrors.NewConflictError("username already exists")
	}
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.NewConflictError("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError("hashing password", err)
	}

	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}

	user := domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    s.now().UTC(),
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.signToken(*created)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserDTO(*created)}, nil
}

// Login verifies credentials. Unknown usernames and wrong passwords produce
// the same error so the response does not leak which accounts exist.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("username and password are required")
	}

	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid username or password")
	}

	token, err := s.signToken(*user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserDTO(*user)}, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, callerID int) (*dto.UserDTO, error) {
	user, err := s.repo.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	result := dto.NewUserDTO(*user)
	return &result, nil
}

func (s *AuthService) ListUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		items = append(items, dto.NewUserDTO(u))
	}
	return &dto.UserListResponse{Users: items, Count: len(items)}, nil
}

// VerifyToken parses a signed token and returns the caller identity it
// carries. Any parsing or signature failure is an authorization failure.
func (s *AuthService) VerifyToken(tokenString string) (*domain.Caller, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.NewUnauthorizedError("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apperrors.NewUnauthorizedError("invalid or expired token")
	}

	c, ok := parsed.Claims.(*claims)
	if !ok {
		return nil, apperrors.NewUnauthorizedError("invalid token claims")
	}

	return &domain.Caller{
		ID:       c.UserID,
		Username: c.Username,
		Role:     c.Role,
	}, nil
}

func (s *AuthService) signToken(user domain.User) (string, error) {
	now := s.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperrors.NewInternalError("signing token", err)
	}
	return signed, nil
}

func validateRegisterRequest(req dto.RegisterRequest) error {
	var details []apperrors.ValidationDetail

	if req.Username == "" {
		details = append(details, apperrors.ValidationDetail{Field: "username", Message: "username is required"})
	}
	if req.Password == "" {
		details = append(details, apperrors.ValidationDetail{Field: "password", Message: "password is required"})
	} else if len(req.Password) < minPasswordLength {
		details = append(details, apperrors.ValidationDetail{Field: "password", Message: "password must be at least 6 characters long"})
	}
	if req.Email == "" {
		details = append(details, apperrors.ValidationDetail{Field: "email", Message: "email is required"})
	}
	if req.Role != "" && req.Role != domain.RoleAdmin && req.Role != domain.RoleUser {
		details = append(details, apperrors.ValidationDetail{Field: "role", Message: "role must be admin or user"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}
