package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/oseikofi/procure-track/internal/application/dto"
	"github.com/oseikofi/procure-track/internal/domain"
	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/internal/domain/repository"
	"github.com/oseikofi/procure-track/pkg/config"
	"github.com/oseikofi/procure-track/pkg/jwt"
)

// UseCase handles registration and login.
type UseCase struct {
	userRepo repository.UserRepository
	deptRepo repository.DepartmentRepository
	jwtCfg   config.JWTConfig
}

// NewUseCase builds the auth service.
func NewUseCase(userRepo repository.UserRepository, deptRepo repository.DepartmentRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, deptRepo: deptRepo, jwtCfg: jwtCfg}
}

// Register creates an account. Username and email must be unique; an absent
// role defaults to GENERAL_USER.
func (uc *UseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	role := req.Role
	if role == "" {
		role = entity.RoleGeneralUser
	}
	if !entity.ValidRole(role) {
		return nil, fmt.Errorf("unknown role %q: %w", role, domain.ErrInvalidInput)
	}

	dept, err := uc.deptRepo.GetByID(req.DepartmentID)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, fmt.Errorf("department %s: %w", req.DepartmentID, domain.ErrNotFound)
	}

	if existing, err := uc.userRepo.GetByUsername(req.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	if existing, err := uc.userRepo.GetByEmail(req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         role,
		DepartmentID: req.DepartmentID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// Login verifies credentials and issues a JWT. Unknown username and wrong
// password both come back as ErrUnauthorized so the response does not leak
// which one failed.
func (uc *UseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.DepartmentID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

// GetUser returns the public view of one account.
func (uc *UseCase) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FullName:     u.FullName,
		Role:         u.Role,
		DepartmentID: u.DepartmentID,
		CreatedAt:    u.CreatedAt,
	}
}
