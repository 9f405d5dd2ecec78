package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oseikofi/procure-track/internal/application/dto"
	"github.com/oseikofi/procure-track/internal/domain"
	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/pkg/config"
	"github.com/oseikofi/procure-track/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

type fakeDeptRepo struct{}

func (fakeDeptRepo) Create(*entity.Department) error { return nil }
func (fakeDeptRepo) GetByID(id string) (*entity.Department, error) {
	if id == "dept-it" {
		return &entity.Department{ID: id, Name: "Information Technology"}, nil
	}
	return nil, nil
}
func (fakeDeptRepo) List() ([]*entity.Department, error) { return nil, nil }
func (fakeDeptRepo) Update(*entity.Department) error     { return nil }

var testJWTCfg = config.JWTConfig{Secret: "test-secret", Expiration: 15, Issuer: "procure-track"}

func newTestUseCase() (*UseCase, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	return NewUseCase(userRepo, fakeDeptRepo{}, testJWTCfg), userRepo
}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username:     "jdoe",
		Password:     "password123",
		Email:        "jdoe@procure.com",
		FullName:     "Jane Doe",
		DepartmentID: "dept-it",
	}
}

func TestRegister(t *testing.T) {
	t.Run("defaults to general user and hashes the password", func(t *testing.T) {
		uc, userRepo := newTestUseCase()

		resp, err := uc.Register(context.Background(), registerReq())
		require.NoError(t, err)
		assert.Equal(t, entity.RoleGeneralUser, resp.Role)
		assert.NotEmpty(t, resp.ID)

		stored, _ := userRepo.GetByID(resp.ID)
		require.NotNil(t, stored)
		assert.NotEqual(t, "password123", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		uc, _ := newTestUseCase()
		req := registerReq()
		req.Role = "SUPERADMIN"

		_, err := uc.Register(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("requires an existing department", func(t *testing.T) {
		uc, _ := newTestUseCase()
		req := registerReq()
		req.DepartmentID = "dept-missing"

		_, err := uc.Register(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("username must be unique", func(t *testing.T) {
		uc, _ := newTestUseCase()
		_, err := uc.Register(context.Background(), registerReq())
		require.NoError(t, err)

		req := registerReq()
		req.Email = "other@procure.com"
		_, err = uc.Register(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("email must be unique", func(t *testing.T) {
		uc, _ := newTestUseCase()
		_, err := uc.Register(context.Background(), registerReq())
		require.NoError(t, err)

		req := registerReq()
		req.Username = "other"
		_, err = uc.Register(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	t.Run("issues a token carrying identity and role", func(t *testing.T) {
		uc, _ := newTestUseCase()
		registered, err := uc.Register(context.Background(), registerReq())
		require.NoError(t, err)

		resp, err := uc.Login(context.Background(), dto.LoginRequest{
			Username: "jdoe",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, resp.User.ID)

		userID, departmentID, role, err := jwt.Parse(testJWTCfg.Secret, resp.Token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, userID)
		assert.Equal(t, "dept-it", departmentID)
		assert.Equal(t, entity.RoleGeneralUser, role)
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		uc, _ := newTestUseCase()
		_, err := uc.Register(context.Background(), registerReq())
		require.NoError(t, err)

		_, errUnknown := uc.Login(context.Background(), dto.LoginRequest{
			Username: "ghost", Password: "password123",
		})
		_, errWrongPass := uc.Login(context.Background(), dto.LoginRequest{
			Username: "jdoe", Password: "wrong",
		})
		assert.ErrorIs(t, errUnknown, domain.ErrUnauthorized)
		assert.ErrorIs(t, errWrongPass, domain.ErrUnauthorized)
	})
}

func TestGetUser(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
