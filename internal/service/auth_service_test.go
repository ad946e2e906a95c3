package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teacher_portal_backend/internal/config"
	"teacher_portal_backend/internal/model"
	"teacher_portal_backend/internal/repository"
	"teacher_portal_backend/internal/util"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	repo := repository.NewUserRepository(db)
	return NewAuthService(repo, cfg), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	user := &model.User{
		Name:     "Teacher One",
		Email:    "one@school.test",
		Password: "s3cret-pass",
		Role:     model.RoleTeacher,
	}
	require.NoError(t, svc.Register(user))
	// 落库的是哈希，不是明文
	assert.NotEqual(t, "s3cret-pass", user.Password)

	token, err := svc.Login("one@school.test", "s3cret-pass")
	require.NoError(t, err)

	claims, err := util.ParseJWT(token, "unit-test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.RoleTeacher, claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	first := &model.User{Name: "A", Email: "dup@school.test", Password: "pw1"}
	require.NoError(t, svc.Register(first))

	second := &model.User{Name: "B", Email: "dup@school.test", Password: "pw2"}
	assert.ErrorIs(t, svc.Register(second), util.ErrEmailRegistered)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	user := &model.User{Name: "A", Email: "a@school.test", Password: "right"}
	require.NoError(t, svc.Register(user))

	_, err := svc.Login("a@school.test", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, err = svc.Login("nobody@school.test", "right")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}
