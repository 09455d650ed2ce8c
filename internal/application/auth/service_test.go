package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-story-api/internal/domain/entity"
	"ai-story-api/internal/domain/repository"
	apperrors "ai-story-api/pkg/errors"
)

// mockUserRepo 内存版用户仓储
type mockUserRepo struct {
	users     map[string]*entity.User // username → user
	createErr error
	nextID    uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*entity.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *entity.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, u := range m.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicateKey
		}
	}
	m.nextID++
	user.ID = m.nextID
	m.users[user.Username] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*entity.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return m.users[username], nil
}

func (m *mockUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range m.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func messageOf(t *testing.T, err error) (string, apperrors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	return appErr.Message, appErr.Code
}

func TestService_Register(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	user, err := svc.Register(t.Context(), "  alice  ", " alice@example.com ", "secret1")
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username, "用户名应去除首尾空白")
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.True(t, user.CheckPassword("secret1"))
}

func TestService_RegisterValidation(t *testing.T) {
	svc := NewService(newMockUserRepo())

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantMsg  string
	}{
		{"missing username", "", "a@b.com", "secret1", "请填写所有字段"},
		{"missing email", "alice", "", "secret1", "请填写所有字段"},
		{"missing password", "alice", "a@b.com", "", "请填写所有字段"},
		{"blank username", "   ", "a@b.com", "secret1", "请填写所有字段"},
		{"short password", "alice", "a@b.com", "12345", "密码至少6位"},
		{"short multibyte password", "alice", "a@b.com", "密码密码", "密码至少6位"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(t.Context(), tt.username, tt.email, tt.password)
			msg, code := messageOf(t, err)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Equal(t, apperrors.CodeInvalidParam, code)
		})
	}
}

func TestService_RegisterMultibytePasswordLength(t *testing.T) {
	// 密码长度按字符计：4 个汉字（12 字节）不足 6 位
	svc := NewService(newMockUserRepo())

	_, err := svc.Register(t.Context(), "bob", "bob@example.com", "密码密码")
	msg, code := messageOf(t, err)
	assert.Equal(t, "密码至少6位", msg)
	assert.Equal(t, apperrors.CodeInvalidParam, code)

	user, err := svc.Register(t.Context(), "bob", "bob@example.com", "密码密码密码")
	require.NoError(t, err)
	assert.True(t, user.CheckPassword("密码密码密码"))
}

func TestService_RegisterConflict(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	_, err := svc.Register(t.Context(), "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	// 同名与同邮箱均视为冲突
	for _, args := range [][2]string{
		{"alice", "other@example.com"},
		{"bob", "alice@example.com"},
	} {
		_, err := svc.Register(t.Context(), args[0], args[1], "secret1")
		msg, code := messageOf(t, err)
		assert.Equal(t, "用户名或邮箱已存在", msg)
		assert.Equal(t, apperrors.CodeConflict, code)
	}
}

func TestService_RegisterDuplicateKeyRace(t *testing.T) {
	// 预检查未命中但唯一索引冲突（并发注册），应返回同样的冲突错误
	repo := newMockUserRepo()
	repo.createErr = repository.ErrDuplicateKey
	svc := NewService(repo)

	_, err := svc.Register(t.Context(), "alice", "alice@example.com", "secret1")
	msg, code := messageOf(t, err)
	assert.Equal(t, "用户名或邮箱已存在", msg)
	assert.Equal(t, apperrors.CodeConflict, code)
}

func TestService_Authenticate(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	_, err := svc.Register(t.Context(), "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	user, err := svc.Authenticate(t.Context(), "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	user, err = svc.Authenticate(t.Context(), " alice ", "secret1")
	require.NoError(t, err, "用户名应去除首尾空白")
	assert.Equal(t, "alice", user.Username)
}

func TestService_AuthenticateFailure(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	_, err := svc.Register(t.Context(), "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	// 用户不存在与密码错误不可区分
	for _, args := range [][2]string{
		{"alice", "wrong-password"},
		{"nobody", "secret1"},
	} {
		_, err := svc.Authenticate(t.Context(), args[0], args[1])
		msg, code := messageOf(t, err)
		assert.Equal(t, "用户名或密码错误", msg)
		assert.Equal(t, apperrors.CodeUnauthorized, code)
	}
}
