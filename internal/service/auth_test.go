package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Angelina20062025/WebMusicShop/internal/repository"
)

func newAuthService(t *testing.T) (*AuthService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAuthService(repository.NewUserRepository(db), "test-secret"), mock
}

func userRow(t *testing.T, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return sqlmock.NewRows([]string{"id", "email", "password", "username", "role", "full_name"}).
		AddRow(1, "admin@shop.dev", string(hash), "admin", "admin", "Shop Admin")
}

func TestLoginSuccess(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery("SELECT id, email, password").
		WithArgs("admin@shop.dev").
		WillReturnRows(userRow(t, "correct horse"))

	user, token, err := svc.Login(context.Background(), "admin@shop.dev", "correct horse")
	require.NoError(t, err)
	require.Equal(t, "admin", user.Username)
	require.NotEmpty(t, token)
}

// Login must answer identically whether the account is missing or the
// password is wrong, so the endpoint cannot be used to enumerate accounts.
func TestLoginFailureIsUniform(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery("SELECT id, email, password").
		WithArgs("nobody@shop.dev").
		WillReturnError(sql.ErrNoRows)
	_, _, errMissing := svc.Login(context.Background(), "nobody@shop.dev", "whatever")

	mock.ExpectQuery("SELECT id, email, password").
		WithArgs("admin@shop.dev").
		WillReturnRows(userRow(t, "correct horse"))
	_, _, errWrongPass := svc.Login(context.Background(), "admin@shop.dev", "wrong")

	require.ErrorIs(t, errMissing, ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	require.Equal(t, errMissing.Error(), errWrongPass.Error())
}

func TestLoginRequiresCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Login(context.Background(), "", "pass")
	require.True(t, IsValidation(err))

	_, _, err = svc.Login(context.Background(), "a@b.c", "")
	require.True(t, IsValidation(err))
}
