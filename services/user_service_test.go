package services

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sasamoahkb/mood-tracker-app/models"
	"github.com/sasamoahkb/mood-tracker-app/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		want     string
	}{
		{"abc", "Password must be at least 8 characters"},
		{"alllowercase1", "Password must include an uppercase letter"},
		{"ALLUPPER1", "Password must include a lowercase letter"},
		{"NoDigitsHere", "Password must include a number"},
		{"ValidPass1", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, validatePassword(tc.password), "password %q", tc.password)
	}
}

func TestIsValidUsername(t *testing.T) {
	assert.False(t, isValidUsername("al"))
	assert.True(t, isValidUsername("ally"))
	assert.True(t, isValidUsername("abc"))
	assert.False(t, isValidUsername(""))
	assert.True(t, isValidUsername(strings.Repeat("a", 30)))
	assert.False(t, isValidUsername(strings.Repeat("a", 31)))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, isValidEmail("a@b.com"))
	assert.True(t, isValidEmail("user.name@example.co.uk"))
	assert.False(t, isValidEmail("not-an-email"))
	assert.False(t, isValidEmail("a@b"))
	assert.False(t, isValidEmail("a b@c.com"))
	assert.False(t, isValidEmail("@b.com"))
}

func TestCreateUserValidationOrder(t *testing.T) {
	svc := NewUserService(nil) // 校验失败时不会触碰数据库

	_, err := svc.CreateUser("al", "a@b.com", "Password1")
	require.NotNil(t, err)
	assert.Equal(t, ErrValidation, err.Kind)
	assert.Equal(t, "Username must be between 3 and 30 characters", err.Message)

	_, err = svc.CreateUser("ally", "bad-email", "Password1")
	require.NotNil(t, err)
	assert.Equal(t, "Invalid email format", err.Message)

	_, err = svc.CreateUser("ally", "a@b.com", "short")
	require.NotNil(t, err)
	assert.Equal(t, "Password must be at least 8 characters", err.Message)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := svc.CreateUser("ally", "a@b.com", "Password1")
	require.NotNil(t, err)
	assert.Equal(t, ErrConflict, err.Kind)
	assert.Equal(t, "User already exists with this email", err.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))

	user, err := svc.CreateUser("ally", "a@b.com", "Password1")
	require.Nil(t, err)
	assert.Equal(t, uint(1), user.UserID)
	assert.Equal(t, "ally", user.Username)
	// 入库的是哈希而不是明文
	assert.NotEqual(t, "Password1", user.Password)
	assert.True(t, utils.CheckPassword(user.Password, "Password1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyUserWrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db)

	hash, herr := utils.HashPassword("ValidPass1")
	require.NoError(t, herr)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "email", "password", "is_admin"}).
			AddRow(1, "ally", "a@b.com", hash, false))

	_, err := svc.VerifyUser("a@b.com", "WrongPass1")
	require.NotNil(t, err)
	assert.Equal(t, ErrAuth, err.Kind)
	assert.Equal(t, "Incorrect password", err.Message)
}

func TestVerifyUserNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	_, err := svc.VerifyUser("nobody@b.com", "ValidPass1")
	require.NotNil(t, err)
	assert.Equal(t, ErrNotFound, err.Kind)
	assert.Equal(t, "User not found", err.Message)
}

func TestVerifyUserRejectsBadInput(t *testing.T) {
	svc := NewUserService(nil)

	_, err := svc.VerifyUser("bad-email", "whatever")
	require.NotNil(t, err)
	assert.Equal(t, ErrValidation, err.Kind)

	_, err = svc.VerifyUser("a@b.com", "")
	require.NotNil(t, err)
	assert.Equal(t, "Password is required", err.Message)
}

func TestUpdateUserNoFields(t *testing.T) {
	svc := NewUserService(nil)

	_, err := svc.UpdateUser(1, models.UpdateUserRequest{})
	require.NotNil(t, err)
	assert.Equal(t, ErrValidation, err.Kind)
	assert.Equal(t, "No valid fields to update", err.Message)
}

func TestUpdateUserPartialValidation(t *testing.T) {
	svc := NewUserService(nil)

	// 只有出现的字段才会被校验
	bad := "x"
	_, err := svc.UpdateUser(1, models.UpdateUserRequest{Username: &bad})
	require.NotNil(t, err)
	assert.Equal(t, "Username must be between 3 and 30 characters", err.Message)

	weak := "weak"
	_, err = svc.UpdateUser(1, models.UpdateUserRequest{Password: &weak})
	require.NotNil(t, err)
	assert.Equal(t, "Password must be at least 8 characters", err.Message)
}

func TestDeleteUserNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db)

	mock.ExpectExec(`DELETE FROM "users"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.DeleteUser(42)
	require.NotNil(t, err)
	assert.Equal(t, ErrNotFound, err.Kind)
}
