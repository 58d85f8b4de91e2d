package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepo_GetUserById(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	rows := sqlmock.NewRows([]string{"id", "username", "email", "firebase_uid", "is_pro", "is_first_login"}).
		AddRow(1, "alice", "alice@example.com", "fb-1", false, true)
	mock.ExpectQuery("SELECT \\* FROM `users`").
		WithArgs(1, 1).
		WillReturnRows(rows)

	user, err := repo.GetUserById(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.IsFirstLogin)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetUserById_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.GetUserById(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepo_GetUserByFirebaseUID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	rows := sqlmock.NewRows([]string{"id", "firebase_uid"}).AddRow(7, "fb-7")
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE firebase_uid = \\?").
		WithArgs("fb-7", 1).
		WillReturnRows(rows)

	user, err := repo.GetUserByFirebaseUID(context.Background(), "fb-7")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uint64(7), user.ID)
}

func TestUserRepo_UpdateUserIsPro(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	affected, err := repo.UpdateUserIsPro(context.Background(), 1, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_UpdateUserLastLogin(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateUserLastLogin(context.Background(), 1, time.Now())
	require.NoError(t, err)
}
