package kv

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*SQLiteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db), mock
}

var errBoom = errors.New("boom")

func TestSQLiteMock_GetWrapsDriverError(t *testing.T) {
	r, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv WHERE key = ?`)).
		WithArgs(KeyAuthToken).
		WillReturnError(errBoom)

	_, ok, err := r.Get(context.Background(), KeyAuthToken)
	assert.False(t, ok)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "kv[auth_token]")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteMock_SetManyRollsBack(t *testing.T) {
	r, mock := newMockRepo(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv`)).
		WithArgs(KeyAuthToken, "t1").
		WillReturnError(errBoom)
	mock.ExpectRollback()

	err := r.SetMany(context.Background(), map[string]string{KeyAuthToken: "t1"})
	assert.ErrorIs(t, err, errBoom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteMock_DeleteManyCommits(t *testing.T) {
	r, mock := newMockRepo(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv WHERE key = ?`)).
		WithArgs(KeyAuthToken).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv WHERE key = ?`)).
		WithArgs(KeyAuthUser).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, r.DeleteMany(context.Background(), KeyAuthToken, KeyAuthUser))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteMock_ListRowError(t *testing.T) {
	r, mock := newMockRepo(t)
	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow("a", "1").
		RowError(0, errBoom)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT key, value FROM kv`)).WillReturnRows(rows)

	_, err := r.List(context.Background())
	assert.ErrorIs(t, err, errBoom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteMock_ClearError(t *testing.T) {
	r, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv`)).WillReturnError(errBoom)

	err := r.Clear(context.Background())
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "failed to clear kv")
}
