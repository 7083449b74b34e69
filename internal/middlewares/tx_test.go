package middlewares

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTxDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestTxMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		expect     func(m sqlmock.Sqlmock)
		wantStatus int
	}{
		{
			name:   "created sender is committed",
			status: http.StatusCreated,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectCommit()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "invalid name rolls back",
			status: http.StatusBadRequest,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectRollback()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "failed seeding rolls back",
			status: http.StatusInternalServerError,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectRollback()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTxDB(t)
			tt.expect(mock)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.NotNil(t, GetTxFromContext(r.Context()))
				w.WriteHeader(tt.status)
			})

			rr := httptest.NewRecorder()
			TxMiddleware(db)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/onboarding", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTxMiddleware_BeginError(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

	rr := httptest.NewRecorder()
	TxMiddleware(db)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/recipients", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.False(t, nextCalled)
}

func TestTxMiddleware_CommitErrorBeforeWrite(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(sql.ErrConnDone)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	TxMiddleware(db)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/recipients", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_PanicRollsBack(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("seed insert blew up")
	})

	assert.Panics(t, func() {
		TxMiddleware(db)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/onboarding", nil))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTxFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetTxFromContext(req.Context()))
}
