package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gopkg.in/DATA-DOG/go-sqlmock.v1"

	"restaurant_system/custom/util"
	"restaurant_system/dal"
)

func newTestRouter(t *testing.T) (sqlmock.Sqlmock, http.Handler) {
	sqlDB, _, mock := util.DbMock(t)
	t.Cleanup(func() { sqlDB.Close() })
	now := func() time.Time { return time.Date(2025, 5, 6, 12, 0, 0, 0, time.UTC) }
	return mock, NewRouter(dal.Q, now)
}

func TestRequestIdIsAssigned(t *testing.T) {
	mock, h := newTestRouter(t)
	mock.ExpectQuery(`^SELECT \* FROM "tables"$`).WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/mesas", nil))

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusOK, w.Code)
	_, err := uuid.Parse(w.Header().Get(REQUEST_ID_HEADER))
	assert.NoError(t, err)
}

func TestRequestIdIsEchoed(t *testing.T) {
	_, h := newTestRouter(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	r.Header.Set(REQUEST_ID_HEADER, "caller-42")
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "caller-42", w.Header().Get(REQUEST_ID_HEADER))
}

func TestEveryResourceIsMounted(t *testing.T) {
	for table, path := range map[string]string{
		"categories": "/api/categorias",
		"products":   "/api/produtos",
		"extras":     "/api/extras",
		"staff":      "/api/funcionarios",
		"tables":     "/api/mesas",
	} {
		mock, h := newTestRouter(t)
		mock.ExpectQuery(`^SELECT \* FROM "` + table + `"$`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Nil(t, mock.ExpectationsWereMet(), path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestReportRouteIsNotAnOrderId(t *testing.T) {
	mock, h := newTestRouter(t)
	mock.ExpectQuery(`^SELECT \* FROM "orders" WHERE "orders"\."end_time" IS NOT NULL`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pedidos/relatorio/dia?dia=2025-05-06", nil))

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	mock, h := newTestRouter(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/pedidos/1/fechar", nil))

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRecoverMiddleware(t *testing.T) {
	h := logMiddleware(recoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/mesas", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, w.Header().Get(REQUEST_ID_HEADER))
}
