package router

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/romana/rlog"

	"restaurant_system/constants"
	"restaurant_system/custom/order"
	"restaurant_system/custom/resource"
	"restaurant_system/dal"
	"restaurant_system/model"
)

const REQUEST_ID_HEADER = "X-Request-ID"

// NewRouter wires every /api endpoint against db.
func NewRouter(db *dal.Query, now order.Clock) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	categories := resource.HandlerContext[model.Category]{}
	categories.InitialHandlerContext(db, constants.RESOURCE_CATEGORIES)
	categories.RegisterRoutes(api)

	products := resource.HandlerContext[model.Product]{}
	products.InitialHandlerContext(db, constants.RESOURCE_PRODUCTS)
	products.RegisterRoutes(api)

	extras := resource.HandlerContext[model.Extra]{}
	extras.InitialHandlerContext(db, constants.RESOURCE_EXTRAS)
	extras.RegisterRoutes(api)

	staff := resource.HandlerContext[model.Staff]{}
	staff.InitialHandlerContext(db, constants.RESOURCE_STAFF)
	staff.RegisterRoutes(api)

	tables := resource.HandlerContext[model.Table]{}
	tables.InitialHandlerContext(db, constants.RESOURCE_TABLES)
	tables.RegisterRoutes(api)

	orders := order.HandlerContext{}
	orders.InitialHandlerContext(db, now)
	orders.RegisterRoutes(api)

	return logMiddleware(recoverMiddleware(r))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// logMiddleware tags the request with an id and logs it once served.
func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(REQUEST_ID_HEADER)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(REQUEST_ID_HEADER, requestID)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		rlog.Infof("[%s] %s %s %d %s", requestID, r.Method, r.URL.RequestURI(), rec.status, time.Since(start))
	})
}

func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				rlog.Errorf("Panic serving %s %s: %v", r.Method, r.URL.Path, err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
