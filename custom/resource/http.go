package resource

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/romana/rlog"

	"restaurant_system/constants"
	"restaurant_system/custom/util"
	"restaurant_system/dal"
	"restaurant_system/model"
)

// HandlerContext serves list, get, create, replace and delete for one record type.
type HandlerContext[T model.Record] struct {
	db   *dal.Query
	name string
}

func (ctx *HandlerContext[T]) InitialHandlerContext(db *dal.Query, name string) {
	ctx.db = db
	ctx.name = name
}

// RegisterRoutes mounts /{name} and /{name}/{id} on api, the /api subrouter.
func (ctx *HandlerContext[T]) RegisterRoutes(api *mux.Router) {
	api.HandleFunc("/"+ctx.name, ctx.List).Methods(http.MethodGet)
	api.HandleFunc("/"+ctx.name, ctx.Create).Methods(http.MethodPost)
	api.HandleFunc("/"+ctx.name+"/{id:[0-9]+}", ctx.Get).Methods(http.MethodGet)
	api.HandleFunc("/"+ctx.name+"/{id:[0-9]+}", ctx.Replace).Methods(http.MethodPut)
	api.HandleFunc("/"+ctx.name+"/{id:[0-9]+}", ctx.Delete).Methods(http.MethodDelete)
}

func (ctx *HandlerContext[T]) dao(r *http.Request) *dal.Dao[T] {
	return dal.DaoOf[T](ctx.db.WithContext(r.Context()))
}

// List returns every record in store order, an empty array when there are none.
func (ctx *HandlerContext[T]) List(w http.ResponseWriter, r *http.Request) {
	records, err := ctx.dao(r).Find()
	if err != nil {
		util.WriteError(w, errors.Wrapf(err, "list %s failed", ctx.name))
		return
	}
	util.WriteJSON(w, http.StatusOK, records)
}

func (ctx *HandlerContext[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := util.PathID(r, "id")
	if err != nil {
		util.WriteError(w, err)
		return
	}
	record, err := ctx.dao(r).Get(id)
	if err != nil {
		util.WriteError(w, errors.Wrapf(err, "%s %d", ctx.name, id))
		return
	}
	util.WriteJSON(w, http.StatusOK, record)
}

// Create inserts the payload and answers 204; the store assigns the id.
func (ctx *HandlerContext[T]) Create(w http.ResponseWriter, r *http.Request) {
	var record T
	if err := util.FetchReqObject(r, &record); err != nil {
		util.WriteError(w, err)
		return
	}
	if record.PrimaryKey() != 0 {
		util.WriteError(w, errors.Wrap(constants.ErrValidation, constants.ID_ASSIGNED_BY_STORE))
		return
	}
	if err := record.Validate(); err != nil {
		util.WriteError(w, err)
		return
	}
	if err := ctx.dao(r).Create(&record); err != nil {
		util.WriteError(w, errors.Wrapf(err, "create %s failed", ctx.name))
		return
	}
	rlog.Infof("Created %s %d", ctx.name, record.PrimaryKey())
	util.WriteNoContent(w)
}

// Replace overwrites the stored record with the payload, whose id must match the path.
// Fields missing from the payload are written as zero values.
func (ctx *HandlerContext[T]) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := util.PathID(r, "id")
	if err != nil {
		util.WriteError(w, err)
		return
	}
	var record T
	if err = util.FetchReqObject(r, &record); err != nil {
		util.WriteError(w, err)
		return
	}
	if record.PrimaryKey() != id {
		util.WriteError(w, errors.Wrapf(constants.ErrValidation, "%s: %d != %d", constants.ID_MISMATCH, id, record.PrimaryKey()))
		return
	}
	if err = record.Validate(); err != nil {
		util.WriteError(w, err)
		return
	}
	affected, err := ctx.dao(r).Replace(&record)
	if err != nil {
		util.WriteError(w, errors.Wrapf(err, "replace %s %d failed", ctx.name, id))
		return
	}
	if affected == 0 {
		util.WriteError(w, errors.Wrapf(constants.ErrNotFound, "%s %d", ctx.name, id))
		return
	}
	util.WriteNoContent(w)
}

func (ctx *HandlerContext[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := util.PathID(r, "id")
	if err != nil {
		util.WriteError(w, err)
		return
	}
	dao := ctx.dao(r)
	record, err := dao.Get(id)
	if err != nil {
		util.WriteError(w, errors.Wrapf(err, "%s %d", ctx.name, id))
		return
	}
	if _, err = dao.Delete(record); err != nil {
		util.WriteError(w, errors.Wrapf(err, "delete %s %d failed", ctx.name, id))
		return
	}
	rlog.Infof("Deleted %s %d", ctx.name, id)
	util.WriteNoContent(w)
}
