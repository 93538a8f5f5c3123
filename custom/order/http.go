package order

import (
	"net/http"

	"github.com/gorilla/mux"

	"restaurant_system/constants"
	"restaurant_system/custom/util"
	"restaurant_system/dal"
	"restaurant_system/model"
)

type HandlerContext struct {
	manager *Manager
}

func (ctx *HandlerContext) InitialHandlerContext(db *dal.Query, now Clock) {
	ctx.manager = NewManager(db, now)
}

// RegisterRoutes mounts the order endpoints on api, the /api subrouter.
func (ctx *HandlerContext) RegisterRoutes(api *mux.Router) {
	base := "/" + constants.RESOURCE_ORDERS
	api.HandleFunc(base, ctx.ListOpenOrders).Methods(http.MethodGet)
	api.HandleFunc(base, ctx.CreateOrder).Methods(http.MethodPost)
	api.HandleFunc(base+"/relatorio/periodo", ctx.ReportByPeriod).Methods(http.MethodGet)
	api.HandleFunc(base+"/relatorio/dia", ctx.ReportByDay).Methods(http.MethodGet)
	api.HandleFunc(base+"/{id:[0-9]+}", ctx.GetOrder).Methods(http.MethodGet)
	api.HandleFunc(base+"/{id:[0-9]+}", ctx.UpdateOrder).Methods(http.MethodPut)
	api.HandleFunc(base+"/{id:[0-9]+}/fechar", ctx.CloseOrder).Methods(http.MethodPut)
	api.HandleFunc(base+"/{id:[0-9]+}/itens", ctx.ListItems).Methods(http.MethodGet)
	api.HandleFunc(base+"/{id:[0-9]+}/itens", ctx.AddItem).Methods(http.MethodPost)
	api.HandleFunc(base+"/{id:[0-9]+}/itens/{productId:[0-9]+}", ctx.RemoveItem).Methods(http.MethodDelete)
	api.HandleFunc(base+"/{id:[0-9]+}/total", ctx.OrderTotal).Methods(http.MethodGet)
}

// ListOpenOrders GET /api/pedidos
func (ctx *HandlerContext) ListOpenOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := ctx.manager.ListOpenOrders(r.Context())
	if err != nil {
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, orders)
}

// GetOrder GET /api/pedidos/{id}, open orders only
func (ctx *HandlerContext) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := util.PathID(r, "id")
	if err != nil {
		util.WriteError(w, err)
		return
	}
	order, err := ctx.manager.GetOrder(r.Context(), id)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, order)
}

// CreateOrder POST /api/pedidos. The caller re-fetches to learn the id.
func (ctx *HandlerContext) CreateOrder(w http.ResponseWriter, r *http.Request) {
	req := model.Order{}
	if err := util.FetchReqObject(r, &req); err != nil {
		util.WriteError(w, err)
		return
	}
	if _, err := ctx.manager.CreateOrder(r.Context(), req); err != nil {
		util.WriteError(w, err)
		return
	}
	util.WriteNoContent(w)
}

// UpdateOrder PUT /api/pedidos/{id}
func (ctx *HandlerContext) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := util.PathID(r, "id")
	if err != nil {
		util.WriteError(w, err)
		return
	}
	req := model.Order{}
	if err = util.FetchReqObject(r, &req); err != nil {
		util.WriteError(w, err)
		return
	}
	if err = ctx.manager.UpdateOrder(r.Context(), id, req); err != nil {
		util.WriteError(w, err)
		return
	}
	util.WriteNoContent(w)
}

// CloseOrder PUT /api/pedidos/{id}/fechar, echoes the closed order
func (ctx *HandlerContext) CloseOrder(w http.ResponseWriter, r *http.Request) {
	id, err := util.PathID(r, "id")
	if err != nil {
		util.WriteError(w, err)
		return
	}
	order, err := ctx.manager.CloseOrder(r.Context(), id)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, order)
}

// ReportByPeriod GET /api/pedidos/relatorio/periodo?inicio=&fim=
func (ctx *HandlerContext) ReportByPeriod(w http.ResponseWriter, r *http.Request) {
	start, err := util.QueryTime(r, "inicio")
	if err != nil {
		util.WriteError(w, err)
		return
	}
	end, err := util.QueryTime(r, "fim")
	if err != nil {
		util.WriteError(w, err)
		return
	}
	orders, err := ctx.manager.ReportByPeriod(r.Context(), start, end)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, orders)
}

// ReportByDay GET /api/pedidos/relatorio/dia?dia=
func (ctx *HandlerContext) ReportByDay(w http.ResponseWriter, r *http.Request) {
	day, err := util.QueryTime(r, "dia")
	if err != nil {
		util.WriteError(w, err)
		return
	}
	orders, err := ctx.manager.ReportByDay(r.Context(), day)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, orders)
}

// ListItems GET /api/pedidos/{id}/itens
func (ctx *HandlerContext) ListItems(w http.ResponseWriter, r *http.Request) {
	id, err := util.PathID(r, "id")
	if err != nil {
		util.WriteError(w, err)
		return
	}
	items, err := ctx.manager.ListItems(r.Context(), id)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, items)
}

// AddItem POST /api/pedidos/{id}/itens, adds quantity to an existing line
func (ctx *HandlerContext) AddItem(w http.ResponseWriter, r *http.Request) {
	id, err := util.PathID(r, "id")
	if err != nil {
		util.WriteError(w, err)
		return
	}
	req := AddItemRequest{}
	if err = util.FetchReqObject(r, &req); err != nil {
		util.WriteError(w, err)
		return
	}
	item, err := ctx.manager.AddItem(r.Context(), id, req)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, item)
}

// RemoveItem DELETE /api/pedidos/{id}/itens/{productId}
func (ctx *HandlerContext) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := util.PathID(r, "id")
	if err != nil {
		util.WriteError(w, err)
		return
	}
	productID, err := util.PathID(r, "productId")
	if err != nil {
		util.WriteError(w, err)
		return
	}
	if err = ctx.manager.RemoveItem(r.Context(), id, productID); err != nil {
		util.WriteError(w, err)
		return
	}
	util.WriteNoContent(w)
}

// OrderTotal GET /api/pedidos/{id}/total
func (ctx *HandlerContext) OrderTotal(w http.ResponseWriter, r *http.Request) {
	id, err := util.PathID(r, "id")
	if err != nil {
		util.WriteError(w, err)
		return
	}
	total, err := ctx.manager.Total(r.Context(), id)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, total)
}
