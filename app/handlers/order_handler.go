package handlers

import (
	"net/http"

	"github.com/Rakhulsr/go-fitstore/app/repositories"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	render *render.Render
	orders repositories.OrderRepository
	log    logrus.FieldLogger
}

func NewOrderHandler(render *render.Render, orders repositories.OrderRepository, log logrus.FieldLogger) *OrderHandler {
	return &OrderHandler{render: render, orders: orders, log: log}
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	order, err := h.orders.GetByCode(r.Context(), code)
	if errors.Is(err, repositories.ErrNotFound) {
		respondError(h.render, w, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		h.log.WithError(err).WithField("order_code", code).Error("OrderHandler.GetOrder: query failed")
		respondError(h.render, w, http.StatusInternalServerError, "orders unavailable")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, order)
}
