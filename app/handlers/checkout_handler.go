package handlers

import (
	"net/http"

	"github.com/Rakhulsr/go-fitstore/app/models"
	"github.com/Rakhulsr/go-fitstore/app/services"
	"github.com/Rakhulsr/go-fitstore/app/utils/format"
	"github.com/pkg/errors"
)

type CheckoutHandler struct {
	cart     *CartHandler
	checkout *services.CheckoutService
}

func NewCheckoutHandler(cart *CartHandler, checkout *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{cart: cart, checkout: checkout}
}

type checkoutRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}

type checkoutResponse struct {
	OrderCode  string `json:"order_code"`
	Total      string `json:"total"`
	PaymentURL string `json:"payment_url"`
	Status     string `json:"payment_status"`
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	rnd := h.cart.render

	var req checkoutRequest
	if !decodeAndValidate(rnd, h.cart.validate, w, r, &req) {
		return
	}

	var order *models.Order
	err := h.cart.withCart(w, r, func(store *services.CartStore) error {
		var err error
		order, err = h.checkout.Checkout(r.Context(), store, services.Customer{Name: req.Name, Email: req.Email})
		return err
	})

	if order != nil && errors.Is(err, services.ErrPersistFailed) {
		// The order and payment exist; only clearing the stored cart failed.
		h.cart.log.WithError(err).WithField("order_code", order.OrderCode).Warn("CheckoutHandler.Checkout: cart not cleared after checkout")
		err = nil
	}

	switch {
	case err == nil:
		_ = rnd.JSON(w, http.StatusCreated, checkoutResponse{
			OrderCode:  order.OrderCode,
			Total:      format.Cents(order.Total),
			PaymentURL: order.PaymentURL,
			Status:     order.PaymentStatus,
		})
	case errors.Is(err, services.ErrEmptyCart):
		respondError(rnd, w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrPaymentFailed):
		h.cart.log.WithError(err).Warn("CheckoutHandler.Checkout: payment not created")
		respondError(rnd, w, http.StatusBadGateway, "payment could not be started, your cart was kept")
	default:
		h.cart.respondFailure(w, "Checkout", err)
	}
}
