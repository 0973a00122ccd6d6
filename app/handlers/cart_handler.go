package handlers

import (
	"net/http"

	"github.com/Rakhulsr/go-fitstore/app/helpers"
	"github.com/Rakhulsr/go-fitstore/app/models"
	"github.com/Rakhulsr/go-fitstore/app/repositories"
	"github.com/Rakhulsr/go-fitstore/app/services"
	"github.com/Rakhulsr/go-fitstore/app/utils/calc"
	"github.com/Rakhulsr/go-fitstore/app/utils/format"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

type CartHandler struct {
	render   *render.Render
	products repositories.ProductRepositoryImpl
	carts    *services.CartManager
	storage  repositories.StorageProvider
	validate *validator.Validate
	log      logrus.FieldLogger
}

func NewCartHandler(
	render *render.Render,
	products repositories.ProductRepositoryImpl,
	carts *services.CartManager,
	storage repositories.StorageProvider,
	validate *validator.Validate,
	log logrus.FieldLogger,
) *CartHandler {
	return &CartHandler{
		render:   render,
		products: products,
		carts:    carts,
		storage:  storage,
		validate: validate,
		log:      log,
	}
}

type addItemRequest struct {
	ProductID string       `json:"product_id" validate:"required"`
	Quantity  int          `json:"quantity" validate:"gte=1"`
	Size      models.Size  `json:"size" validate:"omitempty,oneof=XS S M L XL XXL"`
	Color     models.Color `json:"color" validate:"omitempty,oneof=black white grey red blue green pink"`
}

// updateQuantityRequest allows zero and negative quantities: they remove the line.
type updateQuantityRequest struct {
	Quantity *int         `json:"quantity" validate:"required"`
	Size     models.Size  `json:"size" validate:"omitempty,oneof=XS S M L XL XXL"`
	Color    models.Color `json:"color" validate:"omitempty,oneof=black white grey red blue green pink"`
}

type cartLineView struct {
	ProductID      string       `json:"product_id"`
	Name           string       `json:"name"`
	Image          string       `json:"image,omitempty"`
	Size           models.Size  `json:"size,omitempty"`
	Color          models.Color `json:"color,omitempty"`
	Quantity       int          `json:"quantity"`
	Discount       *int         `json:"discount,omitempty"`
	UnitPrice      string       `json:"unit_price"`
	EffectivePrice string       `json:"effective_price"`
	LineTotal      string       `json:"line_total"`
	Savings        string       `json:"savings,omitempty"`
}

type cartView struct {
	Items     []cartLineView    `json:"items"`
	ItemCount int               `json:"item_count"`
	Subtotal  string            `json:"subtotal"`
	Shipping  string            `json:"shipping"`
	Tax       string            `json:"tax"`
	Total     string            `json:"total"`
	Display   map[string]string `json:"display"`

	TaxRate           string `json:"tax_rate"`
	FreeShippingAbove string `json:"free_shipping_above"`
}

func newCartView(cart models.Cart) cartView {
	items := make([]cartLineView, 0, len(cart.Items))
	for _, item := range cart.Items {
		line := cartLineView{
			ProductID:      item.Product.ID,
			Name:           item.Product.Name,
			Size:           item.Size,
			Color:          item.Color,
			Quantity:       item.Quantity,
			Discount:       item.Product.Discount,
			UnitPrice:      format.Cents(item.Product.Price),
			EffectivePrice: format.Cents(calc.EffectivePrice(item)),
			LineTotal:      format.Cents(calc.LineTotal(item)),
		}
		if item.Product.Discount != nil {
			saved := calc.CalculateDiscount(item.Product.Price, *item.Product.Discount).Mul(decimal.NewFromInt(int64(item.Quantity)))
			line.Savings = format.Cents(saved)
		}
		if len(item.Product.Images) > 0 {
			line.Image = item.Product.Images[0]
		}
		items = append(items, line)
	}

	return cartView{
		Items:     items,
		ItemCount: cart.ItemCount(),
		Subtotal:  format.Cents(cart.Subtotal),
		Shipping:  format.Cents(cart.Shipping),
		Tax:       format.Cents(cart.Tax),
		Total:     format.Cents(cart.Total),
		Display: map[string]string{
			"subtotal": format.FormatMoney(cart.Subtotal),
			"shipping": format.FormatMoney(cart.Shipping),
			"tax":      format.FormatMoney(cart.Tax),
			"total":    format.FormatMoney(cart.Total),
		},
		TaxRate:           calc.GetTaxRate().String(),
		FreeShippingAbove: format.Cents(calc.FreeShippingThreshold()),
	}
}

// withCart runs fn against the requesting visitor's cart.
func (h *CartHandler) withCart(w http.ResponseWriter, r *http.Request, fn func(*services.CartStore) error) error {
	visitorID, ok := helpers.VisitorIDFrom(r.Context())
	if !ok {
		return errors.New("no visitor in request context")
	}
	open := func() (repositories.KeyValueStore, error) {
		return h.storage.Open(w, r, visitorID)
	}
	return h.carts.WithCart(visitorID, open, fn)
}

func (h *CartHandler) respondCart(w http.ResponseWriter, r *http.Request, cart models.Cart) {
	if token := csrf.Token(r); token != "" {
		w.Header().Set("X-CSRF-Token", token)
	}
	_ = h.render.JSON(w, http.StatusOK, newCartView(cart))
}

func (h *CartHandler) respondFailure(w http.ResponseWriter, op string, err error) {
	h.log.WithError(err).Errorf("CartHandler.%s: request failed", op)
	switch {
	case errors.Is(err, services.ErrPersistFailed):
		respondError(h.render, w, http.StatusInternalServerError, "your cart could not be saved, please try again")
	default:
		respondError(h.render, w, http.StatusInternalServerError, "cart unavailable")
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	var cart models.Cart
	err := h.withCart(w, r, func(store *services.CartStore) error {
		cart = store.Cart()
		return nil
	})
	if err != nil {
		h.respondFailure(w, "GetCart", err)
		return
	}
	h.respondCart(w, r, cart)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !decodeAndValidate(h.render, h.validate, w, r, &req) {
		return
	}

	product, err := h.products.GetByID(r.Context(), req.ProductID)
	if errors.Is(err, repositories.ErrNotFound) {
		respondError(h.render, w, http.StatusNotFound, services.ErrProductNotFound.Error())
		return
	}
	if err != nil {
		h.log.WithError(err).WithField("product_id", req.ProductID).Error("CartHandler.AddItem: catalog lookup failed")
		respondError(h.render, w, http.StatusInternalServerError, "catalog unavailable")
		return
	}
	if !product.OffersSize(req.Size) || !product.OffersColor(req.Color) {
		respondError(h.render, w, http.StatusUnprocessableEntity, services.ErrVariantNotFound.Error())
		return
	}

	var cart models.Cart
	err = h.withCart(w, r, func(store *services.CartStore) error {
		if err := store.AddItem(*product, req.Quantity, req.Size, req.Color); err != nil {
			return err
		}
		cart = store.Cart()
		return nil
	})
	if err != nil {
		h.respondFailure(w, "AddItem", err)
		return
	}
	h.respondCart(w, r, cart)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productID"]

	var req updateQuantityRequest
	if !decodeAndValidate(h.render, h.validate, w, r, &req) {
		return
	}

	var cart models.Cart
	err := h.withCart(w, r, func(store *services.CartStore) error {
		if err := store.UpdateQuantity(productID, *req.Quantity, req.Size, req.Color); err != nil {
			return err
		}
		cart = store.Cart()
		return nil
	})
	if err != nil {
		h.respondFailure(w, "UpdateQuantity", err)
		return
	}
	h.respondCart(w, r, cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productID"]
	size := models.Size(r.URL.Query().Get("size"))
	color := models.Color(r.URL.Query().Get("color"))

	var cart models.Cart
	err := h.withCart(w, r, func(store *services.CartStore) error {
		if err := store.RemoveItem(productID, size, color); err != nil {
			return err
		}
		cart = store.Cart()
		return nil
	})
	if err != nil {
		h.respondFailure(w, "RemoveItem", err)
		return
	}
	h.respondCart(w, r, cart)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	var cart models.Cart
	err := h.withCart(w, r, func(store *services.CartStore) error {
		if err := store.ClearCart(); err != nil {
			return err
		}
		cart = store.Cart()
		return nil
	})
	if err != nil {
		h.respondFailure(w, "ClearCart", err)
		return
	}
	h.respondCart(w, r, cart)
}
