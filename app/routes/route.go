package routes

import (
	"net/http"

	"github.com/Rakhulsr/go-fitstore/app/handlers"
	"github.com/Rakhulsr/go-fitstore/app/middlewares"
	"github.com/Rakhulsr/go-fitstore/app/utils/sessions"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

type Options struct {
	Render   *render.Render
	Visitors sessions.VisitorStore
	Products *handlers.ProductHandler
	Cart     *handlers.CartHandler
	Checkout *handlers.CheckoutHandler
	Orders   *handlers.OrderHandler
	Log      logrus.FieldLogger

	// CSRFKey enables CSRF protection on the API when set.
	CSRFKey      []byte
	SecureCookie bool
}

func NewRouter(opts Options) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", handlers.Health(opts.Render)).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middlewares.VisitorMiddleware(opts.Visitors, opts.Log))

	api.HandleFunc("/products", opts.Products.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", opts.Products.GetProduct).Methods(http.MethodGet)

	api.HandleFunc("/cart", opts.Cart.GetCart).Methods(http.MethodGet)
	api.HandleFunc("/cart", opts.Cart.ClearCart).Methods(http.MethodDelete)
	api.HandleFunc("/cart/items", opts.Cart.AddItem).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{productID}", opts.Cart.UpdateQuantity).Methods(http.MethodPatch)
	api.HandleFunc("/cart/items/{productID}", opts.Cart.RemoveItem).Methods(http.MethodDelete)

	api.HandleFunc("/checkout", opts.Checkout.Checkout).Methods(http.MethodPost)
	api.HandleFunc("/orders/{code}", opts.Orders.GetOrder).Methods(http.MethodGet)

	var handler http.Handler = router
	if len(opts.CSRFKey) > 0 {
		handler = csrf.Protect(
			opts.CSRFKey,
			csrf.Secure(opts.SecureCookie),
			csrf.Path("/"),
			csrf.RequestHeader("X-CSRF-Token"),
			csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				opts.Log.WithField("reason", csrf.FailureReason(r)).Warn("csrf check failed")
				_ = opts.Render.JSON(w, http.StatusForbidden, map[string]string{"error": "invalid csrf token"})
			})),
		)(handler)
	}

	// Method override has to run before route matching, so it wraps the router.
	handler = middlewares.MethodOverrideMiddleware(handler)
	return middlewares.RequestLogger(opts.Log)(handler)
}
