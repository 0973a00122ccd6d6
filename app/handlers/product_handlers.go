package handlers

import (
	"net/http"
	"strconv"

	"github.com/Rakhulsr/go-fitstore/app/models"
	"github.com/Rakhulsr/go-fitstore/app/repositories"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ProductHandler struct {
	render   *render.Render
	products repositories.ProductRepositoryImpl
	log      logrus.FieldLogger
}

func NewProductHandler(render *render.Render, products repositories.ProductRepositoryImpl, log logrus.FieldLogger) *ProductHandler {
	return &ProductHandler{render: render, products: products, log: log}
}

type productListResponse struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1, 1, 1<<20)
	limit := queryInt(r, "limit", defaultPageSize, 1, maxPageSize)

	products, total, err := h.products.GetProducts(r.Context(), limit, (page-1)*limit)
	if err != nil {
		h.log.WithError(err).Error("ProductHandler.ListProducts: catalog query failed")
		respondError(h.render, w, http.StatusInternalServerError, "catalog unavailable")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	_ = h.render.JSON(w, http.StatusOK, productListResponse{Products: products, Total: total, Page: page, Limit: limit})
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.products.GetByID(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		product, err = h.products.GetBySlug(r.Context(), id)
	}
	if errors.Is(err, repositories.ErrNotFound) {
		respondError(h.render, w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		h.log.WithError(err).WithField("product", id).Error("ProductHandler.GetProduct: catalog query failed")
		respondError(h.render, w, http.StatusInternalServerError, "catalog unavailable")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func queryInt(r *http.Request, name string, fallback, lo, hi int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < lo {
		return fallback
	}
	if v > hi {
		return hi
	}
	return v
}
