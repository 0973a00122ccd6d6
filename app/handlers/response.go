package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Rakhulsr/go-fitstore/app/helpers"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/unrolled/render"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func respondError(rnd *render.Render, w http.ResponseWriter, status int, message string) {
	_ = rnd.JSON(w, status, errorResponse{Error: message})
}

// decodeAndValidate reads a JSON body into dst and validates it, writing a
// 400 response and returning false when either step fails.
func decodeAndValidate(rnd *render.Render, validate *validator.Validate, w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		respondError(rnd, w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			_ = rnd.JSON(w, http.StatusBadRequest, errorResponse{
				Error:  "validation failed",
				Fields: helpers.FormatValidationErrors(verrs),
			})
			return false
		}
		respondError(rnd, w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
