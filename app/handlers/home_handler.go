package handlers

import (
	"net/http"

	"github.com/unrolled/render"
)

func Health(rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = rnd.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
