package handlers

import (
	"net/http"

	"github.com/go-chi/render"
)

// HealthCheck ... Handle health check
func (fh *ForcerHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, fh.service.CheckHealth())
}
