package handlers

import (
	"net/http"
	"strconv"

	"github.com/base-org/forcer/internal/api/models"
	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/logging"
	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

const defaultAttemptLimit = 50

func renderResponse(w http.ResponseWriter, r *http.Request, code int, v interface{}) {
	render.Status(r, code)
	render.JSON(w, r, v)
}

// Eligibility ... Handle eligibility preview request
func (fh *ForcerHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	report, err := fh.service.Preview(r.Context())
	if err != nil {
		logging.WithContext(fh.ctx).Error("Could not evaluate delayed queue", zap.Error(err))
	}

	resp := models.NewEligibilityResp(report, err)
	renderResponse(w, r, resp.Code, resp)
}

// ForceInclude ... Handle force inclusion request; wait=true blocks until the
// transaction is confirmed and verified
func (fh *ForcerHandler) ForceInclude(w http.ResponseWriter, r *http.Request) {
	wait, _ := strconv.ParseBool(r.URL.Query().Get("wait"))

	fit, err := fh.service.ForceInclude(r.Context(), wait)
	if err != nil {
		logging.WithContext(fh.ctx).Error("Could not process force inclusion request", zap.Error(err))
	}

	resp := models.NewForceIncludeResp(fit, err)
	renderResponse(w, r, resp.Code, resp)
}

// ListAttempts ... Handle attempt history request
func (fh *ForcerHandler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	limit := defaultAttemptLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			resp := models.NewBadRequestResp("limit must be a positive integer")
			renderResponse(w, r, resp.Code, resp)
			return
		}
		limit = parsed
	}

	attempts, err := fh.service.ListAttempts(r.Context(), limit)
	resp := models.NewAttemptsResp(attempts, err)
	renderResponse(w, r, resp.Code, resp)
}

// GetAttempt ... Handle single attempt request
func (fh *ForcerHandler) GetAttempt(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseInvocationID(chi.URLParam(r, "id"))
	if err != nil {
		resp := models.NewBadRequestResp(err.Error())
		renderResponse(w, r, resp.Code, resp)
		return
	}

	attempt, err := fh.service.GetAttempt(r.Context(), id)
	if err != nil {
		resp := models.NewAttemptsResp(nil, err)
		renderResponse(w, r, resp.Code, resp)
		return
	}

	resp := models.NewAttemptsResp([]*core.Attempt{attempt}, nil)
	renderResponse(w, r, resp.Code, resp)
}
