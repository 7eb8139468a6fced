package models

import (
	"errors"
	"net/http"

	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/state"
)

// ResponseStatus ... Represents the operation response status
type ResponseStatus string

const (
	OK    ResponseStatus = "OK"
	NotOK ResponseStatus = "NOTOK"
)

// ForceIncludeResponse ... Response for a force inclusion request. Result is nil when
// nothing was eligible
type ForceIncludeResponse struct {
	Code   int            `json:"status_code"`
	Status ResponseStatus `json:"status"`

	Result *core.ForceInclusionTx `json:"result"`
	Error  string                 `json:"error,omitempty"`
}

// EligibilityResponse ... Response for an eligibility preview request
type EligibilityResponse struct {
	Code   int            `json:"status_code"`
	Status ResponseStatus `json:"status"`

	Result *core.EligibilityReport `json:"result,omitempty"`
	Error  string                  `json:"error,omitempty"`
}

// AttemptsResponse ... Response for attempt history requests
type AttemptsResponse struct {
	Code   int            `json:"status_code"`
	Status ResponseStatus `json:"status"`

	Result []*core.Attempt `json:"result"`
	Error  string          `json:"error,omitempty"`
}

// ErrorCode ... Maps an invocation error onto an http status code
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, state.ErrNotFound):
		return http.StatusNotFound
	case core.IsBenign(err):
		return http.StatusConflict
	case core.IsTransient(err):
		return http.StatusServiceUnavailable
	case errors.Is(err, core.ErrSubmissionRejected):
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}

// NewForceIncludeResp ... Returns a force inclusion response
func NewForceIncludeResp(fit *core.ForceInclusionTx, err error) *ForceIncludeResponse {
	if err != nil {
		return &ForceIncludeResponse{
			Code:   ErrorCode(err),
			Status: NotOK,
			Result: fit,
			Error:  err.Error(),
		}
	}

	return &ForceIncludeResponse{
		Code:   http.StatusOK,
		Status: OK,
		Result: fit,
	}
}

// NewEligibilityResp ... Returns an eligibility preview response
func NewEligibilityResp(report *core.EligibilityReport, err error) *EligibilityResponse {
	if err != nil {
		return &EligibilityResponse{
			Code:   ErrorCode(err),
			Status: NotOK,
			Error:  err.Error(),
		}
	}

	return &EligibilityResponse{
		Code:   http.StatusOK,
		Status: OK,
		Result: report,
	}
}

// NewAttemptsResp ... Returns an attempt history response
func NewAttemptsResp(attempts []*core.Attempt, err error) *AttemptsResponse {
	if err != nil {
		return &AttemptsResponse{
			Code:   ErrorCode(err),
			Status: NotOK,
			Error:  err.Error(),
		}
	}

	return &AttemptsResponse{
		Code:   http.StatusOK,
		Status: OK,
		Result: attempts,
	}
}

// NewBadRequestResp ... Returns an attempt response for malformed requests
func NewBadRequestResp(msg string) *AttemptsResponse {
	return &AttemptsResponse{
		Code:   http.StatusBadRequest,
		Status: NotOK,
		Error:  msg,
	}
}
