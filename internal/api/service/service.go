//go:generate mockgen -package mocks --destination ../../mocks/api_service.go . Service

package service

import (
	"context"

	"github.com/base-org/forcer/internal/api/models"
	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/inclusion"
	"github.com/base-org/forcer/internal/state"
)

// Service ... Interface for API service
type Service interface {
	CheckHealth() *models.HealthCheck
	CheckETHRPCHealth(n core.Network) bool

	Preview(ctx context.Context) (*core.EligibilityReport, error)
	ForceInclude(ctx context.Context, wait bool) (*core.ForceInclusionTx, error)

	ListAttempts(ctx context.Context, limit int) ([]*core.Attempt, error)
	GetAttempt(ctx context.Context, id core.InvocationID) (*core.Attempt, error)
}

// ForcerService ... API service
type ForcerService struct {
	ctx context.Context

	forcer inclusion.Service
	store  state.Store
}

// New ... Initializer
func New(ctx context.Context, forcer inclusion.Service, store state.Store) *ForcerService {
	return &ForcerService{
		ctx:    ctx,
		forcer: forcer,
		store:  store,
	}
}

// Preview ... Evaluates the delayed queue without submitting
func (svc *ForcerService) Preview(ctx context.Context) (*core.EligibilityReport, error) {
	return svc.forcer.Preview(ctx)
}

// ForceInclude ... Runs a force inclusion invocation, optionally waiting for confirmation
func (svc *ForcerService) ForceInclude(ctx context.Context, wait bool) (*core.ForceInclusionTx, error) {
	if wait {
		return svc.forcer.ForceIncludeAndWait(ctx)
	}

	return svc.forcer.ForceInclude(ctx)
}

// ListAttempts ... Returns the most recent invocations, newest first
func (svc *ForcerService) ListAttempts(ctx context.Context, limit int) ([]*core.Attempt, error) {
	return svc.store.List(ctx, limit)
}

// GetAttempt ... Returns a single invocation
func (svc *ForcerService) GetAttempt(ctx context.Context, id core.InvocationID) (*core.Attempt, error) {
	return svc.store.Get(ctx, id)
}
