package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleRequestService drives the request-a-role workflow.
type RoleRequestService interface {
	Submit(ctx context.Context, req *domain.RoleRequest) (primitive.ObjectID, error)
	ListByEmail(ctx context.Context, email string) ([]domain.RoleRequest, error)
	ListPending(ctx context.Context) ([]domain.RoleRequest, error)

	// Decide sets status and role on the request filed by email in one
	// update. It does not look at the request's current status.
	Decide(ctx context.Context, email string, decision domain.RoleDecision) (store.UpdateResult, error)

	// HasRole reports whether the request filed by email grants role.
	// An email without a request holds no role.
	HasRole(ctx context.Context, email string, role domain.Role) (bool, error)
}

type roleRequestService struct {
	requests store.RoleRequestStore
	logger   *slog.Logger
	now      func() time.Time
}

// NewRoleRequestService creates a RoleRequestService.
func NewRoleRequestService(requests store.RoleRequestStore, logger *slog.Logger) RoleRequestService {
	return &roleRequestService{
		requests: requests,
		logger:   logger.With("component", "role_request_service"),
		now:      time.Now,
	}
}

func (s *roleRequestService) Submit(ctx context.Context, req *domain.RoleRequest) (primitive.ObjectID, error) {
	req.PrepareForInsert(s.now())
	id, err := s.requests.Create(ctx, req)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create role request: %w", err)
	}
	s.logger.Info("role request submitted",
		"request_id", id.Hex(),
		"requested_role", req.RequestedRole)
	return id, nil
}

func (s *roleRequestService) ListByEmail(ctx context.Context, email string) ([]domain.RoleRequest, error) {
	reqs, err := s.requests.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list role requests: %w", err)
	}
	return reqs, nil
}

func (s *roleRequestService) ListPending(ctx context.Context) ([]domain.RoleRequest, error) {
	reqs, err := s.requests.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending role requests: %w", err)
	}
	return reqs, nil
}

func (s *roleRequestService) Decide(
	ctx context.Context,
	email string,
	decision domain.RoleDecision,
) (store.UpdateResult, error) {
	res, err := s.requests.ApplyDecision(ctx, email, decision)
	if err != nil {
		return store.UpdateResult{}, fmt.Errorf("failed to apply role decision: %w", err)
	}
	s.logger.Info("role decision applied",
		"status", decision.Status,
		"role", decision.Role,
		"matched", res.MatchedCount,
		"modified", res.ModifiedCount)
	return res, nil
}

func (s *roleRequestService) HasRole(ctx context.Context, email string, role domain.Role) (bool, error) {
	req, err := s.requests.GetByEmail(ctx, email)
	if errors.Is(err, store.ErrRoleRequestNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up role request: %w", err)
	}
	return req.Role == role, nil
}
