package store

import (
	"context"

	"github.com/blissful-trails/trails-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleRequestStore defines persistence for admin/guide role requests.
type RoleRequestStore interface {
	// ListByEmail returns every request filed by email.
	ListByEmail(ctx context.Context, email string) ([]domain.RoleRequest, error)

	// GetByEmail returns the first request filed by email, or ErrRoleRequestNotFound.
	GetByEmail(ctx context.Context, email string) (*domain.RoleRequest, error)

	// ListPending returns the requests whose status is pending.
	ListPending(ctx context.Context) ([]domain.RoleRequest, error)

	Create(ctx context.Context, req *domain.RoleRequest) (primitive.ObjectID, error)

	// ApplyDecision sets status and role on the request filed by email in a
	// single update. No check is made against the prior status.
	ApplyDecision(ctx context.Context, email string, decision domain.RoleDecision) (UpdateResult, error)
}
