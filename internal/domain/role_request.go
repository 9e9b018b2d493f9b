package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the site role granted to an account.
type Role string

const (
	RoleTourist Role = "tourist"
	RoleGuide   Role = "guide"
	RoleAdmin   Role = "admin"
)

// RequestStatus is the review state of a role request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// RoleRequest asks an administrator to grant a role to the requesting email.
// Approval sets Status and Role in one update keyed by Email.
type RoleRequest struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"           json:"_id"`
	Email         string             `bson:"email"                   json:"email"                   validate:"required,email"`
	Name          string             `bson:"name,omitempty"          json:"name,omitempty"`
	Photo         string             `bson:"photo,omitempty"         json:"photo,omitempty"`
	Status        RequestStatus      `bson:"status"                  json:"status"                  validate:"omitempty,oneof=pending approved rejected"`
	Role          Role               `bson:"role,omitempty"          json:"role,omitempty"          validate:"omitempty,oneof=tourist guide admin"`
	RequestedRole Role               `bson:"requestedRole,omitempty" json:"requestedRole,omitempty" validate:"omitempty,oneof=guide admin"`
	CreatedAt     time.Time          `bson:"createdAt"               json:"createdAt"`
}

// PrepareForInsert clears any client-supplied identifier and granted role,
// files the request as pending, and stamps the creation time. Only a
// RoleDecision can approve a request or grant a role.
func (r *RoleRequest) PrepareForInsert(now time.Time) {
	r.ID = primitive.NilObjectID
	r.Status = RequestStatusPending
	r.Role = ""
	r.CreatedAt = now.UTC()
}

// RoleDecision is the partial update applied to a role request.
type RoleDecision struct {
	Status RequestStatus `json:"status" validate:"required,oneof=pending approved rejected"`
	Role   Role          `json:"role"   validate:"omitempty,oneof=tourist guide admin"`
}
