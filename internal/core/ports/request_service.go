package ports

import (
	"context"
	"time"

	"github.com/priyatech/agency-api/internal/core/domain"
)

// SubmitRequestInput carries a client's ask for a catalog service.
type SubmitRequestInput struct {
	ServiceID   string
	Description string
}

// ApproveRequestInput carries the admin's approval parameters. All fields
// are optional: ProjectTitle defaults to "<service title> for <client name>",
// Deadline to 30 days from approval, AssignedEmployees to an empty set.
type ApproveRequestInput struct {
	AdminNotes        string
	ProjectTitle      string
	Deadline          *time.Time
	AssignedEmployees []string
}

// RejectRequestInput carries the admin's rejection parameters. AdminNotes
// defaults to "Request rejected" when empty.
type RejectRequestInput struct {
	AdminNotes string
}

// RequestDetail is a service request with its references resolved to
// display fields.
type RequestDetail struct {
	Request    *domain.ServiceRequest
	Client     *domain.UserRef
	Service    *domain.ServiceRef
	ApprovedBy *domain.UserRef
	Project    *domain.ProjectRef
}

// ApproveResult is returned by Approve: the updated request and the project
// it spawned.
type ApproveResult struct {
	Request *domain.ServiceRequest
	Project *domain.Project
}

// RequestService governs the service-request lifecycle
// (Pending -> Approved | Rejected) and its notification side effects.
type RequestService interface {
	// Submit creates a Pending request and notifies one admin, if any exists.
	Submit(ctx context.Context, caller domain.Caller, input SubmitRequestInput) (*RequestDetail, error)
	// Approve transitions the request to Approved, creates the linked
	// project, and notifies the client. Admin only.
	Approve(ctx context.Context, caller domain.Caller, requestID string, input ApproveRequestInput) (*ApproveResult, error)
	// Reject transitions the request to Rejected and notifies the client.
	// Admin only.
	Reject(ctx context.Context, caller domain.Caller, requestID string, input RejectRequestInput) (*domain.ServiceRequest, error)
	// List returns all requests for admins, the caller's own otherwise,
	// newest first.
	List(ctx context.Context, caller domain.Caller) ([]*RequestDetail, error)
}
