package handler

import (
	"time"

	"github.com/priyatech/agency-api/internal/core/domain"
	"github.com/priyatech/agency-api/internal/core/ports"
)

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin employee client"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// --- Users ---

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin employee client"`
}

// --- Catalog ---

type createServiceRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
}

type updateServiceRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
}

// --- Service requests ---

type submitRequestRequest struct {
	ServiceID   string `json:"service_id"  validate:"required"`
	Description string `json:"description" validate:"required"`
}

type approveRequestRequest struct {
	AdminNotes        string     `json:"admin_notes"`
	ProjectTitle      string     `json:"project_title"`
	Deadline          *time.Time `json:"deadline"`
	AssignedEmployees []string   `json:"assigned_employees"`
}

type rejectRequestRequest struct {
	AdminNotes string `json:"admin_notes"`
}

// requestResponse is a service request with its references resolved for
// display. The embedded document supplies the base fields.
type requestResponse struct {
	domain.ServiceRequest
	Client     *domain.UserRef    `json:"client,omitempty"`
	Service    *domain.ServiceRef `json:"service,omitempty"`
	Approver   *domain.UserRef    `json:"approver,omitempty"`
	Project    *domain.ProjectRef `json:"project,omitempty"`
}

func toRequestResponse(d *ports.RequestDetail) requestResponse {
	return requestResponse{
		ServiceRequest: *d.Request,
		Client:         d.Client,
		Service:        d.Service,
		Approver:       d.ApprovedBy,
		Project:        d.Project,
	}
}

func toRequestResponses(details []*ports.RequestDetail) []requestResponse {
	out := make([]requestResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toRequestResponse(d))
	}
	return out
}

type approveResponse struct {
	Request *domain.ServiceRequest `json:"request"`
	Project *domain.Project        `json:"project"`
}

// --- Projects ---

type createProjectRequest struct {
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	ClientID          string    `json:"client_id"`
	ServiceID         string    `json:"service_id"`
	Budget            float64   `json:"budget"`
	AssignedEmployees []string  `json:"assigned_employees"`
	Deadline          time.Time `json:"deadline"`
}

type updateProjectRequest struct {
	Title             *string               `json:"title"`
	Description       *string               `json:"description"`
	ClientID          *string               `json:"client_id"`
	ServiceID         *string               `json:"service_id"`
	Budget            *float64              `json:"budget"`
	AssignedEmployees *[]string             `json:"assigned_employees"`
	Status            *domain.ProjectStatus `json:"status"`
	Deadline          *time.Time            `json:"deadline"`
}

type updateProjectStatusRequest struct {
	Status domain.ProjectStatus `json:"status" validate:"required"`
}

// projectResponse is a project with its references resolved for display.
type projectResponse struct {
	domain.Project
	Client    *domain.UserRef    `json:"client,omitempty"`
	Service   *domain.ServiceRef `json:"service,omitempty"`
	Employees []domain.UserRef   `json:"employees,omitempty"`
}

func toProjectResponse(d *ports.ProjectDetail) projectResponse {
	return projectResponse{
		Project:   *d.Project,
		Client:    d.Client,
		Service:   d.Service,
		Employees: d.Employees,
	}
}

func toProjectResponses(details []*ports.ProjectDetail) []projectResponse {
	out := make([]projectResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toProjectResponse(d))
	}
	return out
}

// --- Messages ---

type sendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	ProjectID  string `json:"project_id"`
	Body       string `json:"message"     validate:"required"`
}

// messageResponse is a message with its references resolved for display.
type messageResponse struct {
	domain.Message
	Sender   *domain.UserRef    `json:"sender,omitempty"`
	Receiver *domain.UserRef    `json:"receiver,omitempty"`
	Project  *domain.ProjectRef `json:"project,omitempty"`
}

func toMessageResponse(d *ports.MessageDetail) messageResponse {
	return messageResponse{
		Message:  *d.Message,
		Sender:   d.Sender,
		Receiver: d.Receiver,
		Project:  d.Project,
	}
}

func toMessageResponses(details []*ports.MessageDetail) []messageResponse {
	out := make([]messageResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toMessageResponse(d))
	}
	return out
}

type unreadCountResponse struct {
	Unread int64 `json:"unread"`
}
