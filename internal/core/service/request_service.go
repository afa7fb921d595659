package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/priyatech/agency-api/internal/core/domain"
	"github.com/priyatech/agency-api/internal/core/ports"
)

const defaultDeadlineDays = 30

// RequestService governs the ServiceRequest lifecycle. Approval fans out a
// project creation and a client notification; submission notifies an admin.
type RequestService struct {
	requests ports.RequestRepository
	catalog  ports.CatalogRepository
	users    ports.UserRepository
	projects ports.ProjectRepository
	messages ports.MessageService
	logger   zerolog.Logger
}

func NewRequestService(
	requests ports.RequestRepository,
	catalog ports.CatalogRepository,
	users ports.UserRepository,
	projects ports.ProjectRepository,
	messages ports.MessageService,
	logger zerolog.Logger,
) *RequestService {
	return &RequestService{
		requests: requests,
		catalog:  catalog,
		users:    users,
		projects: projects,
		messages: messages,
		logger:   logger,
	}
}

// Submit creates a Pending request for the caller and notifies one admin.
// Which admin receives the notification is unspecified when several exist;
// when none exists the notification is skipped without error.
func (s *RequestService) Submit(ctx context.Context, caller domain.Caller, input ports.SubmitRequestInput) (*ports.RequestDetail, error) {
	var missing []string
	if input.ServiceID == "" {
		missing = append(missing, "service_id")
	}
	if input.Description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}

	svc, err := s.catalog.FindByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.requests.Create(ctx, &domain.ServiceRequest{
		ClientID:    caller.ID,
		ServiceID:   input.ServiceID,
		Description: input.Description,
		Status:      domain.RequestPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	admin, err := s.users.FindOneByRole(ctx, domain.RoleAdmin)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		s.logger.Warn().Str("request_id", created.ID).Msg("no admin user found, skipping notification")
	case err != nil:
		return nil, err
	default:
		body := fmt.Sprintf(
			"New Service Request: %s\n\nPrice: $%s\n\nDescription: %s\n\nPlease check the Service Requests page to approve or reject.",
			svc.Title, formatPrice(svc.Price), input.Description,
		)
		if _, err := s.messages.Send(ctx, caller, ports.SendMessageInput{ReceiverID: admin.ID, Body: body}); err != nil {
			return nil, fmt.Errorf("notify admin: %w", err)
		}
	}

	s.logger.Info().
		Str("request_id", created.ID).
		Str("client_id", caller.ID).
		Str("service_id", input.ServiceID).
		Msg("service request submitted")

	return &ports.RequestDetail{
		Request: created,
		Service: refOf(svc.Ref()),
	}, nil
}

// Approve transitions a Pending request to Approved. The project is written
// first and the request only marked Approved after that write succeeds, so a
// crash between the two leaves a recoverable Pending request with an
// orphaned project rather than an Approved request without one.
func (s *RequestService) Approve(ctx context.Context, caller domain.Caller, requestID string, input ports.ApproveRequestInput) (*ports.ApproveResult, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !req.Status.CanTransitionTo(domain.RequestApproved) {
		return nil, domain.ErrAlreadyProcessed
	}

	client, err := s.users.FindByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	svc, err := s.catalog.FindByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	title := input.ProjectTitle
	if title == "" {
		title = fmt.Sprintf("%s for %s", svc.Title, client.Name)
	}
	deadline := now.AddDate(0, 0, defaultDeadlineDays)
	if input.Deadline != nil {
		deadline = *input.Deadline
	}
	employees := input.AssignedEmployees
	if employees == nil {
		employees = []string{}
	}

	project, err := s.projects.Create(ctx, &domain.Project{
		Title:             title,
		Description:       req.Description,
		ClientID:          req.ClientID,
		ServiceID:         req.ServiceID,
		AssignedEmployees: employees,
		Status:            domain.ProjectPending,
		Deadline:          deadline,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	req.Status = domain.RequestApproved
	req.ApprovedBy = caller.ID
	req.ApprovedAt = &now
	req.AdminNotes = input.AdminNotes
	req.ProjectID = project.ID
	req.UpdatedAt = now
	if err := s.requests.Update(ctx, req); err != nil {
		// The project already exists; the request is still Pending and can
		// be retried. Surface the orphan for operators.
		s.logger.Error().Err(err).
			Str("request_id", req.ID).
			Str("project_id", project.ID).
			Msg("request update failed after project creation, project orphaned")
		return nil, fmt.Errorf("approve request: %w", err)
	}

	body := fmt.Sprintf("Your service request for %q has been approved!\n\nProject: %s\n", svc.Title, project.Title)
	if input.AdminNotes != "" {
		body += fmt.Sprintf("\nNotes: %s", input.AdminNotes)
	}
	if _, err := s.messages.Send(ctx, caller, ports.SendMessageInput{
		ReceiverID: req.ClientID,
		ProjectID:  project.ID,
		Body:       body,
	}); err != nil {
		return nil, fmt.Errorf("notify client: %w", err)
	}

	s.logger.Info().
		Str("request_id", req.ID).
		Str("project_id", project.ID).
		Str("approved_by", caller.ID).
		Msg("service request approved")

	return &ports.ApproveResult{Request: req, Project: project}, nil
}

// Reject transitions a Pending request to Rejected and notifies the client.
func (s *RequestService) Reject(ctx context.Context, caller domain.Caller, requestID string, input ports.RejectRequestInput) (*domain.ServiceRequest, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !req.Status.CanTransitionTo(domain.RequestRejected) {
		return nil, domain.ErrAlreadyProcessed
	}

	svc, err := s.catalog.FindByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	notes := input.AdminNotes
	if notes == "" {
		notes = "Request rejected"
	}

	req.Status = domain.RequestRejected
	req.ApprovedBy = caller.ID
	req.ApprovedAt = &now
	req.AdminNotes = notes
	req.UpdatedAt = now
	if err := s.requests.Update(ctx, req); err != nil {
		return nil, fmt.Errorf("reject request: %w", err)
	}

	reason := input.AdminNotes
	if reason == "" {
		reason = "Not specified"
	}
	body := fmt.Sprintf("Your service request for %q has been rejected.\n\nReason: %s", svc.Title, reason)
	if _, err := s.messages.Send(ctx, caller, ports.SendMessageInput{ReceiverID: req.ClientID, Body: body}); err != nil {
		return nil, fmt.Errorf("notify client: %w", err)
	}

	s.logger.Info().
		Str("request_id", req.ID).
		Str("rejected_by", caller.ID).
		Msg("service request rejected")

	return req, nil
}

// List returns all requests for admins and the caller's own requests for
// everyone else, newest first, with references resolved.
func (s *RequestService) List(ctx context.Context, caller domain.Caller) ([]*ports.RequestDetail, error) {
	var (
		requests []*domain.ServiceRequest
		err      error
	)
	if caller.IsAdmin() {
		requests, err = s.requests.FindAll(ctx)
	} else {
		requests, err = s.requests.FindByClient(ctx, caller.ID)
	}
	if err != nil {
		return nil, err
	}

	return s.resolve(ctx, requests)
}

// resolve populates client/service/approver/project display references for a
// batch of requests using one lookup per collection.
func (s *RequestService) resolve(ctx context.Context, requests []*domain.ServiceRequest) ([]*ports.RequestDetail, error) {
	userIDs := make([]string, 0, len(requests)*2)
	serviceIDs := make([]string, 0, len(requests))
	for _, r := range requests {
		userIDs = append(userIDs, r.ClientID)
		if r.ApprovedBy != "" {
			userIDs = append(userIDs, r.ApprovedBy)
		}
		serviceIDs = append(serviceIDs, r.ServiceID)
	}

	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	usersByID := make(map[string]*domain.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	services, err := s.catalog.FindByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	servicesByID := make(map[string]*domain.Service, len(services))
	for _, sv := range services {
		servicesByID[sv.ID] = sv
	}

	details := make([]*ports.RequestDetail, 0, len(requests))
	for _, r := range requests {
		d := &ports.RequestDetail{Request: r}
		if u, ok := usersByID[r.ClientID]; ok {
			d.Client = refOf(u.Ref())
		}
		if u, ok := usersByID[r.ApprovedBy]; ok {
			d.ApprovedBy = refOf(u.Ref())
		}
		if sv, ok := servicesByID[r.ServiceID]; ok {
			d.Service = refOf(sv.Ref())
		}
		if r.ProjectID != "" {
			if p, err := s.projects.FindByID(ctx, r.ProjectID); err == nil {
				d.Project = refOf(p.Ref())
			}
		}
		details = append(details, d)
	}
	return details, nil
}

// formatPrice renders a price the way it is shown to users: no trailing
// zeros ($5000, $49.5).
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// refOf returns a pointer to v. Keeps the detail-assembly code terse.
func refOf[T any](v T) *T {
	return &v
}
