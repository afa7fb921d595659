package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/priyatech/agency-api/internal/core/domain"
	"github.com/priyatech/agency-api/internal/core/ports"
)

// ProjectService governs the project lifecycle and who may read or write a
// given project.
type ProjectService struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	catalog  ports.CatalogRepository
	logger   zerolog.Logger
}

func NewProjectService(
	projects ports.ProjectRepository,
	users ports.UserRepository,
	catalog ports.CatalogRepository,
	logger zerolog.Logger,
) *ProjectService {
	return &ProjectService{projects: projects, users: users, catalog: catalog, logger: logger}
}

func (s *ProjectService) Create(ctx context.Context, caller domain.Caller, input ports.CreateProjectInput) (*ports.ProjectDetail, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	var missing []string
	if input.Title == "" {
		missing = append(missing, "title")
	}
	if input.ClientID == "" {
		missing = append(missing, "client_id")
	}
	if input.ServiceID == "" {
		missing = append(missing, "service_id")
	}
	if input.Budget == 0 {
		missing = append(missing, "budget")
	}
	if input.Deadline.IsZero() {
		missing = append(missing, "deadline")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}

	// Referenced entities must resolve before the project is written.
	if _, err := s.users.FindByID(ctx, input.ClientID); err != nil {
		return nil, err
	}
	if _, err := s.catalog.FindByID(ctx, input.ServiceID); err != nil {
		return nil, err
	}

	employees := input.AssignedEmployees
	if employees == nil {
		employees = []string{}
	}

	now := time.Now().UTC()
	created, err := s.projects.Create(ctx, &domain.Project{
		Title:             input.Title,
		Description:       input.Description,
		ClientID:          input.ClientID,
		ServiceID:         input.ServiceID,
		Budget:            input.Budget,
		AssignedEmployees: employees,
		Status:            domain.ProjectPending,
		Deadline:          input.Deadline,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("project_id", created.ID).
		Str("client_id", created.ClientID).
		Str("created_by", caller.ID).
		Msg("project created")

	return s.detail(ctx, created)
}

func (s *ProjectService) Get(ctx context.Context, caller domain.Caller, id string) (*ports.ProjectDetail, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccessProject(caller, project) {
		return nil, domain.ErrForbidden
	}
	return s.detail(ctx, project)
}

func (s *ProjectService) ListAll(ctx context.Context, caller domain.Caller) ([]*ports.ProjectDetail, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	projects, err := s.projects.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, projects)
}

func (s *ProjectService) ListMine(ctx context.Context, caller domain.Caller) ([]*ports.ProjectDetail, error) {
	var (
		projects []*domain.Project
		err      error
	)
	switch caller.Role {
	case domain.RoleClient:
		projects, err = s.projects.FindByClient(ctx, caller.ID)
	case domain.RoleEmployee:
		projects, err = s.projects.FindByEmployee(ctx, caller.ID)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	return s.details(ctx, projects)
}

// Update applies a partial update: nil fields keep their stored values, so
// a zero budget or an empty employee set can be written deliberately.
func (s *ProjectService) Update(ctx context.Context, caller domain.Caller, id string, input ports.UpdateProjectInput) (*ports.ProjectDetail, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domain.NewValidationError("title")
		}
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.ClientID != nil {
		if _, err := s.users.FindByID(ctx, *input.ClientID); err != nil {
			return nil, err
		}
		project.ClientID = *input.ClientID
	}
	if input.ServiceID != nil {
		if _, err := s.catalog.FindByID(ctx, *input.ServiceID); err != nil {
			return nil, err
		}
		project.ServiceID = *input.ServiceID
	}
	if input.Budget != nil {
		project.Budget = *input.Budget
	}
	if input.AssignedEmployees != nil {
		employees := *input.AssignedEmployees
		if employees == nil {
			employees = []string{}
		}
		project.AssignedEmployees = employees
	}
	if input.Status != nil {
		if !domain.ValidProjectStatus(*input.Status) {
			return nil, domain.ErrInvalidStatus
		}
		project.Status = *input.Status
	}
	if input.Deadline != nil {
		project.Deadline = *input.Deadline
	}

	project.UpdatedAt = time.Now().UTC()
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", project.ID).Str("updated_by", caller.ID).Msg("project updated")
	return s.detail(ctx, project)
}

// UpdateStatus writes one of the four allowed statuses. Only an employee
// assigned to the project may call it; admins manage projects through
// Update instead.
func (s *ProjectService) UpdateStatus(ctx context.Context, caller domain.Caller, id string, status domain.ProjectStatus) (*ports.ProjectDetail, error) {
	if !domain.ValidProjectStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanUpdateProjectStatus(caller, project) {
		return nil, domain.ErrForbidden
	}

	project.Status = status
	project.UpdatedAt = time.Now().UTC()
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("project_id", project.ID).
		Str("status", string(status)).
		Str("updated_by", caller.ID).
		Msg("project status updated")

	return s.detail(ctx, project)
}

// Delete removes the project. Messages referencing it keep their dangling
// project id; there is no cascade.
func (s *ProjectService) Delete(ctx context.Context, caller domain.Caller, id string) error {
	if !caller.IsAdmin() {
		return domain.ErrForbidden
	}
	if _, err := s.projects.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("project_id", id).Str("deleted_by", caller.ID).Msg("project deleted")
	return nil
}

func (s *ProjectService) detail(ctx context.Context, p *domain.Project) (*ports.ProjectDetail, error) {
	details, err := s.details(ctx, []*domain.Project{p})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

// details resolves client/service/employee references for a batch of
// projects with one lookup per collection.
func (s *ProjectService) details(ctx context.Context, projects []*domain.Project) ([]*ports.ProjectDetail, error) {
	userIDs := make([]string, 0, len(projects)*3)
	serviceIDs := make([]string, 0, len(projects))
	for _, p := range projects {
		userIDs = append(userIDs, p.ClientID)
		userIDs = append(userIDs, p.AssignedEmployees...)
		serviceIDs = append(serviceIDs, p.ServiceID)
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

	details := make([]*ports.ProjectDetail, 0, len(projects))
	for _, p := range projects {
		d := &ports.ProjectDetail{Project: p, Employees: []domain.UserRef{}}
		if u, ok := usersByID[p.ClientID]; ok {
			d.Client = refOf(u.Ref())
		}
		if sv, ok := servicesByID[p.ServiceID]; ok {
			d.Service = refOf(sv.Ref())
		}
		for _, empID := range p.AssignedEmployees {
			if u, ok := usersByID[empID]; ok {
				d.Employees = append(d.Employees, u.Ref())
			}
		}
		details = append(details, d)
	}
	return details, nil
}
