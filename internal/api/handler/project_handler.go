package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/priyatech/agency-api/internal/api/metrics"
	"github.com/priyatech/agency-api/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project management.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Create registers a new project directly, outside the approval workflow.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  projectResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	detail, err := h.service.Create(c.Request().Context(), caller, ports.CreateProjectInput{
		Title:             req.Title,
		Description:       req.Description,
		ClientID:          req.ClientID,
		ServiceID:         req.ServiceID,
		Budget:            req.Budget,
		AssignedEmployees: req.AssignedEmployees,
		Deadline:          req.Deadline,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProjectResponse(detail))
}

// ListAll returns every project.
//
// @Summary      List all projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   projectResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/projects [get]
func (h *ProjectHandler) ListAll(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	details, err := h.service.ListAll(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectResponses(details))
}

// ListMine returns the caller's projects: owned for clients, assigned for
// employees.
//
// @Summary      List my projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   projectResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/projects/mine [get]
func (h *ProjectHandler) ListMine(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	details, err := h.service.ListMine(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectResponses(details))
}

// Get returns a single project, subject to the visibility policy.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  projectResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	detail, err := h.service.Get(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectResponse(detail))
}

// Update applies a partial update to a project. Absent fields are left
// untouched; explicit zero values are applied.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to update"
// @Success      200   {object}  projectResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	detail, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), ports.UpdateProjectInput{
		Title:             req.Title,
		Description:       req.Description,
		ClientID:          req.ClientID,
		ServiceID:         req.ServiceID,
		Budget:            req.Budget,
		AssignedEmployees: req.AssignedEmployees,
		Status:            req.Status,
		Deadline:          req.Deadline,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectResponse(detail))
}

// UpdateStatus writes a new execution status to a project.
//
// @Summary      Update project status
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Project id"
// @Param        body  body      updateProjectStatusRequest  true  "New status"
// @Success      200   {object}  projectResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/projects/{id}/status [patch]
func (h *ProjectHandler) UpdateStatus(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateProjectStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	detail, err := h.service.UpdateStatus(c.Request().Context(), caller, c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	metrics.ProjectStatusTransitionsTotal.WithLabelValues(string(req.Status)).Inc()

	return c.JSON(http.StatusOK, toProjectResponse(detail))
}

// Delete removes a project. Messages referencing it are left in place.
//
// @Summary      Delete a project
// @Tags         projects
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
