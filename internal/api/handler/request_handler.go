package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/priyatech/agency-api/internal/api/metrics"
	"github.com/priyatech/agency-api/internal/core/ports"
)

// RequestHandler handles HTTP requests for the service-request workflow.
type RequestHandler struct {
	service ports.RequestService
}

func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// Submit creates a new pending service request for the calling client.
//
// @Summary      Submit a service request
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitRequestRequest  true  "Request details"
// @Success      201   {object}  requestResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/service-requests [post]
func (h *RequestHandler) Submit(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req submitRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	detail, err := h.service.Submit(c.Request().Context(), caller, ports.SubmitRequestInput{
		ServiceID:   req.ServiceID,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	metrics.RequestsSubmittedTotal.Inc()

	return c.JSON(http.StatusCreated, toRequestResponse(detail))
}

// List returns service requests: all of them for admins, the caller's own
// otherwise.
//
// @Summary      List service requests
// @Tags         service-requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  requestResponse
// @Router       /v1/service-requests [get]
func (h *RequestHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	details, err := h.service.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRequestResponses(details))
}

// Approve transitions a pending request to Approved and creates its project.
//
// @Summary      Approve a service request
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Request id"
// @Param        body  body      approveRequestRequest  true  "Approval parameters"
// @Success      200   {object}  approveResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/service-requests/{id}/approve [post]
func (h *RequestHandler) Approve(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req approveRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	result, err := h.service.Approve(c.Request().Context(), caller, c.Param("id"), ports.ApproveRequestInput{
		AdminNotes:        req.AdminNotes,
		ProjectTitle:      req.ProjectTitle,
		Deadline:          req.Deadline,
		AssignedEmployees: req.AssignedEmployees,
	})
	if err != nil {
		return err
	}
	metrics.RequestsDecidedTotal.WithLabelValues("approved").Inc()

	return c.JSON(http.StatusOK, approveResponse{Request: result.Request, Project: result.Project})
}

// Reject transitions a pending request to Rejected.
//
// @Summary      Reject a service request
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Request id"
// @Param        body  body      rejectRequestRequest  true  "Rejection parameters"
// @Success      200   {object}  domain.ServiceRequest
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/service-requests/{id}/reject [post]
func (h *RequestHandler) Reject(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req rejectRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	request, err := h.service.Reject(c.Request().Context(), caller, c.Param("id"), ports.RejectRequestInput{
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		return err
	}
	metrics.RequestsDecidedTotal.WithLabelValues("rejected").Inc()

	return c.JSON(http.StatusOK, request)
}
