package domain

import "time"

// RequestStatus represents the lifecycle state of a service request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestRejected RequestStatus = "Rejected"
)

// validRequestTransitions defines the allowed state machine transitions.
// Approved and Rejected are terminal.
var validRequestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending: {RequestApproved, RequestRejected},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range validRequestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ServiceRequest is a client's ask for a catalog service. Approving one
// creates a Project and links it back via ProjectID; approvedBy/approvedAt
// are set exactly when the request leaves Pending.
type ServiceRequest struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	ClientID    string        `json:"client_id" bson:"client_id"`
	ServiceID   string        `json:"service_id" bson:"service_id"`
	Description string        `json:"description" bson:"description"`
	Status      RequestStatus `json:"status" bson:"status"`
	AdminNotes  string        `json:"admin_notes,omitempty" bson:"admin_notes,omitempty"`
	ApprovedBy  string        `json:"approved_by,omitempty" bson:"approved_by,omitempty"`
	ApprovedAt  *time.Time    `json:"approved_at,omitempty" bson:"approved_at,omitempty"`
	ProjectID   string        `json:"project_id,omitempty" bson:"project_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}
