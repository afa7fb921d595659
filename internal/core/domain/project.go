package domain

import "time"

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectPending    ProjectStatus = "Pending"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectTesting    ProjectStatus = "Testing"
	ProjectCompleted  ProjectStatus = "Completed"
)

// ValidProjectStatus reports whether s is one of the four allowed statuses.
// Any allowed status may be written in any order by an authorized actor;
// the workflow imposes no hard ordering between them.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectPending, ProjectInProgress, ProjectTesting, ProjectCompleted:
		return true
	}
	return false
}

// Project is an approved engagement for a client.
type Project struct {
	ID                string        `json:"id" bson:"_id,omitempty"`
	Title             string        `json:"title" bson:"title"`
	Description       string        `json:"description,omitempty" bson:"description,omitempty"`
	ClientID          string        `json:"client_id" bson:"client_id"`
	ServiceID         string        `json:"service_id" bson:"service_id"`
	Budget            float64       `json:"budget" bson:"budget"`
	AssignedEmployees []string      `json:"assigned_employees" bson:"assigned_employees"`
	Status            ProjectStatus `json:"status" bson:"status"`
	Deadline          time.Time     `json:"deadline" bson:"deadline"`
	CreatedAt         time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at" bson:"updated_at"`
}

// IsAssigned reports whether the given user id is in the project's
// assigned employee set.
func (p *Project) IsAssigned(userID string) bool {
	for _, id := range p.AssignedEmployees {
		if id == userID {
			return true
		}
	}
	return false
}

// ProjectRef is the resolved display view of a project reference.
type ProjectRef struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Status ProjectStatus `json:"status"`
}

// Ref returns the display view of p.
func (p *Project) Ref() ProjectRef {
	return ProjectRef{ID: p.ID, Title: p.Title, Status: p.Status}
}
