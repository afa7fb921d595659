package domain

import "time"

// Service is a catalog offering clients can request.
type Service struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// ServiceRef is the resolved display view of a service reference.
type ServiceRef struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// Ref returns the display view of s.
func (s *Service) Ref() ServiceRef {
	return ServiceRef{ID: s.ID, Title: s.Title, Price: s.Price}
}
