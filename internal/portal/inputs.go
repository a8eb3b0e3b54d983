package portal

import "schoolportal/internal/model"

// AnnouncementInput is an announcement minus its server-assigned fields.
type AnnouncementInput struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedBy string `json:"createdBy,omitempty"`
}

// QuizInput is a quiz minus its server-assigned fields.
type QuizInput struct {
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Questions   []model.QuizQuestion `json:"questions"`
	CreatedBy   string               `json:"createdBy,omitempty"`
}

// UserInput is a user minus its server-assigned fields. Role defaults to
// student server-side when empty.
type UserInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role,omitempty"`
}
