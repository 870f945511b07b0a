package dto

import "github.com/uktrade/help-desk-api/internal/domain"

// UserRequest is the Zendesk user envelope.
type UserRequest struct {
	User UserPayload `json:"user"`
}

// UserPayload is the Zendesk-shaped user body.
type UserPayload struct {
	ID    *int   `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// ToDomain projects the payload.
func (p UserPayload) ToDomain() *domain.User {
	return &domain.User{ID: p.ID, Name: p.Name, Email: p.Email}
}

// UserResponse is the single-user envelope.
type UserResponse struct {
	User UserView `json:"user"`
}

// UsersResponse is the user listing envelope.
type UsersResponse struct {
	Users []UserView `json:"users"`
}

// UserView is the Zendesk-shaped user returned to callers.
type UserView struct {
	ID    *int   `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// NewUserView projects a canonical user.
func NewUserView(user *domain.User) UserView {
	return UserView{ID: user.ID, Name: user.Name, Email: user.Email}
}
