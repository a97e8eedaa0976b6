package api

import (
	"github.com/google/uuid"

	"github.com/phrazzld/til-api/internal/domain"
)

// AcronymRequest is the body accepted by create and update. Fields are
// pointers so that a key sent with an empty value is distinguishable from a
// missing key; only the latter is rejected.
type AcronymRequest struct {
	Short  *string    `json:"short"  validate:"required"`
	Long   *string    `json:"long"   validate:"required"`
	UserID *uuid.UUID `json:"userID" validate:"required"`
}

// toInput converts a validated request into the domain input type.
func (r AcronymRequest) toInput() domain.AcronymInput {
	return domain.AcronymInput{
		Short:  *r.Short,
		Long:   *r.Long,
		UserID: *r.UserID,
	}
}

// CreateUserRequest is the body accepted by POST /api/users.
type CreateUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AcronymResponse is the wire form of an acronym.
type AcronymResponse struct {
	ID     uuid.UUID `json:"id"`
	Short  string    `json:"short"`
	Long   string    `json:"long"`
	UserID uuid.UUID `json:"userID"`
}

// UserResponse is the wire form of a user. The password hash is never exposed.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
}

func acronymToResponse(a *domain.Acronym) AcronymResponse {
	return AcronymResponse{
		ID:     a.ID,
		Short:  a.Short,
		Long:   a.Long,
		UserID: a.UserID,
	}
}

// acronymsToResponse always returns a non-nil slice so lists encode as [].
func acronymsToResponse(acronyms []*domain.Acronym) []AcronymResponse {
	out := make([]AcronymResponse, 0, len(acronyms))
	for _, a := range acronyms {
		out = append(out, acronymToResponse(a))
	}
	return out
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
	}
}

func usersToResponse(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userToResponse(u))
	}
	return out
}
