package transform

import (
	"github.com/uktrade/help-desk-api/internal/domain"
	"github.com/uktrade/help-desk-api/internal/halo"
	apperrors "github.com/uktrade/help-desk-api/pkg/util/errorutil"
)

// UserToHalo builds the outbound user payload. A user with neither id nor
// email cannot be resolved or created on the backend.
func UserToHalo(user *domain.User) (halo.User, error) {
	if !user.Resolvable() {
		return halo.User{}, apperrors.NewInvalidUser("user must carry an id or an email")
	}
	payload := halo.User{
		Name:         user.Name,
		EmailAddress: user.Email,
	}
	if user.ID != nil {
		id := *user.ID
		payload.ID = &id
	}
	return payload, nil
}

// UserFromHalo projects a backend user into the canonical shape.
func UserFromHalo(payload halo.User) domain.User {
	return domain.User{
		ID:    payload.ID,
		Name:  payload.Name,
		Email: payload.EmailAddress,
	}
}
