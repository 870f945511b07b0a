package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uktrade/help-desk-api/internal/domain"
	"github.com/uktrade/help-desk-api/internal/halo"
	apperrors "github.com/uktrade/help-desk-api/pkg/util/errorutil"
)

func TestUserToHaloRequiresIdentity(t *testing.T) {
	_, err := UserToHalo(&domain.User{Name: "No Identity"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidUser))
}

func TestUserToHaloWithEmail(t *testing.T) {
	payload, err := UserToHalo(&domain.User{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Nil(t, payload.ID)
	assert.Equal(t, "ada@example.com", payload.EmailAddress)
}

func TestUserRoundTrip(t *testing.T) {
	id := 9
	payload, err := UserToHalo(&domain.User{ID: &id, Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	back := UserFromHalo(payload)
	assert.Equal(t, 9, *back.ID)
	assert.Equal(t, "Ada", back.Name)
	assert.Equal(t, "ada@example.com", back.Email)
}

func TestUserFromHalo(t *testing.T) {
	id := 4
	user := UserFromHalo(halo.User{ID: &id, Name: "Grace", EmailAddress: "grace@example.com"})
	assert.Equal(t, 4, *user.ID)
	assert.Equal(t, "grace@example.com", user.Email)
}
