package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"stitchfield-backend/internal/domain"
)

func TestSignAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	user := &domain.User{ID: primitive.NewObjectID(), Role: domain.RoleAdmin}

	token, err := m.Sign(user)
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Role: domain.RoleUser}
	token, err := NewManager("secret-a", time.Hour).Sign(user)
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)
	user := &domain.User{ID: primitive.NewObjectID(), Role: domain.RoleUser}
	token, err := m.Sign(user)
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	_, err := m.Parse("not-a-token")
	assert.Error(t, err)
}
