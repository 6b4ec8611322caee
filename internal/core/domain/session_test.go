package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_Authenticated(t *testing.T) {
	assert.False(t, Session{}.Authenticated())
	assert.True(t, Session{Credential: "tok-1"}.Authenticated())
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleDoctor.IsValid())
	assert.True(t, RolePatient.IsValid())
	assert.False(t, RoleUnknown.IsValid())
	assert.False(t, Role("nurse").IsValid())
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "doctor", RoleDoctor.String())
	assert.Equal(t, "unknown", RoleUnknown.String())
}
