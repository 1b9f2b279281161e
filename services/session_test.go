package services

import (
	"testing"

	"migranthealth/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveScreen(t *testing.T) {
	approved := true
	unapproved := false

	tests := []struct {
		name string
		user *models.User
		want Screen
	}{
		{"no session", nil, ScreenRoleSelector},
		{"patient", &models.User{Role: models.RolePatient, Approved: &approved}, ScreenPatient},
		{"admin", &models.User{Role: models.RoleAdmin, Approved: &approved}, ScreenAdmin},
		{"approved doctor", &models.User{Role: models.RoleDoctor, Approved: &approved}, ScreenDoctor},
		{"doctor without flag", &models.User{Role: models.RoleDoctor}, ScreenDoctor},
		{"unapproved doctor", &models.User{Role: models.RoleDoctor, Approved: &unapproved}, ScreenPendingApproval},
		{"unknown role falls back", &models.User{Role: "nurse"}, ScreenRoleSelector},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveScreen(tt.user))
		})
	}
}
