package services

import "migranthealth/models"

// Screen names the view the client should render for the active session.
type Screen string

const (
	ScreenRoleSelector    Screen = "role_selector"
	ScreenPendingApproval Screen = "pending_approval"
	ScreenPatient         Screen = "patient_dashboard"
	ScreenDoctor          Screen = "doctor_dashboard"
	ScreenAdmin           Screen = "admin_dashboard"
)

// ResolveScreen is the session gate: no session shows the role selector, an
// unapproved doctor is held at the approval gate, every other session routes
// to its role's dashboard. Unrecognized roles fall back to the selector.
func ResolveScreen(user *models.User) Screen {
	if user == nil {
		return ScreenRoleSelector
	}
	if user.Role == models.RoleDoctor && !user.IsApproved() {
		return ScreenPendingApproval
	}
	switch user.Role {
	case models.RolePatient:
		return ScreenPatient
	case models.RoleDoctor:
		return ScreenDoctor
	case models.RoleAdmin:
		return ScreenAdmin
	}
	return ScreenRoleSelector
}
