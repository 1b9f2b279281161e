package services

import (
	"migranthealth/models"
	"migranthealth/store"
)

// DashboardStats carries the derived counters shown on the admin and doctor
// dashboards. A case counts as completed once a diagnosis has been saved.
type DashboardStats struct {
	TotalPatients  int `json:"totalPatients"`
	ActiveDoctors  int `json:"activeDoctors"`
	PendingCases   int `json:"pendingCases"`
	CompletedCases int `json:"completedCases"`
	HealthCamps    int `json:"healthCamps"`
}

func ComputeStats(s *store.Store) DashboardStats {
	stats := DashboardStats{HealthCamps: len(s.HealthCamps())}
	for _, u := range s.Users() {
		switch u.Role {
		case models.RolePatient:
			stats.TotalPatients++
		case models.RoleDoctor:
			if u.IsApproved() {
				stats.ActiveDoctors++
			}
		}
	}
	for _, a := range s.Assessments() {
		if a.Diagnosis != "" {
			stats.CompletedCases++
		} else {
			stats.PendingCases++
		}
	}
	return stats
}
