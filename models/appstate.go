package models

// AppState is the aggregate root: the active session plus the three
// insertion-ordered collections. Collections are append-only; existing
// users and assessments only ever receive targeted field updates.
type AppState struct {
	CurrentUser *User               `json:"currentUser" bson:"currentUser"`
	Users       []User              `json:"users" bson:"users"`
	Assessments []MigrantAssessment `json:"assessments" bson:"assessments"`
	HealthCamps []HealthCamp        `json:"healthCamps" bson:"healthCamps"`
}

// Empty reports whether all three collections are empty; an empty state is
// never persisted so a fresh start cannot clobber a saved blob.
func (s AppState) Empty() bool {
	return len(s.Users) == 0 && len(s.Assessments) == 0 && len(s.HealthCamps) == 0
}

// Clone returns a deep copy so callers can hand state out without sharing
// the store's backing slices.
func (s AppState) Clone() AppState {
	out := AppState{}
	if s.CurrentUser != nil {
		cu := *s.CurrentUser
		out.CurrentUser = &cu
	}
	if len(s.Users) > 0 {
		out.Users = append([]User(nil), s.Users...)
	}
	if len(s.Assessments) > 0 {
		out.Assessments = append([]MigrantAssessment(nil), s.Assessments...)
	}
	if len(s.HealthCamps) > 0 {
		out.HealthCamps = append([]HealthCamp(nil), s.HealthCamps...)
	}
	return out
}
