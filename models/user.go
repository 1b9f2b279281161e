package models

type UserRole string

const (
	RolePatient UserRole = "patient"
	RoleDoctor  UserRole = "doctor"
	RoleAdmin   UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID       string   `json:"id" bson:"id"`
	Name     string   `json:"name" bson:"name"`
	Role     UserRole `json:"role" bson:"role"`
	Approved *bool    `json:"approved,omitempty" bson:"approved,omitempty"`
}

// IsApproved treats an absent flag as approved; only doctors are ever
// created with the flag set to false.
func (u User) IsApproved() bool {
	return u.Approved == nil || *u.Approved
}

// UserPatch carries the updatable user fields; nil means leave unchanged.
type UserPatch struct {
	Approved *bool `json:"approved"`
}
