package repository

import "migranthealth/models"

// StateKey names the single persisted blob across every backend.
const StateKey = "migrantHealthData"

// StateRepository is the persistence port for the whole application state.
// Load returns nil when nothing usable is stored; a malformed blob is
// logged and swallowed so the application starts from an empty state.
type StateRepository interface {
	Load() *models.AppState
	Save(state models.AppState) error
}
