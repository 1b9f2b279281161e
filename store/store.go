package store

import (
	"log"
	"sync"
	"time"

	"migranthealth/models"
	"migranthealth/repository"

	"github.com/google/uuid"
)

// Store is the sole writer of the AppState aggregate. Every mutation is
// total and synchronous; handlers run concurrently, so one mutex serializes
// all access. After each mutation the full state is handed to the
// persistence port.
type Store struct {
	mu    sync.Mutex
	state models.AppState
	repo  repository.StateRepository
}

// New builds a store seeded from whatever the repository has persisted;
// a nil or empty load starts the session from a blank state.
func New(repo repository.StateRepository) *Store {
	s := &Store{repo: repo}
	if repo != nil {
		if saved := repo.Load(); saved != nil {
			s.state = *saved
		}
	}
	return s
}

func generateID() string {
	return uuid.NewString()
}

// persist is called with the lock held. Nothing is written while every
// collection is empty so a fresh start never clobbers a previously saved
// blob before its first load.
func (s *Store) persist() {
	if s.repo == nil || s.state.Empty() {
		return
	}
	if err := s.repo.Save(s.state); err != nil {
		log.Println("Error from Save:", err)
	}
}

// Login resumes the identity matching the exact (name, role) pair or
// creates a fresh one. New doctors start unapproved; every other role is
// approved immediately. The matched or created user becomes the session.
func (s *Store) Login(name string, role models.UserRole) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Users {
		if s.state.Users[i].Name == name && s.state.Users[i].Role == role {
			cu := s.state.Users[i]
			s.state.CurrentUser = &cu
			s.persist()
			return cu
		}
	}

	approved := role != models.RoleDoctor
	user := models.User{
		ID:       generateID(),
		Name:     name,
		Role:     role,
		Approved: &approved,
	}
	s.state.Users = append(s.state.Users, user)
	cu := user
	s.state.CurrentUser = &cu
	s.persist()
	return user
}

func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.CurrentUser = nil
	s.persist()
}

// CreateAssessment assigns a fresh identity and createdAt, defaults the
// appointment workflow to pending and appends. The draft's patientId is
// taken as given.
func (s *Store) CreateAssessment(draft models.MigrantAssessment) models.MigrantAssessment {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = generateID()
	draft.CreatedAt = time.Now()
	if draft.AppointmentStatus == "" {
		draft.AppointmentStatus = models.StatusPending
	}
	s.state.Assessments = append(s.state.Assessments, draft)
	s.persist()
	return draft
}

// UpdateAssessment shallow-merges the patch into the assessment with the
// given id. Unknown ids are a silent no-op. UpdatedAt moves only when the
// patch carries it.
func (s *Store) UpdateAssessment(id string, patch models.AssessmentPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Assessments {
		if s.state.Assessments[i].ID != id {
			continue
		}
		a := &s.state.Assessments[i]
		if patch.Diagnosis != nil {
			a.Diagnosis = *patch.Diagnosis
		}
		if patch.PreventiveGoals != nil {
			a.PreventiveGoals = *patch.PreventiveGoals
		}
		if patch.DoctorFeedback != nil {
			a.DoctorFeedback = *patch.DoctorFeedback
		}
		if patch.DoctorID != nil {
			a.DoctorID = *patch.DoctorID
		}
		if patch.AppointmentStatus != nil {
			a.AppointmentStatus = *patch.AppointmentStatus
		}
		if patch.UpdatedAt != nil {
			stamp := *patch.UpdatedAt
			a.UpdatedAt = &stamp
		}
		s.persist()
		return true
	}
	return false
}

func (s *Store) CreateHealthCamp(draft models.HealthCamp) models.HealthCamp {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = generateID()
	s.state.HealthCamps = append(s.state.HealthCamps, draft)
	s.persist()
	return draft
}

// UpdateUser merges the patch into the user with the given id; unknown ids
// are a silent no-op. The session copy is refreshed when it is the same
// user, so an approval flip takes effect on the next gate check.
func (s *Store) UpdateUser(id string, patch models.UserPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Users {
		if s.state.Users[i].ID != id {
			continue
		}
		if patch.Approved != nil {
			approved := *patch.Approved
			s.state.Users[i].Approved = &approved
		}
		if s.state.CurrentUser != nil && s.state.CurrentUser.ID == id {
			cu := s.state.Users[i]
			s.state.CurrentUser = &cu
		}
		s.persist()
		return true
	}
	return false
}

// CurrentUser returns the live record of the active session, or nil when
// nobody is logged in.
func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentUser == nil {
		return nil
	}
	for i := range s.state.Users {
		if s.state.Users[i].ID == s.state.CurrentUser.ID {
			u := s.state.Users[i]
			return &u
		}
	}
	u := *s.state.CurrentUser
	return &u
}

func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.User(nil), s.state.Users...)
}

func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Users {
		if s.state.Users[i].ID == id {
			return s.state.Users[i], true
		}
	}
	return models.User{}, false
}

func (s *Store) Assessments() []models.MigrantAssessment {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.MigrantAssessment(nil), s.state.Assessments...)
}

func (s *Store) AssessmentByID(id string) (models.MigrantAssessment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Assessments {
		if s.state.Assessments[i].ID == id {
			return s.state.Assessments[i], true
		}
	}
	return models.MigrantAssessment{}, false
}

func (s *Store) AssessmentsByPatient(patientID string) []models.MigrantAssessment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.MigrantAssessment{}
	for _, a := range s.state.Assessments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) HealthCamps() []models.HealthCamp {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.HealthCamp(nil), s.state.HealthCamps...)
}

// Snapshot returns a deep copy of the whole aggregate, for jobs that need
// a consistent view outside the lock.
func (s *Store) Snapshot() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}
