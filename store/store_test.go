package store

import (
	"testing"
	"time"

	"migranthealth/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	stored *models.AppState
	saved  []models.AppState
}

func (f *fakeRepo) Load() *models.AppState { return f.stored }

func (f *fakeRepo) Save(state models.AppState) error {
	f.saved = append(f.saved, state.Clone())
	return nil
}

func TestLoginResumesExistingIdentity(t *testing.T) {
	s := New(nil)

	first := s.Login("Amina", models.RolePatient)
	second := s.Login("Amina", models.RolePatient)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, s.Users(), 1)
}

func TestLoginIsCaseSensitiveAndRoleScoped(t *testing.T) {
	s := New(nil)

	a := s.Login("Amina", models.RolePatient)
	b := s.Login("amina", models.RolePatient)
	c := s.Login("Amina", models.RoleDoctor)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
	assert.Len(t, s.Users(), 3)
}

func TestLoginDefaultsApproval(t *testing.T) {
	s := New(nil)

	doctor := s.Login("Dr. Rao", models.RoleDoctor)
	patient := s.Login("Amina", models.RolePatient)
	admin := s.Login("Root", models.RoleAdmin)

	assert.False(t, doctor.IsApproved())
	assert.True(t, patient.IsApproved())
	assert.True(t, admin.IsApproved())
}

func TestLoginDoesNotResetApproval(t *testing.T) {
	s := New(nil)

	doctor := s.Login("Dr. Rao", models.RoleDoctor)
	approved := true
	require.True(t, s.UpdateUser(doctor.ID, models.UserPatch{Approved: &approved}))

	again := s.Login("Dr. Rao", models.RoleDoctor)
	assert.True(t, again.IsApproved())
}

func TestLogoutKeepsCollections(t *testing.T) {
	s := New(nil)
	s.Login("Amina", models.RolePatient)

	s.Logout()

	assert.Nil(t, s.CurrentUser())
	assert.Len(t, s.Users(), 1)
}

func TestCreateAssessmentDefaults(t *testing.T) {
	s := New(nil)
	patient := s.Login("Amina", models.RolePatient)

	before := time.Now()
	created := s.CreateAssessment(models.MigrantAssessment{
		PatientID:   patient.ID,
		PatientName: patient.Name,
		Age:         34,
		MigrantType: models.MigrantWorker,
		Symptoms:    "headache",
	})

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusPending, created.AppointmentStatus)
	assert.WithinDuration(t, before, created.CreatedAt, time.Second)
	assert.Len(t, s.Assessments(), 1)
}

func TestUpdateAssessmentUnknownIDIsNoOp(t *testing.T) {
	s := New(nil)
	patient := s.Login("Amina", models.RolePatient)
	created := s.CreateAssessment(models.MigrantAssessment{PatientID: patient.ID, Age: 34})

	diagnosis := "TB suspected"
	ok := s.UpdateAssessment("no-such-id", models.AssessmentPatch{Diagnosis: &diagnosis})

	assert.False(t, ok)
	assert.Equal(t, []models.MigrantAssessment{created}, s.Assessments())
}

func TestUpdateAssessmentKeepsUpdatedAtUnlessPatched(t *testing.T) {
	s := New(nil)
	patient := s.Login("Amina", models.RolePatient)
	created := s.CreateAssessment(models.MigrantAssessment{PatientID: patient.ID, Age: 34})

	diagnosis := "TB suspected"
	require.True(t, s.UpdateAssessment(created.ID, models.AssessmentPatch{Diagnosis: &diagnosis}))

	got, ok := s.AssessmentByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, diagnosis, got.Diagnosis)
	assert.Nil(t, got.UpdatedAt)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
}

func TestUpdateUserAffectsOnlyTarget(t *testing.T) {
	s := New(nil)
	first := s.Login("Dr. Rao", models.RoleDoctor)
	second := s.Login("Dr. Mehta", models.RoleDoctor)

	approved := true
	require.True(t, s.UpdateUser(first.ID, models.UserPatch{Approved: &approved}))

	firstGot, _ := s.UserByID(first.ID)
	secondGot, _ := s.UserByID(second.ID)
	assert.True(t, firstGot.IsApproved())
	assert.False(t, secondGot.IsApproved())
}

func TestUpdateUserRefreshesSession(t *testing.T) {
	s := New(nil)
	doctor := s.Login("Dr. Rao", models.RoleDoctor)

	approved := true
	require.True(t, s.UpdateUser(doctor.ID, models.UserPatch{Approved: &approved}))

	current := s.CurrentUser()
	require.NotNil(t, current)
	assert.True(t, current.IsApproved())
}

func TestPersistSkippedWhileStateEmpty(t *testing.T) {
	repo := &fakeRepo{}
	s := New(repo)

	s.Logout()

	assert.Empty(t, repo.saved)
}

func TestPersistAfterEveryMutation(t *testing.T) {
	repo := &fakeRepo{}
	s := New(repo)

	patient := s.Login("Amina", models.RolePatient)
	s.CreateAssessment(models.MigrantAssessment{PatientID: patient.ID, Age: 34})
	s.Logout()

	require.Len(t, repo.saved, 3)
	last := repo.saved[len(repo.saved)-1]
	assert.Nil(t, last.CurrentUser)
	assert.Len(t, last.Users, 1)
	assert.Len(t, last.Assessments, 1)
}

func TestNewSeedsFromSavedState(t *testing.T) {
	repo := &fakeRepo{stored: &models.AppState{
		Users: []models.User{{ID: "u1", Name: "Amina", Role: models.RolePatient}},
	}}
	s := New(repo)

	user := s.Login("Amina", models.RolePatient)
	assert.Equal(t, "u1", user.ID)
}
