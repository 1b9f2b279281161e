package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"migranthealth/models"
	"migranthealth/store"
	"migranthealth/utils"
)

// AssessmentDraft is the patient intake payload; the blood panel and MRI
// file name are both optional.
type AssessmentDraft struct {
	Age              int                     `json:"age"`
	MigrantType      models.MigrantType      `json:"migrantType"`
	Lifestyle        string                  `json:"lifestyle"`
	HealthHistory    string                  `json:"healthHistory"`
	Symptoms         string                  `json:"symptoms"`
	BloodTestResults models.BloodTestResults `json:"bloodTestResults"`
	MriFileName      string                  `json:"mriFileName"`
}

/*
* Require age, migrant type and symptoms
* Run the infectious disease risk heuristic over the symptom text
* Build the pre-diagnosis text and mark the report generated
* Append through the store with a pending appointment
 */
func SubmitAssessment(s *store.Store, patient models.User, draft AssessmentDraft) (models.MigrantAssessment, error) {
	if patient.Role != models.RolePatient {
		log.Println("Error from SubmitAssessment: submitter is not a patient:", patient.ID)
		return models.MigrantAssessment{}, errors.New(utils.NOT_A_PATIENT)
	}
	if draft.Age <= 0 {
		return models.MigrantAssessment{}, errors.New(utils.AGE_NOT_PROVIDED)
	}
	if !draft.MigrantType.Valid() {
		log.Println("Error from SubmitAssessment: invalid migrant type:", draft.MigrantType)
		return models.MigrantAssessment{}, errors.New(utils.INVALID_MIGRANT_TYPE)
	}
	if strings.TrimSpace(draft.Symptoms) == "" {
		return models.MigrantAssessment{}, errors.New(utils.SYMPTOMS_NOT_PROVIDED)
	}

	level, _ := AssessRisk(draft.Symptoms, draft.MigrantType)
	now := time.Now()
	assessment := models.MigrantAssessment{
		PatientID:             patient.ID,
		PatientName:           patient.Name,
		Age:                   draft.Age,
		MigrantType:           draft.MigrantType,
		Lifestyle:             draft.Lifestyle,
		HealthHistory:         draft.HealthHistory,
		Symptoms:              draft.Symptoms,
		BloodTestResults:      draft.BloodTestResults,
		MriFileName:           draft.MriFileName,
		InfectiousDiseaseRisk: level,
		ReportGenerated:       true,
		PreDiagnosis:          PreDiagnosis(level),
		AppointmentStatus:     models.StatusPending,
		UpdatedAt:             &now,
	}
	return s.CreateAssessment(assessment), nil
}

// ReviewInput is the doctor's annotation payload.
type ReviewInput struct {
	Diagnosis       string `json:"diagnosis"`
	PreventiveGoals string `json:"preventiveGoals"`
}

/*
* Require a diagnosis
* Compose the combined doctor feedback text
* Merge into the assessment and stamp updatedAt
 */
func ReviewAssessment(s *store.Store, doctor models.User, assessmentID string, input ReviewInput) error {
	diagnosis := strings.TrimSpace(input.Diagnosis)
	if diagnosis == "" {
		return errors.New(utils.DIAGNOSIS_NOT_PROVIDED)
	}
	goals := strings.TrimSpace(input.PreventiveGoals)

	feedback := "Diagnosis: " + diagnosis
	if goals != "" {
		feedback += "\nPreventive Goals: " + goals
	}

	now := time.Now()
	patch := models.AssessmentPatch{
		Diagnosis:       &diagnosis,
		PreventiveGoals: &goals,
		DoctorFeedback:  &feedback,
		DoctorID:        &doctor.ID,
		UpdatedAt:       &now,
	}
	if !s.UpdateAssessment(assessmentID, patch) {
		log.Println("Error from ReviewAssessment: assessment not found:", assessmentID)
		return errors.New(utils.ASSESSMENT_NOT_FOUND)
	}
	return nil
}

/*
* Only pending appointments can be accepted or rejected
* Only accepted appointments can be completed
 */
func UpdateAppointmentStatus(s *store.Store, doctor models.User, assessmentID string, status models.AppointmentStatus) error {
	if !status.Valid() || status == models.StatusPending {
		return errors.New(utils.INVALID_APPOINTMENT_STATUS)
	}
	current, ok := s.AssessmentByID(assessmentID)
	if !ok {
		return errors.New(utils.ASSESSMENT_NOT_FOUND)
	}
	switch status {
	case models.StatusAccepted, models.StatusRejected:
		if current.AppointmentStatus != models.StatusPending {
			return errors.New(utils.APPOINTMENT_ALREADY_RESOLVED)
		}
	case models.StatusCompleted:
		if current.AppointmentStatus != models.StatusAccepted {
			return errors.New(utils.APPOINTMENT_NOT_ACCEPTED)
		}
	}

	now := time.Now()
	s.UpdateAssessment(assessmentID, models.AssessmentPatch{
		AppointmentStatus: &status,
		DoctorID:          &doctor.ID,
		UpdatedAt:         &now,
	})
	return nil
}
