package models

import "time"

type MigrantType string

const (
	MigrantSeasonal     MigrantType = "seasonal"
	MigrantRefugee      MigrantType = "refugee"
	MigrantWorker       MigrantType = "worker"
	MigrantAsylumSeeker MigrantType = "asylum_seeker"
	MigrantOther        MigrantType = "other"
)

func (m MigrantType) Valid() bool {
	switch m {
	case MigrantSeasonal, MigrantRefugee, MigrantWorker, MigrantAsylumSeeker, MigrantOther:
		return true
	}
	return false
}

// AppointmentStatus represents the review workflow state of an assessment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusAccepted  AppointmentStatus = "accepted"
	StatusRejected  AppointmentStatus = "rejected"
	StatusCompleted AppointmentStatus = "completed"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

type RiskLevel string

const (
	RiskHigh   RiskLevel = "High Risk"
	RiskMedium RiskLevel = "Medium Risk"
	RiskLow    RiskLevel = "Low Risk"
)

// BloodTestResults holds the optional self-reported blood panel; values stay
// as the free-text strings the patient entered.
type BloodTestResults struct {
	Hemoglobin      string `json:"hemoglobin,omitempty" bson:"hemoglobin,omitempty"`
	WhiteBloodCells string `json:"whiteBloodCells,omitempty" bson:"whiteBloodCells,omitempty"`
	Platelets       string `json:"platelets,omitempty" bson:"platelets,omitempty"`
	BloodSugar      string `json:"bloodSugar,omitempty" bson:"bloodSugar,omitempty"`
	Cholesterol     string `json:"cholesterol,omitempty" bson:"cholesterol,omitempty"`
	TestDate        string `json:"testDate,omitempty" bson:"testDate,omitempty"`
}

type MigrantAssessment struct {
	ID                    string            `json:"id" bson:"id"`
	PatientID             string            `json:"patientId" bson:"patientId"`
	PatientName           string            `json:"patientName" bson:"patientName"`
	Age                   int               `json:"age" bson:"age"`
	MigrantType           MigrantType       `json:"migrantType" bson:"migrantType"`
	Lifestyle             string            `json:"lifestyle" bson:"lifestyle"`
	HealthHistory         string            `json:"healthHistory" bson:"healthHistory"`
	Symptoms              string            `json:"symptoms" bson:"symptoms"`
	BloodTestResults      BloodTestResults  `json:"bloodTestResults" bson:"bloodTestResults"`
	MriFileName           string            `json:"mriFileName,omitempty" bson:"mriFileName,omitempty"`
	InfectiousDiseaseRisk RiskLevel         `json:"infectiousDiseaseRisk" bson:"infectiousDiseaseRisk"`
	ReportGenerated       bool              `json:"reportGenerated" bson:"reportGenerated"`
	PreDiagnosis          string            `json:"preDiagnosis,omitempty" bson:"preDiagnosis,omitempty"`
	Diagnosis             string            `json:"diagnosis,omitempty" bson:"diagnosis,omitempty"`
	PreventiveGoals       string            `json:"preventiveGoals,omitempty" bson:"preventiveGoals,omitempty"`
	AppointmentStatus     AppointmentStatus `json:"appointmentStatus" bson:"appointmentStatus"`
	DoctorID              string            `json:"doctorId,omitempty" bson:"doctorId,omitempty"`
	DoctorFeedback        string            `json:"doctorFeedback,omitempty" bson:"doctorFeedback,omitempty"`
	CreatedAt             time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt             *time.Time        `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// AssessmentPatch carries the fields doctors and the workflow may merge into
// an existing assessment; nil means leave unchanged. UpdatedAt is not
// stamped automatically, callers include it when they want it moved.
type AssessmentPatch struct {
	Diagnosis         *string            `json:"diagnosis"`
	PreventiveGoals   *string            `json:"preventiveGoals"`
	DoctorFeedback    *string            `json:"doctorFeedback"`
	DoctorID          *string            `json:"doctorId"`
	AppointmentStatus *AppointmentStatus `json:"appointmentStatus"`
	UpdatedAt         *time.Time         `json:"updatedAt"`
}
