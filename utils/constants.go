package utils

const (
	NAME_NOT_PROVIDED     = "please provide the name"
	INVALID_ROLE          = "invalid role provided"
	NOT_LOGGED_IN         = "no active session, please login first"
	PENDING_APPROVAL      = "your doctor account is pending approval from the admin"
	FORBIDDEN_FOR_ROLE    = "this action is not allowed for your role"
	AGE_NOT_PROVIDED      = "please provide a valid age"
	INVALID_MIGRANT_TYPE  = "invalid migrant type provided"
	SYMPTOMS_NOT_PROVIDED = "please describe the current symptoms"

	DIAGNOSIS_NOT_PROVIDED       = "please provide a diagnosis before saving"
	ASSESSMENT_NOT_FOUND         = "assessment not found"
	INVALID_APPOINTMENT_STATUS   = "invalid appointment status provided"
	APPOINTMENT_ALREADY_RESOLVED = "appointment is already resolved"
	APPOINTMENT_NOT_ACCEPTED     = "appointment must be accepted before completion"

	CAMP_FIELDS_REQUIRED = "please provide camp name, location and date"
	NOT_AN_ADMIN         = "health camps can only be created by an admin"
	NOT_A_PATIENT        = "assessments can only be submitted by a patient"

	USER_NOT_FOUND = "user not found"
	NOT_A_DOCTOR   = "approval can only be changed for a doctor"

	LOGGED_OUT = "logged out successfully"
)
