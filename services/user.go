package services

import (
	"errors"
	"log"

	"migranthealth/models"
	"migranthealth/store"
	"migranthealth/utils"
)

/*
* Only doctors carry the approval flag
* The flip reaches the session gate on the doctor's next request
 */
func SetDoctorApproval(s *store.Store, doctorID string, approved bool) error {
	user, ok := s.UserByID(doctorID)
	if !ok {
		log.Println("Error from SetDoctorApproval: user not found:", doctorID)
		return errors.New(utils.USER_NOT_FOUND)
	}
	if user.Role != models.RoleDoctor {
		return errors.New(utils.NOT_A_DOCTOR)
	}
	s.UpdateUser(doctorID, models.UserPatch{Approved: &approved})
	return nil
}
