package services

import (
	"errors"
	"log"
	"strings"

	"migranthealth/models"
	"migranthealth/store"
	"migranthealth/utils"
)

// CampDraft is the admin's camp creation payload; the date stays the raw
// form string.
type CampDraft struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

/*
* Require name, location and date
* Stamp the creating admin as createdBy
 */
func CreateHealthCamp(s *store.Store, admin models.User, draft CampDraft) (models.HealthCamp, error) {
	if admin.Role != models.RoleAdmin {
		log.Println("Error from CreateHealthCamp: creator is not an admin:", admin.ID)
		return models.HealthCamp{}, errors.New(utils.NOT_AN_ADMIN)
	}
	name := strings.TrimSpace(draft.Name)
	location := strings.TrimSpace(draft.Location)
	date := strings.TrimSpace(draft.Date)
	if name == "" || location == "" || date == "" {
		return models.HealthCamp{}, errors.New(utils.CAMP_FIELDS_REQUIRED)
	}

	camp := models.HealthCamp{
		Name:        name,
		Location:    location,
		Date:        date,
		Description: strings.TrimSpace(draft.Description),
		CreatedBy:   admin.ID,
	}
	return s.CreateHealthCamp(camp), nil
}
