package services

import (
	"errors"
	"log"
	"strings"

	"migranthealth/models"
	"migranthealth/store"
	"migranthealth/utils"
)

/*
* Trim and require the name
* Require one of the three known roles
* The store resumes an existing (name, role) identity or creates a new one
 */
func Login(s *store.Store, name string, role models.UserRole) (models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		log.Println("Error from Login: name not provided")
		return models.User{}, errors.New(utils.NAME_NOT_PROVIDED)
	}
	if !role.Valid() {
		log.Println("Error from Login: invalid role:", role)
		return models.User{}, errors.New(utils.INVALID_ROLE)
	}
	return s.Login(name, role), nil
}

func Logout(s *store.Store) {
	s.Logout()
}
