package service

import (
	"regexp"

	"github.com/moviemesh/moviemesh/models"
)

var emailFormat = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func validateUserUpdate(update models.UserUpdate) error {
	if update.Name == nil && update.Email == nil {
		return ErrValidationNoFieldsToUpdate
	}
	if update.Email != nil && !emailFormat.MatchString(*update.Email) {
		return ErrValidationInvalidEmailFormat
	}

	return nil
}
