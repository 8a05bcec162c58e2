package storage

import (
	"strings"

	"max.ks1230/expense-tracker/internal/model/customerr"
)

var errUserTaken = customerr.NewValidation("username", "username or email already registered")

func validateUser(username, email string) error {
	if strings.TrimSpace(username) == "" {
		return customerr.NewValidation("username", "must not be empty")
	}
	if !strings.Contains(email, "@") {
		return customerr.NewValidation("email", "must be an email address")
	}
	return nil
}
