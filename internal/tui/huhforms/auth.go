package huhforms

import (
	"errors"

	"charm.land/huh/v2"
)

// CreateLoginForm creates the login screen form.
func CreateLoginForm(email, password *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("you@example.com").
			Validate(required("Email is required")).
			Value(email),

		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(required("Password is required")).
			Value(password),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithKeyMap(CreateSubmitKeyMap())
}

// CreateSignupForm creates the signup screen form. The confirmation field
// compares against the live value behind password.
func CreateSignupForm(fullName, email, password, confirm *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("full_name").
			Title("Full Name").
			Placeholder("Ada Lovelace").
			Validate(required("Full name is required")).
			Value(fullName),

		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("you@example.com").
			Validate(required("Email is required")).
			Value(email),

		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(required("Password is required")).
			Value(password),

		huh.NewInput().
			Key("confirm_password").
			Title("Confirm Password").
			EchoMode(huh.EchoModePassword).
			Validate(func(s string) error {
				if s != *password {
					return errors.New("Passwords do not match")
				}
				return nil
			}).
			Value(confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithKeyMap(CreateSubmitKeyMap())
}
