package form

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// LoginForm holds the login screen's fields.
type LoginForm struct {
	UserName string
	Password string
}

// SignUpForm holds the registration screen's fields.
type SignUpForm struct {
	UserName string
	Password string
	Name     string
	Phone    string
	Email    string
	TaxID    string
}

// ValidateLogin checks the login credential constraints.
func ValidateLogin(f *LoginForm) Errors {
	errs := Errors{}
	checkUserName(f.UserName, errs)
	checkPassword(f.Password, errs)
	return errs
}

// ValidateSignUp checks the registration constraints.
func ValidateSignUp(f *SignUpForm) Errors {
	errs := Errors{}
	checkUserName(f.UserName, errs)
	checkPassword(f.Password, errs)
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "full name is required"
	}
	switch {
	case f.Phone == "":
		errs["phone"] = "phone is required"
	case !allDigits(f.Phone) || len(f.Phone) != 10:
		errs["phone"] = "phone must be 10 digits"
	}
	switch {
	case f.Email == "":
		errs["email"] = "email is required"
	default:
		if _, err := mail.ParseAddress(f.Email); err != nil {
			errs["email"] = "email address is not valid"
		}
	}
	switch {
	case f.TaxID == "":
		errs["taxid"] = "id number is required"
	case !allDigits(f.TaxID) || len(f.TaxID) != 9:
		errs["taxid"] = "id number must be 9 digits"
	}
	return errs
}

func checkUserName(v string, errs Errors) {
	switch {
	case v == "":
		errs["username"] = "username is required"
	case utf8.RuneCountInString(v) < 5:
		errs["username"] = "username must be at least 5 characters"
	}
}

func checkPassword(v string, errs Errors) {
	switch {
	case v == "":
		errs["password"] = "password is required"
	case utf8.RuneCountInString(v) < 8:
		errs["password"] = "password must be at least 8 characters"
	}
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
