package form

import (
	"context"

	"github.com/oneclickfood/oneclick/internal/domain"
	"github.com/oneclickfood/oneclick/internal/logger"
	"github.com/oneclickfood/oneclick/internal/store"
)

// AccountFlow runs the login and signup submissions: validate the
// credential rules, call the service, and replace the user store's
// identity record with the returned one.
type AccountFlow struct {
	auth  domain.Authenticator
	users *store.UserStore
	nav   Navigator
	log   *logger.Logger
}

// NewAccountFlow wires the account flows.
func NewAccountFlow(auth domain.Authenticator, users *store.UserStore, nav Navigator, log *logger.Logger) *AccountFlow {
	return &AccountFlow{auth: auth, users: users, nav: nav, log: log}
}

// Login validates and performs a login attempt.
func (a *AccountFlow) Login(ctx context.Context, f *LoginForm) (Result, error) {
	if errs := ValidateLogin(f); len(errs) > 0 {
		return Result{FieldErrors: errs}, nil
	}

	user, err := a.auth.Login(ctx, f.UserName, f.Password)
	if err != nil {
		a.log.Error("login failed for %q: %v", f.UserName, err)
		return Result{Message: "login failed; check your username and password"}, nil
	}

	if err := a.users.Write(user); err != nil {
		return Result{}, err
	}
	a.log.Info("logged in as %q (id=%d)", user.UserName, user.ID)
	a.nav.NavigateToCatalog()
	return Result{OK: true}, nil
}

// SignUp validates and performs a registration attempt.
func (a *AccountFlow) SignUp(ctx context.Context, f *SignUpForm) (Result, error) {
	if errs := ValidateSignUp(f); len(errs) > 0 {
		return Result{FieldErrors: errs}, nil
	}

	user, err := a.auth.SignUp(ctx, domain.User{
		UserName: f.UserName,
		Password: f.Password,
		Name:     f.Name,
		Phone:    f.Phone,
		Email:    f.Email,
		TaxID:    f.TaxID,
	})
	if err != nil {
		a.log.Error("signup failed for %q: %v", f.UserName, err)
		return Result{Message: "signup failed; please try again"}, nil
	}

	if err := a.users.Write(user); err != nil {
		return Result{}, err
	}
	a.log.Info("signed up as %q (id=%d)", user.UserName, user.ID)
	a.nav.NavigateToCatalog()
	return Result{OK: true}, nil
}
