package domain

import "context"

// CategorySource fetches the category reference catalog. The production
// implementation is the remote API client; tests use fakes.
type CategorySource interface {
	Categories(ctx context.Context) ([]Category, error)
}

// RecipeSource fetches the recipe collection for the catalog view.
type RecipeSource interface {
	Recipes(ctx context.Context) ([]Recipe, error)
}

// Authenticator exchanges credentials for an identity record.
type Authenticator interface {
	Login(ctx context.Context, userName, password string) (User, error)
	SignUp(ctx context.Context, user User) (User, error)
}
