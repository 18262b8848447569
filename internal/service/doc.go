// Package service implements the use cases of the MainGen API.
//
// Services sit between HTTP handlers and the in-memory stores. Each service
// declares the repository interface it needs, so tests can substitute
// mocks and the stores stay swappable:
//
//	auth := NewAuthService(AuthServiceConfig{
//	    UserRepo:  store.NewUserStore(hasher),
//	    TokenRepo: store.NewTokenStore(),
//	})
//	token, err := auth.Signup(ctx, "user@example.com", "secret123")
//
// Errors are package-level sentinels (see errors.go) matched with errors.Is.
package service
