package queries

import (
	"errors"
	"strings"

	"ewaste/internal/pkg/errs"
	"ewaste/internal/pkg/guard"
)

var ErrLoginQueryIsNotConstructed = errors.New(
	"LoginQuery must be created via NewLoginQuery constructor",
)

// LoginQuery exchanges an email and password for a signed bearer credential.
// It is modeled as a query: it reads the account and issues a token without
// mutating any state.
type LoginQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginQuery creates a login attempt for the given email.
func NewLoginQuery(email, password string) (LoginQuery, error) {
	if strings.TrimSpace(email) == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("password")
	}

	return LoginQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Email returns the login email.
func (q LoginQuery) Email() string {
	return q.email
}

// Password returns the plaintext password to check.
func (q LoginQuery) Password() string {
	return q.password
}

// LoginQueryResponse carries the issued credential and the account it
// authenticates.
type LoginQueryResponse struct {
	Token   string
	Account AccountResponse
}
