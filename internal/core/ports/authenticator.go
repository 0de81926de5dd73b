package ports

import (
	"ewaste/internal/core/domain/model/account"
)

// Authenticator issues and verifies signed bearer credentials carrying a
// principal. The role embedded at issuance authorizes the whole credential
// lifetime; it is not re-resolved on later calls.
type Authenticator interface {
	// IssueToken signs a credential for the given principal.
	IssueToken(principal account.Principal) (string, error)

	// ParseToken verifies a credential and recovers its principal.
	// Expired, malformed, or badly signed tokens fail with a
	// CredentialIsInvalidError.
	ParseToken(token string) (account.Principal, error)
}
