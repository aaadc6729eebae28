package ports

import "context"

// TokenRevoker marks a user's outstanding access tokens as revoked and
// answers revocation checks at verification time. Entries only need to
// outlive the access-token TTL; after that expiry rejects the token anyway.
type TokenRevoker interface {
	Revoke(ctx context.Context, userID string) error
	IsRevoked(ctx context.Context, userID string) (bool, error)
}
