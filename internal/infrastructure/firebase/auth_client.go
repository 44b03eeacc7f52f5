package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// Identity is the stable identity the provider vouches for.
type Identity struct {
	UID      string
	Email    string
	Name     string
	PhotoURL string
}

// AuthClient wraps the Firebase Auth admin SDK. Sign-in itself happens on the
// client; the server only verifies ID tokens and reads provider records.
type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

func (f *AuthClient) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, err
	}

	identity := &Identity{UID: result.UID}
	if email, ok := result.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := result.Claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := result.Claims["picture"].(string); ok {
		identity.PhotoURL = picture
	}

	return identity, nil
}

// LookupEmail returns the provider UID for an email, or an error when the
// provider has no account for it.
func (f *AuthClient) LookupEmail(ctx context.Context, email string) (string, error) {
	record, err := f.client.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return record.UID, nil
}

// DeleteUser removes the provider-side account during admin moderation.
func (f *AuthClient) DeleteUser(ctx context.Context, uid string) error {
	return f.client.DeleteUser(ctx, uid)
}
