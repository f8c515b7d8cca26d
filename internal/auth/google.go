package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/idtoken"
)

var ErrInvalidIdentityToken = errors.New("invalid Google identity token")

// GoogleIdentity is the subset of the verified ID-token payload the auth
// service needs to log in or create a user.
type GoogleIdentity struct {
	Subject   string
	Email     string
	Name      string
	AvatarURL string
}

// GoogleVerifier validates Google ID tokens against a configured OAuth
// client id (signature and audience).
type GoogleVerifier struct {
	clientID string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID}
}

// Configured reports whether a client id was provided; without one every
// verification fails.
func (v *GoogleVerifier) Configured() bool {
	return v.clientID != ""
}

// Verify checks the token's signature and audience and extracts the
// identity fields. Any verification failure maps to ErrInvalidIdentityToken.
func (v *GoogleVerifier) Verify(ctx context.Context, rawToken string) (*GoogleIdentity, error) {
	if !v.Configured() {
		return nil, fmt.Errorf("google login is not configured")
	}

	payload, err := idtoken.Validate(ctx, rawToken, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIdentityToken, err)
	}

	identity := &GoogleIdentity{
		Subject:   payload.Subject,
		Email:     strings.ToLower(strings.TrimSpace(claimString(payload.Claims, "email"))),
		Name:      claimString(payload.Claims, "name"),
		AvatarURL: claimString(payload.Claims, "picture"),
	}

	if identity.Email == "" {
		return nil, fmt.Errorf("%w: account has no email", ErrInvalidIdentityToken)
	}
	if identity.Name == "" {
		identity.Name = identity.Email
	}

	return identity, nil
}

func claimString(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
