package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Verifier wraps the jwtauth keyset used to verify access tokens minted by
// the external identity provider. This service never issues end-user tokens;
// it only checks them and exposes the resolved claims to the handlers.
type Verifier struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewVerifier(secretKey string) *Verifier {
	return &Verifier{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (v *Verifier) JWTAuth() *jwtauth.JWTAuth {
	return v.tokenAuth
}
