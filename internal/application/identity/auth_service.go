package identity

import (
	"crypto/subtle"

	"github.com/procure/backend/internal/domain/shared"
)

// TokenPair is an issued access and refresh token
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenIssuer issues signed token pairs for authenticated users
type TokenIssuer interface {
	IssueTokens(userID, username, role string) (*TokenPair, error)
}

// AuthService implements the demo credential login. A single account is
// configured; everything else about the request cycle (signing, claims,
// middleware validation) is real.
type AuthService struct {
	username string
	password string
	role     string
	issuer   TokenIssuer
}

// NewAuthService creates a new AuthService with the configured demo account
func NewAuthService(username, password, role string, issuer TokenIssuer) *AuthService {
	return &AuthService{
		username: username,
		password: password,
		role:     role,
		issuer:   issuer,
	}
}

// Login validates the demo credentials and issues a token pair
func (s *AuthService) Login(req LoginRequest) (*LoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid credentials")
	}

	pair, err := s.issuer.IssueTokens(s.username, s.username, s.role)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
