package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oksasatya/auth-service/internal/domain/apperr"
)

// TokenType distinguishes access tokens from refresh tokens via the "type"
// claim. Verification fails when the claim does not match the expected type.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

const PurposeEmailVerification = "email_verification"

// JWTManager signs and verifies tokens with a single symmetric secret (HS256).
type JWTManager struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func NewJWTManager(secret string, accessTTL, refreshTTL time.Duration) *JWTManager {
	return &JWTManager{
		Secret:     []byte(secret),
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
	}
}

type Claims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"type"`
	Purpose   string `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

func (m *JWTManager) sign(claims *Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.Secret)
}

// GenerateAccessToken issues an access token carrying user id and email.
func (m *JWTManager) GenerateAccessToken(userID, email string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.AccessTTL)
	s, err := m.sign(&Claims{
		UserID:    userID,
		Email:     email,
		TokenType: string(TokenTypeAccess),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	return s, exp, err
}

// GenerateRefreshToken issues a refresh token carrying only the user id.
func (m *JWTManager) GenerateRefreshToken(userID string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.RefreshTTL)
	s, err := m.sign(&Claims{
		UserID:    userID,
		TokenType: string(TokenTypeRefresh),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	return s, exp, err
}

// GenerateEmailVerificationToken issues a long-lived token embedded in the
// user.registered outbox payload and the verification email link.
func (m *JWTManager) GenerateEmailVerificationToken(userID, email string) (string, error) {
	now := time.Now()
	s, err := m.sign(&Claims{
		UserID:    userID,
		Email:     email,
		TokenType: string(TokenTypeAccess),
		Purpose:   PurposeEmailVerification,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	return s, err
}

// Parse verifies signature, expiry, and the "type" claim. It returns typed
// errors: EXPIRED_TOKEN only when the token is past its expiry, INVALID_TOKEN
// for every other failure. No further claim validation happens here.
func (m *JWTManager) Parse(tokenStr string, expected TokenType) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.ExpiredToken()
		}
		return nil, apperr.InvalidToken("")
	}
	if !tkn.Valid {
		return nil, apperr.InvalidToken("")
	}
	if claims.TokenType != string(expected) {
		return nil, apperr.InvalidToken("Token type mismatch. Expected " + string(expected))
	}
	// Secondary expiry check; the library already enforces exp but this keeps
	// behavior consistent under clock skew.
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, apperr.ExpiredToken()
	}
	return claims, nil
}

// ParseAccessToken verifies an access token.
func (m *JWTManager) ParseAccessToken(tokenStr string) (*Claims, error) {
	return m.Parse(tokenStr, TokenTypeAccess)
}

// ParseRefreshToken verifies a refresh token.
func (m *JWTManager) ParseRefreshToken(tokenStr string) (*Claims, error) {
	return m.Parse(tokenStr, TokenTypeRefresh)
}
