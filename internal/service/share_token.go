package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ShareTokenService emite y valida los tokens JWT que un validador recibe al
// desbloquear un share link con el password correcto.
type ShareTokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// ShareClaims identifica al validador dentro de una sesión de validación.
type ShareClaims struct {
	SessionID    string `json:"sid"`
	RespondentID string `json:"rid"`
	Role         string `json:"role"`
	jwt.RegisteredClaims
}

var (
	ErrShareTokenInvalid = errors.New("share token invalid")
	ErrShareTokenExpired = errors.New("share token expired")
)

func NewShareTokenService(secret string, ttl time.Duration) *ShareTokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &ShareTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "persona-lab",
	}
}

// Issue firma un token de validador para la sesión dada.
func (s *ShareTokenService) Issue(sessionID, respondentID, role string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrShareTokenInvalid
	}
	now := time.Now().UTC()
	claims := ShareClaims{
		SessionID:    sessionID,
		RespondentID: respondentID,
		Role:         role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   respondentID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse valida firma y expiración y devuelve los claims del validador.
func (s *ShareTokenService) Parse(tokenString string) (ShareClaims, error) {
	if len(s.secret) == 0 || strings.TrimSpace(tokenString) == "" {
		return ShareClaims{}, ErrShareTokenInvalid
	}

	var claims ShareClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ShareClaims{}, ErrShareTokenExpired
		}
		return ShareClaims{}, ErrShareTokenInvalid
	}
	if claims.SessionID == "" || claims.RespondentID == "" {
		return ShareClaims{}, ErrShareTokenInvalid
	}
	return claims, nil
}
