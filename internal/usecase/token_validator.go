package usecase

import (
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/jwt"
)

// TokenValidator is the narrow port the auth middleware depends on.
type TokenValidator interface {
	// ValidateToken returns the staff username the token was issued to.
	ValidateToken(token string) (string, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (string, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}
