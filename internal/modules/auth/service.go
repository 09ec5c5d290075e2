package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const RoleStaff = "staff"

type jwtService interface {
	GenerateToken(email, role string) (string, error)
}

// Service authenticates the front-desk staff account. A single credential
// configured at startup is all a one-hotel deployment needs; a user store
// can replace it behind the same Login surface.
type Service struct {
	staffEmail string
	staffHash  []byte
	jwt        jwtService
}

func NewService(staffEmail string, staffPasswordHash []byte, jwt jwtService) *Service {
	return &Service{
		staffEmail: staffEmail,
		staffHash:  staffPasswordHash,
		jwt:        jwt,
	}
}

// Login checks the credential pair and returns a signed staff token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if !strings.EqualFold(strings.TrimSpace(email), s.staffEmail) {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.staffHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwt.GenerateToken(s.staffEmail, RoleStaff)
}
