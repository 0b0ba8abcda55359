package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/NgocHien2004/HotelBooking-sub000/internal/domain"
	"github.com/NgocHien2004/HotelBooking-sub000/pkg/auth"
)

type userStore interface {
	Create(ctx context.Context, u *domain.User) error
	ByEmail(ctx context.Context, email string) (*domain.User, error)
}

type AuthSvc struct {
	repo      userStore
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthSvc(repo userStore, jwtSecret string, tokenTTL time.Duration) *AuthSvc {
	return &AuthSvc{repo: repo, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL}
}

// Register creates a guest account. Admin accounts are provisioned
// out-of-band, never through the public endpoint.
func (s *AuthSvc) Register(ctx context.Context, email, password, name string) (*domain.User, error) {
	if _, err := s.repo.ByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{Email: email, PasswordHash: string(hash), Name: name, Role: domain.RoleGuest}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthSvc) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.repo.ByEmail(ctx, email)
	if err != nil {
		return nil, "", domain.ErrForbidden
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrForbidden
	}
	token, err := auth.CreateAccessToken(s.jwtSecret, u.ID, string(u.Role), u.Email, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
