package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/nikolayk812/foodstore/internal/domain"
	"github.com/nikolayk812/foodstore/internal/port"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type TokenIssuer interface {
	Issue(email string) (string, time.Time, error)
}

type Registration struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
}

type Session struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
	UserID      int64     `json:"userId"`
	UserName    string    `json:"userName"`
}

type Identity struct {
	users  port.UserRepository
	tokens TokenIssuer
	log    logrus.FieldLogger
}

func NewIdentity(users port.UserRepository, tokens TokenIssuer, log logrus.FieldLogger) *Identity {
	return &Identity{
		users:  users,
		tokens: tokens,
		log:    log,
	}
}

func (s *Identity) Register(ctx context.Context, reg Registration) (domain.User, error) {
	email, err := normalizeEmail(reg.Email)
	if err != nil {
		return domain.User{}, err
	}
	if len(reg.Password) < minPasswordLength {
		return domain.User{}, domain.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}

	user, err := s.users.CreateUser(ctx, domain.User{
		Name:         strings.TrimSpace(reg.Name),
		Email:        email,
		PasswordHash: string(hash),
		PhoneNumber:  reg.PhoneNumber,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("users.CreateUser: %w", err)
	}

	s.log.WithField("user_id", user.ID).Info("user registered")

	return user, nil
}

// Login never reveals whether the email or the password was wrong.
func (s *Identity) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return Session{}, domain.ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("users.GetUserByEmail: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Session{}, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.Email)
	if err != nil {
		return Session{}, fmt.Errorf("tokens.Issue: %w", err)
	}

	return Session{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
		UserID:      user.ID,
		UserName:    user.Name,
	}, nil
}

// ResolveUser maps the email claim of a verified token to the stored user.
func (s *Identity) ResolveUser(ctx context.Context, email string) (domain.User, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return domain.User{}, fmt.Errorf("users.GetUserByEmail: %w", err)
	}

	return user, nil
}

func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil || addr.Name != "" {
		return "", domain.ErrInvalidEmail
	}

	return strings.ToLower(addr.Address), nil
}
