package service

import (
	"context"

	"github.com/oklog/ulid/v2"
	"github.com/rdewanto/storefront-service/config"
	"github.com/rdewanto/storefront-service/internal/domain"
	"github.com/rdewanto/storefront-service/internal/dto"
	"github.com/rdewanto/storefront-service/internal/repository"
	"github.com/rdewanto/storefront-service/pkg/auth"
	"github.com/rdewanto/storefront-service/pkg/errs"
	"github.com/rdewanto/storefront-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	repo     repository.UserRepository
	config   config.Config
	notifier *auth.Notifier
	mailer   utils.Mailer
	cb       *gobreaker.CircuitBreaker[struct{}]
}

func CreateUserService(repo repository.UserRepository, config config.Config, notifier *auth.Notifier, mailer utils.Mailer, cb *gobreaker.CircuitBreaker[struct{}]) UserService {
	return &UserServiceImpl{repo: repo, config: config, notifier: notifier, mailer: mailer, cb: cb}
}

func (s *UserServiceImpl) AddUser(ctx context.Context, data dto.UserRequest) (err error) {
	if data.Name == "" || data.Email == "" || data.Password == "" {
		return errs.ErrClient
	}

	user, err := s.repo.GetUserByEmail(ctx, data.Email)
	if err != nil {
		return
	}

	if !user.ID.IsZero() {
		return errs.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.MinCost)
	if err != nil {
		return err
	}

	userEnt := domain.User{
		Name:           data.Name,
		Email:          data.Email,
		HashedPassword: string(hash),
		ExternalID:     ulid.Make().String(),
	}

	_, err = s.repo.AddUser(ctx, userEnt)
	if err != nil {
		return err
	}

	s.sendWelcomeEmail(ctx, data.Name, data.Email)

	return nil
}

func (s *UserServiceImpl) Login(ctx context.Context, payload dto.UserRequest) (respPayload dto.LoginResponse, err error) {
	user, err := s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		return
	}

	if user.ID.IsZero() {
		return respPayload, errs.ErrAccountNotFound
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return respPayload, errs.ErrInvalidCredentialsEmail
	}

	token, err := utils.CreateJWTToken(user.Name, user.ExternalID, s.config.JWTSecret)
	if err != nil {
		return
	}

	if s.notifier != nil {
		s.notifier.Notify(auth.Event{UserID: user.ExternalID, LoggedIn: true})
	}

	respPayload.Token = token
	respPayload.UserID = user.ExternalID

	return
}

// Logout ends the session from the server's point of view. The JWT itself
// stays valid until it expires; this only broadcasts the state change so
// subscribers see the logged-out transition.
func (s *UserServiceImpl) Logout(ctx context.Context, externalID string) (err error) {
	if externalID == "" {
		return errs.ErrNotLoggedIn
	}

	if s.notifier != nil {
		s.notifier.Notify(auth.Event{UserID: externalID, LoggedIn: false})
	}

	return nil
}

// sendWelcomeEmail is best effort; registration never fails on SMTP trouble.
// The circuit breaker stops a dead relay from stalling every registration.
func (s *UserServiceImpl) sendWelcomeEmail(ctx context.Context, name string, email string) {
	if s.mailer == nil || s.cb == nil {
		return
	}

	_, err := s.cb.Execute(func() (struct{}, error) {
		return struct{}{}, s.mailer.Send(email, "Welcome to the storefront", "Hi "+name+", your account has been created.")
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "sendWelcomeEmail").Msg("")
	}
}
