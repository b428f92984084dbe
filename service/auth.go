package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/linetrace-api/domain"
	"github.com/beka-birhanu/linetrace-api/service/i"
	"github.com/google/uuid"
)

const tokenLifetime = 24 * time.Hour

// Auth registers players and exchanges credentials for tokens.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
	logger    i.Logger
}

// NewAuth creates the authentication service.
func NewAuth(userRepo i.UserRepo, tokenizer i.Tokenizer, logger i.Logger) (*Auth, error) {
	if userRepo == nil || tokenizer == nil || logger == nil {
		return nil, errors.New("auth service requires a user repo, tokenizer and logger")
	}
	return &Auth{
		userRepo:  userRepo,
		tokenizer: tokenizer,
		logger:    logger,
	}, nil
}

// Register creates a new player account.
func (a *Auth) Register(username, password string) error {
	user, err := domain.NewUser(domain.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return err
	}

	if err := a.userRepo.Save(user); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("registered user %s", user.Username))
	return nil
}

// SignIn verifies credentials and returns the user with a fresh token.
func (a *Auth) SignIn(username, password string) (*domain.User, string, error) {
	user, err := a.userRepo.ByUsername(username)
	if err != nil {
		return nil, "", errors.New("invalid username or password")
	}

	if !user.VerifyPassword(password) {
		return nil, "", errors.New("invalid username or password")
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"userID":   user.ID,
		"username": user.Username,
	}, tokenLifetime)
	if err != nil {
		a.logger.Error(fmt.Sprintf("generating token for %s: %v", username, err))
		return nil, "", err
	}

	return user, token, nil
}
