package accountservice

import (
	"context"

	"go.uber.org/zap"
)

//go:generate mockgen -source=accountservice.go -destination=mock_accountservice.go -package=accountservice

type Repo interface {
	Find(username string) (string, bool)
	Create(ctx context.Context, username, password string) (bool, error)
	Update(ctx context.Context, username, password string) (bool, error)
	Delete(ctx context.Context, username string) (bool, error)
	Usernames() []string
}

// Service manages accounts. Passwords are stored and compared as given.
type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// AddAccount reports false when the username already exists.
func (s *Service) AddAccount(ctx context.Context, username, password string) (bool, error) {
	created, err := s.repo.Create(ctx, username, password)
	if err != nil {
		zap.L().Error("can't save new account", zap.String("username", username), zap.Error(err))
		return created, err
	}
	if !created {
		zap.L().Info("account already exists", zap.String("username", username))
		return false, nil
	}
	zap.L().Info("account created", zap.String("username", username))
	return true, nil
}

func (s *Service) ValidateLogin(username, password string) bool {
	stored, ok := s.repo.Find(username)
	if !ok || stored != password {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return false
	}
	return true
}

// EditAccount replaces the password of an existing account, even with the same value.
func (s *Service) EditAccount(ctx context.Context, username, newPassword string) (bool, error) {
	updated, err := s.repo.Update(ctx, username, newPassword)
	if err != nil {
		zap.L().Error("can't save account", zap.String("username", username), zap.Error(err))
		return updated, err
	}
	if !updated {
		zap.L().Info("account not found", zap.String("username", username))
	}
	return updated, nil
}

// DeleteAccount removes the account only. Orders placed under the username
// stay in the ledger.
func (s *Service) DeleteAccount(ctx context.Context, username string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, username)
	if err != nil {
		zap.L().Error("can't save accounts after delete", zap.String("username", username), zap.Error(err))
		return deleted, err
	}
	if !deleted {
		zap.L().Info("account not found", zap.String("username", username))
		return false, nil
	}
	zap.L().Info("account deleted", zap.String("username", username))
	return true, nil
}

func (s *Service) ListUsernames() []string {
	return s.repo.Usernames()
}
