package service

import (
	"context"

	"socialmedia/internal/apperr"
	"socialmedia/internal/model"

	"go.uber.org/zap"
)

type AccountService struct {
	store  AccountStore
	logger *zap.SugaredLogger
}

func NewAccountService(store AccountStore, logger *zap.SugaredLogger) *AccountService {
	return &AccountService{store: store, logger: orNop(logger)}
}

// Register creates an account. Rules are checked in order and the first
// failure wins: blank username, short password, taken username. The username
// lookup is only an early exit; two concurrent registrations can both pass it,
// and the store's unique constraint decides which one gets a Conflict.
func (s *AccountService) Register(ctx context.Context, in model.Credentials) (*model.Account, error) {
	if isBlank(in.Username) {
		s.logger.Debugw("register rejected", "rule", "username_blank")
		return nil, apperr.Invalid("username must not be blank")
	}
	if !satisfies(in.Password, passwordRule) {
		s.logger.Debugw("register rejected", "rule", "password_too_short", "username", in.Username)
		return nil, apperr.Invalid("password must be at least 4 characters")
	}

	existing, err := s.store.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Debugw("register rejected", "rule", "username_taken", "username", in.Username)
		return nil, apperr.Conflict(nil, "username already exists")
	}

	account, err := s.store.Insert(ctx, in)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("account registered", "account_id", account.AccountID, "username", account.Username)
	return account, nil
}

// Login returns the account matching both credentials. Unknown usernames and
// wrong passwords are the same Unauthorized failure.
func (s *AccountService) Login(ctx context.Context, in model.Credentials) (*model.Account, error) {
	account, err := s.store.VerifyCredentials(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperr.Unauthorized("invalid username or password")
	}
	return account, nil
}

func (s *AccountService) GetAccountByID(ctx context.Context, id int) (*model.Account, error) {
	return s.store.FindByID(ctx, id)
}
