// Package service holds the business rules for accounts and messages. Every
// rule is checked before the store is touched; store failures are returned
// to the caller unchanged.
package service

import (
	"context"
	"fmt"
	"strings"

	"socialmedia/internal/model"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	MinPasswordLength = 4
	MaxMessageLength  = 255
)

var (
	validate = validator.New()

	passwordRule    = fmt.Sprintf("min=%d", MinPasswordLength)
	messageTextRule = fmt.Sprintf("max=%d", MaxMessageLength)
)

// AccountStore is the persistence AccountService depends on.
type AccountStore interface {
	Insert(ctx context.Context, in model.Credentials) (*model.Account, error)
	FindByUsername(ctx context.Context, username string) (*model.Account, error)
	FindByID(ctx context.Context, id int) (*model.Account, error)
	VerifyCredentials(ctx context.Context, username, password string) (*model.Account, error)
}

// MessageStore is the persistence MessageService depends on.
type MessageStore interface {
	Insert(ctx context.Context, in model.NewMessage) (*model.Message, error)
	ListAll(ctx context.Context) ([]model.Message, error)
	FindByID(ctx context.Context, id int) (*model.Message, error)
	Delete(ctx context.Context, id int) (*model.Message, error)
	UpdateText(ctx context.Context, id int, text string) (*model.Message, error)
	ListByUser(ctx context.Context, accountID int) ([]model.Message, error)
}

// AccountLookup resolves posted_by references. *AccountService satisfies it.
type AccountLookup interface {
	GetAccountByID(ctx context.Context, id int) (*model.Account, error)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// satisfies reports whether s passes a validator tag such as "min=4".
// Lengths are counted in runes.
func satisfies(s, rule string) bool {
	return validate.Var(s, rule) == nil
}

func orNop(logger *zap.SugaredLogger) *zap.SugaredLogger {
	if logger == nil {
		return zap.NewNop().Sugar()
	}
	return logger
}
