package store

import (
	"context"
	"fmt"

	"socialmedia/internal/apperr"
	"socialmedia/internal/model"

	"github.com/uptrace/bun"
)

type AccountStore struct {
	db *bun.DB
}

func NewAccountStore(db *bun.DB) (*AccountStore, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is required")
	}
	return &AccountStore{db: db}, nil
}

// Insert stores a new account. The username unique constraint is checked by
// the database and reported as a Conflict.
func (s *AccountStore) Insert(ctx context.Context, in model.Credentials) (*model.Account, error) {
	if s == nil || s.db == nil {
		return nil, apperr.Storage(nil, "store: account store is not configured")
	}

	record := &accountRecord{
		Username: in.Username,
		Password: in.Password,
	}
	if _, err := s.db.NewInsert().Model(record).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict(err, fmt.Sprintf("username %q already exists", in.Username))
		}
		return nil, apperr.Storage(err, "store: insert account")
	}
	return record.toDomain(), nil
}

func (s *AccountStore) FindByUsername(ctx context.Context, username string) (*model.Account, error) {
	return s.findOne(ctx, "find account by username", func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.username = ?", username)
	})
}

func (s *AccountStore) FindByID(ctx context.Context, id int) (*model.Account, error) {
	return s.findOne(ctx, "find account by id", func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.account_id = ?", id)
	})
}

// VerifyCredentials returns the account only when both fields match exactly.
func (s *AccountStore) VerifyCredentials(ctx context.Context, username, password string) (*model.Account, error) {
	return s.findOne(ctx, "verify credentials", func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("?TableAlias.username = ?", username).
			Where("?TableAlias.password = ?", password)
	})
}

func (s *AccountStore) findOne(
	ctx context.Context,
	op string,
	filter func(*bun.SelectQuery) *bun.SelectQuery,
) (*model.Account, error) {
	if s == nil || s.db == nil {
		return nil, apperr.Storage(nil, "store: account store is not configured")
	}

	record := &accountRecord{}
	err := s.db.NewSelect().Model(record).Apply(filter).Limit(1).Scan(ctx)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage(err, "store: "+op)
	}
	return record.toDomain(), nil
}
