package store

import (
	"context"
	"fmt"

	"socialmedia/internal/apperr"
	"socialmedia/internal/model"

	"github.com/uptrace/bun"
)

type MessageStore struct {
	db *bun.DB
}

func NewMessageStore(db *bun.DB) (*MessageStore, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is required")
	}
	return &MessageStore{db: db}, nil
}

func (s *MessageStore) Insert(ctx context.Context, in model.NewMessage) (*model.Message, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	record := &messageRecord{
		PostedBy:        in.PostedBy,
		MessageText:     in.MessageText,
		TimePostedEpoch: in.TimePostedEpoch,
	}
	if _, err := s.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return nil, apperr.Storage(err, "store: insert message")
	}
	return record.toDomain(), nil
}

// ListAll returns every message ordered by id.
func (s *MessageStore) ListAll(ctx context.Context) ([]model.Message, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	var records []messageRecord
	if err := s.db.NewSelect().Model(&records).Order("message_id ASC").Scan(ctx); err != nil {
		return nil, apperr.Storage(err, "store: list messages")
	}
	return messagesToDomain(records), nil
}

func (s *MessageStore) FindByID(ctx context.Context, id int) (*model.Message, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	record, err := selectMessage(ctx, s.db, id)
	if err != nil {
		return nil, apperr.Storage(err, "store: find message")
	}
	if record == nil {
		return nil, nil
	}
	return record.toDomain(), nil
}

// Delete removes the message and returns it as it was just before removal.
// A missing id yields (nil, nil). Of several concurrent deletes of one id,
// only the one that removed the row gets it back.
func (s *MessageStore) Delete(ctx context.Context, id int) (*model.Message, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	var deleted *messageRecord
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		record, err := selectMessage(ctx, tx, id)
		if err != nil || record == nil {
			return err
		}
		res, err := tx.NewDelete().Model(record).WherePK().Exec(ctx)
		if err != nil {
			return err
		}
		// A concurrent delete may have removed the row after the read.
		n, err := res.RowsAffected()
		if err != nil || n == 0 {
			return err
		}
		deleted = record
		return nil
	})
	if err != nil {
		return nil, apperr.Storage(err, "store: delete message")
	}
	if deleted == nil {
		return nil, nil
	}
	return deleted.toDomain(), nil
}

// UpdateText replaces message_text in place. A missing id yields (nil, nil).
func (s *MessageStore) UpdateText(ctx context.Context, id int, text string) (*model.Message, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	var updated *messageRecord
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model(&messageRecord{MessageID: id, MessageText: text}).
			Column("message_text").
			WherePK().
			Exec(ctx)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil || n == 0 {
			return err
		}
		updated, err = selectMessage(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, apperr.Storage(err, "store: update message")
	}
	if updated == nil {
		return nil, nil
	}
	return updated.toDomain(), nil
}

// ListByUser returns the messages posted by accountID, never nil.
func (s *MessageStore) ListByUser(ctx context.Context, accountID int) ([]model.Message, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	var records []messageRecord
	err := s.db.NewSelect().
		Model(&records).
		Where("?TableAlias.posted_by = ?", accountID).
		Order("message_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, apperr.Storage(err, "store: list messages by user")
	}
	return messagesToDomain(records), nil
}

func (s *MessageStore) ready() error {
	if s == nil || s.db == nil {
		return apperr.Storage(nil, "store: message store is not configured")
	}
	return nil
}

func selectMessage(ctx context.Context, db bun.IDB, id int) (*messageRecord, error) {
	record := &messageRecord{}
	err := db.NewSelect().Model(record).Where("?TableAlias.message_id = ?", id).Scan(ctx)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}
