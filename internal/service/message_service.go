package service

import (
	"context"
	"fmt"

	"socialmedia/internal/apperr"
	"socialmedia/internal/model"

	"go.uber.org/zap"
)

type MessageService struct {
	store    MessageStore
	accounts AccountLookup
	logger   *zap.SugaredLogger
}

func NewMessageService(store MessageStore, accounts AccountLookup, logger *zap.SugaredLogger) *MessageService {
	return &MessageService{store: store, accounts: accounts, logger: orNop(logger)}
}

// CreateMessage checks, in order: blank text, text over 255 characters,
// unknown posted_by.
func (s *MessageService) CreateMessage(ctx context.Context, in model.NewMessage) (*model.Message, error) {
	if err := s.checkText(in.MessageText); err != nil {
		return nil, err
	}

	author, err := s.accounts.GetAccountByID(ctx, in.PostedBy)
	if err != nil {
		return nil, err
	}
	if author == nil {
		s.logger.Debugw("message rejected", "rule", "unknown_author", "posted_by", in.PostedBy)
		return nil, apperr.Invalid(fmt.Sprintf("account %d does not exist", in.PostedBy))
	}

	msg, err := s.store.Insert(ctx, in)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("message created", "message_id", msg.MessageID, "posted_by", msg.PostedBy)
	return msg, nil
}

func (s *MessageService) GetAllMessages(ctx context.Context) ([]model.Message, error) {
	return s.store.ListAll(ctx)
}

func (s *MessageService) GetMessageByID(ctx context.Context, id int) (*model.Message, error) {
	return s.store.FindByID(ctx, id)
}

// DeleteMessage returns the removed message, or nil if there was none.
func (s *MessageService) DeleteMessage(ctx context.Context, id int) (*model.Message, error) {
	msg, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg != nil {
		s.logger.Infow("message deleted", "message_id", msg.MessageID)
	}
	return msg, nil
}

// UpdateMessageText checks, in order: blank text, text over 255 characters,
// unknown message id.
func (s *MessageService) UpdateMessageText(ctx context.Context, id int, text string) (*model.Message, error) {
	if err := s.checkText(text); err != nil {
		return nil, err
	}

	msg, err := s.store.UpdateText(ctx, id, text)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, apperr.NotFound(fmt.Sprintf("message %d does not exist", id))
	}
	s.logger.Infow("message updated", "message_id", msg.MessageID)
	return msg, nil
}

// GetMessagesByUser does not check that the account exists.
func (s *MessageService) GetMessagesByUser(ctx context.Context, accountID int) ([]model.Message, error) {
	return s.store.ListByUser(ctx, accountID)
}

func (s *MessageService) checkText(text string) error {
	if isBlank(text) {
		s.logger.Debugw("message rejected", "rule", "text_blank")
		return apperr.Invalid("message_text must not be blank")
	}
	if !satisfies(text, messageTextRule) {
		s.logger.Debugw("message rejected", "rule", "text_too_long")
		return apperr.Invalid("message_text must be at most 255 characters")
	}
	return nil
}
