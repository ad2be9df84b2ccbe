package store

import (
	"socialmedia/internal/model"

	"github.com/uptrace/bun"
)

type accountRecord struct {
	bun.BaseModel `bun:"table:account,alias:a"`

	AccountID int    `bun:"account_id,pk,autoincrement"`
	Username  string `bun:"username,notnull,unique"`
	Password  string `bun:"password,notnull"`
}

func (r *accountRecord) toDomain() *model.Account {
	return &model.Account{
		AccountID: r.AccountID,
		Username:  r.Username,
		Password:  r.Password,
	}
}

type messageRecord struct {
	bun.BaseModel `bun:"table:message,alias:m"`

	MessageID       int    `bun:"message_id,pk,autoincrement"`
	PostedBy        int    `bun:"posted_by,notnull"`
	MessageText     string `bun:"message_text,notnull"`
	TimePostedEpoch int64  `bun:"time_posted_epoch,notnull"`
}

func (r *messageRecord) toDomain() *model.Message {
	return &model.Message{
		MessageID:       r.MessageID,
		PostedBy:        r.PostedBy,
		MessageText:     r.MessageText,
		TimePostedEpoch: r.TimePostedEpoch,
	}
}

func messagesToDomain(records []messageRecord) []model.Message {
	out := make([]model.Message, 0, len(records))
	for i := range records {
		out = append(out, *records[i].toDomain())
	}
	return out
}
