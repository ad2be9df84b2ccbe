package service

import (
	"context"

	"socialmedia/internal/model"
)

type fakeAccountStore struct {
	insertFn            func(ctx context.Context, in model.Credentials) (*model.Account, error)
	findByUsernameFn    func(ctx context.Context, username string) (*model.Account, error)
	findByIDFn          func(ctx context.Context, id int) (*model.Account, error)
	verifyCredentialsFn func(ctx context.Context, username, password string) (*model.Account, error)

	inserts int
}

func (f *fakeAccountStore) Insert(ctx context.Context, in model.Credentials) (*model.Account, error) {
	f.inserts++
	if f.insertFn != nil {
		return f.insertFn(ctx, in)
	}
	return &model.Account{AccountID: 1, Username: in.Username, Password: in.Password}, nil
}

func (f *fakeAccountStore) FindByUsername(ctx context.Context, username string) (*model.Account, error) {
	if f.findByUsernameFn != nil {
		return f.findByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (f *fakeAccountStore) FindByID(ctx context.Context, id int) (*model.Account, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeAccountStore) VerifyCredentials(ctx context.Context, username, password string) (*model.Account, error) {
	if f.verifyCredentialsFn != nil {
		return f.verifyCredentialsFn(ctx, username, password)
	}
	return nil, nil
}

type fakeMessageStore struct {
	insertFn     func(ctx context.Context, in model.NewMessage) (*model.Message, error)
	listAllFn    func(ctx context.Context) ([]model.Message, error)
	findByIDFn   func(ctx context.Context, id int) (*model.Message, error)
	deleteFn     func(ctx context.Context, id int) (*model.Message, error)
	updateTextFn func(ctx context.Context, id int, text string) (*model.Message, error)
	listByUserFn func(ctx context.Context, accountID int) ([]model.Message, error)

	inserts int
	updates int
}

func (f *fakeMessageStore) Insert(ctx context.Context, in model.NewMessage) (*model.Message, error) {
	f.inserts++
	if f.insertFn != nil {
		return f.insertFn(ctx, in)
	}
	return &model.Message{MessageID: 1, PostedBy: in.PostedBy, MessageText: in.MessageText, TimePostedEpoch: in.TimePostedEpoch}, nil
}

func (f *fakeMessageStore) ListAll(ctx context.Context) ([]model.Message, error) {
	if f.listAllFn != nil {
		return f.listAllFn(ctx)
	}
	return []model.Message{}, nil
}

func (f *fakeMessageStore) FindByID(ctx context.Context, id int) (*model.Message, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeMessageStore) Delete(ctx context.Context, id int) (*model.Message, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeMessageStore) UpdateText(ctx context.Context, id int, text string) (*model.Message, error) {
	f.updates++
	if f.updateTextFn != nil {
		return f.updateTextFn(ctx, id, text)
	}
	return nil, nil
}

func (f *fakeMessageStore) ListByUser(ctx context.Context, accountID int) ([]model.Message, error) {
	if f.listByUserFn != nil {
		return f.listByUserFn(ctx, accountID)
	}
	return []model.Message{}, nil
}

type fakeAccountLookup func(ctx context.Context, id int) (*model.Account, error)

func (f fakeAccountLookup) GetAccountByID(ctx context.Context, id int) (*model.Account, error) {
	return f(ctx, id)
}

func knownAccounts(ids ...int) fakeAccountLookup {
	return func(_ context.Context, id int) (*model.Account, error) {
		for _, known := range ids {
			if known == id {
				return &model.Account{AccountID: id, Username: "user", Password: "password"}, nil
			}
		}
		return nil, nil
	}
}
