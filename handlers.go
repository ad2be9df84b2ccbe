package main

import (
	"net/http"

	"socialmedia/internal/apperr"
	"socialmedia/internal/model"
	"socialmedia/internal/service"

	"go.uber.org/zap"
)

type app struct {
	accounts *service.AccountService
	messages *service.MessageService
	logger   *zap.SugaredLogger
}

// POST /register
func (a *app) registerHandler(w http.ResponseWriter, r *http.Request) {
	var in model.Credentials
	if !a.decode(w, r, &in) {
		return
	}

	account, err := a.accounts.Register(r.Context(), in)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.writeJSON(w, r, account)
}

// POST /login
func (a *app) loginHandler(w http.ResponseWriter, r *http.Request) {
	var in model.Credentials
	if !a.decode(w, r, &in) {
		return
	}

	account, err := a.accounts.Login(r.Context(), in)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.writeJSON(w, r, account)
}

// POST /messages
func (a *app) createMessageHandler(w http.ResponseWriter, r *http.Request) {
	var in model.NewMessage
	if !a.decode(w, r, &in) {
		return
	}

	msg, err := a.messages.CreateMessage(r.Context(), in)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.writeJSON(w, r, msg)
}

// GET /messages
func (a *app) listMessagesHandler(w http.ResponseWriter, r *http.Request) {
	msgs, err := a.messages.GetAllMessages(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.writeJSON(w, r, msgs)
}

// GET /messages/{message_id}. A missing id is 200 with an empty body.
func (a *app) getMessageHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "message_id")
	if !ok {
		writeEmpty(w)
		return
	}

	msg, err := a.messages.GetMessageByID(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if msg == nil {
		writeEmpty(w)
		return
	}
	a.writeJSON(w, r, msg)
}

// DELETE /messages/{message_id}. A missing id is 200 with an empty body.
func (a *app) deleteMessageHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "message_id")
	if !ok {
		writeEmpty(w)
		return
	}

	msg, err := a.messages.DeleteMessage(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if msg == nil {
		writeEmpty(w)
		return
	}
	a.writeJSON(w, r, msg)
}

// PATCH /messages/{message_id}
func (a *app) updateMessageHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "message_id")
	if !ok {
		a.fail(w, r, apperr.NotFound("message id out of range"))
		return
	}
	var in updateMessageRequest
	if !a.decode(w, r, &in) {
		return
	}

	msg, err := a.messages.UpdateMessageText(r.Context(), id, in.MessageText)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.writeJSON(w, r, msg)
}

// GET /accounts/{account_id}/messages
func (a *app) userMessagesHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "account_id")
	if !ok {
		a.writeJSON(w, r, []model.Message{})
		return
	}

	msgs, err := a.messages.GetMessagesByUser(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.writeJSON(w, r, msgs)
}

// GET /health
func (a *app) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, r, healthResponse{Status: "ok"})
}
