package model

// Account represents a registered user.
type Account struct {
	AccountID int    `json:"account_id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// Message represents a post written by an account.
type Message struct {
	MessageID       int    `json:"message_id"`
	PostedBy        int    `json:"posted_by"`
	MessageText     string `json:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}

// Credentials is the username/password pair used to register and to log in.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewMessage is a message that has not been stored yet.
type NewMessage struct {
	PostedBy        int    `json:"posted_by"`
	MessageText     string `json:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}
