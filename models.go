package main

// updateMessageRequest is the PATCH /messages/{message_id} body. Any other
// fields in it are ignored.
type updateMessageRequest struct {
	MessageText string `json:"message_text"`
}

type healthResponse struct {
	Status string `json:"status"`
}
