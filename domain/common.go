package domain

var (
	MessageFailedBodyRequest = "failed to parse request body"
	MessageSuccessHealth     = "service is healthy"

	MessageSuccessSendDigest = "expiry digest sent successfully"
	MessageFailedSendDigest  = "failed to send expiry digest"
	MessageNothingExpiring   = "nothing expiring, no digest sent"
)

type (
	SendDigestRequest struct {
		Recipient string `json:"recipient" validate:"omitempty,email"`
	}
)
