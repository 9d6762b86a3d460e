package code

// HTTP status codes used by the code→status mapping.
const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding failed.
	ErrBind
	// ErrValidation - 400: request validation failed.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: rate limit exceeded.
	ErrTooManyRequests
)

// User and auth error codes (101xxx).
const (
	// ErrUserNotFound - 404: user does not exist.
	ErrUserNotFound int = iota + 101000
	// ErrPasswordIncorrect - 401: wrong credentials.
	ErrPasswordIncorrect
)

// Representative error codes (102xxx).
const (
	// ErrRepresentativeNotFound - 404: representative does not exist.
	ErrRepresentativeNotFound int = iota + 102000
)

// Constituency and project error codes (103xxx).
const (
	// ErrConstituencyNotFound - 404: constituency does not exist.
	ErrConstituencyNotFound int = iota + 103000
	// ErrProjectNotFound - 404: project does not exist.
	ErrProjectNotFound
)

// Message error codes (104xxx).
const (
	// ErrMessageNotFound - 404: message does not exist.
	ErrMessageNotFound int = iota + 104000
	// ErrInvalidRecipient - 400: recipient is not a representative or staff member.
	ErrInvalidRecipient
	// ErrNotParticipant - 403: caller was not part of the conversation.
	ErrNotParticipant
)

// Petition error codes (105xxx).
const (
	// ErrPetitionNotFound - 404: petition does not exist.
	ErrPetitionNotFound int = iota + 105000
	// ErrPetitionClosed - 400: petition is no longer active.
	ErrPetitionClosed
	// ErrAlreadySigned - 400: user already signed this petition.
	ErrAlreadySigned
)

// Infrastructure error codes (106xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 106000
)
