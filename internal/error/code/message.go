package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "invalid request body",
	ErrValidation:      "request validation failed",
	ErrTokenInvalid:    "invalid authentication token",
	ErrTooManyRequests: "too many requests, try again later",

	ErrUserNotFound:      "user not found",
	ErrPasswordIncorrect: "incorrect email or password",

	ErrRepresentativeNotFound: "representative not found",

	ErrConstituencyNotFound: "constituency not found",
	ErrProjectNotFound:      "project not found",

	ErrMessageNotFound:  "message not found",
	ErrInvalidRecipient: "recipient is not a valid representative or staff member",
	ErrNotParticipant:   "you are not authorized to act on this message",

	ErrPetitionNotFound: "petition not found",
	ErrPetitionClosed:   "petition is no longer active",
	ErrAlreadySigned:    "you have already signed this petition",

	ErrDatabase: "database error",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	ErrUserNotFound:      StatusNotFound,
	ErrPasswordIncorrect: StatusUnauthorized,

	ErrRepresentativeNotFound: StatusNotFound,

	ErrConstituencyNotFound: StatusNotFound,
	ErrProjectNotFound:      StatusNotFound,

	ErrMessageNotFound:  StatusNotFound,
	ErrInvalidRecipient: StatusBadRequest,
	ErrNotParticipant:   StatusForbidden,

	ErrPetitionNotFound: StatusNotFound,
	ErrPetitionClosed:   StatusBadRequest,
	ErrAlreadySigned:    StatusBadRequest,

	ErrDatabase: StatusInternalServerError,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
