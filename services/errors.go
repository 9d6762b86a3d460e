package services

import "errors"

// Sentinel errors returned by the service layer. Controllers translate
// these to HTTP statuses; anything else is an infrastructure failure.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("incorrect email or password")

	ErrRepresentativeNotFound = errors.New("representative not found")
	ErrConstituencyNotFound   = errors.New("constituency not found")
	ErrProjectNotFound        = errors.New("project not found")

	ErrMessageNotFound  = errors.New("message not found")
	ErrMissingFields    = errors.New("recipient, subject and content are required")
	ErrInvalidRecipient = errors.New("recipient is not a valid representative or staff member")
	ErrNotParticipant   = errors.New("you are not part of this conversation")

	ErrPetitionNotFound = errors.New("petition not found")
	ErrPetitionClosed   = errors.New("petition is no longer active")
	ErrAlreadySigned    = errors.New("petition already signed by this user")
)
