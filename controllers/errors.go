package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"jpep-http-service/config"
	"jpep-http-service/internal/error/code"
	"jpep-http-service/internal/error/response"
	"jpep-http-service/services"
)

// serviceError translates service-layer sentinel errors into the unified
// error envelope. Unrecognized errors are logged and reported as a
// generic 500 so internals never leak to clients.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		response.Fail(c, code.ErrUserNotFound, nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Fail(c, code.ErrPasswordIncorrect, nil)
	case errors.Is(err, services.ErrRepresentativeNotFound):
		response.Fail(c, code.ErrRepresentativeNotFound, nil)
	case errors.Is(err, services.ErrConstituencyNotFound):
		response.Fail(c, code.ErrConstituencyNotFound, nil)
	case errors.Is(err, services.ErrProjectNotFound):
		response.Fail(c, code.ErrProjectNotFound, nil)
	case errors.Is(err, services.ErrMessageNotFound):
		response.Fail(c, code.ErrMessageNotFound, nil)
	case errors.Is(err, services.ErrMissingFields):
		response.ParamError(c, err.Error())
	case errors.Is(err, services.ErrInvalidRecipient):
		response.Fail(c, code.ErrInvalidRecipient, nil)
	case errors.Is(err, services.ErrNotParticipant):
		response.Fail(c, code.ErrNotParticipant, nil)
	case errors.Is(err, services.ErrPetitionNotFound):
		response.Fail(c, code.ErrPetitionNotFound, nil)
	case errors.Is(err, services.ErrPetitionClosed):
		response.Fail(c, code.ErrPetitionClosed, nil)
	case errors.Is(err, services.ErrAlreadySigned):
		response.Fail(c, code.ErrAlreadySigned, nil)
	default:
		config.Error("unexpected service error: %v", err)
		response.ServerError(c)
	}
}
