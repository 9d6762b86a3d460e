package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"jpep-http-service/internal/error/response"
	"jpep-http-service/middleware"
	"jpep-http-service/services"
	"jpep-http-service/services/container"
)

// InterfacePetitionController defines the petition endpoints
type InterfacePetitionController interface {
	GetPetitions()
	GetPetition()
	SignPetition()
}

// PetitionController handles petition requests
type PetitionController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPetitionController creates a new petition controller
func NewPetitionController(ctx *gin.Context, container *container.ServiceContainer) *PetitionController {
	return &PetitionController{
		Ctx:       ctx,
		Container: container,
	}
}

// GetPetitions lists petitions
// @Summary      List petitions
// @Description  Lists petitions, newest first; the active presence flag restricts to ACTIVE petitions
// @Tags         Petition
// @Accept       json
// @Produce      json
// @Param        active query bool false "Only ACTIVE petitions (presence flag)"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /petitions [get]
func (c *PetitionController) GetPetitions() {
	petitionService := c.Container.GetService("petition").(services.InterfacePetitionService)

	activeOnly := c.Ctx.Request.URL.Query().Has("active")
	petitions, err := petitionService.ListPetitions(activeOnly)
	if err != nil {
		serviceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"petitions": petitions})
}

// GetPetition returns one petition
// @Summary      Get petition details
// @Tags         Petition
// @Accept       json
// @Produce      json
// @Param        id path int true "Petition ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /petitions/{id} [get]
func (c *PetitionController) GetPetition() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid petition ID")
		return
	}

	petitionService := c.Container.GetService("petition").(services.InterfacePetitionService)
	petition, err := petitionService.GetPetitionByID(uint(idUint))
	if err != nil {
		serviceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"petition": petition})
}

// SignPetition adds the caller's signature to a petition
// @Summary      Sign a petition
// @Description  Adds one signature per user on an active petition
// @Tags         Petition
// @Accept       json
// @Produce      json
// @Param        id path int true "Petition ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /petitions/{id}/sign [post]
func (c *PetitionController) SignPetition() {
	userID := middleware.CurrentUserID(c.Ctx)
	if userID == 0 {
		response.Unauthorized(c.Ctx)
		return
	}

	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid petition ID")
		return
	}

	petitionService := c.Container.GetService("petition").(services.InterfacePetitionService)
	petition, err := petitionService.SignPetition(uint(idUint), userID)
	if err != nil {
		serviceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"petition": petition})
}

// HandlePetitionFunc returns a Gin handler dispatching to the named method
func HandlePetitionFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPetitionController(ctx, container)

		switch method {
		case "getPetitions":
			controller.GetPetitions()
		case "getPetition":
			controller.GetPetition()
		case "signPetition":
			controller.SignPetition()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}
