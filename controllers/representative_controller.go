package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"jpep-http-service/internal/error/response"
	"jpep-http-service/services"
	"jpep-http-service/services/container"
)

// InterfaceRepresentativeController defines the representative endpoints
type InterfaceRepresentativeController interface {
	GetRepresentatives()
	GetRepresentative()
}

// RepresentativeController handles representative requests
type RepresentativeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRepresentativeController creates a new representative controller
func NewRepresentativeController(ctx *gin.Context, container *container.ServiceContainer) *RepresentativeController {
	return &RepresentativeController{
		Ctx:       ctx,
		Container: container,
	}
}

// GetRepresentatives lists representatives
// @Summary      List representatives
// @Description  Lists all representatives, optionally filtered by party or a name search
// @Tags         Representative
// @Accept       json
// @Produce      json
// @Param        party query string false "Exact party filter, e.g. JLP"
// @Param        q query string false "Case-insensitive search across representative and constituency names"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /representatives [get]
func (c *RepresentativeController) GetRepresentatives() {
	representativeService := c.Container.GetService("representative").(services.InterfaceRepresentativeService)

	query := c.Ctx.Query("q")
	party := c.Ctx.Query("party")

	var err error
	var representatives interface{}

	switch {
	case query != "":
		representatives, err = representativeService.SearchRepresentatives(query)
	case party != "":
		representatives, err = representativeService.GetRepresentativesByParty(party)
	default:
		representatives, err = representativeService.GetAllRepresentatives()
	}
	if err != nil {
		serviceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"representatives": representatives})
}

// GetRepresentative returns one representative profile
// @Summary      Get representative details
// @Description  Returns a representative profile; nested sections are opted in with presence flags
// @Tags         Representative
// @Accept       json
// @Produce      json
// @Param        id path int true "Representative ID"
// @Param        activity query bool false "Include recent parliamentary activity (presence flag)"
// @Param        voting query bool false "Include recent voting records (presence flag)"
// @Param        metrics query bool false "Include full performance metric history (presence flag)"
// @Param        statements query bool false "Include recent statements (presence flag)"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /representatives/{id} [get]
func (c *RepresentativeController) GetRepresentative() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid representative ID")
		return
	}
	id := uint(idUint)

	representativeService := c.Container.GetService("representative").(services.InterfaceRepresentativeService)
	representative, err := representativeService.GetRepresentativeByID(id)
	if err != nil {
		serviceError(c.Ctx, err)
		return
	}

	result := gin.H{"representative": representative}

	params := c.Ctx.Request.URL.Query()
	if params.Has("activity") {
		activity, err := representativeService.GetActivity(id, services.DefaultRecordLimit)
		if err != nil {
			serviceError(c.Ctx, err)
			return
		}
		result["activity"] = activity
	}
	if params.Has("voting") {
		votingRecords, err := representativeService.GetVotingRecords(id, services.DefaultRecordLimit)
		if err != nil {
			serviceError(c.Ctx, err)
			return
		}
		result["voting_records"] = votingRecords
	}
	if params.Has("metrics") {
		metrics, err := representativeService.GetPerformanceMetrics(id)
		if err != nil {
			serviceError(c.Ctx, err)
			return
		}
		result["performance_metrics"] = metrics
	}
	if params.Has("statements") {
		statements, err := representativeService.GetStatements(id, services.DefaultRecordLimit)
		if err != nil {
			serviceError(c.Ctx, err)
			return
		}
		result["statements"] = statements
	}

	response.Success(c.Ctx, result)
}

// HandleRepresentativeFunc returns a Gin handler dispatching to the named method
func HandleRepresentativeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRepresentativeController(ctx, container)

		switch method {
		case "getRepresentatives":
			controller.GetRepresentatives()
		case "getRepresentative":
			controller.GetRepresentative()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}
