package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"jpep-http-service/internal/error/response"
	"jpep-http-service/services"
	"jpep-http-service/services/container"
)

// InterfaceConstituencyController defines the constituency endpoints
type InterfaceConstituencyController interface {
	GetConstituencies()
	GetConstituency()
	GetConstituencyProjects()
	GetProject()
}

// ConstituencyController handles constituency requests
type ConstituencyController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewConstituencyController creates a new constituency controller
func NewConstituencyController(ctx *gin.Context, container *container.ServiceContainer) *ConstituencyController {
	return &ConstituencyController{
		Ctx:       ctx,
		Container: container,
	}
}

// GetConstituencies lists constituencies, or statistics, or parish summaries
// @Summary      List constituencies
// @Description  Lists constituencies (optionally filtered by parish or search); the stats and parishes presence flags switch to aggregate modes instead
// @Tags         Constituency
// @Accept       json
// @Produce      json
// @Param        parish query string false "Exact parish filter, e.g. Kingston"
// @Param        q query string false "Case-insensitive search across constituency and parish names"
// @Param        stats query bool false "Return aggregate statistics instead of the list (presence flag)"
// @Param        parishes query bool false "Return parish summaries instead of the list (presence flag)"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /constituencies [get]
func (c *ConstituencyController) GetConstituencies() {
	constituencyService := c.Container.GetService("constituency").(services.InterfaceConstituencyService)

	params := c.Ctx.Request.URL.Query()
	if params.Has("stats") {
		statistics, err := constituencyService.GetStatistics()
		if err != nil {
			serviceError(c.Ctx, err)
			return
		}
		response.Success(c.Ctx, gin.H{"statistics": statistics})
		return
	}
	if params.Has("parishes") {
		parishes, err := constituencyService.GetParishes()
		if err != nil {
			serviceError(c.Ctx, err)
			return
		}
		response.Success(c.Ctx, gin.H{"parishes": parishes})
		return
	}

	query := c.Ctx.Query("q")
	parish := c.Ctx.Query("parish")

	var err error
	var constituencies interface{}

	switch {
	case query != "":
		constituencies, err = constituencyService.SearchConstituencies(query)
	case parish != "":
		constituencies, err = constituencyService.GetConstituenciesByParish(parish)
	default:
		constituencies, err = constituencyService.GetAllConstituencies()
	}
	if err != nil {
		serviceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"constituencies": constituencies})
}

// GetConstituency returns one constituency
// @Summary      Get constituency details
// @Description  Returns a constituency with its representative and recent projects; presence flags opt in to the complete project list or an explicit representative lookup
// @Tags         Constituency
// @Accept       json
// @Produce      json
// @Param        id path int true "Constituency ID"
// @Param        projects query bool false "Include the complete project list with update history (presence flag)"
// @Param        representative query bool false "Include the representative via constituency lookup (presence flag)"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /constituencies/{id} [get]
func (c *ConstituencyController) GetConstituency() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid constituency ID")
		return
	}
	id := uint(idUint)

	constituencyService := c.Container.GetService("constituency").(services.InterfaceConstituencyService)
	constituency, err := constituencyService.GetConstituencyByID(id)
	if err != nil {
		serviceError(c.Ctx, err)
		return
	}

	result := gin.H{"constituency": constituency}

	params := c.Ctx.Request.URL.Query()
	if params.Has("projects") {
		projects, err := constituencyService.GetProjects(id)
		if err != nil {
			serviceError(c.Ctx, err)
			return
		}
		result["projects"] = projects
	}
	if params.Has("representative") && constituency.Representative == nil {
		representativeService := c.Container.GetService("representative").(services.InterfaceRepresentativeService)
		representative, err := representativeService.GetRepresentativeByConstituency(id)
		if err != nil && !errors.Is(err, services.ErrRepresentativeNotFound) {
			serviceError(c.Ctx, err)
			return
		}
		if representative != nil {
			result["representative"] = representative
		}
	}

	response.Success(c.Ctx, result)
}

// GetConstituencyProjects returns the complete project list
// @Summary      List constituency projects
// @Description  Returns every project of a constituency with update history, grouped by status, newest first
// @Tags         Constituency
// @Accept       json
// @Produce      json
// @Param        id path int true "Constituency ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /constituencies/{id}/projects [get]
func (c *ConstituencyController) GetConstituencyProjects() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid constituency ID")
		return
	}
	id := uint(idUint)

	constituencyService := c.Container.GetService("constituency").(services.InterfaceConstituencyService)

	// 404 for unknown constituencies, empty list for known ones without projects
	exists, err := constituencyService.ConstituencyExists(id)
	if err != nil {
		serviceError(c.Ctx, err)
		return
	}
	if !exists {
		serviceError(c.Ctx, services.ErrConstituencyNotFound)
		return
	}

	projects, err := constituencyService.GetProjects(id)
	if err != nil {
		serviceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"projects": projects})
}

// GetProject returns one project
// @Summary      Get project details
// @Description  Returns a project with its constituency summary and update history
// @Tags         Constituency
// @Accept       json
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /projects/{id} [get]
func (c *ConstituencyController) GetProject() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid project ID")
		return
	}

	constituencyService := c.Container.GetService("constituency").(services.InterfaceConstituencyService)
	project, err := constituencyService.GetProjectByID(uint(idUint))
	if err != nil {
		serviceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"project": project})
}

// HandleConstituencyFunc returns a Gin handler dispatching to the named method
func HandleConstituencyFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewConstituencyController(ctx, container)

		switch method {
		case "getConstituencies":
			controller.GetConstituencies()
		case "getConstituency":
			controller.GetConstituency()
		case "getConstituencyProjects":
			controller.GetConstituencyProjects()
		case "getProject":
			controller.GetProject()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}
