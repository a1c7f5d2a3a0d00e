package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/minwoo/dormhub/internal/app/models/dto"
	"github.com/minwoo/dormhub/internal/app/services"
	"github.com/minwoo/dormhub/internal/middleware"
)

// DormController handles dorm application operations
type DormController struct {
	dormService *services.DormService
	logger      zerolog.Logger
}

// NewDormController creates a new DormController
func NewDormController(dormService *services.DormService, logger zerolog.Logger) *DormController {
	return &DormController{
		dormService: dormService,
		logger:      logger,
	}
}

// Apply files a dorm application
// @Summary Apply for a dorm place
// @Description Files the caller's dorm application. A user may hold only one application at a time.
// @Tags dorm
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DormApplyRequest true "Dorm application"
// @Success 201 {object} dto.APIResponse{data=dto.DormApplicationResponse} "Application filed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 409 {object} dto.ErrorResponse "Application already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dorm-applications [post]
func (c *DormController) Apply(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.DormApplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.dormService.Apply(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// GetMine returns the caller's dorm application
// @Summary Get my dorm application
// @Tags dorm
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DormApplicationResponse} "Application"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "No application filed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dorm-applications/me [get]
func (c *DormController) GetMine(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	resp, err := c.dormService.GetMine(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// List returns every dorm application
// @Summary List dorm applications
// @Description Lists every dorm application for the staff assignment overview. Staff only.
// @Tags dorm
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.DormApplicationResponse} "Applications"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dorm-applications [get]
func (c *DormController) List(ctx *gin.Context) {
	resp, err := c.dormService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Get returns one dorm application
// @Summary Get a dorm application
// @Tags dorm
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.DormApplicationResponse} "Application"
// @Failure 400 {object} dto.ErrorResponse "Invalid id parameter"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dorm-applications/{id} [get]
func (c *DormController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.dormService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// AssignRoom applies a partial room assignment
// @Summary Assign a room
// @Description Updates any subset of buildingName, roomNumber and position on an application. Staff only.
// @Tags dorm
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.AssignRoomRequest true "Room assignment"
// @Success 200 {object} dto.APIResponse{data=dto.DormApplicationResponse} "Updated application"
// @Failure 400 {object} dto.ErrorResponse "Empty assignment or malformed values"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dorm-applications/{id} [patch]
func (c *DormController) AssignRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.dormService.AssignRoom(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Delete removes a dorm application
// @Summary Delete a dorm application
// @Description Removes an application from the register. Staff only.
// @Tags dorm
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Application removed"
// @Failure 400 {object} dto.ErrorResponse "Invalid id parameter"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dorm-applications/{id} [delete]
func (c *DormController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.dormService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Application removed"}))
}
