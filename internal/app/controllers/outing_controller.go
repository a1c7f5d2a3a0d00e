package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/minwoo/dormhub/internal/app/models"
	"github.com/minwoo/dormhub/internal/app/models/dto"
	"github.com/minwoo/dormhub/internal/app/services"
	"github.com/minwoo/dormhub/internal/middleware"
)

// OutingController handles outing application operations
type OutingController struct {
	outingService *services.OutingService
	logger        zerolog.Logger
}

// NewOutingController creates a new OutingController
func NewOutingController(outingService *services.OutingService, logger zerolog.Logger) *OutingController {
	return &OutingController{
		outingService: outingService,
		logger:        logger,
	}
}

// Apply files an outing application
// @Summary Apply for an outing
// @Description Files an overnight-outing request in pending state for the caller.
// @Tags outings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.OutingApplyRequest true "Outing application"
// @Success 201 {object} dto.APIResponse{data=dto.OutingApplicationResponse} "Application filed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or date"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /outings [post]
func (c *OutingController) Apply(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.OutingApplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.outingService.Apply(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// List returns outing applications. Staff see everything; students see
// their own.
// @Summary List outing applications
// @Description Staff receive every application, students only their own.
// @Tags outings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.OutingApplicationResponse} "Applications"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /outings [get]
func (c *OutingController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var (
		resp []*dto.OutingApplicationResponse
		err  error
	)
	if middleware.IsStaffRequest(ctx) {
		resp, err = c.outingService.ListAll(ctx.Request.Context())
	} else {
		resp, err = c.outingService.ListMine(ctx.Request.Context(), userID)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Approve marks an outing application approved
// @Summary Approve an outing
// @Description Records a staff approval on an outing application. Staff only.
// @Tags outings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.OutingApplicationResponse} "Updated application"
// @Failure 400 {object} dto.ErrorResponse "Invalid id parameter"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Application already decided"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /outings/{id}/approve [post]
func (c *OutingController) Approve(ctx *gin.Context) {
	c.decide(ctx, models.OutingStatusApproved)
}

// Reject marks an outing application rejected
// @Summary Reject an outing
// @Description Records a staff rejection on an outing application. Staff only.
// @Tags outings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.OutingApplicationResponse} "Updated application"
// @Failure 400 {object} dto.ErrorResponse "Invalid id parameter"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Application already decided"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /outings/{id}/reject [post]
func (c *OutingController) Reject(ctx *gin.Context) {
	c.decide(ctx, models.OutingStatusRejected)
}

func (c *OutingController) decide(ctx *gin.Context, status models.OutingStatus) {
	deciderID, ok := requireUser(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.outingService.Decide(ctx.Request.Context(), id, status, deciderID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
