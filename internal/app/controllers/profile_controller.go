package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/minwoo/dormhub/internal/app/models/dto"
	"github.com/minwoo/dormhub/internal/app/services"
	"github.com/minwoo/dormhub/internal/middleware"
)

// ProfileController handles my-page, point adjustment and profile search
type ProfileController struct {
	profileService *services.ProfileService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService *services.ProfileService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		logger:         logger,
	}
}

// MyPage returns the caller's profile and dorm application
// @Summary Get my page
// @Description Returns the authenticated user's profile together with their dorm application, if one exists.
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MyPageResponse} "Profile with optional dorm application"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mypage [get]
func (c *ProfileController) MyPage(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.profileService.MyPage(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// AdjustPoints applies a reward or penalty adjustment
// @Summary Adjust student points
// @Description Adds a nonzero delta to the reward or penalty counter of the student identified by username. Staff only.
// @Tags points
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AdjustPointsRequest true "Point adjustment"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Points adjusted"
// @Failure 400 {object} dto.ErrorResponse "Invalid point type or zero delta"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 404 {object} dto.ErrorResponse "Unknown student"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /points [post]
func (c *ProfileController) AdjustPoints(ctx *gin.Context) {
	var req dto.AdjustPointsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.profileService.AdjustPoints(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Points adjusted"}))
}

// SearchProfiles looks up profiles by an enumerated field
// @Summary Search profiles
// @Description Finds profiles by one of the enumerated fields: username, studentNumber or department. Staff only.
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param field query string true "Search field" Enums(username, studentNumber, department)
// @Param value query string true "Search value"
// @Success 200 {object} dto.APIResponse{data=[]dto.ProfileResponse} "Matching profiles"
// @Failure 400 {object} dto.ErrorResponse "Unknown search field"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profiles [get]
func (c *ProfileController) SearchProfiles(ctx *gin.Context) {
	field := ctx.Query("field")
	value := ctx.Query("value")

	resp, err := c.profileService.SearchProfiles(ctx.Request.Context(), field, value)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
