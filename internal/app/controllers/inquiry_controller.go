package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/minwoo/dormhub/internal/app/models/dto"
	"github.com/minwoo/dormhub/internal/app/services"
	"github.com/minwoo/dormhub/internal/middleware"
)

// InquiryController handles inquiry desk operations
type InquiryController struct {
	inquiryService *services.InquiryService
	logger         zerolog.Logger
}

// NewInquiryController creates a new InquiryController
func NewInquiryController(inquiryService *services.InquiryService, logger zerolog.Logger) *InquiryController {
	return &InquiryController{
		inquiryService: inquiryService,
		logger:         logger,
	}
}

// Create files an inquiry
// @Summary File an inquiry
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInquiryRequest true "Inquiry"
// @Success 201 {object} dto.APIResponse{data=dto.InquiryResponse} "Inquiry filed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /inquiries [post]
func (c *InquiryController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateInquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.inquiryService.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// List returns inquiries. Staff see everything; students see their own.
// @Summary List inquiries
// @Description Staff receive every inquiry, students only their own, newest first.
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.InquiryResponse} "Inquiries"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /inquiries [get]
func (c *InquiryController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	resp, err := c.inquiryService.List(ctx.Request.Context(), userID, middleware.IsStaffRequest(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Get returns a single inquiry
// @Summary Get an inquiry
// @Description Returns an inquiry with its answer, if any. Students may only read their own.
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inquiry ID"
// @Success 200 {object} dto.APIResponse{data=dto.InquiryResponse} "Inquiry"
// @Failure 400 {object} dto.ErrorResponse "Invalid id parameter"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not the inquiry owner"
// @Failure 404 {object} dto.ErrorResponse "Inquiry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /inquiries/{id} [get]
func (c *InquiryController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.inquiryService.Get(ctx.Request.Context(), id, userID, middleware.IsStaffRequest(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Answer records the staff answer for an inquiry
// @Summary Answer an inquiry
// @Description Writes or rewrites the answer of an inquiry. A rewrite keeps the admin who answered first. Staff only.
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inquiry ID"
// @Param request body dto.AnswerInquiryRequest true "Answer"
// @Success 200 {object} dto.APIResponse{data=dto.InquiryResponse} "Inquiry with answer"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 404 {object} dto.ErrorResponse "Inquiry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /inquiries/{id}/answer [post]
func (c *InquiryController) Answer(ctx *gin.Context) {
	adminID, ok := requireUser(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AnswerInquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.inquiryService.Answer(ctx.Request.Context(), id, adminID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
