package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	leadusecases "campusdesk/internal/application/lead/usecases"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

// The public request structs carry validate tags instead of gin binding tags
// so form errors come back with per-field messages.
type SubmitInquiryRequest struct {
	Name       string `json:"name" validate:"required,max=128"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"max=32"`
	Subject    string `json:"subject" validate:"max=256"`
	Message    string `json:"message" validate:"required,max=4000"`
	SourcePage string `json:"source_page" validate:"max=256"`
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// LeadHandler serves the public marketing endpoints and the back-office
// inquiry queue.
type LeadHandler struct {
	submitUC    leadusecases.SubmitInquiryExecutor
	subscribeUC leadusecases.SubscribeNewsletterExecutor
	listUC      leadusecases.ListInquiriesExecutor
	statusUC    leadusecases.UpdateInquiryStatusExecutor
	logger      logger.Interface
}

func NewLeadHandler(
	submitUC leadusecases.SubmitInquiryExecutor,
	subscribeUC leadusecases.SubscribeNewsletterExecutor,
	listUC leadusecases.ListInquiriesExecutor,
	statusUC leadusecases.UpdateInquiryStatusExecutor,
	log logger.Interface,
) *LeadHandler {
	return &LeadHandler{
		submitUC:    submitUC,
		subscribeUC: subscribeUC,
		listUC:      listUC,
		statusUC:    statusUC,
		logger:      log,
	}
}

// SubmitInquiry handles POST /public/inquiries
func (h *LeadHandler) SubmitInquiry(c *gin.Context) {
	var req SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), leadusecases.SubmitInquiryCommand{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Subject:    req.Subject,
		Message:    req.Message,
		SourcePage: req.SourcePage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Inquiry submitted successfully")
}

// Subscribe handles POST /public/newsletter
func (h *LeadHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.subscribeUC.Execute(c.Request.Context(), leadusecases.SubscribeNewsletterCommand{
		Email: req.Email,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscribed successfully", nil)
}

// ListInquiries handles GET /inquiries
func (h *LeadHandler) ListInquiries(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), leadusecases.ListInquiriesQuery{
		Status:   c.Query("status"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Inquiries, result.Total, p.Page, p.PageSize)
}

// UpdateInquiryStatus handles PATCH /inquiries/:id/status
func (h *LeadHandler) UpdateInquiryStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "inquiry")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "status is required")
		return
	}

	result, err := h.statusUC.Execute(c.Request.Context(), leadusecases.UpdateInquiryStatusCommand{
		InquiryID: id,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inquiry status updated", result)
}
