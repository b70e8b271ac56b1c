package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ticketusecases "campusdesk/internal/application/ticket/usecases"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type CreateTicketRequest struct {
	SchoolID     uint   `json:"school_id" binding:"required"`
	AssetID      *uint  `json:"asset_id"`
	Category     string `json:"category" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Priority     string `json:"priority"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
}

type SetTicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

type ChangeTicketPriorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}

type TicketHandler struct {
	createUC   ticketusecases.CreateTicketExecutor
	statusUC   ticketusecases.SetTicketStatusExecutor
	assignUC   ticketusecases.AssignTicketExecutor
	priorityUC ticketusecases.ChangeTicketPriorityExecutor
	getUC      ticketusecases.GetTicketExecutor
	listUC     ticketusecases.ListTicketsExecutor
	statsUC    ticketusecases.TicketStatsExecutor
	logger     logger.Interface
}

func NewTicketHandler(
	createUC ticketusecases.CreateTicketExecutor,
	statusUC ticketusecases.SetTicketStatusExecutor,
	assignUC ticketusecases.AssignTicketExecutor,
	priorityUC ticketusecases.ChangeTicketPriorityExecutor,
	getUC ticketusecases.GetTicketExecutor,
	listUC ticketusecases.ListTicketsExecutor,
	statsUC ticketusecases.TicketStatsExecutor,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUC:   createUC,
		statusUC:   statusUC,
		assignUC:   assignUC,
		priorityUC: priorityUC,
		getUC:      getUC,
		listUC:     listUC,
		statsUC:    statsUC,
		logger:     log,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), ticketusecases.CreateTicketCommand{
		ActorID:      actorID(c),
		SchoolID:     req.SchoolID,
		AssetID:      req.AssetID,
		Category:     req.Category,
		Title:        req.Title,
		Description:  req.Description,
		Priority:     req.Priority,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), ticketusecases.GetTicketQuery{
		TicketID: id,
		ActorID:  actorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	p := utils.ParsePagination(c)

	query := ticketusecases.ListTicketsQuery{
		ActorID:  actorID(c),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Page:     p.Page,
		PageSize: p.PageSize,
	}
	if schoolID, err := utils.ParseIDQuery(c, "school_id"); err == nil {
		query.SchoolID = schoolID
	}
	if assigneeID, err := utils.ParseIDQuery(c, "assignee_id"); err == nil {
		query.AssigneeID = assigneeID
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, p.Page, p.PageSize)
}

// SetStatus handles PATCH /tickets/:id/status
func (h *TicketHandler) SetStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "status is required")
		return
	}

	result, err := h.statusUC.Execute(c.Request.Context(), ticketusecases.SetTicketStatusCommand{
		TicketID: id,
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", result)
}

// AssignTicket handles POST /tickets/:id/assign
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "assignee_id is required")
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), ticketusecases.AssignTicketCommand{
		TicketID:   id,
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned", result)
}

// ChangePriority handles PATCH /tickets/:id/priority
func (h *TicketHandler) ChangePriority(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeTicketPriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "priority is required")
		return
	}

	result, err := h.priorityUC.Execute(c.Request.Context(), ticketusecases.ChangeTicketPriorityCommand{
		TicketID: id,
		Priority: req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket priority updated", result)
}

// Stats handles GET /tickets/stats
func (h *TicketHandler) Stats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context(), ticketusecases.TicketStatsQuery{
		ActorID: actorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
