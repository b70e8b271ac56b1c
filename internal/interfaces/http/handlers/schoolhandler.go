package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	schoolusecases "campusdesk/internal/application/school/usecases"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type CreateSchoolRequest struct {
	Name         string `json:"name" binding:"required"`
	Code         string `json:"code" binding:"required"`
	Address      string `json:"address"`
	Region       string `json:"region"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
}

type UpdateSchoolRequest struct {
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Region       string  `json:"region"`
	ContactName  string  `json:"contact_name"`
	ContactEmail string  `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string  `json:"contact_phone"`
	Status       *string `json:"status"`
}

type SchoolHandler struct {
	createUC schoolusecases.CreateSchoolExecutor
	updateUC schoolusecases.UpdateSchoolExecutor
	deleteUC schoolusecases.DeleteSchoolExecutor
	getUC    schoolusecases.GetSchoolExecutor
	listUC   schoolusecases.ListSchoolsExecutor
	logger   logger.Interface
}

func NewSchoolHandler(
	createUC schoolusecases.CreateSchoolExecutor,
	updateUC schoolusecases.UpdateSchoolExecutor,
	deleteUC schoolusecases.DeleteSchoolExecutor,
	getUC schoolusecases.GetSchoolExecutor,
	listUC schoolusecases.ListSchoolsExecutor,
	log logger.Interface,
) *SchoolHandler {
	return &SchoolHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   log,
	}
}

// CreateSchool handles POST /schools
func (h *SchoolHandler) CreateSchool(c *gin.Context) {
	var req CreateSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create school", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), schoolusecases.CreateSchoolCommand{
		Name:         req.Name,
		Code:         req.Code,
		Address:      req.Address,
		Region:       req.Region,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "School created successfully")
}

// GetSchool handles GET /schools/:id
func (h *SchoolHandler) GetSchool(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "school")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), schoolusecases.GetSchoolQuery{
		SchoolID: id,
		ActorID:  actorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListSchools handles GET /schools
func (h *SchoolHandler) ListSchools(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), schoolusecases.ListSchoolsQuery{
		ActorID:  actorID(c),
		Region:   c.Query("region"),
		Status:   c.Query("status"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Schools, result.Total, p.Page, p.PageSize)
}

// UpdateSchool handles PUT /schools/:id
func (h *SchoolHandler) UpdateSchool(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "school")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update school", "school_id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), schoolusecases.UpdateSchoolCommand{
		SchoolID:     id,
		Name:         req.Name,
		Address:      req.Address,
		Region:       req.Region,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Status:       req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "School updated successfully", result)
}

// DeleteSchool handles DELETE /schools/:id
func (h *SchoolHandler) DeleteSchool(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "school")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), schoolusecases.DeleteSchoolCommand{SchoolID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
