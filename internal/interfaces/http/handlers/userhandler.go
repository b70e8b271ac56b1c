package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userusecases "campusdesk/internal/application/user/usecases"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type CreateUserRequest struct {
	Email             string `json:"email" binding:"required,email"`
	Name              string `json:"name" binding:"required"`
	Password          string `json:"password" binding:"required,min=8"`
	Role              string `json:"role" binding:"required"`
	SchoolIDs         []uint `json:"school_ids"`
	AssignedSchoolIDs []uint `json:"assigned_school_ids"`
}

type UpdateUserRequest struct {
	Email             *string `json:"email" binding:"omitempty,email"`
	Name              *string `json:"name"`
	Password          *string `json:"password" binding:"omitempty,min=8"`
	Role              *string `json:"role"`
	Status            *string `json:"status"`
	SchoolIDs         *[]uint `json:"school_ids"`
	AssignedSchoolIDs *[]uint `json:"assigned_school_ids"`
}

type UserHandler struct {
	createUC userusecases.CreateUserExecutor
	updateUC userusecases.UpdateUserExecutor
	deleteUC userusecases.DeleteUserExecutor
	getUC    userusecases.GetUserExecutor
	listUC   userusecases.ListUsersExecutor
	logger   logger.Interface
}

func NewUserHandler(
	createUC userusecases.CreateUserExecutor,
	updateUC userusecases.UpdateUserExecutor,
	deleteUC userusecases.DeleteUserExecutor,
	getUC userusecases.GetUserExecutor,
	listUC userusecases.ListUsersExecutor,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   log,
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), userusecases.CreateUserCommand{
		Email:             req.Email,
		Name:              req.Name,
		Password:          req.Password,
		Role:              req.Role,
		SchoolIDs:         req.SchoolIDs,
		AssignedSchoolIDs: req.AssignedSchoolIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), userusecases.GetUserQuery{UserID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), userusecases.ListUsersQuery{
		Role:     c.Query("role"),
		Status:   c.Query("status"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, p.Page, p.PageSize)
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update user", "user_id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := userusecases.UpdateUserCommand{
		UserID:   id,
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     req.Role,
		Status:   req.Status,
	}
	if req.SchoolIDs != nil || req.AssignedSchoolIDs != nil {
		cmd.SetSchools = true
		if req.SchoolIDs != nil {
			cmd.SchoolIDs = *req.SchoolIDs
		}
		if req.AssignedSchoolIDs != nil {
			cmd.AssignedSchoolIDs = *req.AssignedSchoolIDs
		}
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userusecases.DeleteUserCommand{
		UserID:  id,
		ActorID: actorID(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
