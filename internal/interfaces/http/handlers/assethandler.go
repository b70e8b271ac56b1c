package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	assetusecases "campusdesk/internal/application/asset/usecases"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type AssignAssetRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	SchoolID  uint   `json:"school_id" binding:"required"`
	Condition string `json:"condition"`
	Location  string `json:"location"`
}

type UpdateAssetRequest struct {
	Status    string `json:"status" binding:"required"`
	Condition string `json:"condition"`
	Location  string `json:"location"`
}

type AssetHandler struct {
	assignUC   assetusecases.AssignAssetExecutor
	deassignUC assetusecases.DeassignAssetExecutor
	updateUC   assetusecases.UpdateAssetExecutor
	getUC      assetusecases.GetAssetExecutor
	listUC     assetusecases.ListAssetsExecutor
	logger     logger.Interface
}

func NewAssetHandler(
	assignUC assetusecases.AssignAssetExecutor,
	deassignUC assetusecases.DeassignAssetExecutor,
	updateUC assetusecases.UpdateAssetExecutor,
	getUC assetusecases.GetAssetExecutor,
	listUC assetusecases.ListAssetsExecutor,
	log logger.Interface,
) *AssetHandler {
	return &AssetHandler{
		assignUC:   assignUC,
		deassignUC: deassignUC,
		updateUC:   updateUC,
		getUC:      getUC,
		listUC:     listUC,
		logger:     log,
	}
}

// AssignAsset handles POST /assets
func (h *AssetHandler) AssignAsset(c *gin.Context) {
	var req AssignAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign asset", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), assetusecases.AssignAssetCommand{
		ProductID: req.ProductID,
		SchoolID:  req.SchoolID,
		Condition: req.Condition,
		Location:  req.Location,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Asset assigned successfully")
}

// GetAsset handles GET /assets/:id
func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), assetusecases.GetAssetQuery{
		AssetID: id,
		ActorID: actorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListAssets handles GET /assets
func (h *AssetHandler) ListAssets(c *gin.Context) {
	p := utils.ParsePagination(c)

	query := assetusecases.ListAssetsQuery{
		ActorID:  actorID(c),
		Status:   c.Query("status"),
		Page:     p.Page,
		PageSize: p.PageSize,
	}
	if schoolID, err := utils.ParseIDQuery(c, "school_id"); err == nil {
		query.SchoolID = schoolID
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Assets, result.Total, p.Page, p.PageSize)
}

// UpdateAsset handles PUT /assets/:id
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update asset", "asset_id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), assetusecases.UpdateAssetCommand{
		AssetID:   id,
		Status:    req.Status,
		Condition: req.Condition,
		Location:  req.Location,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Asset updated successfully", result)
}

// DeassignAsset handles POST /assets/:id/deassign and DELETE /assets/:id.
// Both remove the deployment and return the product to the available pool.
func (h *AssetHandler) DeassignAsset(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deassignUC.Execute(c.Request.Context(), assetusecases.DeassignAssetCommand{AssetID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
