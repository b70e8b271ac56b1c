package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	productusecases "campusdesk/internal/application/product/usecases"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type CreateProductRequest struct {
	Category     string     `json:"category" binding:"required"`
	Manufacturer string     `json:"manufacturer"`
	Model        string     `json:"model"`
	SerialNumber string     `json:"serial_number" binding:"required"`
	PurchaseDate *time.Time `json:"purchase_date"`
	WarrantyEnd  *time.Time `json:"warranty_end"`
}

type UpdateProductRequest struct {
	Category     string     `json:"category"`
	Manufacturer string     `json:"manufacturer"`
	Model        string     `json:"model"`
	PurchaseDate *time.Time `json:"purchase_date"`
	WarrantyEnd  *time.Time `json:"warranty_end"`
	Retire       bool       `json:"retire"`
}

type ProductHandler struct {
	createUC productusecases.CreateProductExecutor
	updateUC productusecases.UpdateProductExecutor
	deleteUC productusecases.DeleteProductExecutor
	getUC    productusecases.GetProductExecutor
	listUC   productusecases.ListProductsExecutor
	logger   logger.Interface
}

func NewProductHandler(
	createUC productusecases.CreateProductExecutor,
	updateUC productusecases.UpdateProductExecutor,
	deleteUC productusecases.DeleteProductExecutor,
	getUC productusecases.GetProductExecutor,
	listUC productusecases.ListProductsExecutor,
	log logger.Interface,
) *ProductHandler {
	return &ProductHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   log,
	}
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create product", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), productusecases.CreateProductCommand{
		Category:     req.Category,
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
		PurchaseDate: req.PurchaseDate,
		WarrantyEnd:  req.WarrantyEnd,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Product created successfully")
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), productusecases.GetProductQuery{ProductID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), productusecases.ListProductsQuery{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Products, result.Total, p.Page, p.PageSize)
}

// UpdateProduct handles PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update product", "product_id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), productusecases.UpdateProductCommand{
		ProductID:    id,
		Category:     req.Category,
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
		PurchaseDate: req.PurchaseDate,
		WarrantyEnd:  req.WarrantyEnd,
		Retire:       req.Retire,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product updated successfully", result)
}

// DeleteProduct handles DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), productusecases.DeleteProductCommand{ProductID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
