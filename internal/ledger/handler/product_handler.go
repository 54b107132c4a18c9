package handler

import (
	"errors"

	"github.com/gestio-app/gestio/internal/ledger/service"
	"github.com/gestio-app/gestio/internal/ledger/store"
	"github.com/gin-gonic/gin"
)

// ProductHandler 产品目录处理器
type ProductHandler struct {
	svc *service.ProductService
	bom *service.BOMService
}

func NewProductHandler(svc *service.ProductService, bom *service.BOMService) *ProductHandler {
	return &ProductHandler{svc: svc, bom: bom}
}

// List 产品列表
// GET /api/v1/products?page=1&page_size=20
func (h *ProductHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, pagination := pageSlice(h.svc.List(), page, pageSize)
	Success(c, ListResponse{Items: items, Pagination: pagination})
}

// Get 产品详情
// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.svc.Get(c.Param("id"))
	if err != nil {
		NotFound(c, "product not found")
		return
	}
	Success(c, product)
}

// ResolveCost BOM解析后的真实单位成本
// GET /api/v1/products/:id/cost
func (h *ProductHandler) ResolveCost(c *gin.Context) {
	Success(c, gin.H{"cost": h.bom.ResolveCost(c.Param("id"))})
}

// Create 创建产品
// POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	product, err := h.svc.Create(&req)
	if err != nil {
		if errors.Is(err, service.ErrCircularReference) {
			BadRequest(c, "circular reference in components")
			return
		}
		InternalError(c, "create product: "+err.Error())
		return
	}
	Created(c, product)
}

// Update 更新产品
// PUT /api/v1/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	product, err := h.svc.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrCircularReference) {
			BadRequest(c, "circular reference in components")
			return
		}
		NotFound(c, "product not found")
		return
	}
	Success(c, product)
}

// Delete 删除产品，被BOM引用时拒绝
// DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrProductInUse) {
			Conflict(c, "product is used as a component and cannot be deleted")
			return
		}
		InternalError(c, "delete product: "+err.Error())
		return
	}
	Success(c, nil)
}
