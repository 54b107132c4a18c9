package handler

import (
	"github.com/gestio-app/gestio/internal/ledger/service"
	"github.com/gin-gonic/gin"
)

// StockHandler 库存流水处理器
type StockHandler struct {
	svc *service.StockService
}

func NewStockHandler(svc *service.StockService) *StockHandler {
	return &StockHandler{svc: svc}
}

// List 库存流水列表
// GET /api/v1/stock/movements?page=1&page_size=20
func (h *StockHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, pagination := pageSlice(h.svc.List(), page, pageSize)
	Success(c, ListResponse{Items: items, Pagination: pagination})
}

// Create 手工录入库存流水（盘点、采购入库等）
// POST /api/v1/stock/movements
func (h *StockHandler) Create(c *gin.Context) {
	var req service.NewMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	movement, err := h.svc.Create(&req)
	if err != nil {
		NotFound(c, "product not found")
		return
	}
	Created(c, movement)
}
