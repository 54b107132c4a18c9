package handler

import (
	"github.com/gestio-app/gestio/internal/ledger/service"
	"github.com/gin-gonic/gin"
)

// TransactionHandler 财务流水处理器
type TransactionHandler struct {
	svc *service.TransactionService
}

func NewTransactionHandler(svc *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// List 流水列表
// GET /api/v1/transactions?page=1&page_size=20
func (h *TransactionHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, pagination := pageSlice(h.svc.List(), page, pageSize)
	Success(c, ListResponse{Items: items, Pagination: pagination})
}

// Get 流水详情
// GET /api/v1/transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	tx, err := h.svc.Get(c.Param("id"))
	if err != nil {
		NotFound(c, "transaction not found")
		return
	}
	Success(c, tx)
}

// Create 创建流水
// POST /api/v1/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	var req service.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	tx, err := h.svc.Create(&req)
	if err != nil {
		InternalError(c, "create transaction: "+err.Error())
		return
	}
	Created(c, tx)
}

// Update 更新流水
// PUT /api/v1/transactions/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	var req service.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	tx, err := h.svc.Update(c.Param("id"), &req)
	if err != nil {
		NotFound(c, "transaction not found")
		return
	}
	Success(c, tx)
}

// Delete 删除流水
// DELETE /api/v1/transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	h.svc.Delete(c.Param("id"))
	Success(c, nil)
}
