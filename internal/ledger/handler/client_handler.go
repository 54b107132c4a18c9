package handler

import (
	"github.com/gestio-app/gestio/internal/ledger/service"
	"github.com/gin-gonic/gin"
)

// ClientHandler 客户处理器
type ClientHandler struct {
	svc *service.ClientService
}

func NewClientHandler(svc *service.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// List 客户列表
// GET /api/v1/clients?page=1&page_size=20
func (h *ClientHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, pagination := pageSlice(h.svc.List(), page, pageSize)
	Success(c, ListResponse{Items: items, Pagination: pagination})
}

// Get 客户详情
// GET /api/v1/clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.svc.Get(c.Param("id"))
	if err != nil {
		NotFound(c, "client not found")
		return
	}
	Success(c, client)
}

// Create 创建客户
// POST /api/v1/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req service.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	client, err := h.svc.Create(&req)
	if err != nil {
		InternalError(c, "create client: "+err.Error())
		return
	}
	Created(c, client)
}

// Update 更新客户
// PUT /api/v1/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	var req service.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	client, err := h.svc.Update(c.Param("id"), &req)
	if err != nil {
		NotFound(c, "client not found")
		return
	}
	Success(c, client)
}

// Delete 删除客户
// DELETE /api/v1/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	h.svc.Delete(c.Param("id"))
	Success(c, nil)
}
