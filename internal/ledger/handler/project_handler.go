package handler

import (
	"github.com/gestio-app/gestio/internal/ledger/service"
	"github.com/gin-gonic/gin"
)

// ProjectHandler 项目处理器
type ProjectHandler struct {
	svc *service.ProjectService
}

func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// List 项目列表
// GET /api/v1/projects?page=1&page_size=20
func (h *ProjectHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, pagination := pageSlice(h.svc.List(), page, pageSize)
	Success(c, ListResponse{Items: items, Pagination: pagination})
}

// Get 项目详情
// GET /api/v1/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.svc.Get(c.Param("id"))
	if err != nil {
		NotFound(c, "project not found")
		return
	}
	Success(c, project)
}

// Create 创建项目。sale类型且初始状态非quote时自动产生定金入账
// 和库存级联。
// POST /api/v1/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	project, err := h.svc.Create(&req)
	if err != nil {
		InternalError(c, "create project: "+err.Error())
		return
	}
	Created(c, project)
}

// Update 更新项目。进入completed时自动产生尾款入账。
// PUT /api/v1/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	project, err := h.svc.Update(c.Param("id"), &req)
	if err != nil {
		NotFound(c, "project not found")
		return
	}
	Success(c, project)
}

// Delete 删除项目并级联清理关联流水
// DELETE /api/v1/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	h.svc.Delete(c.Param("id"))
	Success(c, nil)
}
