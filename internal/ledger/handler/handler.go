// Package handler 账本的HTTP接入层
package handler

import (
	"strconv"

	"github.com/gestio-app/gestio/internal/ledger/service"
	"github.com/gin-gonic/gin"
)

// Handlers 处理器集合
type Handlers struct {
	Client      *ClientHandler
	Product     *ProductHandler
	Project     *ProjectHandler
	Transaction *TransactionHandler
	Stock       *StockHandler
	Dashboard   *DashboardHandler
	ImpExp      *ImpExpHandler
}

// NewHandlers 创建处理器集合
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Client:      NewClientHandler(svc.Client),
		Product:     NewProductHandler(svc.Product, svc.BOM),
		Project:     NewProjectHandler(svc.Project),
		Transaction: NewTransactionHandler(svc.Transaction),
		Stock:       NewStockHandler(svc.Stock),
		Dashboard:   NewDashboardHandler(svc.Dashboard),
		ImpExp:      NewImpExpHandler(svc),
	}
}

// RegisterRoutes 注册全部路由
func (h *Handlers) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/clients", h.Client.List)
	api.POST("/clients", h.Client.Create)
	api.GET("/clients/:id", h.Client.Get)
	api.PUT("/clients/:id", h.Client.Update)
	api.DELETE("/clients/:id", h.Client.Delete)

	api.GET("/products", h.Product.List)
	api.POST("/products", h.Product.Create)
	api.GET("/products/:id", h.Product.Get)
	api.GET("/products/:id/cost", h.Product.ResolveCost)
	api.PUT("/products/:id", h.Product.Update)
	api.DELETE("/products/:id", h.Product.Delete)

	api.GET("/projects", h.Project.List)
	api.POST("/projects", h.Project.Create)
	api.GET("/projects/:id", h.Project.Get)
	api.PUT("/projects/:id", h.Project.Update)
	api.DELETE("/projects/:id", h.Project.Delete)

	api.GET("/transactions", h.Transaction.List)
	api.POST("/transactions", h.Transaction.Create)
	api.GET("/transactions/:id", h.Transaction.Get)
	api.PUT("/transactions/:id", h.Transaction.Update)
	api.DELETE("/transactions/:id", h.Transaction.Delete)

	api.GET("/stock/movements", h.Stock.List)
	api.POST("/stock/movements", h.Stock.Create)

	api.GET("/dashboard", h.Dashboard.Summary)

	api.GET("/export/:entity", h.ImpExp.ExportCSV)
	api.GET("/export.xlsx", h.ImpExp.ExportXLSX)
	api.POST("/import/:entity", h.ImpExp.ImportCSV)
}

// Response 通用响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse 列表响应结构
type ListResponse struct {
	Items      interface{} `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

// Pagination 分页信息
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, 40900, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// GetPagination 解析分页参数
func GetPagination(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v
		}
	}
	return page, pageSize
}

// pageSlice 对内存列表做切片分页
func pageSlice[T any](items []T, page, pageSize int) ([]T, *Pagination) {
	total := len(items)
	totalPages := total / pageSize
	if total%pageSize > 0 {
		totalPages++
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return items[start:end], &Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
