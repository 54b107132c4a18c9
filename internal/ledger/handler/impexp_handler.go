package handler

import (
	"bytes"
	"fmt"

	"github.com/gestio-app/gestio/internal/ledger/impexp"
	"github.com/gestio-app/gestio/internal/ledger/service"
	"github.com/gin-gonic/gin"
)

// ImpExpHandler CSV/XLSX 导入导出处理器
type ImpExpHandler struct {
	svc *service.Services
}

func NewImpExpHandler(svc *service.Services) *ImpExpHandler {
	return &ImpExpHandler{svc: svc}
}

// ExportCSV 按实体类型导出CSV
// GET /api/v1/export/:entity  (clients/products/projects/transactions)
func (h *ImpExpHandler) ExportCSV(c *gin.Context) {
	entityName := c.Param("entity")

	var buf bytes.Buffer
	var err error
	switch entityName {
	case "clients":
		err = impexp.ExportClients(&buf, h.svc.Client.List())
	case "products":
		err = impexp.ExportProducts(&buf, h.svc.Product.List())
	case "projects":
		err = impexp.ExportProjects(&buf, h.svc.Project.List())
	case "transactions":
		err = impexp.ExportTransactions(&buf, h.svc.Transaction.List())
	default:
		NotFound(c, "unknown entity: "+entityName)
		return
	}
	if err != nil {
		InternalError(c, "export failed: "+err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", entityName))
	c.Data(200, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportXLSX 导出整个账本为XLSX工作簿
// GET /api/v1/export.xlsx
func (h *ImpExpHandler) ExportXLSX(c *gin.Context) {
	var buf bytes.Buffer
	err := impexp.ExportWorkbook(&buf,
		h.svc.Client.List(),
		h.svc.Product.List(),
		h.svc.Project.List(),
		h.svc.Transaction.List(),
	)
	if err != nil {
		InternalError(c, "export failed: "+err.Error())
		return
	}

	c.Header("Content-Disposition", "attachment; filename=ledger.xlsx")
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ImportCSV 按实体类型导入CSV（请求体为CSV文本，首行表头）
// POST /api/v1/import/:entity
func (h *ImpExpHandler) ImportCSV(c *gin.Context) {
	entityName := c.Param("entity")

	var count int
	var err error
	switch entityName {
	case "clients":
		count, err = impexp.ImportClients(c.Request.Body, h.svc.Client)
	case "products":
		count, err = impexp.ImportProducts(c.Request.Body, h.svc.Product)
	case "projects":
		count, err = impexp.ImportProjects(c.Request.Body, h.svc.Project)
	case "transactions":
		count, err = impexp.ImportTransactions(c.Request.Body, h.svc.Transaction)
	default:
		NotFound(c, "unknown entity: "+entityName)
		return
	}
	if err != nil {
		InternalError(c, "import failed: "+err.Error())
		return
	}

	Success(c, gin.H{"imported": count})
}
