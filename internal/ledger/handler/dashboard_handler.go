package handler

import (
	"time"

	"github.com/gestio-app/gestio/internal/ledger/service"
	"github.com/gin-gonic/gin"
)

// DashboardHandler 看板处理器
type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary 看板汇总
// GET /api/v1/dashboard
func (h *DashboardHandler) Summary(c *gin.Context) {
	Success(c, h.svc.Summarize(time.Now()))
}
