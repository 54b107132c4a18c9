// Package service 实现账本的领域规则：BOM成本解析、库存流水级联、
// 项目生命周期派生的财务流水，以及各实体的增删改查编排。
package service

import (
	"errors"

	"github.com/gestio-app/gestio/internal/ledger/store"
)

// 校验错误：同步拒绝，不产生任何部分变更
var (
	ErrCircularReference = errors.New("circular reference in product components")
	ErrNotFound          = errors.New("record not found")
)

// Services 服务集合
type Services struct {
	Client      *ClientService
	Product     *ProductService
	BOM         *BOMService
	Stock       *StockService
	Project     *ProjectService
	Transaction *TransactionService
	Dashboard   *DashboardService
}

// NewServices 创建服务集合
func NewServices(st *store.Store) *Services {
	bom := NewBOMService(st)
	stock := NewStockService(st)
	return &Services{
		Client:      NewClientService(st),
		Product:     NewProductService(st, bom),
		BOM:         bom,
		Stock:       stock,
		Project:     NewProjectService(st, stock),
		Transaction: NewTransactionService(st),
		Dashboard:   NewDashboardService(st),
	}
}
