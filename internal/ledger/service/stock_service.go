package service

import (
	"time"

	"github.com/gestio-app/gestio/internal/ledger/entity"
	"github.com/gestio-app/gestio/internal/ledger/store"
)

// StockService 库存账本：落流水并同步产品库存计数，
// 以及把组合产品销售级联为组件消耗。
type StockService struct {
	store *store.Store
}

func NewStockService(st *store.Store) *StockService {
	return &StockService{store: st}
}

// NewMovementRequest 手工录入库存流水
type NewMovementRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Type      string  `json:"type" binding:"required,oneof=in out"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price"`
	Reason    string  `json:"reason"`
}

// Create 录入一条手工流水并应用到库存
func (s *StockService) Create(req *NewMovementRequest) (*entity.StockMovement, error) {
	p, ok := s.store.GetProduct(req.ProductID)
	if !ok {
		return nil, ErrNotFound
	}

	unitPrice := req.UnitPrice
	if unitPrice == 0 {
		unitPrice = p.CostPrice
	}

	m := entity.StockMovement{
		ID:          entity.NewID(),
		ProductID:   p.ID,
		ProductName: p.Name,
		Type:        req.Type,
		Quantity:    req.Quantity,
		UnitPrice:   unitPrice,
		TotalValue:  unitPrice * req.Quantity,
		Reason:      req.Reason,
		Date:        time.Now(),
		CreatedAt:   time.Now(),
	}
	s.Apply(m)
	return &m, nil
}

// Apply 追加流水并按符号更新产品库存（in加、out减）。
// 不设下限，库存可以为负（欠交跟踪）。产品不存在时只落流水。
// 流水追加和计数更新在存储层同一把锁内完成。
func (s *StockService) Apply(m entity.StockMovement) {
	s.store.ApplyMovement(m)
}

// CascadeProjectConsumption 把项目行项的销售级联为库存出库。
// 每个行项先落售出产品本身的出库流水，组合产品再按
// 组件数量×行项数量逐组件落出库流水。级联只展开一层：
// 组件自身的子组件不再继续展开。
func (s *StockService) CascadeProjectConsumption(projectID string, items []entity.ProjectProduct) {
	now := time.Now()
	for _, item := range items {
		s.Apply(entity.StockMovement{
			ID:          entity.NewID(),
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Type:        entity.MovementTypeOut,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalValue:  item.UnitPrice * item.Quantity,
			ProjectID:   projectID,
			Reason:      "project consumption",
			Date:        now,
			CreatedAt:   now,
		})

		p, ok := s.store.GetProduct(item.ProductID)
		if !ok || !p.IsComposite() {
			continue
		}
		for _, comp := range p.Components {
			qty := comp.Quantity * item.Quantity
			s.Apply(entity.StockMovement{
				ID:          entity.NewID(),
				ProductID:   comp.ProductID,
				ProductName: comp.ProductName,
				Type:        entity.MovementTypeOut,
				Quantity:    qty,
				UnitPrice:   comp.UnitCost,
				TotalValue:  comp.UnitCost * qty,
				ProjectID:   projectID,
				Reason:      "component consumption",
				Date:        now,
				CreatedAt:   now,
			})
		}
	}
}

// List 全部库存流水，最新在前
func (s *StockService) List() []entity.StockMovement {
	return s.store.Movements()
}
