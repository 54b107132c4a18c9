package service

import (
	"time"

	"github.com/gestio-app/gestio/internal/ledger/entity"
	"github.com/gestio-app/gestio/internal/ledger/store"
)

// ProductService 产品目录维护。组件列表的每次写入都要过环检测门。
type ProductService struct {
	store *store.Store
	bom   *BOMService
}

func NewProductService(st *store.Store, bom *BOMService) *ProductService {
	return &ProductService{store: st, bom: bom}
}

// ComponentInput BOM组件输入，单价快照由服务端解析
type ComponentInput struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
}

// CreateProductRequest 创建产品请求
type CreateProductRequest struct {
	Name         string           `json:"name" binding:"required"`
	Description  string           `json:"description"`
	Type         string           `json:"type" binding:"required,oneof=raw_material sub_assembly finished_good"`
	Unit         string           `json:"unit"`
	Components   []ComponentInput `json:"components"`
	CostPrice    float64          `json:"cost_price"`
	SalePrice    float64          `json:"sale_price"`
	CurrentStock float64          `json:"current_stock"`
	MinStock     float64          `json:"min_stock"`
}

// UpdateProductRequest 部分更新：给出的字段覆盖，缺省字段保留
type UpdateProductRequest struct {
	Name         *string           `json:"name"`
	Description  *string           `json:"description"`
	Type         *string           `json:"type" binding:"omitempty,oneof=raw_material sub_assembly finished_good"`
	Unit         *string           `json:"unit"`
	Components   *[]ComponentInput `json:"components"`
	CostPrice    *float64          `json:"cost_price"`
	SalePrice    *float64          `json:"sale_price"`
	CurrentStock *float64          `json:"current_stock"`
	MinStock     *float64          `json:"min_stock"`
	Active       *bool             `json:"active"`
}

// buildComponents 组件快照：名称与单位成本在加入BOM时定格
func (s *ProductService) buildComponents(inputs []ComponentInput) []entity.ProductComponent {
	comps := make([]entity.ProductComponent, 0, len(inputs))
	for _, in := range inputs {
		comp := entity.ProductComponent{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			UnitCost:  s.bom.ResolveCost(in.ProductID),
		}
		if p, ok := s.store.GetProduct(in.ProductID); ok {
			comp.ProductName = p.Name
		}
		comp.TotalCost = comp.UnitCost * comp.Quantity
		comps = append(comps, comp)
	}
	return comps
}

// Create 创建产品。组件列表过环检测门，违例时整体拒绝。
func (s *ProductService) Create(req *CreateProductRequest) (*entity.Product, error) {
	id := entity.NewID()
	components := s.buildComponents(req.Components)
	if err := s.bom.ValidateComponents(id, components); err != nil {
		return nil, err
	}

	unit := req.Unit
	if unit == "" {
		unit = "un"
	}

	now := time.Now()
	p := entity.Product{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		Type:         req.Type,
		Unit:         unit,
		Components:   components,
		CostPrice:    req.CostPrice,
		SalePrice:    req.SalePrice,
		CurrentStock: req.CurrentStock,
		MinStock:     req.MinStock,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.store.AddProduct(p)
	return &p, nil
}

// Update 部分更新产品。组件列表改动先过环检测门，
// 违例时拒绝且目录保持不变。
func (s *ProductService) Update(id string, req *UpdateProductRequest) (*entity.Product, error) {
	p, ok := s.store.GetProduct(id)
	if !ok {
		return nil, ErrNotFound
	}

	if req.Components != nil {
		components := s.buildComponents(*req.Components)
		if err := s.bom.ValidateComponents(id, components); err != nil {
			return nil, err
		}
		p.Components = components
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Type != nil {
		p.Type = *req.Type
	}
	if req.Unit != nil {
		p.Unit = *req.Unit
	}
	if req.CostPrice != nil {
		p.CostPrice = *req.CostPrice
	}
	if req.SalePrice != nil {
		p.SalePrice = *req.SalePrice
	}
	if req.CurrentStock != nil {
		p.CurrentStock = *req.CurrentStock
	}
	if req.MinStock != nil {
		p.MinStock = *req.MinStock
	}
	if req.Active != nil {
		p.Active = *req.Active
	}
	p.UpdatedAt = time.Now()

	s.store.PutProduct(p)
	return &p, nil
}

// Delete 删除产品；被其他产品BOM引用时返回 store.ErrProductInUse
func (s *ProductService) Delete(id string) error {
	return s.store.DeleteProduct(id)
}

func (s *ProductService) Get(id string) (*entity.Product, error) {
	p, ok := s.store.GetProduct(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// List 全部产品，最新在前
func (s *ProductService) List() []entity.Product {
	return s.store.Products()
}
