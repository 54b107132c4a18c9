package service

import (
	"github.com/gestio-app/gestio/internal/ledger/entity"
	"github.com/gestio-app/gestio/internal/ledger/store"
)

// BOMService 在产品组件图上做成本解析和环检测
type BOMService struct {
	store *store.Store
}

func NewBOMService(st *store.Store) *BOMService {
	return &BOMService{store: st}
}

// ResolveCost 递归解析产品的真实单位成本。原材料直接取 CostPrice；
// 组合产品为各组件 ResolveCost * 数量 之和。产品不存在返回0。
// 每次调用带独立的已访问集，目录数据已损坏（带环）时也能终止。
func (s *BOMService) ResolveCost(productID string) float64 {
	return s.resolveCost(productID, make(map[string]bool))
}

func (s *BOMService) resolveCost(productID string, visited map[string]bool) float64 {
	if visited[productID] {
		return 0
	}
	visited[productID] = true

	p, ok := s.store.GetProduct(productID)
	if !ok {
		return 0
	}
	if p.Type == entity.ProductTypeRawMaterial {
		return p.CostPrice
	}

	var total float64
	for _, comp := range p.Components {
		total += s.resolveCost(comp.ProductID, visited) * comp.Quantity
	}
	return total
}

// WouldCreateCycle 判断把 componentID 加入 productID 的组件列表
// 是否会闭合一个环（含自引用）。从 componentID 出发做深度优先遍历，
// 只探索可达边，命中 productID 即为环。
func (s *BOMService) WouldCreateCycle(productID, componentID string) bool {
	if productID == componentID {
		return true
	}
	return s.reaches(componentID, productID, make(map[string]bool))
}

func (s *BOMService) reaches(fromID, targetID string, visited map[string]bool) bool {
	if visited[fromID] {
		return false
	}
	visited[fromID] = true

	p, ok := s.store.GetProduct(fromID)
	if !ok {
		return false
	}
	for _, comp := range p.Components {
		if comp.ProductID == targetID {
			return true
		}
		if s.reaches(comp.ProductID, targetID, visited) {
			return true
		}
	}
	return false
}

// ValidateComponents 产品创建/更新时的组件校验门。
// 任一组件会闭环则整体拒绝，目录保持不变。
func (s *BOMService) ValidateComponents(productID string, components []entity.ProductComponent) error {
	for _, comp := range components {
		if s.WouldCreateCycle(productID, comp.ProductID) {
			return ErrCircularReference
		}
	}
	return nil
}
