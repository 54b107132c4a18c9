package entity

import "time"

// Product 类型
const (
	ProductTypeRawMaterial  = "raw_material"
	ProductTypeSubAssembly  = "sub_assembly"
	ProductTypeFinishedGood = "finished_good"
)

// ProductComponent BOM行项：组件引用 + 数量 + 单价快照
type ProductComponent struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	UnitCost    float64 `json:"unit_cost"`  // 加入BOM时的成本快照
	TotalCost   float64 `json:"total_cost"` // UnitCost * Quantity
}

// Product 产品目录项。Components 在产品ID上构成有向图，必须无环。
// CostPrice 仅对 raw_material 是权威数据；组合产品的成本由BOM解析器推导。
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"` // raw_material/sub_assembly/finished_good
	Unit        string `json:"unit"`

	Components []ProductComponent `json:"components,omitempty"`

	CostPrice float64 `json:"cost_price"`
	SalePrice float64 `json:"sale_price"`

	CurrentStock float64 `json:"current_stock"`
	MinStock     float64 `json:"min_stock"`

	Active bool `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Product) GetID() string { return p.ID }

// IsComposite 组合产品：非原材料且带组件
func (p Product) IsComposite() bool {
	return p.Type != ProductTypeRawMaterial && len(p.Components) > 0
}
