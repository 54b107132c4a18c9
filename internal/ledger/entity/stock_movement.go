package entity

import "time"

// StockMovement 类型
const (
	MovementTypeIn  = "in"
	MovementTypeOut = "out"
)

// StockMovement 库存流水。in 增加产品库存，out 减少。
type StockMovement struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Type        string `json:"type"` // in/out

	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalValue float64 `json:"total_value"`

	// 关联项目（可选）
	ProjectID string `json:"project_id,omitempty"`

	Reason string    `json:"reason,omitempty"`
	Date   time.Time `json:"date"`

	CreatedAt time.Time `json:"created_at"`
}

func (m StockMovement) GetID() string { return m.ID }
