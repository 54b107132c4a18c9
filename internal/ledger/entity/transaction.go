package entity

import "time"

// Transaction 类型
const (
	TransactionTypeInflow  = "inflow"
	TransactionTypeOutflow = "outflow"
)

// Transaction 分类
const (
	TransactionCategoryDeposit      = "deposit"
	TransactionCategoryFinalPayment = "final_payment"
)

// Transaction 财务流水
type Transaction struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Type        string    `json:"type"` // inflow/outflow
	Category    string    `json:"category,omitempty"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`

	// 关联项目（可选），标题为展示用快照
	ProjectID    string `json:"project_id,omitempty"`
	ProjectTitle string `json:"project_title,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (t Transaction) GetID() string { return t.ID }
