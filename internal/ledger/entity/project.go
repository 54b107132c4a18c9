package entity

import "time"

// Project 状态（quote → approved → in_production → completed → delivered）
const (
	ProjectStatusQuote        = "quote"
	ProjectStatusApproved     = "approved"
	ProjectStatusInProduction = "in_production"
	ProjectStatusCompleted    = "completed"
	ProjectStatusDelivered    = "delivered"
)

// Project 类型：仅 sale 触发自动财务流水
const (
	ProjectTypeQuote = "quote"
	ProjectTypeSale  = "sale"
)

// ProjectProduct 项目产品行项，单价是加入项目时的快照
type ProjectProduct struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Project 生产/销售项目
type Project struct {
	ID     string `json:"id"`
	Number int    `json:"number"` // 严格递增，创建时分配，删除后不复用

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	ClientID   string `json:"client_id,omitempty"`
	ClientName string `json:"client_name,omitempty"`

	Type   string `json:"type"`   // quote/sale
	Status string `json:"status"` // quote/approved/in_production/completed/delivered

	Budget   float64          `json:"budget"`
	Products []ProjectProduct `json:"products,omitempty"`

	StartDate    *time.Time `json:"start_date,omitempty"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	PaymentTerms string     `json:"payment_terms,omitempty"`
	TaxExempt    bool       `json:"tax_exempt"`
	Notes        string     `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Project) GetID() string { return p.ID }
