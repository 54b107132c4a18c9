package entity

import "time"

// Client 类型
const (
	ClientTypeIndividual   = "individual"
	ClientTypeOrganization = "organization"
)

// Address 客户地址
type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
}

// Client 客户（个人或企业）
type Client struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"` // individual/organization

	// 税号：个人用 national_id，企业用 tax_number
	NationalID string `json:"national_id,omitempty"`
	TaxNumber  string `json:"tax_number,omitempty"`

	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
	Notes   string  `json:"notes,omitempty"`
	Active  bool    `json:"active"`

	// 冗余统计，由外部维护，核心规则不重算
	TotalProjects int     `json:"total_projects"`
	TotalValue    float64 `json:"total_value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Client) GetID() string { return c.ID }
