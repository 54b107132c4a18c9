package service

import (
	"time"

	"github.com/gestio-app/gestio/internal/ledger/entity"
	"github.com/gestio-app/gestio/internal/ledger/store"
)

// ProjectService 项目编排：编号分配、生命周期副作用的执行、级联删除
type ProjectService struct {
	store *store.Store
	stock *StockService
}

func NewProjectService(st *store.Store, stock *StockService) *ProjectService {
	return &ProjectService{store: st, stock: stock}
}

// ProjectProductInput 创建/更新时的产品行项
type ProjectProductInput struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price"`
}

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	Title        string                `json:"title" binding:"required"`
	Description  string                `json:"description"`
	ClientID     string                `json:"client_id"`
	Type         string                `json:"type" binding:"required,oneof=quote sale"`
	Status       string                `json:"status" binding:"omitempty,oneof=quote approved in_production completed delivered"`
	Budget       float64               `json:"budget"`
	Products     []ProjectProductInput `json:"products"`
	StartDate    *time.Time            `json:"start_date"`
	DeliveryDate *time.Time            `json:"delivery_date"`
	PaymentTerms string                `json:"payment_terms"`
	TaxExempt    bool                  `json:"tax_exempt"`
	Notes        string                `json:"notes"`
}

// UpdateProjectRequest 部分更新：给出的字段覆盖，缺省字段保留
type UpdateProjectRequest struct {
	Title        *string                `json:"title"`
	Description  *string                `json:"description"`
	ClientID     *string                `json:"client_id"`
	Status       *string                `json:"status" binding:"omitempty,oneof=quote approved in_production completed delivered"`
	Budget       *float64               `json:"budget"`
	Products     *[]ProjectProductInput `json:"products"`
	StartDate    *time.Time             `json:"start_date"`
	DeliveryDate *time.Time             `json:"delivery_date"`
	PaymentTerms *string                `json:"payment_terms"`
	TaxExempt    *bool                  `json:"tax_exempt"`
	Notes        *string                `json:"notes"`
}

// buildLineItems 行项快照：名称、单价在加入项目时定格
func (s *ProjectService) buildLineItems(inputs []ProjectProductInput) []entity.ProjectProduct {
	items := make([]entity.ProjectProduct, 0, len(inputs))
	for _, in := range inputs {
		item := entity.ProjectProduct{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
		}
		if p, ok := s.store.GetProduct(in.ProductID); ok {
			item.ProductName = p.Name
			if item.UnitPrice == 0 {
				item.UnitPrice = p.SalePrice
			}
		}
		item.Total = item.UnitPrice * item.Quantity
		items = append(items, item)
	}
	return items
}

// Create 创建项目。编号从1开始单调递增，删除后不复用。
// sale 类型且初始状态非 quote 时产生定金入账和库存级联。
func (s *ProjectService) Create(req *CreateProjectRequest) (*entity.Project, error) {
	now := time.Now()

	status := req.Status
	if status == "" {
		status = entity.ProjectStatusQuote
	}

	p := entity.Project{
		ID:           entity.NewID(),
		Number:       s.store.NextProjectNumber(),
		Title:        req.Title,
		Description:  req.Description,
		ClientID:     req.ClientID,
		Type:         req.Type,
		Status:       status,
		Budget:       req.Budget,
		Products:     s.buildLineItems(req.Products),
		StartDate:    req.StartDate,
		DeliveryDate: req.DeliveryDate,
		PaymentTerms: req.PaymentTerms,
		TaxExempt:    req.TaxExempt,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if c, ok := s.store.GetClient(req.ClientID); ok {
		p.ClientName = c.Name
	}

	s.store.AddProject(p)
	s.applyEffects(CreationEffects(p, now))
	return &p, nil
}

// Update 部分更新项目；进入 completed 时产生尾款入账（至多一次）
func (s *ProjectService) Update(id string, req *UpdateProjectRequest) (*entity.Project, error) {
	prev, ok := s.store.GetProject(id)
	if !ok {
		return nil, ErrNotFound
	}

	next := prev
	if req.Title != nil {
		next.Title = *req.Title
	}
	if req.Description != nil {
		next.Description = *req.Description
	}
	if req.ClientID != nil {
		next.ClientID = *req.ClientID
		next.ClientName = ""
		if c, ok := s.store.GetClient(*req.ClientID); ok {
			next.ClientName = c.Name
		}
	}
	if req.Status != nil {
		next.Status = *req.Status
	}
	if req.Budget != nil {
		next.Budget = *req.Budget
	}
	if req.Products != nil {
		next.Products = s.buildLineItems(*req.Products)
	}
	if req.StartDate != nil {
		next.StartDate = req.StartDate
	}
	if req.DeliveryDate != nil {
		next.DeliveryDate = req.DeliveryDate
	}
	if req.PaymentTerms != nil {
		next.PaymentTerms = *req.PaymentTerms
	}
	if req.TaxExempt != nil {
		next.TaxExempt = *req.TaxExempt
	}
	if req.Notes != nil {
		next.Notes = *req.Notes
	}
	next.UpdatedAt = time.Now()

	s.store.PutProject(next)
	s.applyEffects(TransitionEffects(prev, next, next.UpdatedAt))
	return &next, nil
}

// Delete 删除项目并级联清理关联的财务/库存流水；ID不存在为no-op
func (s *ProjectService) Delete(id string) {
	s.store.DeleteProject(id)
}

func (s *ProjectService) Get(id string) (*entity.Project, error) {
	p, ok := s.store.GetProject(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// List 全部项目，最新在前
func (s *ProjectService) List() []entity.Project {
	return s.store.Projects()
}

// applyEffects 顺序执行生命周期副作用。流水的ID和创建时间在此分配。
func (s *ProjectService) applyEffects(effects []Effect) {
	for _, e := range effects {
		switch eff := e.(type) {
		case EmitTransaction:
			tx := eff.Transaction
			tx.ID = entity.NewID()
			tx.CreatedAt = time.Now()
			s.store.AddTransaction(tx)
		case EmitStockCascade:
			s.stock.CascadeProjectConsumption(eff.ProjectID, eff.Items)
		}
	}
}
