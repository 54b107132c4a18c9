package service

import (
	"time"

	"github.com/gestio-app/gestio/internal/ledger/entity"
	"github.com/gestio-app/gestio/internal/ledger/store"
)

// ClientService 客户增删改查
type ClientService struct {
	store *store.Store
}

func NewClientService(st *store.Store) *ClientService {
	return &ClientService{store: st}
}

// CreateClientRequest 创建客户请求
type CreateClientRequest struct {
	Name       string         `json:"name" binding:"required"`
	Type       string         `json:"type" binding:"required,oneof=individual organization"`
	NationalID string         `json:"national_id"`
	TaxNumber  string         `json:"tax_number"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Address    entity.Address `json:"address"`
	Notes      string         `json:"notes"`
}

// UpdateClientRequest 部分更新：给出的字段覆盖，缺省字段保留
type UpdateClientRequest struct {
	Name       *string         `json:"name"`
	Type       *string         `json:"type" binding:"omitempty,oneof=individual organization"`
	NationalID *string         `json:"national_id"`
	TaxNumber  *string         `json:"tax_number"`
	Email      *string         `json:"email"`
	Phone      *string         `json:"phone"`
	Address    *entity.Address `json:"address"`
	Notes      *string         `json:"notes"`
	Active     *bool           `json:"active"`
}

func (s *ClientService) Create(req *CreateClientRequest) (*entity.Client, error) {
	now := time.Now()
	c := entity.Client{
		ID:         entity.NewID(),
		Name:       req.Name,
		Type:       req.Type,
		NationalID: req.NationalID,
		TaxNumber:  req.TaxNumber,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		Notes:      req.Notes,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.store.AddClient(c)
	return &c, nil
}

func (s *ClientService) Update(id string, req *UpdateClientRequest) (*entity.Client, error) {
	c, ok := s.store.GetClient(id)
	if !ok {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Type != nil {
		c.Type = *req.Type
	}
	if req.NationalID != nil {
		c.NationalID = *req.NationalID
	}
	if req.TaxNumber != nil {
		c.TaxNumber = *req.TaxNumber
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}
	if req.Active != nil {
		c.Active = *req.Active
	}
	c.UpdatedAt = time.Now()

	s.store.PutClient(c)
	return &c, nil
}

// Delete ID不存在时为no-op
func (s *ClientService) Delete(id string) {
	s.store.DeleteClient(id)
}

func (s *ClientService) Get(id string) (*entity.Client, error) {
	c, ok := s.store.GetClient(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

// List 全部客户，最新在前
func (s *ClientService) List() []entity.Client {
	return s.store.Clients()
}
