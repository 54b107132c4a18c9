package service

import (
	"time"

	"github.com/gestio-app/gestio/internal/ledger/entity"
	"github.com/gestio-app/gestio/internal/ledger/store"
)

// TransactionService 手工财务流水的增删改查。
// 项目派生的自动流水由 ProjectService 通过生命周期副作用落库。
type TransactionService struct {
	store *store.Store
}

func NewTransactionService(st *store.Store) *TransactionService {
	return &TransactionService{store: st}
}

// CreateTransactionRequest 创建流水请求
type CreateTransactionRequest struct {
	Description string     `json:"description" binding:"required"`
	Type        string     `json:"type" binding:"required,oneof=inflow outflow"`
	Category    string     `json:"category"`
	Amount      float64    `json:"amount" binding:"required"`
	Date        *time.Time `json:"date"`
	ProjectID   string     `json:"project_id"`
}

// UpdateTransactionRequest 部分更新：给出的字段覆盖，缺省字段保留
type UpdateTransactionRequest struct {
	Description *string    `json:"description"`
	Type        *string    `json:"type" binding:"omitempty,oneof=inflow outflow"`
	Category    *string    `json:"category"`
	Amount      *float64   `json:"amount"`
	Date        *time.Time `json:"date"`
	ProjectID   *string    `json:"project_id"`
}

func (s *TransactionService) Create(req *CreateTransactionRequest) (*entity.Transaction, error) {
	now := time.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	t := entity.Transaction{
		ID:          entity.NewID(),
		Description: req.Description,
		Type:        req.Type,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        date,
		ProjectID:   req.ProjectID,
		CreatedAt:   now,
	}
	if p, ok := s.store.GetProject(req.ProjectID); ok {
		t.ProjectTitle = p.Title
	}

	s.store.AddTransaction(t)
	return &t, nil
}

func (s *TransactionService) Update(id string, req *UpdateTransactionRequest) (*entity.Transaction, error) {
	t, ok := s.store.GetTransaction(id)
	if !ok {
		return nil, ErrNotFound
	}

	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Type != nil {
		t.Type = *req.Type
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	if req.Amount != nil {
		t.Amount = *req.Amount
	}
	if req.Date != nil {
		t.Date = *req.Date
	}
	if req.ProjectID != nil {
		t.ProjectID = *req.ProjectID
		t.ProjectTitle = ""
		if p, ok := s.store.GetProject(*req.ProjectID); ok {
			t.ProjectTitle = p.Title
		}
	}

	s.store.PutTransaction(t)
	return &t, nil
}

// Delete ID不存在时为no-op
func (s *TransactionService) Delete(id string) {
	s.store.DeleteTransaction(id)
}

func (s *TransactionService) Get(id string) (*entity.Transaction, error) {
	t, ok := s.store.GetTransaction(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

// List 全部流水，最新在前
func (s *TransactionService) List() []entity.Transaction {
	return s.store.Transactions()
}
