package service

import (
	"sort"
	"time"

	"github.com/gestio-app/gestio/internal/ledger/entity"
	"github.com/gestio-app/gestio/internal/ledger/store"
)

// DashboardService 只读聚合看板
type DashboardService struct {
	store *store.Store
}

func NewDashboardService(st *store.Store) *DashboardService {
	return &DashboardService{store: st}
}

// ActivityItem 动态流条目
type ActivityItem struct {
	Kind      string    `json:"kind"` // project/transaction
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary 看板汇总
type Summary struct {
	TotalClients      int            `json:"total_clients"`
	OpenProjects      int            `json:"open_projects"`      // approved + in_production
	MonthInflow       float64        `json:"month_inflow"`       // 本月入账合计
	PendingCollection float64        `json:"pending_collection"` // completed/delivered 项目待收尾款（50%预算）
	LowStockProducts  int            `json:"low_stock_products"` // current_stock <= min_stock
	RecentActivity    []ActivityItem `json:"recent_activity"`
}

// Summarize 汇总看板数据
func (s *DashboardService) Summarize(now time.Time) *Summary {
	summary := &Summary{
		TotalClients: s.store.CountClients(),
	}

	projects := s.store.Projects()
	for _, p := range projects {
		switch p.Status {
		case entity.ProjectStatusApproved, entity.ProjectStatusInProduction:
			summary.OpenProjects++
		case entity.ProjectStatusCompleted, entity.ProjectStatusDelivered:
			summary.PendingCollection += p.Budget * 0.5
		}
	}

	transactions := s.store.Transactions()
	year, month, _ := now.Date()
	for _, t := range transactions {
		if t.Type != entity.TransactionTypeInflow {
			continue
		}
		ty, tm, _ := t.Date.Date()
		if ty == year && tm == month {
			summary.MonthInflow += t.Amount
		}
	}

	for _, p := range s.store.Products() {
		if p.CurrentStock <= p.MinStock {
			summary.LowStockProducts++
		}
	}

	summary.RecentActivity = recentActivity(projects, transactions)
	return summary
}

// recentActivity 合并3个最新项目和3条最新流水，按创建时间倒序取前5
func recentActivity(projects []entity.Project, transactions []entity.Transaction) []ActivityItem {
	items := make([]ActivityItem, 0, 6)
	for i, p := range projects {
		if i >= 3 {
			break
		}
		items = append(items, ActivityItem{
			Kind:      "project",
			ID:        p.ID,
			Title:     p.Title,
			Amount:    p.Budget,
			CreatedAt: p.CreatedAt,
		})
	}
	for i, t := range transactions {
		if i >= 3 {
			break
		}
		items = append(items, ActivityItem{
			Kind:      "transaction",
			ID:        t.ID,
			Title:     t.Description,
			Amount:    t.Amount,
			CreatedAt: t.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if len(items) > 5 {
		items = items[:5]
	}
	return items
}
