package service

import (
	"fmt"
	"time"

	"github.com/gestio-app/gestio/internal/ledger/entity"
)

// Effect 项目生命周期事件派生的账本副作用。
// 过渡函数只产出副作用列表，由调用方落库，便于脱离存储单测。
type Effect interface {
	ledgerEffect()
}

// EmitTransaction 产生一条财务流水。ID和创建时间由执行方分配。
type EmitTransaction struct {
	Transaction entity.Transaction
}

func (EmitTransaction) ledgerEffect() {}

// EmitStockCascade 触发项目行项的库存出库级联
type EmitStockCascade struct {
	ProjectID string
	Items     []entity.ProjectProduct
}

func (EmitStockCascade) ledgerEffect() {}

// CreationEffects 项目创建时的副作用。
// 仅 sale 类型且初始状态不是 quote 时：产生50%预算的定金入账，
// 有产品行项则再触发库存级联。
func CreationEffects(p entity.Project, now time.Time) []Effect {
	if p.Type != entity.ProjectTypeSale || p.Status == entity.ProjectStatusQuote {
		return nil
	}

	effects := []Effect{
		EmitTransaction{Transaction: entity.Transaction{
			Description:  fmt.Sprintf("Deposit - %s", p.Title),
			Type:         entity.TransactionTypeInflow,
			Category:     entity.TransactionCategoryDeposit,
			Amount:       p.Budget * 0.5,
			Date:         now,
			ProjectID:    p.ID,
			ProjectTitle: p.Title,
		}},
	}
	if len(p.Products) > 0 {
		effects = append(effects, EmitStockCascade{ProjectID: p.ID, Items: p.Products})
	}
	return effects
}

// TransitionEffects 项目状态更新的副作用。
// 进入 completed 且之前不是 completed 时产生剩余50%的尾款入账；
// 前置状态校验保证重存已完成的项目不会重复入账。
// 其余状态变化为纯状态变更，无副作用。
func TransitionEffects(prev, next entity.Project, now time.Time) []Effect {
	if next.Type != entity.ProjectTypeSale {
		return nil
	}
	if next.Status != entity.ProjectStatusCompleted || prev.Status == entity.ProjectStatusCompleted {
		return nil
	}

	return []Effect{
		EmitTransaction{Transaction: entity.Transaction{
			Description:  fmt.Sprintf("Final payment - %s", next.Title),
			Type:         entity.TransactionTypeInflow,
			Category:     entity.TransactionCategoryFinalPayment,
			Amount:       next.Budget * 0.5,
			Date:         now,
			ProjectID:    next.ID,
			ProjectTitle: next.Title,
		}},
	}
}
