// Package store 维护账本的内存集合（客户、产品、项目、财务流水、库存流水），
// 并通过文档存储做尽力而为的持久化。集合内不含业务规则，
// 只保证记录级一致性：删除时的引用完整性校验、项目编号的高水位分配、
// 库存流水与计数的同锁更新。
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gestio-app/gestio/internal/ledger/entity"
	"github.com/gestio-app/gestio/internal/shared/docstore"
	"go.uber.org/zap"
)

// 集合名（持久化键）
const (
	CollectionClients      = "clients"
	CollectionProducts     = "products"
	CollectionProjects     = "projects"
	CollectionTransactions = "transactions"
	CollectionMovements    = "stock_movements"
)

// ErrProductInUse 产品被其他产品的BOM引用，不可删除
var ErrProductInUse = errors.New("product is referenced as a component and cannot be deleted")

// Store 内存记录存储。持久化失败只记日志不回滚，
// 会话内以内存状态为准。
type Store struct {
	mu   sync.RWMutex
	docs docstore.Store
	log  *zap.Logger

	clients      *collection[entity.Client]
	products     *collection[entity.Product]
	projects     *collection[entity.Project]
	transactions *collection[entity.Transaction]
	movements    *collection[entity.StockMovement]

	// 已分配过的最大项目编号（高水位），删除项目不回退，
	// 保证编号退役后不复用
	lastProjectNumber int
}

// New 创建空的记录存储。docs 可为 nil（纯内存，测试用）。
func New(docs docstore.Store, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		docs:         docs,
		log:          log,
		clients:      newCollection[entity.Client](),
		products:     newCollection[entity.Product](),
		projects:     newCollection[entity.Project](),
		transactions: newCollection[entity.Transaction](),
		movements:    newCollection[entity.StockMovement](),
	}
}

// Load 从文档存储加载全部集合。单个集合加载失败退回空集合，
// 不中断启动。
func (s *Store) Load(ctx context.Context) {
	if s.docs == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	loadCollection(ctx, s, CollectionClients, s.clients)
	loadCollection(ctx, s, CollectionProducts, s.products)
	loadCollection(ctx, s, CollectionProjects, s.projects)
	loadCollection(ctx, s, CollectionTransactions, s.transactions)
	loadCollection(ctx, s, CollectionMovements, s.movements)

	for _, p := range s.projects.items {
		if p.Number > s.lastProjectNumber {
			s.lastProjectNumber = p.Number
		}
	}
}

func loadCollection[T record](ctx context.Context, s *Store, name string, c *collection[T]) {
	var records []T
	if err := s.docs.Load(ctx, name, &records); err != nil {
		s.log.Warn("Failed to load collection, starting empty",
			zap.String("collection", name), zap.Error(err))
		return
	}
	c.load(records)
}

// persist 将集合快照写入文档存储，失败仅记日志
func persist[T record](s *Store, name string, records []T) {
	if s.docs == nil {
		return
	}
	if err := s.docs.Save(context.Background(), name, records); err != nil {
		s.log.Error("Failed to persist collection",
			zap.String("collection", name), zap.Error(err))
	}
}

// FlushAll 同步落盘全部集合（优雅退出时调用）
func (s *Store) FlushAll() {
	s.mu.RLock()
	clients := s.clients.list()
	products := s.products.list()
	projects := s.projects.list()
	transactions := s.transactions.list()
	movements := s.movements.list()
	s.mu.RUnlock()

	persist(s, CollectionClients, clients)
	persist(s, CollectionProducts, products)
	persist(s, CollectionProjects, projects)
	persist(s, CollectionTransactions, transactions)
	persist(s, CollectionMovements, movements)
}

// === Clients ===

func (s *Store) AddClient(c entity.Client) {
	s.mu.Lock()
	s.clients.add(c)
	snapshot := s.clients.list()
	s.mu.Unlock()
	persist(s, CollectionClients, snapshot)
}

func (s *Store) GetClient(id string) (entity.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clients.get(id)
}

func (s *Store) PutClient(c entity.Client) bool {
	s.mu.Lock()
	ok := s.clients.put(c)
	snapshot := s.clients.list()
	s.mu.Unlock()
	if ok {
		persist(s, CollectionClients, snapshot)
	}
	return ok
}

// DeleteClient 删除客户；ID不存在时为no-op
func (s *Store) DeleteClient(id string) bool {
	s.mu.Lock()
	ok := s.clients.remove(id)
	snapshot := s.clients.list()
	s.mu.Unlock()
	if ok {
		persist(s, CollectionClients, snapshot)
	}
	return ok
}

func (s *Store) Clients() []entity.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clients.list()
}

func (s *Store) CountClients() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clients.size()
}

// === Products ===

func (s *Store) AddProduct(p entity.Product) {
	s.mu.Lock()
	s.products.add(p)
	snapshot := s.products.list()
	s.mu.Unlock()
	persist(s, CollectionProducts, snapshot)
}

func (s *Store) GetProduct(id string) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.get(id)
}

func (s *Store) PutProduct(p entity.Product) bool {
	s.mu.Lock()
	ok := s.products.put(p)
	snapshot := s.products.list()
	s.mu.Unlock()
	if ok {
		persist(s, CollectionProducts, snapshot)
	}
	return ok
}

// DeleteProduct 删除产品。被其他产品BOM引用时拒绝，
// ID不存在时为no-op。
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	for _, p := range s.products.items {
		for _, comp := range p.Components {
			if comp.ProductID == id {
				s.mu.Unlock()
				return ErrProductInUse
			}
		}
	}
	ok := s.products.remove(id)
	snapshot := s.products.list()
	s.mu.Unlock()
	if ok {
		persist(s, CollectionProducts, snapshot)
	}
	return nil
}

func (s *Store) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.list()
}

// === Projects ===

func (s *Store) AddProject(p entity.Project) {
	s.mu.Lock()
	s.projects.add(p)
	if p.Number > s.lastProjectNumber {
		s.lastProjectNumber = p.Number
	}
	snapshot := s.projects.list()
	s.mu.Unlock()
	persist(s, CollectionProjects, snapshot)
}

func (s *Store) GetProject(id string) (entity.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projects.get(id)
}

func (s *Store) PutProject(p entity.Project) bool {
	s.mu.Lock()
	ok := s.projects.put(p)
	snapshot := s.projects.list()
	s.mu.Unlock()
	if ok {
		persist(s, CollectionProjects, snapshot)
	}
	return ok
}

// DeleteProject 删除项目并级联删除引用该项目的财务流水和库存流水，
// 不留孤儿记录。ID不存在时为no-op。
func (s *Store) DeleteProject(id string) bool {
	s.mu.Lock()
	ok := s.projects.remove(id)
	if !ok {
		s.mu.Unlock()
		return false
	}
	for _, t := range s.transactions.list() {
		if t.ProjectID == id {
			s.transactions.remove(t.ID)
		}
	}
	for _, m := range s.movements.list() {
		if m.ProjectID == id {
			s.movements.remove(m.ID)
		}
	}
	projects := s.projects.list()
	transactions := s.transactions.list()
	movements := s.movements.list()
	s.mu.Unlock()

	persist(s, CollectionProjects, projects)
	persist(s, CollectionTransactions, transactions)
	persist(s, CollectionMovements, movements)
	return true
}

func (s *Store) Projects() []entity.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projects.list()
}

// NextProjectNumber 分配下一个项目编号（从1开始单调递增）。
// 基于高水位而非存活项目的最大编号：
// 删除最高编号的项目后，其编号依然退役，不会重新分配。
func (s *Store) NextProjectNumber() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastProjectNumber++
	return s.lastProjectNumber
}

// === Transactions ===

func (s *Store) AddTransaction(t entity.Transaction) {
	s.mu.Lock()
	s.transactions.add(t)
	snapshot := s.transactions.list()
	s.mu.Unlock()
	persist(s, CollectionTransactions, snapshot)
}

func (s *Store) GetTransaction(id string) (entity.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transactions.get(id)
}

func (s *Store) PutTransaction(t entity.Transaction) bool {
	s.mu.Lock()
	ok := s.transactions.put(t)
	snapshot := s.transactions.list()
	s.mu.Unlock()
	if ok {
		persist(s, CollectionTransactions, snapshot)
	}
	return ok
}

func (s *Store) DeleteTransaction(id string) bool {
	s.mu.Lock()
	ok := s.transactions.remove(id)
	snapshot := s.transactions.list()
	s.mu.Unlock()
	if ok {
		persist(s, CollectionTransactions, snapshot)
	}
	return ok
}

func (s *Store) Transactions() []entity.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transactions.list()
}

// === Stock movements ===

func (s *Store) AddMovement(m entity.StockMovement) {
	s.mu.Lock()
	s.movements.add(m)
	snapshot := s.movements.list()
	s.mu.Unlock()
	persist(s, CollectionMovements, snapshot)
}

// ApplyMovement 在一次加锁内追加流水并按符号更新产品库存计数
// （in加、out减），计数不会因并发写入丢失更新而偏离流水合计。
// 不设下限，库存可以为负。产品不存在时只落流水。
func (s *Store) ApplyMovement(m entity.StockMovement) {
	s.mu.Lock()
	s.movements.add(m)
	var products []entity.Product
	if p, ok := s.products.get(m.ProductID); ok {
		if m.Type == entity.MovementTypeIn {
			p.CurrentStock += m.Quantity
		} else {
			p.CurrentStock -= m.Quantity
		}
		p.UpdatedAt = time.Now()
		s.products.put(p)
		products = s.products.list()
	}
	movements := s.movements.list()
	s.mu.Unlock()

	persist(s, CollectionMovements, movements)
	if products != nil {
		persist(s, CollectionProducts, products)
	}
}

func (s *Store) Movements() []entity.StockMovement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.movements.list()
}
