package store

import "sort"

type record interface {
	GetID() string
}

// collection 内存表：ID索引保证O(1)查找，单调序号另存一份，
// 用于派生"最新在前"的展示顺序。
type collection[T record] struct {
	items map[string]T
	seq   map[string]uint64
	next  uint64
}

func newCollection[T record]() *collection[T] {
	return &collection[T]{
		items: make(map[string]T),
		seq:   make(map[string]uint64),
	}
}

// load 用持久化记录重建集合，records 为最新在前的序列
func (c *collection[T]) load(records []T) {
	c.items = make(map[string]T, len(records))
	c.seq = make(map[string]uint64, len(records))
	c.next = uint64(len(records)) + 1
	for i, r := range records {
		id := r.GetID()
		c.items[id] = r
		c.seq[id] = uint64(len(records) - i)
	}
}

func (c *collection[T]) add(item T) {
	c.next++
	c.items[item.GetID()] = item
	c.seq[item.GetID()] = c.next
}

func (c *collection[T]) get(id string) (T, bool) {
	item, ok := c.items[id]
	return item, ok
}

// put 整体替换已有记录，保留其插入序号；记录不存在时为no-op
func (c *collection[T]) put(item T) bool {
	id := item.GetID()
	if _, ok := c.items[id]; !ok {
		return false
	}
	c.items[id] = item
	return true
}

func (c *collection[T]) remove(id string) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	delete(c.seq, id)
	return true
}

// list 返回最新在前的记录序列
func (c *collection[T]) list() []T {
	out := make([]T, 0, len(c.items))
	for id := range c.items {
		out = append(out, c.items[id])
	}
	sort.Slice(out, func(i, j int) bool {
		return c.seq[out[i].GetID()] > c.seq[out[j].GetID()]
	})
	return out
}

func (c *collection[T]) size() int {
	return len(c.items)
}
