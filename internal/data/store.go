package data

import (
	"sync"
)

// collection 是按插入顺序保存记录的切片，按 id 线性查找
type collection[T any] struct {
	items []T
	id    func(T) int64
}

func (c *collection[T]) all() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) index(id int64) int {
	for i := range c.items {
		if c.id(c.items[i]) == id {
			return i
		}
	}
	return -1
}

func (c *collection[T]) get(id int64) (T, bool) {
	i := c.index(id)
	if i == -1 {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

func (c *collection[T]) replace(id int64, item T) bool {
	i := c.index(id)
	if i == -1 {
		return false
	}
	c.items[i] = item
	return true
}

func (c *collection[T]) remove(id int64) bool {
	i := c.index(id)
	if i == -1 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// Store 保存三个集合以及共享的 id 计数器
//
// 所有集合共用一个互斥锁和一个计数器，所以不同集合里的 id 来自同一个递增序列，
// 但种子数据中的 id 可能在集合之间重复。
type Store struct {
	mu        sync.Mutex
	nextID    int64
	movies    collection[Movie]
	directors collection[Director]
	reviews   collection[Review]
}

// NewStore 用种子数据创建 Store，种子切片会被复制
func NewStore(seed Seed) *Store {
	s := &Store{
		nextID:    seed.NextID,
		movies:    collection[Movie]{id: func(m Movie) int64 { return m.ID }},
		directors: collection[Director]{id: func(d Director) int64 { return d.ID }},
		reviews:   collection[Review]{id: func(r Review) int64 { return r.ID }},
	}

	s.movies.items = append(s.movies.items, seed.Movies...)
	s.directors.items = append(s.directors.items, seed.Directors...)
	s.reviews.items = append(s.reviews.items, seed.Reviews...)

	return s
}

// NextID 返回下一次创建记录时会分配的 id
func (s *Store) NextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.nextID
}

// Counts 返回每个集合当前的记录数
func (s *Store) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]int{
		"movies":    len(s.movies.items),
		"directors": len(s.directors.items),
		"reviews":   len(s.reviews.items),
	}
}

// takeID 分配一个 id，调用方必须持有锁
func (s *Store) takeID() int64 {
	id := s.nextID
	s.nextID++
	return id
}
