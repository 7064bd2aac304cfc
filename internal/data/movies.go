package data

import (
	"github.com/liliang-cn/film-api/internal/validator"
)

// Movie 电影，除 id 外的字段都可能缺失（PUT 是整体替换）
type Movie struct {
	ID       int64 `json:"id" yaml:"id"`
	Title    Value `json:"title,omitempty" yaml:"title"`
	Director Value `json:"director,omitempty" yaml:"director"`
	Year     Value `json:"year,omitempty" yaml:"year"`
}

// ValidateMovie 创建时 title、director、year 都必须是真值
func ValidateMovie(v *validator.Validator, movie *Movie) {
	v.Check(validator.Truthy(movie.Title), "title", "must be provided")
	v.Check(validator.Truthy(movie.Director), "director", "must be provided")
	v.Check(validator.Truthy(movie.Year), "year", "must be provided")
}

type MovieModel struct {
	store *Store
}

// GetAll 按插入顺序返回所有电影
func (m MovieModel) GetAll() []Movie {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	return m.store.movies.all()
}

func (m MovieModel) Get(id int64) (*Movie, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	movie, ok := m.store.movies.get(id)
	if !ok {
		return nil, ErrRecordNotFound
	}

	return &movie, nil
}

// Insert 分配新 id 并追加到末尾，movie.ID 会被覆盖
func (m MovieModel) Insert(movie *Movie) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	movie.ID = m.store.takeID()
	m.store.movies.items = append(m.store.movies.items, *movie)
}

// Update 用 movie 整体替换同 id 的记录
func (m MovieModel) Update(movie *Movie) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	if !m.store.movies.replace(movie.ID, *movie) {
		return ErrRecordNotFound
	}

	return nil
}

func (m MovieModel) Delete(id int64) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	if !m.store.movies.remove(id) {
		return ErrRecordNotFound
	}

	return nil
}
