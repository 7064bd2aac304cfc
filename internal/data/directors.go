package data

import (
	"github.com/liliang-cn/film-api/internal/validator"
)

// Director 导演，只支持创建和查询
type Director struct {
	ID        int64 `json:"id" yaml:"id"`
	Nama      Value `json:"nama,omitempty" yaml:"nama"`
	BirthYear Value `json:"birthYear,omitempty" yaml:"birthYear"`
}

func ValidateDirector(v *validator.Validator, director *Director) {
	v.Check(validator.Truthy(director.Nama), "nama", "must be provided")
	v.Check(validator.Truthy(director.BirthYear), "birthYear", "must be provided")
}

type DirectorModel struct {
	store *Store
}

func (m DirectorModel) GetAll() []Director {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	return m.store.directors.all()
}

func (m DirectorModel) Get(id int64) (*Director, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	director, ok := m.store.directors.get(id)
	if !ok {
		return nil, ErrRecordNotFound
	}

	return &director, nil
}

func (m DirectorModel) Insert(director *Director) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	director.ID = m.store.takeID()
	m.store.directors.items = append(m.store.directors.items, *director)
}
