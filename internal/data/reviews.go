package data

import (
	"github.com/liliang-cn/film-api/internal/validator"
)

// Review 影评，film_id 是自由文本，不关联 Movie
type Review struct {
	ID      int64 `json:"id" yaml:"id"`
	FilmID  Value `json:"film_id,omitempty" yaml:"film_id"`
	User    Value `json:"user,omitempty" yaml:"user"`
	Rating  Value `json:"rating,omitempty" yaml:"rating"`
	Comment Value `json:"comment,omitempty" yaml:"comment"`
}

// ValidateReview rating 只要求出现，0 和 null 都是合法的
func ValidateReview(v *validator.Validator, review *Review) {
	v.Check(validator.Truthy(review.FilmID), "film_id", "must be provided")
	v.Check(validator.Truthy(review.User), "user", "must be provided")
	v.Check(validator.Defined(review.Rating), "rating", "must be provided")
	v.Check(validator.Truthy(review.Comment), "comment", "must be provided")
}

type ReviewModel struct {
	store *Store
}

func (m ReviewModel) GetAll() []Review {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	return m.store.reviews.all()
}

func (m ReviewModel) Get(id int64) (*Review, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	review, ok := m.store.reviews.get(id)
	if !ok {
		return nil, ErrRecordNotFound
	}

	return &review, nil
}

func (m ReviewModel) Insert(review *Review) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	review.ID = m.store.takeID()
	m.store.reviews.items = append(m.store.reviews.items, *review)
}

func (m ReviewModel) Update(review *Review) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	if !m.store.reviews.replace(review.ID, *review) {
		return ErrRecordNotFound
	}

	return nil
}

func (m ReviewModel) Delete(id int64) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	if !m.store.reviews.remove(id) {
		return ErrRecordNotFound
	}

	return nil
}
