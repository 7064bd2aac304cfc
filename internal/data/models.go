package data

import (
	"errors"
)

var (
	ErrRecordNotFound = errors.New("record not found")
)

// Models 汇总三个集合的模型，它们共享同一个 Store
type Models struct {
	Movies    MovieModel
	Directors DirectorModel
	Reviews   ReviewModel
}

func NewModels(store *Store) Models {
	return Models{
		Movies:    MovieModel{store: store},
		Directors: DirectorModel{store: store},
		Reviews:   ReviewModel{store: store},
	}
}
