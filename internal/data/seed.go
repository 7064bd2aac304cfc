package data

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed 启动时装载的数据，重启后 Store 总是回到这个状态
type Seed struct {
	NextID    int64      `yaml:"next_id"`
	Movies    []Movie    `yaml:"movies"`
	Directors []Director `yaml:"directors"`
	Reviews   []Review   `yaml:"reviews"`
}

// DefaultSeed 返回内置的种子数据
func DefaultSeed() (Seed, error) {
	return LoadSeed(bytes.NewReader(defaultSeed))
}

// LoadSeed 从 YAML 读取种子数据并检查 id
func LoadSeed(r io.Reader) (Seed, error) {
	var seed Seed

	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}

	if err := seed.validate(); err != nil {
		return Seed{}, err
	}

	return seed, nil
}

func (s Seed) validate() error {
	if s.NextID < 1 {
		return fmt.Errorf("seed: next_id must be greater than zero, got %d", s.NextID)
	}

	if err := uniqueIDs("movies", s.NextID, s.Movies, func(m Movie) int64 { return m.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("directors", s.NextID, s.Directors, func(d Director) int64 { return d.ID }); err != nil {
		return err
	}
	return uniqueIDs("reviews", s.NextID, s.Reviews, func(r Review) int64 { return r.ID })
}

// uniqueIDs 同一集合内 id 不能重复，也不能大于等于 next_id
func uniqueIDs[T any](name string, nextID int64, items []T, id func(T) int64) error {
	seen := make(map[int64]bool, len(items))
	for _, item := range items {
		i := id(item)
		if i >= nextID {
			return fmt.Errorf("seed: id %d in %s is not below next_id %d", i, name, nextID)
		}
		if seen[i] {
			return fmt.Errorf("seed: duplicate id %d in %s", i, name)
		}
		seen[i] = true
	}
	return nil
}
