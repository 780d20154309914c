// Package municipality builds the immutable municipality index from the reference table.
package municipality

import (
	"locator/internal/domain/entity"
	"locator/internal/domain/service"
)

type indexKey struct {
	name  string
	state entity.State
}

// Index is an immutable, read-only lookup table of municipalities.
// It is safe for concurrent use because nothing mutates it after NewIndex returns.
type Index struct {
	exact   map[indexKey]int
	byState map[entity.State][]entity.Municipality
	all     []entity.Municipality
}

var _ service.MunicipalityIndex = (*Index)(nil)

// NewIndex builds an index from records. Records with an invalid state or
// coordinate are skipped; for duplicate names within a state the first record wins.
func NewIndex(records []entity.Municipality) *Index {
	idx := &Index{
		exact:   make(map[indexKey]int, len(records)),
		byState: make(map[entity.State][]entity.Municipality),
		all:     make([]entity.Municipality, 0, len(records)),
	}

	for _, rec := range records {
		if !rec.State.IsValid() || !rec.Coordinate.IsValid() {
			continue
		}
		rec.NormalizedName = entity.NormalizeName(rec.Name)
		if rec.NormalizedName == "" {
			continue
		}

		key := indexKey{name: rec.NormalizedName, state: rec.State}
		if _, exists := idx.exact[key]; !exists {
			idx.exact[key] = len(idx.all)
		}
		idx.all = append(idx.all, rec)
		idx.byState[rec.State] = append(idx.byState[rec.State], rec)
	}

	return idx
}

// Lookup finds an exact, case and diacritic insensitive match of name within state.
func (idx *Index) Lookup(name string, state entity.State) (entity.Municipality, bool) {
	if !state.IsValid() {
		return entity.Municipality{}, false
	}

	pos, ok := idx.exact[indexKey{name: entity.NormalizeName(name), state: state}]
	if !ok {
		return entity.Municipality{}, false
	}

	return idx.all[pos], true
}

// Candidates returns every municipality of state in load order.
// The returned slice must not be modified.
func (idx *Index) Candidates(state entity.State) []entity.Municipality {
	return idx.byState[state]
}

// Len returns the number of indexed municipalities.
func (idx *Index) Len() int {
	return len(idx.all)
}
