package service

import "locator/internal/domain/entity"

// MunicipalityIndex is the immutable in-memory table of canonical municipalities.
type MunicipalityIndex interface {
	// Lookup finds an exact, case and diacritic insensitive match of name within state.
	Lookup(name string, state entity.State) (entity.Municipality, bool)

	// Candidates returns every municipality of state in load order.
	Candidates(state entity.State) []entity.Municipality

	// Len returns the number of indexed municipalities.
	Len() int
}
