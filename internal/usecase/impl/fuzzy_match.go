package impl

import (
	"locator/internal/domain/entity"
	"locator/internal/domain/service"
)

// bestFuzzyMatch scores every same-state candidate against the normalized name
// and returns the highest scoring one. The first candidate wins ties.
// ok is false when no candidate reaches threshold.
func bestFuzzyMatch(
	index service.MunicipalityIndex,
	similarity service.Similarity,
	name string,
	state entity.State,
	threshold int,
) (best entity.Municipality, score int, ok bool) {
	normalized := entity.NormalizeName(name)
	score = -1
	for _, candidate := range index.Candidates(state) {
		s := similarity.Score(normalized, candidate.NormalizedName)
		if s > score {
			best, score = candidate, s
		}
	}

	if score < threshold {
		return entity.Municipality{}, score, false
	}

	return best, score, true
}
