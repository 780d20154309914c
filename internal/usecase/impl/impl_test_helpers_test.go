package impl

import (
	"io"
	"log/slog"

	"locator/internal/domain/entity"
	"locator/internal/domain/service"
	"locator/internal/infra/municipality"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestIndex returns a small index covering the municipalities used across tests.
func newTestIndex() service.MunicipalityIndex {
	return municipality.NewIndex([]entity.Municipality{
		{Name: "São Paulo", State: "SP", Coordinate: entity.NewCoordinate(-23.5505, -46.6333)},
		{Name: "Campinas", State: "SP", Coordinate: entity.NewCoordinate(-22.9056, -47.0608)},
		{Name: "Ribeirão Preto", State: "SP", Coordinate: entity.NewCoordinate(-21.1775, -47.8103)},
		{Name: "Rio de Janeiro", State: "RJ", Coordinate: entity.NewCoordinate(-22.9068, -43.1729)},
		{Name: "Campo Grande", State: "MS", Coordinate: entity.NewCoordinate(-20.4697, -54.6201)},
		{Name: "Dourados", State: "MS", Coordinate: entity.NewCoordinate(-22.2231, -54.8118)},
	})
}

// scriptedSimilarity returns fixed scores for (input, candidate) pairs and 0 otherwise.
func scriptedSimilarity(scores map[[2]string]int) service.Similarity {
	return service.SimilarityFunc(func(a, b string) int {
		return scores[[2]string{a, b}]
	})
}

func floatPtr(v float64) *float64 {
	return &v
}
