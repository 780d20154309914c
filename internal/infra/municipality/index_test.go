package municipality

import (
	"testing"

	"locator/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []entity.Municipality {
	return []entity.Municipality{
		{Name: "São Paulo", State: "SP", Coordinate: entity.NewCoordinate(-23.5505, -46.6333)},
		{Name: "Campinas", State: "SP", Coordinate: entity.NewCoordinate(-22.9056, -47.0608)},
		{Name: "Rio de Janeiro", State: "RJ", Coordinate: entity.NewCoordinate(-22.9068, -43.1729)},
		{Name: "Bom Jesus", State: "PI", Coordinate: entity.NewCoordinate(-9.0744, -44.3586)},
		{Name: "Bom Jesus", State: "RS", Coordinate: entity.NewCoordinate(-28.6697, -50.4295)},
	}
}

func TestIndex_Lookup_IgnoresCaseAndDiacritics(t *testing.T) {
	idx := NewIndex(testRecords())

	tests := []struct {
		name  string
		state entity.State
	}{
		{name: "São Paulo", state: "SP"},
		{name: "sao paulo", state: "SP"},
		{name: "  SAO   PAULO ", state: "SP"},
		{name: "SÃO PAULO", state: "SP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := idx.Lookup(tt.name, tt.state)
			require.True(t, ok)
			assert.Equal(t, "São Paulo", m.Name)
			assert.InDelta(t, -23.5505, m.Coordinate.Lat, 1e-9)
		})
	}
}

func TestIndex_Lookup_RequiresMatchingState(t *testing.T) {
	idx := NewIndex(testRecords())

	_, ok := idx.Lookup("São Paulo", "RJ")
	assert.False(t, ok)

	pi, ok := idx.Lookup("Bom Jesus", "PI")
	require.True(t, ok)
	rs, ok := idx.Lookup("Bom Jesus", "RS")
	require.True(t, ok)
	assert.NotEqual(t, pi.Coordinate, rs.Coordinate)
}

func TestIndex_Lookup_UnknownStateNeverMatches(t *testing.T) {
	idx := NewIndex(testRecords())

	_, ok := idx.Lookup("São Paulo", "XX")
	assert.False(t, ok)
}

func TestIndex_SkipsInvalidRecords(t *testing.T) {
	records := append(testRecords(),
		entity.Municipality{Name: "Nowhere", State: "ZZ", Coordinate: entity.NewCoordinate(0, 0)},
		entity.Municipality{Name: "Far Away", State: "SP", Coordinate: entity.NewCoordinate(120, 0)},
		entity.Municipality{Name: "   ", State: "SP", Coordinate: entity.NewCoordinate(0, 0)},
	)

	idx := NewIndex(records)
	assert.Equal(t, 5, idx.Len())
}

func TestIndex_Candidates_KeepLoadOrder(t *testing.T) {
	idx := NewIndex(testRecords())

	candidates := idx.Candidates("SP")
	require.Len(t, candidates, 2)
	assert.Equal(t, "São Paulo", candidates[0].Name)
	assert.Equal(t, "sao paulo", candidates[0].NormalizedName)
	assert.Equal(t, "Campinas", candidates[1].Name)

	assert.Empty(t, idx.Candidates("AC"))
}
