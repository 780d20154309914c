package entity

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	require.Len(t, AllStates(), 27)
	for _, st := range AllStates() {
		got, ok := ParseState(" " + string(st) + " ")
		assert.True(t, ok, st)
		assert.Equal(t, st, got)
	}

	got, ok := ParseState("sp")
	assert.True(t, ok)
	assert.Equal(t, State("SP"), got)

	for _, raw := range []string{"xx", "XX", "", "S", "SPA", "BR"} {
		_, ok := ParseState(raw)
		assert.False(t, ok, raw)
	}
}

func TestStateFromIBGE(t *testing.T) {
	st, ok := StateFromIBGE(35)
	assert.True(t, ok)
	assert.Equal(t, State("SP"), st)
	assert.Equal(t, 50, State("MS").IBGECode())

	_, ok = StateFromIBGE(99)
	assert.False(t, ok)
	assert.Equal(t, 0, State("XX").IBGECode())
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "sao paulo", NormalizeName("  São   Paulo "))
	assert.Equal(t, "ribeirao preto", NormalizeName("RIBEIRÃO PRETO"))
	assert.Equal(t, "", NormalizeName("   "))
	assert.Equal(t, "sao paulo|sp", CacheKey("São Paulo", "SP"))
}

func TestCoordinate_IsValid(t *testing.T) {
	assert.True(t, NewCoordinate(-23.5505, -46.6333).IsValid())
	assert.True(t, NewCoordinate(90, 180).IsValid())
	assert.False(t, NewCoordinate(90.1, 0).IsValid())
	assert.False(t, NewCoordinate(0, -180.5).IsValid())
	assert.False(t, NewCoordinate(math.NaN(), 0).IsValid())
	assert.False(t, NewCoordinate(0, math.Inf(1)).IsValid())

	c := NewCoordinate(-22.9, -47.06)
	assert.Equal(t, c, CoordinateFromPoint(c.Point()))
}

func TestCarrier_SameContentAndApply(t *testing.T) {
	lat, lng := -22.9056, -47.0608
	a := &Carrier{
		OriginCity:  "Campinas",
		OriginState: "SP",
		CarrierName: "Transportes B",
		Price:       120.501,
		Latitude:    &lat,
		Longitude:   &lng,
	}
	b := *a
	b.Price = 120.499
	assert.True(t, a.SameContent(&b), "prices equal at cent precision")

	b.Contact = "+55 19 99999-0000"
	assert.False(t, a.SameContent(&b))

	c := *a
	c.Latitude = nil
	assert.False(t, a.SameContent(&c))

	id := a.ID
	a.ApplyContent(&b)
	assert.Equal(t, id, a.ID)
	assert.Equal(t, "+55 19 99999-0000", a.Contact)
	assert.Equal(t, "Campinas/SP", a.OriginLabel())
	assert.Equal(t, CarrierKey{City: "campinas", State: "SP"}, a.Key())
}

func TestCarrier_Coordinate(t *testing.T) {
	var c Carrier
	_, ok := c.Coordinate()
	assert.False(t, ok)

	c.SetCoordinate(NewCoordinate(-20.4697, -54.6201))
	coord, ok := c.Coordinate()
	assert.True(t, ok)
	assert.InDelta(t, -20.4697, coord.Lat, 1e-9)
}

func TestRoundPrice(t *testing.T) {
	assert.InDelta(t, 120.51, RoundPrice(120.506), 1e-9)
	assert.InDelta(t, 0, RoundPrice(0.004), 1e-9)
}

func TestCarrier_OversizedField(t *testing.T) {
	fits := &Carrier{
		OriginCity: "São Paulo",
		// multi-byte characters count once, as in varchar(255)
		Contact: strings.Repeat("é", MaxCarrierTextLength),
		Price:   MaxCarrierPrice,
	}
	assert.Empty(t, fits.OversizedField())

	longGroup := *fits
	longGroup.GroupName = strings.Repeat("g", MaxCarrierTextLength+1)
	assert.Equal(t, "nome_grupo", longGroup.OversizedField())

	expensive := *fits
	expensive.Price = MaxCarrierPrice + 1
	assert.Equal(t, "preco", expensive.OversizedField())
}
