package entity

import (
	"math"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Limits of the app_transportadoras columns.
const (
	MaxCarrierTextLength = 255           // characters, varchar(255)
	MaxCarrierPrice      = 9999999999.99 // decimal(12,2)
)

// Carrier is a carrier pickup point persisted in the carrier store.
// Latitude and Longitude are nil when the origin could not be geocoded.
type Carrier struct {
	ID              uuid.UUID `json:"id"`
	OriginCity      string    `json:"origin_city"`
	OriginState     State     `json:"origin_state"`
	GroupName       string    `json:"group_name"` // WhatsApp group the carrier posts loads in.
	CarrierName     string    `json:"carrier_name"`
	Company         string    `json:"company"`
	Contact         string    `json:"contact"`
	HasLoaded       bool      `json:"has_loaded"`
	HasRegistration bool      `json:"has_registration"`
	Product         string    `json:"product"`
	Price           float64   `json:"price"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
}

// CarrierKey identifies a carrier for synchronization: normalized origin city and state.
type CarrierKey struct {
	City  string
	State State
}

// Key returns the synchronization key of the carrier.
func (c *Carrier) Key() CarrierKey {
	return CarrierKey{City: NormalizeName(c.OriginCity), State: c.OriginState}
}

// Coordinate returns the carrier coordinate and whether it is present and valid.
func (c *Carrier) Coordinate() (Coordinate, bool) {
	if c.Latitude == nil || c.Longitude == nil {
		return Coordinate{}, false
	}
	coord := Coordinate{Lat: *c.Latitude, Lng: *c.Longitude}

	return coord, coord.IsValid()
}

// SetCoordinate stores coord as the carrier location.
func (c *Carrier) SetCoordinate(coord Coordinate) {
	lat, lng := coord.Lat, coord.Lng
	c.Latitude = &lat
	c.Longitude = &lng
}

// OriginLabel formats the origin as "City/UF".
func (c *Carrier) OriginLabel() string {
	return c.OriginCity + "/" + string(c.OriginState)
}

// SameContent reports whether every mutable field of c equals other.
// Prices compare at cent precision and coordinates at 1e-6 degrees.
func (c *Carrier) SameContent(other *Carrier) bool {
	return c.OriginCity == other.OriginCity &&
		c.OriginState == other.OriginState &&
		c.GroupName == other.GroupName &&
		c.CarrierName == other.CarrierName &&
		c.Company == other.Company &&
		c.Contact == other.Contact &&
		c.HasLoaded == other.HasLoaded &&
		c.HasRegistration == other.HasRegistration &&
		c.Product == other.Product &&
		RoundPrice(c.Price) == RoundPrice(other.Price) &&
		sameFloatPtr(c.Latitude, other.Latitude) &&
		sameFloatPtr(c.Longitude, other.Longitude)
}

// ApplyContent copies every mutable field from src, keeping the identity of c.
func (c *Carrier) ApplyContent(src *Carrier) {
	id := c.ID
	*c = *src
	c.ID = id
}

// OversizedField names the first field whose value does not fit its column,
// or returns "" when every field fits.
func (c *Carrier) OversizedField() string {
	texts := []struct {
		name  string
		value string
	}{
		{"cidade_origem", c.OriginCity},
		{"nome_grupo", c.GroupName},
		{"transportadora", c.CarrierName},
		{"empresa", c.Company},
		{"contato", c.Contact},
		{"produto", c.Product},
	}
	for _, t := range texts {
		if utf8.RuneCountInString(t.value) > MaxCarrierTextLength {
			return t.name
		}
	}

	if math.Abs(c.Price) > MaxCarrierPrice {
		return "preco"
	}

	return ""
}

// RoundPrice rounds a price to cents.
func RoundPrice(p float64) float64 {
	return math.Round(p*100) / 100
}

func sameFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return math.Abs(*a-*b) < 1e-6
}

// RankedCarrier is a carrier with its great-circle distance from the query origin.
type RankedCarrier struct {
	Carrier    *Carrier `json:"carrier"`
	DistanceKm float64  `json:"distance_km"`
}
