package entity

// Municipality is one row of the canonical municipality reference table.
type Municipality struct {
	Name           string // Name as published in the reference table.
	NormalizedName string // Name after NormalizeName, used for matching.
	State          State
	Coordinate     Coordinate
}

// GeocodeCacheEntry is a persisted resolution of a normalized "city|state" key.
type GeocodeCacheEntry struct {
	Key        string     `json:"key"`
	Coordinate Coordinate `json:"coordinate"`
}
