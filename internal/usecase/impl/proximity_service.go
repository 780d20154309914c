package impl

import (
	"math"
	"sort"

	"locator/internal/domain/entity"
	"locator/internal/usecase"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

type proximityService struct{}

// NewProximityService creates the carrier ranker.
func NewProximityService() usecase.ProximityUsecase {
	return &proximityService{}
}

type scoredCarrier struct {
	carrier *entity.Carrier
	km      float64
}

// Rank computes every distance once and then stable-sorts, so the cost does not depend on k.
func (s *proximityService) Rank(origin entity.Coordinate, candidates []*entity.Carrier, k int) []entity.RankedCarrier {
	if k <= 0 || !origin.IsValid() {
		return []entity.RankedCarrier{}
	}

	from := origin.Point()
	scored := make([]scoredCarrier, 0, len(candidates))
	for _, c := range candidates {
		if c == nil {
			continue
		}
		coord, ok := c.Coordinate()
		if !ok {
			continue
		}
		scored = append(scored, scoredCarrier{carrier: c, km: HaversineKm(from, coord.Point())})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].km < scored[j].km
	})

	if k > len(scored) {
		k = len(scored)
	}

	ranked := make([]entity.RankedCarrier, k)
	for i := range ranked {
		ranked[i] = entity.RankedCarrier{Carrier: scored[i].carrier, DistanceKm: scored[i].km}
	}

	return ranked
}

// HaversineKm returns the great-circle distance between two points in kilometers.
func HaversineKm(a, b orb.Point) float64 {
	lat1, lat2 := deg2rad(a.Lat()), deg2rad(b.Lat())
	dLat := lat2 - lat1
	dLng := deg2rad(b.Lon() - a.Lon())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
