package handler

import (
	"log/slog"
	"net/http"

	"locator/internal/delivery/http/response"
	"locator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CarrierHandlerParams holds dependencies for CarrierHandler, injected by Fx.
type CarrierHandlerParams struct {
	fx.In

	CarrierUC usecase.CarrierUsecase
	Logger    *slog.Logger
}

// CarrierHandler serves nearest-carrier queries
type CarrierHandler struct {
	carrierUC usecase.CarrierUsecase
	logger    *slog.Logger
}

// NewCarrierHandler is the constructor for CarrierHandler
func NewCarrierHandler(params CarrierHandlerParams) *CarrierHandler {
	return &CarrierHandler{
		carrierUC: params.CarrierUC,
		logger:    params.Logger,
	}
}

// NearestCarriersRequest holds the query parameters of GET /api/v1/carriers/nearest.
// Either city and state, or lat and lng, must be given.
type NearestCarriersRequest struct {
	City      string   `validate:"required_without_all=Latitude Longitude"`
	State     string   `validate:"required_without_all=Latitude Longitude"`
	Latitude  *float64 `validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `validate:"omitempty,min=-180,max=180"`
	Count     int      `validate:"omitempty,min=1,max=20"`
}

// NearestCarrierItem is one ranked carrier in the response.
type NearestCarrierItem struct {
	Rank            int      `json:"rank"`
	DistanceKm      float64  `json:"distance_km"`
	Origin          string   `json:"origin"`
	OriginCity      string   `json:"origin_city"`
	OriginState     string   `json:"origin_state"`
	GroupName       string   `json:"group_name"`
	CarrierName     string   `json:"carrier_name"`
	Company         string   `json:"company"`
	Contact         string   `json:"contact"`
	HasLoaded       bool     `json:"has_loaded"`
	HasRegistration bool     `json:"has_registration"`
	Product         string   `json:"product"`
	Price           float64  `json:"price"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

// NearestCarriersResponse is the data payload of GET /api/v1/carriers/nearest.
type NearestCarriersResponse struct {
	Origin   *usecase.Resolution  `json:"origin"`
	Carriers []NearestCarrierItem `json:"carriers"`
}

// FindNearest handles GET /api/v1/carriers/nearest
func (h *CarrierHandler) FindNearest(c echo.Context) error {
	var req NearestCarriersRequest
	binder := echo.QueryParamsBinder(c).
		String("city", &req.City).
		String("state", &req.State).
		Int("count", &req.Count)
	req.Latitude = optionalFloat(binder, "lat")
	req.Longitude = optionalFloat(binder, "lng")
	if err := binder.BindError(); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, codeValidationError, err.Error())
	}

	result, err := h.carrierUC.FindNearestCarriers(c.Request().Context(), &usecase.NearestCarriersQuery{
		City:      req.City,
		State:     req.State,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Count:     req.Count,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	items := make([]NearestCarrierItem, 0, len(result.Carriers))
	for i, ranked := range result.Carriers {
		carrier := ranked.Carrier
		items = append(items, NearestCarrierItem{
			Rank:            i + 1,
			DistanceKm:      ranked.DistanceKm,
			Origin:          carrier.OriginLabel(),
			OriginCity:      carrier.OriginCity,
			OriginState:     string(carrier.OriginState),
			GroupName:       carrier.GroupName,
			CarrierName:     carrier.CarrierName,
			Company:         carrier.Company,
			Contact:         carrier.Contact,
			HasLoaded:       carrier.HasLoaded,
			HasRegistration: carrier.HasRegistration,
			Product:         carrier.Product,
			Price:           carrier.Price,
			Latitude:        carrier.Latitude,
			Longitude:       carrier.Longitude,
		})
	}

	return response.Success(c, http.StatusOK, NearestCarriersResponse{
		Origin:   result.Origin,
		Carriers: items,
	}, "Nearest carriers retrieved successfully")
}

// optionalFloat binds a float query parameter only when it is present.
func optionalFloat(binder *echo.ValueBinder, name string) *float64 {
	var v float64
	var present bool
	binder.CustomFunc(name, func(values []string) []error {
		present = len(values) > 0 && values[0] != ""

		return nil
	})
	if !present {
		return nil
	}
	binder.Float64(name, &v)

	return &v
}
