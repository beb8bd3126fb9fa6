package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GetRoute handles GET /api/v1/logistics/drivers/{driverId}/route.
func (s *Server) GetRoute(ctx echo.Context, driverId openapi_types.UUID, params servers.GetRouteParams) error {
	query, err := s.routeQuery(driverId, params.Date)
	if err != nil {
		return s.fail(ctx, err)
	}
	route, err := s.h.Routes.CurrentRoute(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIRoute(route))
}

// PreviewRoute handles GET /api/v1/logistics/drivers/{driverId}/route/preview.
func (s *Server) PreviewRoute(ctx echo.Context, driverId openapi_types.UUID, params servers.PreviewRouteParams) error {
	query, err := s.routeQuery(driverId, params.Date)
	if err != nil {
		return s.fail(ctx, err)
	}
	route, err := s.h.Routes.Preview(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIRoute(route))
}

// OptimizeRoute handles POST /api/v1/logistics/drivers/{driverId}/route/optimize.
func (s *Server) OptimizeRoute(ctx echo.Context, driverId openapi_types.UUID, params servers.OptimizeRouteParams) error {
	id, err := kernel.UUIDFromGoogle(driverId)
	if err != nil {
		return s.fail(ctx, err)
	}
	date := s.dayOrToday(params.Date)

	cmd, err := commands.NewReoptimizeRouteCommand(id, date)
	if err != nil {
		return s.fail(ctx, err)
	}
	size, err := s.h.ReoptimizeRoute.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.RouteOptimization{
		DriverId:  driverId,
		Date:      toAPIDate(date),
		RouteSize: size,
	})
}

// GetRouteMetrics handles GET /api/v1/logistics/drivers/{driverId}/route/metrics.
func (s *Server) GetRouteMetrics(ctx echo.Context, driverId openapi_types.UUID, params servers.GetRouteMetricsParams) error {
	query, err := s.routeQuery(driverId, params.Date)
	if err != nil {
		return s.fail(ctx, err)
	}
	metrics, err := s.h.Routes.Metrics(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.RouteMetrics{
		DriverId:                 metrics.DriverID.Bytes(),
		Date:                     toAPIDate(metrics.Date),
		TaskCount:                metrics.TaskCount,
		TotalDistanceKm:          metrics.RoundedDistanceKm(),
		EstimatedDurationMinutes: metrics.EstimatedDurationMinutes,
		EstimatedHours:           metrics.EstimatedHours(),
	})
}

// GetRouteGeoJSON handles GET /api/v1/logistics/drivers/{driverId}/route/geojson.
// The collection holds the path as a LineString (when the route has at least
// two stops) followed by one Point per stop.
func (s *Server) GetRouteGeoJSON(ctx echo.Context, driverId openapi_types.UUID, params servers.GetRouteGeoJSONParams) error {
	query, err := s.routeQuery(driverId, params.Date)
	if err != nil {
		return s.fail(ctx, err)
	}
	route, err := s.h.Routes.CurrentRoute(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	data, err := routeFeatures(route).MarshalJSON()
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.Blob(http.StatusOK, "application/geo+json", data)
}

func routeFeatures(route queries.Route) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	path := orb.LineString{}
	stops := make([]*geojson.Feature, 0, len(route.Stops))
	for _, t := range route.Stops {
		location := t.Location()
		if location == nil {
			continue
		}
		path = append(path, location.Point())

		f := geojson.NewFeature(location.Point())
		f.Properties["taskId"] = t.ID().String()
		f.Properties["kind"] = t.Kind().String()
		f.Properties["status"] = t.Status().String()
		f.Properties["street"] = t.Address().Street()
		if seq := t.Sequence(); seq != nil {
			f.Properties["sequence"] = *seq
		}
		stops = append(stops, f)
	}

	if len(path) >= 2 {
		line := geojson.NewFeature(path)
		line.Properties["driverId"] = route.DriverID.String()
		line.Properties["date"] = route.Date.String()
		fc.Append(line)
	}
	for _, f := range stops {
		fc.Append(f)
	}
	return fc
}

func (s *Server) routeQuery(driverId openapi_types.UUID, date *servers.OptionalDate) (queries.DriverRouteQuery, error) {
	id, err := kernel.UUIDFromGoogle(driverId)
	if err != nil {
		return queries.DriverRouteQuery{}, err
	}
	return queries.NewDriverRouteQuery(id, s.dayOrToday(date))
}
