package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListDrivers handles GET /api/v1/logistics/drivers - retrieves all drivers.
func (s *Server) ListDrivers(ctx echo.Context) error {
	drivers, err := s.h.Drivers.Handle(ctx.Request().Context(), queries.NewGetAllDriversQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Driver, len(drivers))
	for i, d := range drivers {
		response[i] = toAPIDriver(d)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/v1/logistics/drivers - registers a driver.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var body servers.NewDriver
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	location, err := kernel.NewGeoPointFromOptional(body.Latitude, body.Longitude)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateDriverCommand(body.Name, location)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.CreateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	lat, lon := coordinates(location)
	return ctx.JSON(http.StatusCreated, servers.Driver{
		Id:          cmd.DriverID().Bytes(),
		Name:        cmd.Name(),
		IsAvailable: true,
		Latitude:    lat,
		Longitude:   lon,
	})
}

// UpdateDriver handles PATCH /api/v1/logistics/drivers/{driverId}.
func (s *Server) UpdateDriver(ctx echo.Context, driverId openapi_types.UUID) error {
	var body servers.DriverUpdate
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(driverId)
	if err != nil {
		return s.fail(ctx, err)
	}
	location, err := kernel.NewGeoPointFromOptional(body.Latitude, body.Longitude)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateDriverCommand(id, body.IsAvailable, location)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.UpdateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListDriverTasks handles GET /api/v1/logistics/drivers/{driverId}/tasks.
// Without a date every task of the driver is returned.
func (s *Server) ListDriverTasks(ctx echo.Context, driverId openapi_types.UUID, params servers.ListDriverTasksParams) error {
	var date *kernel.Date
	if params.Date != nil {
		d := kernel.DateOf(params.Date.Time)
		date = &d
	}
	return s.driverTasks(ctx, driverId, date)
}

// ListTodayTasks handles GET /api/v1/logistics/drivers/{driverId}/tasks/today.
func (s *Server) ListTodayTasks(ctx echo.Context, driverId openapi_types.UUID) error {
	today := s.today()
	return s.driverTasks(ctx, driverId, &today)
}

func (s *Server) driverTasks(ctx echo.Context, driverId openapi_types.UUID, date *kernel.Date) error {
	id, err := kernel.UUIDFromGoogle(driverId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetDriverTasksQuery(id, date)
	if err != nil {
		return s.fail(ctx, err)
	}
	tasks, err := s.h.GetDriverTasks.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPITasks(tasks))
}
