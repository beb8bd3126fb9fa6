package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateTask handles POST /api/v1/logistics/tasks.
func (s *Server) CreateTask(ctx echo.Context) error {
	var body servers.NewTask
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromGoogle(body.OrderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	kind, err := task.ParseKind(string(body.Kind))
	if err != nil {
		return s.fail(ctx, err)
	}
	window, err := parseWindow(body.AvailableFrom, body.AvailableTo)
	if err != nil {
		return s.fail(ctx, err)
	}
	point, err := kernel.NewGeoPointFromOptional(body.Latitude, body.Longitude)
	if err != nil {
		return s.fail(ctx, err)
	}

	address := commands.TaskAddressInput{Street: derefString(body.Street), Point: point}
	if body.AddressId != nil {
		addressID, err := kernel.UUIDFromGoogle(*body.AddressId)
		if err != nil {
			return s.fail(ctx, err)
		}
		address.AddressID = &addressID
	}

	cmd, err := commands.NewCreateTaskCommand(
		orderID,
		kind,
		kernel.DateOf(body.ScheduledDate.Time),
		window,
		address,
		task.Contact{Name: derefString(body.ContactName), Phone: derefString(body.ContactPhone)},
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.CreateTask.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondTask(ctx, http.StatusCreated, cmd.TaskID())
}

// GetTask handles GET /api/v1/logistics/tasks/{taskId}.
func (s *Server) GetTask(ctx echo.Context, taskId openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(taskId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondTask(ctx, http.StatusOK, id)
}

// ListPendingTasks handles GET /api/v1/logistics/tasks/pending.
func (s *Server) ListPendingTasks(ctx echo.Context) error {
	pending, err := s.h.PendingTasks.Handle(ctx.Request().Context(), queries.NewGetPendingTasksQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.PendingTask, len(pending))
	for i, p := range pending {
		response[i] = toAPIPendingTask(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ScheduleTask handles PUT /api/v1/logistics/tasks/{taskId}/schedule.
func (s *Server) ScheduleTask(ctx echo.Context, taskId openapi_types.UUID) error {
	var body servers.TaskSchedule
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(taskId)
	if err != nil {
		return s.fail(ctx, err)
	}
	window, err := parseWindow(body.AvailableFrom, body.AvailableTo)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewScheduleTaskCommand(id, kernel.DateOf(body.ScheduledDate.Time), window)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.ScheduleTask.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondTask(ctx, http.StatusOK, id)
}

// UpdateTaskStatus handles PUT /api/v1/logistics/tasks/{taskId}/status.
func (s *Server) UpdateTaskStatus(ctx echo.Context, taskId openapi_types.UUID) error {
	var body servers.StatusChange
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	status, err := task.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.changeStatus(ctx, taskId, func(id kernel.UUID) (commands.ChangeTaskStatusCommand, error) {
		return commands.NewChangeTaskStatusCommand(id, status)
	})
}

// StartTask handles POST /api/v1/logistics/tasks/{taskId}/start.
func (s *Server) StartTask(ctx echo.Context, taskId openapi_types.UUID) error {
	return s.changeStatus(ctx, taskId, commands.NewStartTaskCommand)
}

// CompleteTask handles POST /api/v1/logistics/tasks/{taskId}/complete.
func (s *Server) CompleteTask(ctx echo.Context, taskId openapi_types.UUID) error {
	return s.changeStatus(ctx, taskId, commands.NewCompleteTaskCommand)
}

// CancelTask handles POST /api/v1/logistics/tasks/{taskId}/cancel.
func (s *Server) CancelTask(ctx echo.Context, taskId openapi_types.UUID) error {
	return s.changeStatus(ctx, taskId, commands.NewCancelTaskCommand)
}

func (s *Server) changeStatus(
	ctx echo.Context,
	taskId openapi_types.UUID,
	build func(kernel.UUID) (commands.ChangeTaskStatusCommand, error),
) error {
	id, err := kernel.UUIDFromGoogle(taskId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := build(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.ChangeTaskStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondTask(ctx, http.StatusOK, id)
}

// AssignDriver handles PUT /api/v1/logistics/tasks/{taskId}/driver.
func (s *Server) AssignDriver(ctx echo.Context, taskId openapi_types.UUID) error {
	var body servers.DriverAssignment
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(taskId)
	if err != nil {
		return s.fail(ctx, err)
	}
	driverID, err := kernel.UUIDFromGoogle(body.DriverId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(id, driverID)
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.h.AssignDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIAssignment(result))
}

// AutoAssignTask handles POST /api/v1/logistics/tasks/{taskId}/auto-assign.
func (s *Server) AutoAssignTask(ctx echo.Context, taskId openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(taskId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAutoAssignTaskCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.h.AutoAssignTask.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIAssignment(result))
}

// FindNearestDriver handles GET /api/v1/logistics/tasks/{taskId}/drivers/nearest.
func (s *Server) FindNearestDriver(ctx echo.Context, taskId openapi_types.UUID) error {
	return s.findDriver(ctx, taskId, queries.ScoringNearest)
}

// FindBestDriver handles GET /api/v1/logistics/tasks/{taskId}/drivers/best.
func (s *Server) FindBestDriver(ctx echo.Context, taskId openapi_types.UUID) error {
	return s.findDriver(ctx, taskId, queries.ScoringBest)
}

func (s *Server) findDriver(ctx echo.Context, taskId openapi_types.UUID, mode queries.ScoringMode) error {
	id, err := kernel.UUIDFromGoogle(taskId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewFindDriverQuery(id, mode)
	if err != nil {
		return s.fail(ctx, err)
	}
	score, err := s.h.FindDriver.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIRecommendation(score))
}

// GeocodeTask handles POST /api/v1/logistics/tasks/{taskId}/geocode.
func (s *Server) GeocodeTask(ctx echo.Context, taskId openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(taskId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewGeocodeTaskCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	point, err := s.h.GeocodeTask.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	lat, lon := coordinates(point)
	return ctx.JSON(http.StatusOK, servers.GeocodeResult{
		Geocoded:  point != nil,
		Latitude:  lat,
		Longitude: lon,
	})
}

// EstimateTravelTime handles GET /api/v1/logistics/tasks/{taskId}/travel-time.
func (s *Server) EstimateTravelTime(ctx echo.Context, taskId openapi_types.UUID, params servers.EstimateTravelTimeParams) error {
	id, err := kernel.UUIDFromGoogle(taskId)
	if err != nil {
		return s.fail(ctx, err)
	}
	from, err := kernel.NewGeoPoint(params.Lat, params.Lon)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewEstimateTravelTimeQuery(id, from)
	if err != nil {
		return s.fail(ctx, err)
	}
	estimate, err := s.h.EstimateTravelTime.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.TravelEstimate{
		DistanceKm: estimate.DistanceKm,
		Minutes:    estimate.Minutes,
	})
}

// RecordSignature handles PUT /api/v1/logistics/tasks/{taskId}/signature.
func (s *Server) RecordSignature(ctx echo.Context, taskId openapi_types.UUID) error {
	var body servers.Signature
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(taskId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRecordSignatureCommand(id, body.Path)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.CaptureTaskData.RecordSignature(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddTaskPhotos handles POST /api/v1/logistics/tasks/{taskId}/photos.
func (s *Server) AddTaskPhotos(ctx echo.Context, taskId openapi_types.UUID) error {
	var body servers.Photos
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(taskId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewAddTaskPhotosCommand(id, body.Paths...)
	if err != nil {
		return s.fail(ctx, err)
	}
	added, err := s.h.CaptureTaskData.AddPhotos(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.PhotoBatchResult{Added: added})
}

// RemoveTaskPhoto handles DELETE /api/v1/logistics/tasks/{taskId}/photos.
func (s *Server) RemoveTaskPhoto(ctx echo.Context, taskId openapi_types.UUID, params servers.RemoveTaskPhotoParams) error {
	id, err := kernel.UUIDFromGoogle(taskId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRemoveTaskPhotoCommand(id, params.Path)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.CaptureTaskData.RemovePhoto(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondTask(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetTaskQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	t, err := s.h.GetTask.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, toAPITask(t))
}

func toAPIAssignment(r commands.AssignmentResult) servers.Assignment {
	return servers.Assignment{
		TaskId:     r.TaskID.Bytes(),
		DriverId:   r.DriverID.Bytes(),
		DriverName: r.DriverName,
		RouteSize:  r.RouteSize,
	}
}
