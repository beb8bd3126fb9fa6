package http

import (
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/article"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/services"
	"logistics/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toAPIDate(d kernel.Date) openapi_types.Date {
	return openapi_types.Date{Time: d.Time()}
}

func toAPIUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	v := id.Bytes()
	return &v
}

func windowBounds(w kernel.TimeWindow) (from, to *string) {
	if f := w.From(); f != nil {
		s := f.String()
		from = &s
	}
	if t := w.To(); t != nil {
		s := t.String()
		to = &s
	}
	return from, to
}

func coordinates(p *kernel.GeoPoint) (lat, lon *float64) {
	if p == nil {
		return nil, nil
	}
	la, lo := p.Lat(), p.Lon()
	return &la, &lo
}

func toAPITask(t *task.Task) servers.Task {
	from, to := windowBounds(t.Window())
	lat, lon := coordinates(t.Location())

	var signature *string
	if path := t.SignaturePath(); path != "" {
		signature = &path
	}

	photos := t.PhotoPaths()
	if photos == nil {
		photos = []string{}
	}

	return servers.Task{
		Id:            t.ID().Bytes(),
		OrderId:       t.OrderID().Bytes(),
		Kind:          servers.TaskKind(t.Kind().String()),
		Status:        servers.TaskStatus(t.Status().String()),
		ScheduledDate: toAPIDate(t.ScheduledDate()),
		AvailableFrom: from,
		AvailableTo:   to,
		Street:        t.Address().Street(),
		Latitude:      lat,
		Longitude:     lon,
		AddressId:     toAPIUUID(t.AddressID()),
		DriverId:      toAPIUUID(t.DriverID()),
		SequenceOrder: t.Sequence(),
		ContactName:   t.Contact().Name,
		ContactPhone:  t.Contact().Phone,
		ArrivalTime:   t.ArrivalTime(),
		CompletedAt:   t.CompletedAt(),
		CancelledAt:   t.CancelledAt(),
		SignaturePath: signature,
		PhotoPaths:    photos,
		CreatedAt:     t.CreatedAt(),
	}
}

func toAPITasks(tasks []*task.Task) []servers.Task {
	response := make([]servers.Task, len(tasks))
	for i, t := range tasks {
		response[i] = toAPITask(t)
	}
	return response
}

func toAPIPendingTask(p queries.PendingTask) servers.PendingTask {
	from, to := windowBounds(p.Window)
	return servers.PendingTask{
		Id:             p.ID.Bytes(),
		OrderId:        p.OrderID.Bytes(),
		Kind:           servers.TaskKind(p.Kind.String()),
		ScheduledDate:  toAPIDate(p.ScheduledDate),
		AvailableFrom:  from,
		AvailableTo:    to,
		Street:         p.Street,
		HasCoordinates: p.HasCoordinates,
		DriverId:       toAPIUUID(p.DriverID),
		SequenceOrder:  p.Sequence,
	}
}

func toAPIArticle(a *article.Article) servers.Article {
	return servers.Article{
		Id:           a.ID().Bytes(),
		OrderId:      a.OrderID().Bytes(),
		Name:         a.Name(),
		ActualWeight: a.ActualWeight(),
	}
}

func toAPIRecommendation(s services.Score) servers.DriverRecommendation {
	return servers.DriverRecommendation{
		DriverId:   s.Driver.ID().Bytes(),
		DriverName: s.Driver.Name(),
		AnchorKm:   s.AnchorKm,
		Workload:   s.Workload,
		Score:      s.Value,
	}
}

func toAPIRoute(r queries.Route) servers.Route {
	return servers.Route{
		DriverId: r.DriverID.Bytes(),
		Date:     toAPIDate(r.Date),
		Stops:    toAPITasks(r.Stops),
		Unrouted: toAPITasks(r.Unrouted),
	}
}

func toAPIDriver(d queries.GetAllDriversQueryResponse) servers.Driver {
	lat, lon := coordinates(d.Location)
	return servers.Driver{
		Id:          d.ID.Bytes(),
		Name:        d.Name,
		IsAvailable: d.IsAvailable,
		Latitude:    lat,
		Longitude:   lon,
	}
}

// parseWindow reads optional "15:04" bounds. Absent bounds leave the window open on that side.
func parseWindow(from, to *string) (kernel.TimeWindow, error) {
	var bounds [2]*kernel.TimeOfDay
	for i, raw := range []*string{from, to} {
		if raw == nil || *raw == "" {
			continue
		}
		t, err := kernel.ParseTimeOfDay(*raw)
		if err != nil {
			return kernel.TimeWindow{}, err
		}
		bounds[i] = &t
	}
	return kernel.NewTimeWindow(bounds[0], bounds[1])
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
