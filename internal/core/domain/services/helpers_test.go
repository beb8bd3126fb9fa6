package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"

	"github.com/stretchr/testify/require"
)

var routeDate = kernel.NewDate(2024, time.May, 1)

type stop struct {
	kind     task.Kind
	lat, lon *float64
	from, to string
	seq      int
}

func coords(lat, lon float64) (*float64, *float64) {
	return &lat, &lon
}

func newStop(t *testing.T, s stop) *task.Task {
	t.Helper()

	point, err := kernel.NewGeoPointFromOptional(s.lat, s.lon)
	require.NoError(t, err)
	address, err := kernel.NewAddress("stop", point)
	require.NoError(t, err)

	var from, to *kernel.TimeOfDay
	if s.from != "" {
		f, err := kernel.ParseTimeOfDay(s.from)
		require.NoError(t, err)
		from = &f
	}
	if s.to != "" {
		e, err := kernel.ParseTimeOfDay(s.to)
		require.NoError(t, err)
		to = &e
	}
	window, err := kernel.NewTimeWindow(from, to)
	require.NoError(t, err)

	kind := s.kind
	if kind == task.KindUnknown {
		kind = task.KindPickup
	}

	tk, err := task.NewTask(kernel.NewUUID(), kernel.NewUUID(), kind, routeDate, window, address, nil,
		task.Contact{}, time.Now())
	require.NoError(t, err)
	if s.seq > 0 {
		require.NoError(t, tk.SetSequence(s.seq))
	}
	return tk
}

func geoStop(t *testing.T, lat, lon float64) *task.Task {
	t.Helper()
	la, lo := coords(lat, lon)
	return newStop(t, stop{lat: la, lon: lo})
}

func newDriver(t *testing.T, name string, location *kernel.GeoPoint) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), name, location)
	require.NoError(t, err)
	return d
}

func ids(tasks []*task.Task) []string {
	out := make([]string, len(tasks))
	for i, tk := range tasks {
		out[i] = tk.ID().String()
	}
	return out
}
