package services

import (
	"cmp"
	"slices"

	"logistics/internal/core/domain/model/task"
)

// OrderByRoute returns tasks in persisted route order: sequenced tasks first by
// sequence number, then unsequenced tasks by availableFrom (missing last), then id.
// The input slice is not modified.
func OrderByRoute(tasks []*task.Task) []*task.Task {
	ordered := slices.Clone(tasks)
	slices.SortStableFunc(ordered, func(a, b *task.Task) int {
		sa, sb := a.Sequence(), b.Sequence()
		switch {
		case sa != nil && sb != nil:
			if c := cmp.Compare(*sa, *sb); c != 0 {
				return c
			}
		case sa != nil:
			return -1
		case sb != nil:
			return 1
		}
		return compareByAvailability(a, b)
	})
	return ordered
}

// compareByAvailability orders by window start, tasks without a start last, then by id.
func compareByAvailability(a, b *task.Task) int {
	fa, fb := a.Window().From(), b.Window().From()
	switch {
	case fa != nil && fb != nil:
		if c := cmp.Compare(fa.Minutes(), fb.Minutes()); c != 0 {
			return c
		}
	case fa != nil:
		return -1
	case fb != nil:
		return 1
	}
	return cmp.Compare(a.ID().String(), b.ID().String())
}

// ExcludeCancelled drops cancelled tasks, which never belong to a route.
func ExcludeCancelled(tasks []*task.Task) []*task.Task {
	kept := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status() != task.StatusCancelled {
			kept = append(kept, t)
		}
	}
	return kept
}
