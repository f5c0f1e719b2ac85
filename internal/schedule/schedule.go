// Package schedule implements the action engine: per-day partitions,
// status toggling, and whole-record upserts. All operations are pure.
package schedule

import (
	"sort"
	"time"

	"daybook/internal/model"
)

// Partition is the three-way split of actions for one calendar day.
type Partition struct {
	// Timed holds actions scheduled to the day with a clock time,
	// ascending by time.
	Timed []model.Action
	// Untimed holds actions scheduled to the day without a time,
	// ascending by sort order.
	Untimed []model.Action
	// Undated holds the global backlog of active actions with no date.
	// It is date-invariant: the same backlog regardless of the key.
	Undated []model.Action
}

// PartitionForDate splits actions for the given YYYY-MM-DD date key.
// Cancelled actions are excluded from every group.
func PartitionForDate(actions []model.Action, dateKey string) Partition {
	var p Partition
	for _, a := range actions {
		switch {
		case a.Date == dateKey && a.Status != model.StatusCancelled:
			if a.Time != "" {
				p.Timed = append(p.Timed, a)
			} else {
				p.Untimed = append(p.Untimed, a)
			}
		case a.Date == "" && a.Status == model.StatusActive:
			p.Undated = append(p.Undated, a)
		}
	}
	// Zero-padded HH:MM compares correctly as a string.
	sort.SliceStable(p.Timed, func(i, j int) bool {
		return p.Timed[i].Time < p.Timed[j].Time
	})
	sort.SliceStable(p.Untimed, func(i, j int) bool {
		return p.Untimed[i].SortOrder < p.Untimed[j].SortOrder
	})
	return p
}

// DayStats summarizes a day partition for the header cards.
type DayStats struct {
	Done      int
	Remaining int
	Backlog   int
}

// Stats counts done and remaining actions on the day plus the undated
// backlog size.
func (p Partition) Stats() DayStats {
	var s DayStats
	for _, group := range [][]model.Action{p.Timed, p.Untimed} {
		for _, a := range group {
			switch a.Status {
			case model.StatusDone:
				s.Done++
			case model.StatusActive:
				s.Remaining++
			}
		}
	}
	s.Backlog = len(p.Undated)
	return s
}

// ToggleStatus flips an action between active and done. Transitioning to
// done stamps CompletedAt with now; transitioning back clears it. A
// cancelled action is returned unchanged: cancellation is terminal and
// only reachable by direct edit.
func ToggleStatus(a model.Action, now time.Time) model.Action {
	switch a.Status {
	case model.StatusActive:
		a.Status = model.StatusDone
		a.CompletedAt = &now
	case model.StatusDone:
		a.Status = model.StatusActive
		a.CompletedAt = nil
	}
	return a
}

// UpsertAction replaces an action by id or appends it. On replacement
// the prior record's CreatedAt and SortOrder survive unless the incoming
// record overwrites them, and UpdatedAt is stamped. On first insert a
// zero SortOrder defaults to the creation unix-milli timestamp.
func UpsertAction(a model.Action, actions []model.Action, now time.Time) []model.Action {
	for i, existing := range actions {
		if existing.ID == a.ID {
			if a.CreatedAt.IsZero() {
				a.CreatedAt = existing.CreatedAt
			}
			if a.SortOrder == 0 {
				a.SortOrder = existing.SortOrder
			}
			a.UpdatedAt = now
			out := make([]model.Action, len(actions))
			copy(out, actions)
			out[i] = a
			return out
		}
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.SortOrder == 0 {
		a.SortOrder = a.CreatedAt.UnixMilli()
	}
	a.UpdatedAt = now
	out := make([]model.Action, 0, len(actions)+1)
	out = append(out, actions...)
	out = append(out, a)
	return out
}

// DeleteAction removes an action by id.
func DeleteAction(id string, actions []model.Action) []model.Action {
	out := make([]model.Action, 0, len(actions))
	for _, a := range actions {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}
