package ports

import (
	"context"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/station"
)

// StationRepository persists stations and owns the admission counter.
//
// Admit and Release are the only operations that write current_load. Both are single
// atomic statements so concurrent callers never observe or produce a load outside
// [0, capacity].
type StationRepository interface {
	Add(ctx context.Context, aggregate *station.Station) error

	// Get returns the station or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*station.Station, error)

	// Admit takes one slot. It returns an ObjectNotFoundError, station.ErrStationInactive
	// or station.ErrStationAtCapacity without changing anything when the slot is refused.
	Admit(ctx context.Context, id kernel.UUID) error

	// Release frees one slot, floored at zero.
	Release(ctx context.Context, id kernel.UUID) error

	// UpdateProfile writes the editable attributes (never current_load). It reports false
	// when the stored load exceeds the new capacity.
	UpdateProfile(ctx context.Context, aggregate *station.Station) (bool, error)
}
