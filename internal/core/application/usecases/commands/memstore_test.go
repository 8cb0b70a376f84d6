package commands_test

import (
	"context"
	"errors"
	"maps"
	"sync"

	"prepcenter/internal/core/domain/model/activity"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/shipment"
	"prepcenter/internal/core/domain/model/station"
	"prepcenter/internal/core/domain/model/task"
	"prepcenter/internal/core/ports"
	"prepcenter/internal/pkg/errs"
)

// memStore is a serializable in-memory entity store. A unit of work holds the store lock
// from Begin to Commit or Rollback, so transactions never interleave.
type memStore struct {
	mu        sync.Mutex
	shipments map[kernel.UUID]*shipment.Shipment
	tasks     map[kernel.UUID]*task.Task
	stations  map[kernel.UUID]*station.Station
}

func newMemStore() *memStore {
	return &memStore{
		shipments: map[kernel.UUID]*shipment.Shipment{},
		tasks:     map[kernel.UUID]*task.Task{},
		stations:  map[kernel.UUID]*station.Station{},
	}
}

func (s *memStore) Create() ports.UnitOfWork {
	return &memUoW{store: s}
}

// station returns the committed state of a station, for assertions.
func (s *memStore) station(id kernel.UUID) *station.Station {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneStation(s.stations[id])
}

func (s *memStore) task(id kernel.UUID) *task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTask(s.tasks[id])
}

func (s *memStore) shipment(id kernel.UUID) *shipment.Shipment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneShipment(s.shipments[id])
}

type memUoW struct {
	store     *memStore
	active    bool
	shipments map[kernel.UUID]*shipment.Shipment
	tasks     map[kernel.UUID]*task.Task
	stations  map[kernel.UUID]*station.Station
}

func (u *memUoW) Begin(_ context.Context) error {
	if u.active {
		return nil
	}
	u.store.mu.Lock()
	u.active = true
	u.shipments = maps.Clone(u.store.shipments)
	u.tasks = maps.Clone(u.store.tasks)
	u.stations = maps.Clone(u.store.stations)
	return nil
}

func (u *memUoW) Commit(_ context.Context) error {
	if !u.active {
		return errors.New("no active transaction")
	}
	u.store.shipments = u.shipments
	u.store.tasks = u.tasks
	u.store.stations = u.stations
	u.active = false
	u.store.mu.Unlock()
	return nil
}

func (u *memUoW) Rollback(_ context.Context) error {
	if !u.active {
		return errors.New("no active transaction")
	}
	u.active = false
	u.store.mu.Unlock()
	return nil
}

func (u *memUoW) ShipmentRepository() ports.ShipmentRepository { return memShipments{u} }
func (u *memUoW) TaskRepository() ports.TaskRepository { return memTasks{u} }
func (u *memUoW) StationRepository() ports.StationRepository { return memStations{u} }

type memShipments struct{ u *memUoW }

func (r memShipments) Add(_ context.Context, s *shipment.Shipment) error {
	r.u.shipments[s.ID()] = cloneShipment(s)
	return nil
}

func (r memShipments) Get(_ context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	s, ok := r.u.shipments[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("shipment", id)
	}
	return cloneShipment(s), nil
}

func (r memShipments) UpdateStatusIf(_ context.Context, s *shipment.Shipment, expected shipment.Status) (bool, error) {
	stored, ok := r.u.shipments[s.ID()]
	if !ok || stored.Status() != expected {
		return false, nil
	}
	r.u.shipments[s.ID()] = cloneShipment(s)
	return true, nil
}

func (r memShipments) UpdateStatus(_ context.Context, s *shipment.Shipment) error {
	if _, ok := r.u.shipments[s.ID()]; !ok {
		return errs.NewObjectNotFoundError("shipment", s.ID())
	}
	r.u.shipments[s.ID()] = cloneShipment(s)
	return nil
}

type memTasks struct{ u *memUoW }

func (r memTasks) Add(_ context.Context, t *task.Task) error {
	r.u.tasks[t.ID()] = cloneTask(t)
	return nil
}

func (r memTasks) Get(_ context.Context, id kernel.UUID) (*task.Task, error) {
	t, ok := r.u.tasks[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("task", id)
	}
	return cloneTask(t), nil
}

func (r memTasks) Claim(_ context.Context, t *task.Task) (bool, error) {
	stored, ok := r.u.tasks[t.ID()]
	if !ok || stored.Status() != task.Pending {
		return false, nil
	}
	if stored.AssigneeID() != nil && !kernel.PtrEqual(stored.AssigneeID(), t.AssigneeID()) {
		return false, nil
	}
	r.u.tasks[t.ID()] = cloneTask(t)
	return true, nil
}

func (r memTasks) Complete(_ context.Context, t *task.Task) (bool, error) {
	stored, ok := r.u.tasks[t.ID()]
	if !ok || stored.Status() != task.InProgress || !kernel.PtrEqual(stored.AssigneeID(), t.AssigneeID()) {
		return false, nil
	}
	r.u.tasks[t.ID()] = cloneTask(t)
	return true, nil
}

func (r memTasks) Cancel(_ context.Context, t *task.Task, from task.Status) (bool, error) {
	stored, ok := r.u.tasks[t.ID()]
	if !ok || stored.Status() != from {
		return false, nil
	}
	r.u.tasks[t.ID()] = cloneTask(t)
	return true, nil
}

type memStations struct{ u *memUoW }

func (r memStations) Add(_ context.Context, s *station.Station) error {
	r.u.stations[s.ID()] = cloneStation(s)
	return nil
}

func (r memStations) Get(_ context.Context, id kernel.UUID) (*station.Station, error) {
	s, ok := r.u.stations[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("station", id)
	}
	return cloneStation(s), nil
}

func (r memStations) Admit(_ context.Context, id kernel.UUID) error {
	stored, ok := r.u.stations[id]
	if !ok {
		return errs.NewObjectNotFoundError("station", id)
	}
	next := cloneStation(stored)
	if err := next.Admit(); err != nil {
		return err
	}
	r.u.stations[id] = next
	return nil
}

func (r memStations) Release(_ context.Context, id kernel.UUID) error {
	stored, ok := r.u.stations[id]
	if !ok {
		return errs.NewObjectNotFoundError("station", id)
	}
	next := cloneStation(stored)
	next.Release()
	r.u.stations[id] = next
	return nil
}

func (r memStations) UpdateProfile(_ context.Context, s *station.Station) (bool, error) {
	stored, ok := r.u.stations[s.ID()]
	if !ok {
		return false, errs.NewObjectNotFoundError("station", s.ID())
	}
	if stored.CurrentLoad() > s.Capacity() {
		return false, nil
	}
	next, err := station.RestoreStation(s.ID(), s.Name(), s.Type(), s.Status(), s.Capacity(),
		stored.CurrentLoad(), s.OperatorID(), s.CreatedAt(), s.UpdatedAt())
	if err != nil {
		return false, err
	}
	r.u.stations[s.ID()] = next
	return true, nil
}

func cloneShipment(s *shipment.Shipment) *shipment.Shipment {
	if s == nil {
		return nil
	}
	c, err := shipment.RestoreShipment(s.ID(), s.ClientID(), s.TrackingCode(), s.Status(), s.Origin(),
		s.Destination(), s.ItemCount(), s.Weight(), s.Notes(), s.Items(), s.CreatedAt(), s.UpdatedAt())
	if err != nil {
		panic(err)
	}
	return c
}

func cloneTask(t *task.Task) *task.Task {
	if t == nil {
		return nil
	}
	c, err := task.RestoreTask(t.ID(), task.Spec{
		Title:       t.Title(),
		Description: t.Description(),
		Priority:    t.Priority(),
		Type:        t.Type(),
		AssigneeID:  t.AssigneeID(),
		ShipmentID:  t.ShipmentID(),
		StationID:   t.StationID(),
		DueDate:     t.DueDate(),
	}, t.Status(), t.CompletedAt(), t.CreatedAt(), t.UpdatedAt())
	if err != nil {
		panic(err)
	}
	return c
}

func cloneStation(s *station.Station) *station.Station {
	if s == nil {
		return nil
	}
	c, err := station.RestoreStation(s.ID(), s.Name(), s.Type(), s.Status(), s.Capacity(), s.CurrentLoad(),
		s.OperatorID(), s.CreatedAt(), s.UpdatedAt())
	if err != nil {
		panic(err)
	}
	return c
}

// inbox records delivered notifications and activity entries.
type inbox struct {
	mu            sync.Mutex
	notifications []activity.Notification
	entries       []activity.Entry
}

func (i *inbox) Notify(_ context.Context, n activity.Notification) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.notifications = append(i.notifications, n)
	return nil
}

func (i *inbox) Append(_ context.Context, e activity.Entry) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.entries = append(i.entries, e)
	return nil
}

func (i *inbox) notificationsFor(user kernel.UUID) []activity.Notification {
	i.mu.Lock()
	defer i.mu.Unlock()
	var out []activity.Notification
	for _, n := range i.notifications {
		if n.UserID().IsEqual(user) {
			out = append(out, n)
		}
	}
	return out
}

func (i *inbox) actions() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := make([]string, 0, len(i.entries))
	for _, e := range i.entries {
		out = append(out, e.Action())
	}
	return out
}
