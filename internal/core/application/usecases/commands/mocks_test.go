package commands_test

import (
	"context"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/shipment"
	"prepcenter/internal/core/domain/model/station"
	"prepcenter/internal/core/domain/model/task"
	"prepcenter/internal/core/domain/services"
	"prepcenter/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) TaskRepository() ports.TaskRepository {
	return m.Called().Get(0).(ports.TaskRepository)
}

func (m *MockUoW) StationRepository() ports.StationRepository {
	return m.Called().Get(0).(ports.StationRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() ports.UnitOfWork {
	return m.Called().Get(0).(ports.UnitOfWork)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) UpdateStatusIf(ctx context.Context, s *shipment.Shipment, expected shipment.Status) (bool, error) {
	args := m.Called(ctx, s, expected)
	return args.Bool(0), args.Error(1)
}

func (m *MockShipmentRepository) UpdateStatus(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

type MockTaskRepository struct{ mock.Mock }

func (m *MockTaskRepository) Add(ctx context.Context, t *task.Task) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockTaskRepository) Claim(ctx context.Context, t *task.Task) (bool, error) {
	args := m.Called(ctx, t)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaskRepository) Complete(ctx context.Context, t *task.Task) (bool, error) {
	args := m.Called(ctx, t)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaskRepository) Cancel(ctx context.Context, t *task.Task, from task.Status) (bool, error) {
	args := m.Called(ctx, t, from)
	return args.Bool(0), args.Error(1)
}

type MockStationRepository struct{ mock.Mock }

func (m *MockStationRepository) Add(ctx context.Context, s *station.Station) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStationRepository) Get(ctx context.Context, id kernel.UUID) (*station.Station, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.Station), args.Error(1)
}

func (m *MockStationRepository) Admit(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStationRepository) Release(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStationRepository) UpdateProfile(ctx context.Context, s *station.Station) (bool, error) {
	args := m.Called(ctx, s)
	return args.Bool(0), args.Error(1)
}

type MockDispatcher struct{ mock.Mock }

func (m *MockDispatcher) Dispatch(ctx context.Context, t services.Transition) {
	m.Called(ctx, t)
}
