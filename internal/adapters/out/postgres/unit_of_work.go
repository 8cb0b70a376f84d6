// Package postgres provides the GORM-based unit of work shared by the shipment, task and
// station repositories.
//
// A unit of work wraps one database transaction. Command handlers begin it, run their
// conditional updates through the repositories it hands out, and commit. A deferred
// Rollback after a successful Commit is a no-op:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	claimed, err := uow.TaskRepository().Claim(ctx, t)
//	...
//	if err := uow.StationRepository().Admit(ctx, stationID); err != nil {
//	    return err // task update is rolled back with it
//	}
//	return uow.Commit(ctx)
//
// Locks are always taken task row first, station row second.
//
// Begin goes through a circuit breaker. While the store is failing, new units of work are
// refused immediately with a StoreUnavailableError instead of queueing on a dead pool.
package postgres

import (
	"context"

	"prepcenter/internal/adapters/out/postgres/pgerrs"
	"prepcenter/internal/adapters/out/postgres/shipmentrepo"
	"prepcenter/internal/adapters/out/postgres/stationrepo"
	"prepcenter/internal/adapters/out/postgres/taskrepo"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/ports"
	"prepcenter/internal/pkg/resilience"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates one GormUnitOfWork per business operation.
type GormUnitOfWorkFactory struct {
	db      *gorm.DB
	breaker *resilience.CircuitBreaker
}

// NewGormUnitOfWorkFactory builds a factory. breaker may be nil, in which case Begin talks
// to the database directly.
func NewGormUnitOfWorkFactory(db *gorm.DB, breaker *resilience.CircuitBreaker) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, breaker: breaker}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		breaker:           f.breaker,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork is not safe for concurrent use; each goroutine creates its own.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	breaker           *resilience.CircuitBreaker
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. Calling it again on an open unit is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	begin := func() error {
		tx := uow.db.WithContext(ctx).Begin()
		if tx.Error != nil {
			return pgerrs.Wrap("begin transaction", tx.Error)
		}
		uow.tx = tx
		return nil
	}

	if uow.breaker == nil {
		return begin()
	}
	return uow.breaker.Execute(ctx, begin)
}

// Commit makes every repository write of this unit visible at once.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return pgerrs.Wrap("commit transaction", err)
	}

	trace.SpanFromContext(ctx).AddEvent("unit of work committed",
		trace.WithAttributes(attribute.Int("uow.aggregates", len(uow.trackedAggregates))))
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards the transaction. It returns gorm.ErrInvalidTransaction when nothing is
// open, which lets callers defer it unconditionally after Begin.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TaskRepository() ports.TaskRepository {
	return taskrepo.NewGormTaskRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) StationRepository() ports.StationRepository {
	return stationrepo.NewGormStationRepository(uow.conn(), uow)
}

// TrackAggregate records an aggregate written in this unit. Repositories call it.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount reports how many aggregate writes the open unit has made.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
