package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created through
	// NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrItemsAreRequired is returned when a shipment is declared without any item lines.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Shipment is the aggregate root for a client's inbound consignment.
//
// Shipment follows these invariants:
//   - Must have a valid identifier and owning client
//   - Status is always one of the defined pipeline values
//   - ItemCount equals the sum of item quantities at creation and is never recomputed
//   - Weight is never negative
//
// Status changes happen in memory through Advance or SetStatus; the repository then
// persists them, using the previous status as the compare-and-swap guard for Advance.
type Shipment struct {
	id           kernel.UUID
	clientID     kernel.UUID
	trackingCode string
	status       Status
	origin       string
	destination  string
	itemCount    int
	weight       decimal.Decimal
	notes        string
	items        []Item
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewShipment creates a DRAFT shipment owned by clientID.
//
// Parameters:
//   - id, clientID: valid identifiers
//   - trackingCode: carrier or client reference, required
//   - origin, destination: free text, may be empty
//   - weight: declared weight in kilograms, must not be negative
//   - items: at least one valid item; ItemCount is derived from them here and only here
//   - now: creation instant
//
// Example:
//
//	item, _ := shipment.NewItem(kernel.NewUUID(), "Water bottle", "WB-500", 24, "POLYBAG")
//	sh, err := shipment.NewShipment(kernel.NewUUID(), clientID, "1Z999", "Shenzhen", "FBA-PHX3",
//	    decimal.RequireFromString("12.5"), "", []shipment.Item{item}, clock.Now())
func NewShipment(
	id kernel.UUID,
	clientID kernel.UUID,
	trackingCode string,
	origin string,
	destination string,
	weight decimal.Decimal,
	notes string,
	items []Item,
	now time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        Draft,
		origin:        strings.TrimSpace(origin),
		destination:   strings.TrimSpace(destination),
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setClientID(clientID),
		s.setTrackingCode(trackingCode),
		s.setWeight(weight),
		s.setItems(items),
	); err != nil {
		return nil, err
	}

	for _, item := range s.items {
		s.itemCount += item.Quantity()
	}

	return s, nil
}

// RestoreShipment rebuilds a shipment from persistence without recomputing ItemCount.
func RestoreShipment(
	id kernel.UUID,
	clientID kernel.UUID,
	trackingCode string,
	status Status,
	origin string,
	destination string,
	itemCount int,
	weight decimal.Decimal,
	notes string,
	items []Item,
	createdAt time.Time,
	updatedAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        status,
		origin:        origin,
		destination:   destination,
		itemCount:     itemCount,
		notes:         notes,
		items:         items,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setClientID(clientID),
		s.setTrackingCode(trackingCode),
		s.setWeight(weight),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the shipment was built through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) ID() kernel.UUID { return s.id }
func (s *Shipment) ClientID() kernel.UUID { return s.clientID }
func (s *Shipment) TrackingCode() string { return s.trackingCode }
func (s *Shipment) Status() Status { return s.status }
func (s *Shipment) Origin() string { return s.origin }
func (s *Shipment) Destination() string { return s.destination }
func (s *Shipment) ItemCount() int { return s.itemCount }
func (s *Shipment) Weight() decimal.Decimal { return s.weight }
func (s *Shipment) Notes() string { return s.notes }
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }
func (s *Shipment) UpdatedAt() time.Time { return s.updatedAt }

// Items returns a copy of the declared item lines.
func (s *Shipment) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Advance moves the shipment exactly one step forward, the operator scan path.
//
// Returns:
//   - the status the shipment had before the call, which the repository uses as the
//     expected value of its conditional update
//   - InvalidStateError if the shipment is already DELIVERED
func (s *Shipment) Advance(now time.Time) (Status, error) {
	previous := s.status
	next, err := previous.Next()
	if errors.Is(err, ErrStatusIsTerminal) {
		return previous, errs.NewInvalidStateErrorWithCause("shipment", s.id.String(), previous.String(), "advance", err)
	}
	if err != nil {
		return previous, err
	}

	s.status = next
	s.updatedAt = now
	return previous, nil
}

// SetStatus is the administrative override: any valid status is accepted regardless of
// the current one, including the current status itself.
func (s *Shipment) SetStatus(target Status, now time.Time) (Status, error) {
	if err := target.Validate(); err != nil {
		return s.status, err
	}

	previous := s.status
	s.status = target
	s.updatedAt = now
	return previous, nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	s.clientID = clientID
	return nil
}

func (s *Shipment) setTrackingCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}
	s.trackingCode = code
	return nil
}

func (s *Shipment) setWeight(weight decimal.Decimal) error {
	if weight.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%s is negative", weight.String()))
	}
	s.weight = weight
	return nil
}

func (s *Shipment) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	s.items = make([]Item, len(items))
	copy(s.items, items)
	return nil
}
