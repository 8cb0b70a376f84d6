package shipment

import (
	"fmt"
	"strings"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/pkg/errs"
	"prepcenter/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("Item must be created via NewItem constructor")

// Item is one declared line of a shipment. Items are fixed once the shipment is created.
type Item struct {
	id          kernel.UUID
	productName string
	sku         string
	quantity    int
	prepType    string

	guard guard.ConstructorGuard
}

// NewItem validates and builds an item. PrepType is a free-form tag such as
// "POLYBAG" or "LABEL"; it may be empty.
func NewItem(id kernel.UUID, productName, sku string, quantity int, prepType string) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("productName")
	}
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return Item{}, errs.NewValueIsRequiredError("sku")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return Item{
		id:          id,
		productName: productName,
		sku:         sku,
		quantity:    quantity,
		prepType:    strings.TrimSpace(prepType),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ID() kernel.UUID { return i.id }
func (i Item) ProductName() string { return i.productName }
func (i Item) SKU() string { return i.sku }
func (i Item) Quantity() int { return i.quantity }
func (i Item) PrepType() string { return i.prepType }
