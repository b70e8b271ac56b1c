// Package product contains the Product aggregate: an inventory item
// independent of any deployment. Its status moves between available and
// assigned only through the asset lifecycle.
package product

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusAssigned  Status = "assigned"
	StatusInService Status = "in_service"
	StatusRetired   Status = "retired"
)

var validStatuses = map[Status]bool{
	StatusAvailable: true,
	StatusAssigned:  true,
	StatusInService: true,
	StatusRetired:   true,
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) String() string {
	return string(s)
}

type Product struct {
	id           uint
	category     string
	manufacturer string
	model        string
	serialNumber string
	purchaseDate *time.Time
	warrantyEnd  *time.Time
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

// NewProduct creates a product in the available state. Serial number
// uniqueness is checked by the usecase before insert.
func NewProduct(category, manufacturer, model, serialNumber string, purchaseDate, warrantyEnd *time.Time) (*Product, error) {
	if len(strings.TrimSpace(category)) == 0 {
		return nil, fmt.Errorf("category is required")
	}
	serialNumber = strings.TrimSpace(serialNumber)
	if len(serialNumber) == 0 {
		return nil, fmt.Errorf("serial number is required")
	}

	now := time.Now()
	return &Product{
		category:     category,
		manufacturer: manufacturer,
		model:        model,
		serialNumber: serialNumber,
		purchaseDate: purchaseDate,
		warrantyEnd:  warrantyEnd,
		status:       StatusAvailable,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructProduct rebuilds a product from persisted state.
func ReconstructProduct(
	id uint,
	category, manufacturer, model, serialNumber string,
	purchaseDate, warrantyEnd *time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	if id == 0 {
		return nil, fmt.Errorf("product ID cannot be zero")
	}
	if len(category) == 0 {
		return nil, fmt.Errorf("category is required")
	}
	if len(serialNumber) == 0 {
		return nil, fmt.Errorf("serial number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Product{
		id:           id,
		category:     category,
		manufacturer: manufacturer,
		model:        model,
		serialNumber: serialNumber,
		purchaseDate: purchaseDate,
		warrantyEnd:  warrantyEnd,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *Product) ID() uint                  { return p.id }
func (p *Product) Category() string          { return p.category }
func (p *Product) Manufacturer() string      { return p.manufacturer }
func (p *Product) Model() string             { return p.model }
func (p *Product) SerialNumber() string      { return p.serialNumber }
func (p *Product) PurchaseDate() *time.Time  { return p.purchaseDate }
func (p *Product) WarrantyEnd() *time.Time   { return p.warrantyEnd }
func (p *Product) Status() Status            { return p.status }
func (p *Product) CreatedAt() time.Time      { return p.createdAt }
func (p *Product) UpdatedAt() time.Time      { return p.updatedAt }

func (p *Product) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("product ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("product ID cannot be zero")
	}
	p.id = id
	return nil
}

// IsAvailable reports whether the product can be bound to a school.
func (p *Product) IsAvailable() bool {
	return p.status == StatusAvailable
}

// MarkAssigned flips the product into the assigned state. Called only by the
// asset lifecycle inside its transaction.
func (p *Product) MarkAssigned() error {
	if p.status != StatusAvailable {
		return fmt.Errorf("product is not available (status %s)", p.status)
	}
	p.status = StatusAssigned
	p.updatedAt = time.Now()
	return nil
}

// Release returns the product to the available state when its asset is
// deleted.
func (p *Product) Release() {
	p.status = StatusAvailable
	p.updatedAt = time.Now()
}

// Retire removes the product from circulation. Fails while assigned.
func (p *Product) Retire() error {
	if p.status == StatusAssigned {
		return fmt.Errorf("cannot retire an assigned product")
	}
	p.status = StatusRetired
	p.updatedAt = time.Now()
	return nil
}

// UpdateDetails mutates descriptive fields only. Status is never written
// directly; it is owned by the asset lifecycle.
func (p *Product) UpdateDetails(category, manufacturer, model string, purchaseDate, warrantyEnd *time.Time) error {
	if len(strings.TrimSpace(category)) == 0 {
		return fmt.Errorf("category is required")
	}

	p.category = category
	p.manufacturer = manufacturer
	p.model = model
	p.purchaseDate = purchaseDate
	p.warrantyEnd = warrantyEnd
	p.updatedAt = time.Now()
	return nil
}
