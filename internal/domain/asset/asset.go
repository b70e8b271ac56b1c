// Package asset contains the Asset aggregate: the binding of exactly one
// product to exactly one school. An asset exists if and only if its product
// is not available; the asset lifecycle usecases keep the two in step inside
// a single transaction.
package asset

import (
	"fmt"
	"strings"
	"time"

	"campusdesk/internal/shared/id"
)

type Status string

const (
	StatusInService   Status = "in_service"
	StatusUnderRepair Status = "under_repair"
	StatusRetired     Status = "retired"
)

var validStatuses = map[Status]bool{
	StatusInService:   true,
	StatusUnderRepair: true,
	StatusRetired:     true,
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) String() string {
	return string(s)
}

type Asset struct {
	id           uint
	code         string
	productID    uint
	schoolID     uint
	assignedDate time.Time
	condition    string
	location     string
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

// NewAsset binds a product to a school. The asset code is derived from the
// product category plus a random suffix so labels stay readable without a
// racy sequence lookup.
func NewAsset(productID, schoolID uint, category, condition, location string) (*Asset, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if schoolID == 0 {
		return nil, fmt.Errorf("school ID is required")
	}

	code, err := generateCode(category)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Asset{
		code:         code,
		productID:    productID,
		schoolID:     schoolID,
		assignedDate: now,
		condition:    condition,
		location:     location,
		status:       StatusInService,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructAsset rebuilds an asset from persisted state.
func ReconstructAsset(
	assetID uint,
	code string,
	productID, schoolID uint,
	assignedDate time.Time,
	condition, location string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Asset, error) {
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID cannot be zero")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("asset code is required")
	}
	if productID == 0 || schoolID == 0 {
		return nil, fmt.Errorf("asset must reference a product and a school")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Asset{
		id:           assetID,
		code:         code,
		productID:    productID,
		schoolID:     schoolID,
		assignedDate: assignedDate,
		condition:    condition,
		location:     location,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *Asset) ID() uint                { return a.id }
func (a *Asset) Code() string            { return a.code }
func (a *Asset) ProductID() uint         { return a.productID }
func (a *Asset) SchoolID() uint          { return a.schoolID }
func (a *Asset) AssignedDate() time.Time { return a.assignedDate }
func (a *Asset) Condition() string       { return a.condition }
func (a *Asset) Location() string        { return a.location }
func (a *Asset) Status() Status          { return a.status }
func (a *Asset) CreatedAt() time.Time    { return a.createdAt }
func (a *Asset) UpdatedAt() time.Time    { return a.updatedAt }

func (a *Asset) SetID(assetID uint) error {
	if a.id != 0 {
		return fmt.Errorf("asset ID is already set")
	}
	if assetID == 0 {
		return fmt.Errorf("asset ID cannot be zero")
	}
	a.id = assetID
	return nil
}

// UpdateDetails mutates status, condition, and location only. The
// product/school linkage is immutable; re-assignment goes through
// deassign plus assign.
func (a *Asset) UpdateDetails(status Status, condition, location string) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}

	a.status = status
	a.condition = condition
	a.location = location
	a.updatedAt = time.Now()
	return nil
}

// generateCode builds a label like AST-PRJ-4F7K2M from the category prefix.
func generateCode(category string) (string, error) {
	prefix := categoryPrefix(category)
	suffix, err := id.GenerateUpper(6)
	if err != nil {
		return "", fmt.Errorf("failed to generate asset code: %w", err)
	}
	return fmt.Sprintf("AST-%s-%s", prefix, suffix), nil
}

func categoryPrefix(category string) string {
	cleaned := strings.ToUpper(strings.TrimSpace(category))
	cleaned = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r
		}
		return -1
	}, cleaned)
	if len(cleaned) == 0 {
		return "GEN"
	}
	if len(cleaned) > 3 {
		cleaned = cleaned[:3]
	}
	return cleaned
}
