package models

type TicketModel struct {
	ID                 uint   `gorm:"primaryKey"`
	Number             string `gorm:"uniqueIndex;size:30;not null"`
	SchoolID           uint   `gorm:"not null;index"`
	AssetID            *uint  `gorm:"index"`
	Category           string `gorm:"size:50;not null;index"`
	Title              string `gorm:"size:200;not null"`
	Description        string `gorm:"type:text;not null"`
	Priority           string `gorm:"size:10;not null;index"`
	Status             string `gorm:"size:20;not null;index"`
	ContactName        string `gorm:"size:100"`
	ContactEmail       string `gorm:"size:255"`
	ContactPhone       string `gorm:"size:50"`
	ResponseDeadline   int64  `gorm:"not null;index"`
	ResolutionDeadline int64  `gorm:"not null;index"`
	AssigneeID         *uint  `gorm:"index"`
	FirstResponseAt    *int64
	ResolvedAt         *int64
	ClosedAt           *int64
	Version            int   `gorm:"not null;default:1"`
	CreatedAt          int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt          int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
