package models

type SchoolModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:200;not null"`
	Code         string `gorm:"uniqueIndex;size:20;not null"`
	Address      string `gorm:"size:500"`
	Region       string `gorm:"size:100;not null;index"`
	ContactName  string `gorm:"size:100"`
	ContactEmail string `gorm:"size:255"`
	ContactPhone string `gorm:"size:50"`
	Status       string `gorm:"size:20;not null;index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (SchoolModel) TableName() string {
	return "schools"
}
