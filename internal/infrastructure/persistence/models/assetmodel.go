package models

type AssetModel struct {
	ID           uint   `gorm:"primaryKey"`
	Code         string `gorm:"uniqueIndex;size:30;not null"`
	ProductID    uint   `gorm:"uniqueIndex;not null"`
	SchoolID     uint   `gorm:"not null;index"`
	AssignedDate int64  `gorm:"not null"`
	Condition    string `gorm:"size:50"`
	Location     string `gorm:"size:200"`
	Status       string `gorm:"size:20;not null;index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (AssetModel) TableName() string {
	return "assets"
}
