package models

type ProductModel struct {
	ID           uint   `gorm:"primaryKey"`
	Category     string `gorm:"size:50;not null;index"`
	Manufacturer string `gorm:"size:100"`
	Model        string `gorm:"size:100"`
	SerialNumber string `gorm:"uniqueIndex;size:100;not null"`
	PurchaseDate *int64
	WarrantyEnd  *int64
	Status       string `gorm:"size:20;not null;index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ProductModel) TableName() string {
	return "products"
}
