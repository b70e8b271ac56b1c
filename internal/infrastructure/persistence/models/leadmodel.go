package models

type InquiryModel struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:100;not null"`
	Email      string `gorm:"size:255;not null;index"`
	Phone      string `gorm:"size:50"`
	Subject    string `gorm:"size:200"`
	Message    string `gorm:"type:text;not null"`
	SourcePage string `gorm:"size:200"`
	Status     string `gorm:"size:20;not null;index"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (InquiryModel) TableName() string {
	return "inquiries"
}

type SubscriptionModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	SubscribedAt int64  `gorm:"not null"`
	Unsubscribed bool   `gorm:"not null;default:false"`
}

func (SubscriptionModel) TableName() string {
	return "newsletter_subscriptions"
}
