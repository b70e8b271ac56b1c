package models

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	Name         string `gorm:"size:100;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null;index"`
	Status       string `gorm:"size:20;not null;index"`
	LastLoginAt  *int64
	CreatedAt    int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}

// UserSchoolModel links a user to a school either as a direct member or as
// an assigned overseer. Both affiliation sets live in this one table,
// distinguished by Relation.
type UserSchoolModel struct {
	ID       uint   `gorm:"primaryKey"`
	UserID   uint   `gorm:"not null;index;uniqueIndex:idx_user_school_relation"`
	SchoolID uint   `gorm:"not null;index;uniqueIndex:idx_user_school_relation"`
	Relation string `gorm:"size:20;not null;uniqueIndex:idx_user_school_relation"`
}

func (UserSchoolModel) TableName() string {
	return "user_schools"
}

const (
	UserSchoolRelationMember   = "member"
	UserSchoolRelationAssigned = "assigned"
)
