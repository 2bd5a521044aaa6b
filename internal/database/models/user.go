package models

// User represents an account that can own and collaborate on scopes
type User struct {
	BaseModel
	Email        string `json:"email" gorm:"size:120;not null;uniqueIndex" validate:"required,email"`
	DisplayName  string `json:"display_name" gorm:"size:120;not null" validate:"required,max=120"`
	PasswordHash string `json:"-" gorm:"size:200;not null"`

	// Relationships
	OwnedScopes []Scope      `json:"owned_scopes,omitempty" gorm:"foreignKey:OwnerID"`
	Shares      []ScopeShare `json:"shares,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
