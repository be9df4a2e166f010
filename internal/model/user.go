package model

// User represents an authenticated user in the system.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"size:255;not null"`
	Username string `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Password string `json:"-" gorm:"size:255;not null"` // bcrypt hash, never exposed in JSON
}

// TableName keeps the table name used by the existing schema.
func (User) TableName() string {
	return "Users"
}

// UserPatch carries the user fields a partial update may change.
// Nil fields are left untouched. Password must already be hashed.
type UserPatch struct {
	Name     *string
	Password *string
}

// Columns returns the column/value pairs set in the patch.
func (p UserPatch) Columns() map[string]any {
	cols := make(map[string]any, 2)
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Password != nil {
		cols["password"] = *p.Password
	}
	return cols
}

// Apply copies the set fields onto u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
}
