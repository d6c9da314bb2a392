package models

import "time"

// Geographic reference tables. Hierarchical lookups:
// division > district > upazila > union > village.

// Division represents the divisions table
type Division struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Division) TableName() string {
	return "divisions"
}

// District represents the districts table
type District struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:50;not null" json:"name"`
	DivisionID uint      `gorm:"not null;index" json:"division_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Division *Division `gorm:"foreignKey:DivisionID" json:"division,omitempty"`
}

func (District) TableName() string {
	return "districts"
}

// Upazila represents the upazilas table
type Upazila struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:50;not null" json:"name"`
	DistrictID uint      `gorm:"not null;index" json:"district_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	District *District `gorm:"foreignKey:DistrictID" json:"district,omitempty"`
}

func (Upazila) TableName() string {
	return "upazilas"
}

// Union represents the unions table
type Union struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	UpazilaID uint      `gorm:"not null;index" json:"upazila_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Upazila *Upazila `gorm:"foreignKey:UpazilaID" json:"upazila,omitempty"`
}

func (Union) TableName() string {
	return "unions"
}

// Village represents the villages table
type Village struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	UnionID   uint      `gorm:"not null;index" json:"union_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Union *Union `gorm:"foreignKey:UnionID" json:"union,omitempty"`
}

func (Village) TableName() string {
	return "villages"
}
