package model

import "time"

// Product represents an inventory item.
type Product struct {
	PID         uint      `json:"pid" gorm:"column:pid;primaryKey;autoIncrement"`
	PName       string    `json:"pname" gorm:"column:pname;size:255;not null"`
	Description *string   `json:"description" gorm:"column:description;type:text"`
	Price       float64   `json:"price" gorm:"column:price;not null"`
	Stock       int       `json:"stock" gorm:"column:stock;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;autoCreateTime"`
}

// TableName keeps the table name used by the existing schema.
func (Product) TableName() string {
	return "Products"
}

// ProductPatch carries the product fields a partial update may change.
// Description is the only nullable column, so it alone can be set to null.
type ProductPatch struct {
	PName       *string
	Description Nullable[string]
	Price       *float64
	Stock       *int
}

// Columns returns the column/value pairs set in the patch.
func (p ProductPatch) Columns() map[string]any {
	cols := make(map[string]any, 4)
	if p.PName != nil {
		cols["pname"] = *p.PName
	}
	if p.Description.Set {
		if p.Description.Value != nil {
			cols["description"] = *p.Description.Value
		} else {
			cols["description"] = nil
		}
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if p.Stock != nil {
		cols["stock"] = *p.Stock
	}
	return cols
}

// Apply copies the set fields onto pr.
func (p ProductPatch) Apply(pr *Product) {
	if p.PName != nil {
		pr.PName = *p.PName
	}
	if p.Description.Set {
		pr.Description = nil
		if p.Description.Value != nil {
			d := *p.Description.Value
			pr.Description = &d
		}
	}
	if p.Price != nil {
		pr.Price = *p.Price
	}
	if p.Stock != nil {
		pr.Stock = *p.Stock
	}
}
