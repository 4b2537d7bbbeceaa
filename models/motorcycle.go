package models

// Motorcycle is a single inventory record. The ID is assigned by the
// database on insert and stays zero until then.
type Motorcycle struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Brand        string  `json:"brand" gorm:"not null;size:100"`
	Displacement int     `json:"displacement" gorm:"not null"` // engine size in cc
	Price        float64 `json:"price" gorm:"not null"`
	Color        string  `json:"color" gorm:"not null;size:50"`
}
