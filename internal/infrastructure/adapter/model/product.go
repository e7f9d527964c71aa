package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents the database model for a sellable product
type Product struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"not null;size:255"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency  string          `gorm:"not null;size:3"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}

// ProductVersion represents the database model for a released product build
type ProductVersion struct {
	ID                 uint64    `gorm:"primaryKey;autoIncrement"`
	ProductID          uint64    `gorm:"not null;uniqueIndex:idx_product_versions_product_version"`
	Version            string    `gorm:"not null;size:32;uniqueIndex:idx_product_versions_product_version"`
	ReleasedAt         time.Time `gorm:"not null;index"`
	MinVersionRequired string    `gorm:"size:32"`
	RequiresLicense    bool      `gorm:"not null"`
	IsCurrent          bool      `gorm:"not null"`
	FilePath           string    `gorm:"not null;size:512"`
	FileSize           int64     `gorm:"not null"`
	Changelog          string    `gorm:"type:text"`
	CreatedAt          time.Time `gorm:"not null"`

	Product Product `gorm:"foreignKey:ProductID;references:ID"`
}

// TableName specifies the table name for ProductVersion
func (ProductVersion) TableName() string {
	return "product_versions"
}
