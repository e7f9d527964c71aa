package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable digital product with a base annual price
type Product struct {
	ID        uint64
	Name      string
	Price     decimal.Decimal
	Currency  string
	CreatedAt time.Time
}

// ProductVersion is a released build of a product
type ProductVersion struct {
	ID                 uint64
	ProductID          uint64
	Version            string // Dotted-numeric, unique per product
	ReleasedAt         time.Time
	MinVersionRequired string // Empty when any installed version may upgrade
	RequiresLicense    bool
	IsCurrent          bool
	FilePath           string
	FileSize           int64
	Changelog          string
	CreatedAt          time.Time
}

// NewerThan reports whether this version sorts after v
func (pv *ProductVersion) NewerThan(v string) bool {
	return CompareVersions(pv.Version, v) > 0
}
