package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&orderRecord{},
	)
}

// Order schema mirrors the orders Postgres adapter. New rows default to the
// initial ledger status so historical inserts without an explicit status stay
// readable.
type orderRecord struct {
	ID             int64             `gorm:"primaryKey;column:id"`
	Number         string            `gorm:"column:number;type:varchar(64);uniqueIndex:idx_orders_number"`
	CustomerName   string            `gorm:"column:customer_name"`
	Email          string            `gorm:"column:email;index"`
	StreetAddress  string            `gorm:"column:street_address"`
	City           string            `gorm:"column:city"`
	ZipCode        string            `gorm:"column:zip_code"`
	ShippingMethod string            `gorm:"column:shipping_method"`
	PaymentMethod  string            `gorm:"column:payment_method"`
	PaymentDetails map[string]string `gorm:"column:payment_details;serializer:json"`
	Items          []lineItem        `gorm:"column:items;serializer:json"`
	SKUs           pq.StringArray    `gorm:"column:skus;type:text[]"`
	Subtotal       float64           `gorm:"column:subtotal"`
	Shipping       float64           `gorm:"column:shipping"`
	Total          float64           `gorm:"column:total"`
	Status         string            `gorm:"column:status;type:varchar(32);index;default:'Order Placed'"`
	CreatedAt      time.Time         `gorm:"column:created_at;index"`
}

func (orderRecord) TableName() string { return "orders" }

type lineItem struct {
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
