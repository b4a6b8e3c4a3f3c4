package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/qashop/storefront-api/internal/domains/orders/domain"
	"github.com/qashop/storefront-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists the order ledger in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// orderRecord maps the order aggregate to a relational row. Line items and
// payment details are structured nested values serialized once at this
// boundary; skus is a derived array column for ad-hoc querying.
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
	Items          []domain.LineItem `gorm:"column:items;serializer:json"`
	SKUs           pq.StringArray    `gorm:"column:skus;type:text[]"`
	Subtotal       float64           `gorm:"column:subtotal"`
	Shipping       float64           `gorm:"column:shipping"`
	Total          float64           `gorm:"column:total"`
	Status         string            `gorm:"column:status;type:varchar(32);index"`
	CreatedAt      time.Time         `gorm:"column:created_at;index"`
}

func (orderRecord) TableName() string { return "orders" }

// CreateBatch inserts every order inside one transaction. Any failure,
// including a duplicate order number, rolls the whole batch back.
func (r *Repository) CreateBatch(ctx context.Context, orders []*domain.Order) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	records := make([]orderRecord, 0, len(orders))
	for _, order := range orders {
		records = append(records, toRecord(order))
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range records {
			if err := tx.Create(&records[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrDuplicateNumber
		}
		return err
	}
	for i, order := range orders {
		order.ID = records[i].ID
	}
	return nil
}

// List returns the full ledger, newest first.
func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

func (r *Repository) FindByNumber(ctx context.Context, number string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// FindByEmail matches the stored email case-insensitively, newest first.
func (r *Repository) FindByEmail(ctx context.Context, email string) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		Order("created_at DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, number string, status domain.Status) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&orderRecord{}).
		Where("number = ?", number).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// BackfillStatuses assigns def to rows with a NULL or empty status only.
func (r *Repository) BackfillStatuses(ctx context.Context, def domain.Status) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	result := r.db.WithContext(ctx).
		Model(&orderRecord{}).
		Where("status IS NULL OR status = ''").
		Update("status", string(def))
	return result.RowsAffected, result.Error
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&orderRecord{}).Count(&count).Error
	return count, err
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	skus := make(pq.StringArray, 0, len(order.Items))
	for _, item := range order.Items {
		skus = append(skus, item.SKU)
	}
	return orderRecord{
		ID:             order.ID,
		Number:         order.Number,
		CustomerName:   order.CustomerName,
		Email:          order.Email,
		StreetAddress:  order.StreetAddress,
		City:           order.City,
		ZipCode:        order.ZipCode,
		ShippingMethod: order.ShippingMethod,
		PaymentMethod:  order.PaymentMethod,
		PaymentDetails: order.PaymentDetails,
		Items:          order.Items,
		SKUs:           skus,
		Subtotal:       order.Subtotal,
		Shipping:       order.Shipping,
		Total:          order.Total,
		Status:         string(order.Status),
		CreatedAt:      order.CreatedAt,
	}
}

func (r orderRecord) toDomain() *domain.Order {
	return &domain.Order{
		ID:             r.ID,
		Number:         r.Number,
		CustomerName:   r.CustomerName,
		Email:          r.Email,
		StreetAddress:  r.StreetAddress,
		City:           r.City,
		ZipCode:        r.ZipCode,
		ShippingMethod: r.ShippingMethod,
		PaymentMethod:  r.PaymentMethod,
		PaymentDetails: r.PaymentDetails,
		Items:          r.Items,
		Subtotal:       r.Subtotal,
		Shipping:       r.Shipping,
		Total:          r.Total,
		Status:         domain.Status(r.Status),
		CreatedAt:      r.CreatedAt,
	}
}

func toDomainList(records []orderRecord) []*domain.Order {
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders
}
