package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chronolux/watchstore/internal/domains/orders/domain"
	"github.com/chronolux/watchstore/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB
// lifecycle; schema is owned by internal/platform/migrations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// OrderRecord maps the order aggregate to a relational table.
type OrderRecord struct {
	ID              int64           `gorm:"primaryKey;column:id"`
	OrderID         string          `gorm:"column:order_id;type:varchar(64);uniqueIndex"`
	OrderName       string          `gorm:"column:order_name;uniqueIndex"`
	CustomerID      string          `gorm:"column:customer_id;type:varchar(64);index"`
	CatalogID       string          `gorm:"column:catalog_id;type:varchar(64)"`
	WatchID         string          `gorm:"column:watch_id;type:varchar(64);index"`
	ServicePlanID   string          `gorm:"column:service_plan_id;type:varchar(64)"`
	Status          string          `gorm:"column:status;type:varchar(32);index"`
	SalePrice       decimal.Decimal `gorm:"column:sale_price;type:numeric(14,2)"`
	SaleCurrency    string          `gorm:"column:sale_currency;type:varchar(3)"`
	PaymentCurrency string          `gorm:"column:payment_currency;type:varchar(3)"`
	OrderDate       time.Time       `gorm:"column:order_date"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
}

func (OrderRecord) TableName() string { return "orders" }

func (r *Repository) FindAll(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []OrderRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record OrderRecord
	if err := r.db.WithContext(ctx).First(&record, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) ExistsByName(ctx context.Context, orderName string) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&OrderRecord{}).
		Where("order_name = ?", orderName).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save upserts an order keyed by its business identifier.
func (r *Repository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toRecord(order)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "order_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"status":           record.Status,
				"sale_price":       record.SalePrice,
				"sale_currency":    record.SaleCurrency,
				"payment_currency": record.PaymentCurrency,
				"order_date":       record.OrderDate,
				"updated_at":       gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.FindByOrderID(ctx, record.OrderID)
}

func (r *Repository) Delete(ctx context.Context, orderID string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Where("order_id = ?", orderID).Delete(&OrderRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) OrderRecord {
	return OrderRecord{
		OrderID:         order.OrderID,
		OrderName:       order.OrderName,
		CustomerID:      order.CustomerID,
		CatalogID:       order.CatalogID,
		WatchID:         order.WatchID,
		ServicePlanID:   order.ServicePlanID,
		Status:          string(order.Status),
		SalePrice:       order.Price.Amount,
		SaleCurrency:    string(order.Price.SaleCurrency),
		PaymentCurrency: string(order.Price.PaymentCurrency),
		OrderDate:       order.OrderDate,
	}
}

func (rec OrderRecord) toDomain() *domain.Order {
	return &domain.Order{
		OrderID:       rec.OrderID,
		OrderName:     rec.OrderName,
		CustomerID:    rec.CustomerID,
		CatalogID:     rec.CatalogID,
		WatchID:       rec.WatchID,
		ServicePlanID: rec.ServicePlanID,
		Status:        domain.OrderStatus(rec.Status),
		Price: domain.Price{
			Amount:          rec.SalePrice,
			SaleCurrency:    domain.Currency(rec.SaleCurrency),
			PaymentCurrency: domain.Currency(rec.PaymentCurrency),
		},
		OrderDate: rec.OrderDate,
	}
}
