package orderrepo

import (
	"context"
	"errors"
	"strings"

	"pedidofacil/internal/core/domain/model/order"
	"pedidofacil/internal/core/ports"
	"pedidofacil/internal/pkg/errs"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	if aggregate.ID() == 0 {
		return r.insert(ctx, aggregate)
	}
	return r.update(ctx, aggregate)
}

func (r *GormOrderRepository) insert(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// update rewrites the order row, deletes persisted items that are no longer attached
// and inserts the ones without an id. Items are immutable, so kept rows are not rewritten.
func (r *GormOrderRepository) update(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"nome_comprador":           dto.Buyer,
		"nome_fornecedor":          dto.Supplier,
		"valor_total_comprado":     dto.TotalValue,
		"total_produtos_comprados": dto.TotalItems,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("pedido", dto.ID)
	}

	kept := make([]int64, 0, len(dto.Items))
	added := make([]ItemDTO, 0, len(dto.Items))
	for _, item := range dto.Items {
		if item.ID != 0 {
			kept = append(kept, item.ID)
			continue
		}
		added = append(added, item)
	}

	stale := db.Where("pedido_id = ?", dto.ID)
	if len(kept) > 0 {
		stale = stale.Where("id NOT IN ?", kept)
	}
	if err := stale.Delete(&ItemDTO{}).Error; err != nil {
		return nil, err
	}

	if len(added) > 0 {
		if err := db.Create(&added).Error; err != nil {
			return nil, err
		}
	}

	return r.Get(ctx, dto.ID)
}

func (r *GormOrderRepository) GetAll(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	query := r.withItems(ctx).Order("id")

	if filter.Buyer != "" {
		query = query.Where("nome_comprador ILIKE ?", "%"+likeEscaper.Replace(filter.Buyer)+"%")
	}
	if filter.Supplier != "" {
		query = query.Where("nome_fornecedor ILIKE ?", "%"+likeEscaper.Replace(filter.Supplier)+"%")
	}
	if filter.MinTotal != nil {
		query = query.Where("valor_total_comprado >= ?", *filter.MinTotal)
	}
	if filter.MaxTotal != nil {
		query = query.Where("valor_total_comprado <= ?", *filter.MaxTotal)
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pedido", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&OrderDTO{}).Error
}

// withItems eager-loads items in insertion order.
func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	})
}
