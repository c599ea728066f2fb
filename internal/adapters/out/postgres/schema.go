package postgres

import (
	"context"
	"fmt"

	"pedidofacil/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the pedido and produto_pedido tables, including the
// cascading foreign key from produto_pedido.pedido_id to pedido.id.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}); err != nil {
		return fmt.Errorf("auto-migrate order schema: %w", err)
	}
	return nil
}

// Ping checks that the connection pool can reach the database.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
