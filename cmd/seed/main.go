// Comando seed: aplica el esquema y carga datos de demostración en PostgreSQL.
//
// Uso:
//
//	DB_HOST=localhost DB_NAME=stock_ledger go run ./cmd/seed
//
// Crea una bodega, dos categorías, tres productos, un usuario admin
// (admin@example.com / admin123) y movimientos iniciales del libro.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-ledger-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}
	if cfg.DB.Driver != config.DriverPostgres {
		fail("seed solo soporta DB_DRIVER=postgres (actual: %s)", cfg.DB.Driver)
	}

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fail("migración: %v", err)
	}
	fmt.Println("✓ Esquema aplicado")

	now := time.Now()

	warehouseRepo := postgres.NewWarehouseRepository(pool)
	warehouse := &entity.Warehouse{
		ID:          uuid.New().String(),
		Name:        "Bodega Central",
		Description: "Bodega principal de la demo",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := warehouseRepo.Create(warehouse); err != nil {
		fail("crear bodega: %v", err)
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	categories := []*entity.Category{
		{ID: uuid.New().String(), Name: "Bebidas", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Limpieza", CreatedAt: now, UpdatedAt: now},
	}
	for _, cat := range categories {
		if err := categoryRepo.Create(cat); err != nil {
			fail("crear categoría %s: %v", cat.Name, err)
		}
	}

	productRepo := postgres.NewProductRepository(pool)
	products := []*entity.Product{
		{
			ID:          uuid.New().String(),
			Name:        "Agua mineral 600ml",
			WarehouseID: warehouse.ID,
			CategoryID:  categories[0].ID,
			MinQuantity: decimal.NewFromInt(24),
			UnitCost:    decimal.NewFromFloat(1.50),
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Jugo de naranja 1L",
			WarehouseID: warehouse.ID,
			CategoryID:  categories[0].ID,
			MinQuantity: decimal.NewFromInt(12),
			UnitCost:    decimal.NewFromFloat(3.25),
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Detergente 5kg",
			WarehouseID: warehouse.ID,
			CategoryID:  categories[1].ID,
			MinQuantity: decimal.NewFromInt(5),
			UnitCost:    decimal.NewFromFloat(12.90),
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
	for _, p := range products {
		if err := productRepo.Create(p); err != nil {
			fail("crear producto %s: %v", p.Name, err)
		}
	}

	movementRepo := postgres.NewMovementRepository(pool)
	movements := []*entity.Movement{
		{Kind: entity.MovementEntry, ProductID: products[0].ID, Quantity: decimal.NewFromInt(120), Observation: "Compra inicial"},
		{Kind: entity.MovementExit, ProductID: products[0].ID, Quantity: decimal.NewFromInt(30), Observation: "Venta mostrador"},
		{Kind: entity.MovementEntry, ProductID: products[1].ID, Quantity: decimal.NewFromInt(40), Observation: "Compra inicial"},
		{Kind: entity.MovementEntry, ProductID: products[2].ID, Quantity: decimal.NewFromInt(8), Observation: "Compra inicial"},
		{Kind: entity.MovementExit, ProductID: products[2].ID, Quantity: decimal.NewFromInt(4), Observation: "Consumo interno"},
	}
	for _, m := range movements {
		m.ID = uuid.New().String()
		m.OccurredAt = now.Truncate(24 * time.Hour)
		m.CreatedAt = now
		if err := movementRepo.Create(m); err != nil {
			fail("crear movimiento: %v", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		fail("hash de contraseña: %v", err)
	}
	userRepo := postgres.NewUserRepository(pool)
	admin := &entity.User{
		ID:           uuid.New().String(),
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		fail("crear usuario admin: %v", err)
	}

	fmt.Println("✓ Datos de demostración cargados")
	fmt.Printf("  Bodega:    %s\n", warehouse.Name)
	fmt.Printf("  Productos: %d\n", len(products))
	fmt.Println("  Usuario:   admin@example.com / admin123")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
