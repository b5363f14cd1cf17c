// Package memory implementa los puertos de persistencia sobre mapas en memoria.
// Se usa en tests (cada test construye su propio Store aislado) y como backend de
// desarrollo con DB_DRIVER=memory. No hay estado global: el Store se inyecta
// explícitamente en cada caso de uso.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// Store colecciones en memoria protegidas por un RWMutex.
type Store struct {
	mu sync.RWMutex

	// txMu serializa las transacciones del TxRunner: una secuencia
	// verificar-stock-y-anexar nunca se intercala con otra.
	txMu sync.Mutex

	warehouses map[string]entity.Warehouse
	categories map[string]entity.Category
	products   map[string]entity.Product
	movements  map[string]entity.Movement
	users      map[string]entity.User
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		warehouses: make(map[string]entity.Warehouse),
		categories: make(map[string]entity.Category),
		products:   make(map[string]entity.Product),
		movements:  make(map[string]entity.Movement),
		users:      make(map[string]entity.User),
	}
}

// Warehouses devuelve el repositorio de almacenes.
func (s *Store) Warehouses() repository.WarehouseRepository { return &warehouseRepo{s: s} }

// Categories devuelve el repositorio de categorías.
func (s *Store) Categories() repository.CategoryRepository { return &categoryRepo{s: s} }

// Products devuelve el repositorio de productos.
func (s *Store) Products() repository.ProductRepository { return &productRepo{s: s} }

// Movements devuelve el repositorio del libro de movimientos.
func (s *Store) Movements() repository.MovementRepository { return &movementRepo{s: s} }

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() repository.UserRepository { return &userRepo{s: s} }

// TxRunner devuelve un runner que serializa las transacciones con un mutex.
// No hay rollback: los casos de uso mutan el store solo como último paso, después
// de que todas las validaciones pasaron, así que un fallo nunca deja estado a medias.
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

// TxRunner implementación en memoria del puerto inventory.TxRunner.
type TxRunner struct {
	s *Store
}

// Run ejecuta fn bajo el mutex de transacción, con repos del mismo store.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()
	return fn(&productRepo{s: r.s}, &movementRepo{s: r.s})
}

// ── Warehouses ────────────────────────────────────────────────────────────────

type warehouseRepo struct{ s *Store }

func (r *warehouseRepo) Create(w *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.warehouses[w.ID] = *w
	return nil
}

func (r *warehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r *warehouseRepo) Update(w *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.warehouses[w.ID] = *w
	return nil
}

func (r *warehouseRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.warehouses, id)
	return nil
}

func (r *warehouseRepo) List() ([]*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Warehouse, 0, len(r.s.warehouses))
	for _, w := range r.s.warehouses {
		w := w
		list = append(list, &w)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func (r *warehouseRepo) Count() (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.warehouses), nil
}

// ── Categories ────────────────────────────────────────────────────────────────

type categoryRepo struct{ s *Store }

func (r *categoryRepo) Create(c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.categories[c.ID] = *c
	return nil
}

func (r *categoryRepo) GetByID(id string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *categoryRepo) Update(c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.categories[c.ID] = *c
	return nil
}

func (r *categoryRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.categories, id)
	return nil
}

func (r *categoryRepo) List() ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		c := c
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

// ── Products ──────────────────────────────────────────────────────────────────

type productRepo struct{ s *Store }

func (r *productRepo) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = *p
	return nil
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetForUpdate en memoria equivale a GetByID: la exclusión la da el txMu del TxRunner.
func (r *productRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *productRepo) Update(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = *p
	return nil
}

func (r *productRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, id)
	return nil
}

func (r *productRepo) List() ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		p := p
		list = append(list, &p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func (r *productRepo) Count() (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.products), nil
}

func (r *productRepo) CountByWarehouse(warehouseID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	count := 0
	for _, p := range r.s.products {
		if p.WarehouseID == warehouseID {
			count++
		}
	}
	return count, nil
}

func (r *productRepo) CountByCategory(categoryID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	count := 0
	for _, p := range r.s.products {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

// ── Movements ─────────────────────────────────────────────────────────────────

type movementRepo struct{ s *Store }

func (r *movementRepo) Create(m *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.movements[m.ID] = *m
	return nil
}

func (r *movementRepo) GetByID(id string) (*entity.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.movements[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *movementRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.movements, id)
	return nil
}

func (r *movementRepo) List() ([]*entity.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Movement, 0, len(r.s.movements))
	for _, m := range r.s.movements {
		m := m
		list = append(list, &m)
	}
	sortByOccurredAtDesc(list)
	return list, nil
}

func (r *movementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Movement
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			m := m
			list = append(list, &m)
		}
	}
	sortByOccurredAtDesc(list)
	return list, nil
}

func (r *movementRepo) CountByProduct(productID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	count := 0
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			count++
		}
	}
	return count, nil
}

func (r *movementRepo) CountCreatedSince(since time.Time) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	count := 0
	for _, m := range r.s.movements {
		if !m.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func sortByOccurredAtDesc(list []*entity.Movement) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].OccurredAt.After(list[j].OccurredAt)
	})
}

// ── Users ─────────────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r *userRepo) Create(u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[u.ID] = *u
	return nil
}

func (r *userRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}
