package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	apperrors "stockroom/internal/errors"
	"stockroom/internal/model"
)

// MemoryUserRepository keeps users in process memory. It enforces the
// same username uniqueness as the MySQL unique index.
type MemoryUserRepository struct {
	mu         sync.Mutex
	nextID     uint
	byID       map[uint]model.User
	byUsername map[string]uint
}

var _ UserRepository = (*MemoryUserRepository)(nil)

// NewMemoryUserRepository returns an empty in-memory user store.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:       make(map[uint]model.User),
		byUsername: make(map[string]uint),
	}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[user.Username]; ok {
		return apperrors.ErrUsernameTaken
	}
	r.nextID++
	user.ID = r.nextID
	r.byID[user.ID] = *user
	r.byUsername[user.Username] = user.ID
	return nil
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id uint) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byUsername[username]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	u := r.byID[id]
	return &u, nil
}

func (r *MemoryUserRepository) Update(_ context.Context, id uint, patch model.UserPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	patch.Apply(&u)
	r.byID[id] = u
	return nil
}

// MemoryProductRepository keeps products in process memory.
type MemoryProductRepository struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]model.Product
	now    func() time.Time
}

var _ ProductRepository = (*MemoryProductRepository)(nil)

// NewMemoryProductRepository returns an empty in-memory product store.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		byID: make(map[uint]model.Product),
		now:  time.Now,
	}
}

func (r *MemoryProductRepository) Create(_ context.Context, product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	product.PID = r.nextID
	product.CreatedAt = r.now().UTC().Truncate(time.Second)
	r.byID[product.PID] = cloneProduct(*product)
	return nil
}

func (r *MemoryProductRepository) FindByID(_ context.Context, pid uint) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[pid]
	if !ok {
		return nil, apperrors.ErrProductNotFound
	}
	p = cloneProduct(p)
	return &p, nil
}

func (r *MemoryProductRepository) List(_ context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := make([]model.Product, 0, len(r.byID))
	for _, p := range r.byID {
		products = append(products, cloneProduct(p))
	}
	sort.Slice(products, func(i, j int) bool { return products[i].PID < products[j].PID })
	return products, nil
}

func (r *MemoryProductRepository) Update(_ context.Context, pid uint, patch model.ProductPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[pid]
	if !ok {
		return apperrors.ErrProductNotFound
	}
	patch.Apply(&p)
	r.byID[pid] = p
	return nil
}

func (r *MemoryProductRepository) Delete(_ context.Context, pid uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[pid]; !ok {
		return false, nil
	}
	delete(r.byID, pid)
	return true, nil
}

func cloneProduct(p model.Product) model.Product {
	if p.Description != nil {
		d := *p.Description
		p.Description = &d
	}
	return p
}
