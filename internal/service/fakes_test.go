package service

import (
	"context"
	"sync"

	"github.com/palrajin0126/admin-panel/internal/domain"
	pkgdto "github.com/palrajin0126/admin-panel/pkg/dto"
	"github.com/palrajin0126/admin-panel/pkg/errs"
)

// opLog records store calls in order so tests can assert the relational
// store is always mutated before the document store.
type opLog struct {
	mu  sync.Mutex
	ops []string
}

func (l *opLog) record(op string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ops = append(l.ops, op)
}

type fakeProductRepo struct {
	log       *opLog
	addErr    error
	updateErr error
	deleteErr error
	added     []domain.Product
	updated   []domain.Product
	deleted   []string
}

func (r *fakeProductRepo) AddProduct(ctx context.Context, data domain.Product) error {
	if r.log != nil {
		r.log.record("relational:add")
	}
	if r.addErr != nil {
		return r.addErr
	}
	r.added = append(r.added, data)
	return nil
}

func (r *fakeProductRepo) UpdateProduct(ctx context.Context, data domain.Product) error {
	if r.log != nil {
		r.log.record("relational:update")
	}
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = append(r.updated, data)
	return nil
}

func (r *fakeProductRepo) DeleteProduct(ctx context.Context, id string) error {
	if r.log != nil {
		r.log.record("relational:delete")
	}
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeCatalogRepo struct {
	mu         sync.Mutex
	log        *opLog
	products   map[string]map[string]interface{}
	categories map[string]map[string]interface{}
	writeErr   error
	lookupErr  map[string]error
	updates    map[string]map[string]interface{}
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		products:   map[string]map[string]interface{}{},
		categories: map[string]map[string]interface{}{},
		lookupErr:  map[string]error{},
		updates:    map[string]map[string]interface{}{},
	}
}

func (r *fakeCatalogRepo) AddProduct(ctx context.Context, id string, doc map[string]interface{}) error {
	if r.log != nil {
		r.log.record("document:add")
	}
	if r.writeErr != nil {
		return r.writeErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[id] = doc
	return nil
}

func (r *fakeCatalogRepo) UpdateProduct(ctx context.Context, id string, fields map[string]interface{}) error {
	if r.log != nil {
		r.log.record("document:update")
	}
	if r.writeErr != nil {
		return r.writeErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates[id] = fields
	if doc, ok := r.products[id]; ok {
		for k, v := range fields {
			doc[k] = v
		}
	}
	return nil
}

func (r *fakeCatalogRepo) DeleteProduct(ctx context.Context, id string) error {
	if r.log != nil {
		r.log.record("document:delete")
	}
	if r.writeErr != nil {
		return r.writeErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *fakeCatalogRepo) GetProductByID(ctx context.Context, id string) (map[string]interface{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.lookupErr[id]; ok {
		return nil, err
	}
	doc, ok := r.products[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return doc, nil
}

func (r *fakeCatalogRepo) GetProducts(ctx context.Context, filter pkgdto.Filter) ([]map[string]interface{}, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var docs []map[string]interface{}
	for _, doc := range r.products {
		docs = append(docs, doc)
	}
	return docs, int64(len(docs)), nil
}

func (r *fakeCatalogRepo) AddCategory(ctx context.Context, id string, doc map[string]interface{}) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[id] = doc
	return nil
}

func (r *fakeCatalogRepo) UpdateCategory(ctx context.Context, id string, fields map[string]interface{}) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.categories[id]
	if !ok {
		return errs.ErrNotFound
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

func (r *fakeCatalogRepo) DeleteCategory(ctx context.Context, id string) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)
	return nil
}

func (r *fakeCatalogRepo) GetCategories(ctx context.Context) ([]map[string]interface{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var docs []map[string]interface{}
	for _, doc := range r.categories {
		docs = append(docs, doc)
	}
	return docs, nil
}

type fakeCartRepo struct {
	carts []domain.Cart
	err   error
}

func (r *fakeCartRepo) GetCarts(ctx context.Context) ([]domain.Cart, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.carts, nil
}

type fakeOrderRepo struct {
	orders []domain.Order
	err    error
}

func (r *fakeOrderRepo) GetOrders(ctx context.Context) ([]domain.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.orders, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []string
	err    error
}

func (p *fakePublisher) Publish(ctx context.Context, key string, msg []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, key)
	return nil
}
