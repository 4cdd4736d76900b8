package routes

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/storefront-api/internal/audit"
	"github.com/BruksfildServices01/storefront-api/internal/domain/account"
	"github.com/BruksfildServices01/storefront-api/internal/domain/customer"
	"github.com/BruksfildServices01/storefront-api/internal/domain/order"
	"github.com/BruksfildServices01/storefront-api/internal/domain/principal"
	"github.com/BruksfildServices01/storefront-api/internal/domain/product"
	"github.com/BruksfildServices01/storefront-api/internal/domain/sorting"
	"github.com/BruksfildServices01/storefront-api/internal/httperr"
	"github.com/BruksfildServices01/storefront-api/internal/models"
)

// memDB backs every fake repository so accounts registered through /auth
// show up under /customers.
type memDB struct {
	mu  sync.Mutex
	seq map[string]uint

	customers map[uint]models.Customer
	staff     map[uint]models.Staff
	admins    map[uint]models.Admin
	products  map[uint]models.Product
	orders    map[uint]models.Order
	auditLogs []models.AuditLog
}

func newMemDB() *memDB {
	return &memDB{
		seq:       map[string]uint{},
		customers: map[uint]models.Customer{},
		staff:     map[uint]models.Staff{},
		admins:    map[uint]models.Admin{},
		products:  map[uint]models.Product{},
		orders:    map[uint]models.Order{},
	}
}

func (m *memDB) next(table string) uint {
	m.seq[table]++
	return m.seq[table]
}

var errNotFound = httperr.ErrBusiness(httperr.CodeNotFound)
var errEmailTaken = httperr.ErrBusiness(httperr.CodeEmailTaken)

func normEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func (m *memDB) emailTaken(kind principal.Role, email string, except uint) bool {
	switch kind {
	case principal.RoleCustomer:
		for id, c := range m.customers {
			if c.Email == email && id != except {
				return true
			}
		}
	case principal.RoleStaff:
		for id, s := range m.staff {
			if s.Email == email && id != except {
				return true
			}
		}
	case principal.RoleAdmin:
		for id, a := range m.admins {
			if a.Email == email && id != except {
				return true
			}
		}
	}
	return false
}

func sortedValues[T any](in map[uint]T, id func(T) uint) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b T) int { return cmp.Compare(id(a), id(b)) })
	return out
}

// ------------------------------
// accounts
// ------------------------------

type memAccounts struct{ *memDB }

func (r memAccounts) Create(_ context.Context, a *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.Email = normEmail(a.Email)
	if r.emailTaken(a.Kind, a.Email, 0) {
		return errEmailTaken
	}

	now := time.Now()
	switch a.Kind {
	case principal.RoleCustomer:
		a.ID = r.next("customers")
		r.customers[a.ID] = models.Customer{
			ID: a.ID, Name: a.Name, Email: a.Email, PasswordHash: a.PasswordHash,
			Address: a.Address, Phone: a.Phone, Role: string(a.Kind), CreatedAt: now, UpdatedAt: now,
		}
	case principal.RoleStaff:
		a.ID = r.next("staff")
		r.staff[a.ID] = models.Staff{
			ID: a.ID, Name: a.Name, Email: a.Email, PasswordHash: a.PasswordHash,
			Role: string(a.Kind), CreatedAt: now, UpdatedAt: now,
		}
	case principal.RoleAdmin:
		a.ID = r.next("admins")
		r.admins[a.ID] = models.Admin{
			ID: a.ID, Name: a.Name, Email: a.Email, PasswordHash: a.PasswordHash,
			Role: string(a.Kind), CreatedAt: now, UpdatedAt: now,
		}
	}
	return nil
}

func (r memAccounts) FindByEmail(_ context.Context, kind principal.Role, email string) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email = normEmail(email)
	switch kind {
	case principal.RoleCustomer:
		for _, c := range r.customers {
			if c.Email == email {
				return &account.Account{ID: c.ID, Kind: kind, Name: c.Name, Email: c.Email, PasswordHash: c.PasswordHash}, nil
			}
		}
	case principal.RoleStaff:
		for _, s := range r.staff {
			if s.Email == email {
				return &account.Account{ID: s.ID, Kind: kind, Name: s.Name, Email: s.Email, PasswordHash: s.PasswordHash}, nil
			}
		}
	case principal.RoleAdmin:
		for _, a := range r.admins {
			if a.Email == email {
				return &account.Account{ID: a.ID, Kind: kind, Name: a.Name, Email: a.Email, PasswordHash: a.PasswordHash}, nil
			}
		}
	}
	return nil, errNotFound
}

// ------------------------------
// customers
// ------------------------------

type memCustomers struct{ *memDB }

func (r memCustomers) List(context.Context) ([]models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sortedValues(r.customers, func(c models.Customer) uint { return c.ID }), nil
}

func (r memCustomers) Get(_ context.Context, id uint) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, errNotFound
	}
	return &c, nil
}

func (r memCustomers) Create(_ context.Context, c *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.Email = normEmail(c.Email)
	if r.emailTaken(principal.RoleCustomer, c.Email, 0) {
		return errEmailTaken
	}
	c.ID = r.next("customers")
	c.CreatedAt, c.UpdatedAt = time.Now(), time.Now()
	r.customers[c.ID] = *c
	return nil
}

func (r memCustomers) Update(_ context.Context, id uint, p customer.Patch) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.customers[id]
	if !ok {
		return nil, errNotFound
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		email := normEmail(*p.Email)
		if r.emailTaken(principal.RoleCustomer, email, id) {
			return nil, errEmailTaken
		}
		c.Email = email
	}
	if p.PasswordHash != nil {
		c.PasswordHash = *p.PasswordHash
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	c.UpdatedAt = time.Now()
	r.customers[id] = c
	return &c, nil
}

func (r memCustomers) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[id]; !ok {
		return errNotFound
	}
	delete(r.customers, id)
	return nil
}

// ------------------------------
// products
// ------------------------------

type memProducts struct{ *memDB }

func productColumn(col string) func(a, b models.Product) int {
	switch col {
	case "name":
		return func(a, b models.Product) int { return cmp.Compare(a.Name, b.Name) }
	case "price":
		return func(a, b models.Product) int { return cmp.Compare(a.Price, b.Price) }
	case "stock":
		return func(a, b models.Product) int { return cmp.Compare(a.Stock, b.Stock) }
	case "created_at":
		return func(a, b models.Product) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}
	return func(a, b models.Product) int { return cmp.Compare(a.ID, b.ID) }
}

func (r memProducts) List(_ context.Context, order ...sorting.Order) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := sortedValues(r.products, func(p models.Product) uint { return p.ID })
	slices.SortStableFunc(out, func(a, b models.Product) int {
		for _, o := range order {
			c := productColumn(o.Column)(a, b)
			if o.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
	return out, nil
}

func (r memProducts) Get(_ context.Context, id uint) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, errNotFound
	}
	return &p, nil
}

func (r memProducts) Create(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.next("products")
	p.CreatedAt, p.UpdatedAt = time.Now(), time.Now()
	r.products[p.ID] = *p
	return nil
}

func (r memProducts) Update(_ context.Context, id uint, patch product.Patch) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return nil, errNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	r.products[id] = p
	return &p, nil
}

func (r memProducts) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return errNotFound
	}
	delete(r.products, id)
	return nil
}

// ------------------------------
// orders
// ------------------------------

type memOrders struct{ *memDB }

func orderColumn(col string) func(a, b models.Order) int {
	switch col {
	case "total":
		return func(a, b models.Order) int { return cmp.Compare(a.Total, b.Total) }
	case "status":
		return func(a, b models.Order) int { return cmp.Compare(a.Status, b.Status) }
	case "created_at":
		return func(a, b models.Order) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}
	return func(a, b models.Order) int { return cmp.Compare(a.ID, b.ID) }
}

func (r memOrders) List(_ context.Context, order ...sorting.Order) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := sortedValues(r.orders, func(o models.Order) uint { return o.ID })
	slices.SortStableFunc(out, func(a, b models.Order) int {
		for _, o := range order {
			c := orderColumn(o.Column)(a, b)
			if o.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
	return out, nil
}

func (r memOrders) ListByCustomer(_ context.Context, custID uint) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Order
	for _, o := range sortedValues(r.orders, func(o models.Order) uint { return o.ID }) {
		if o.CustID == custID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r memOrders) Get(_ context.Context, id uint) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, errNotFound
	}
	return &o, nil
}

func (r memOrders) Create(_ context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.Status == "" {
		o.Status = string(order.InitialStatus())
	}
	o.ID = r.next("orders")
	o.CreatedAt, o.UpdatedAt = time.Now(), time.Now()
	r.orders[o.ID] = *o
	return nil
}

func (r memOrders) Update(_ context.Context, id uint, p order.Patch) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, errNotFound
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Total != nil {
		o.Total = *p.Total
	}
	r.orders[id] = o
	return &o, nil
}

func (r memOrders) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return errNotFound
	}
	delete(r.orders, id)
	return nil
}

// ------------------------------
// audit
// ------------------------------

type memAudit struct{ *memDB }

func (r memAudit) Append(_ context.Context, log *models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	log.ID = r.next("audit_logs")
	log.CreatedAt = time.Now()
	r.auditLogs = append(r.auditLogs, *log)
	return nil
}

func (r memAudit) List(_ context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.AuditLog
	for i := len(r.auditLogs) - 1; i >= 0; i-- {
		l := r.auditLogs[i]
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Entity != "" && l.Entity != f.Entity {
			continue
		}
		matched = append(matched, l)
	}

	total := int64(len(matched))
	start := (f.Page - 1) * f.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := min(start+f.Limit, len(matched))
	return matched[start:end], total, nil
}

// syncRecorder writes audit events inline so tests can read them back.
type syncRecorder struct{ logger *audit.Logger }

func (r syncRecorder) Dispatch(ev audit.Event) {
	_ = r.logger.Log(context.Background(), ev)
}

var (
	_ account.Store       = memAccounts{}
	_ customer.Repository = memCustomers{}
	_ product.Repository  = memProducts{}
	_ order.Repository    = memOrders{}
	_ audit.Store         = memAudit{}
)
