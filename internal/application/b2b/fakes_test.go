package b2b_test

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/stoyanovb/gradina-api/internal/application/notify"
	"github.com/stoyanovb/gradina-api/internal/domain"
	"github.com/stoyanovb/gradina-api/internal/domain/entity"
)

// In-memory fakes shared by the company and order use case tests.

type memCompanyRepo struct {
	companies map[string]*entity.Company
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: map[string]*entity.Company{}}
}

func (r *memCompanyRepo) Create(c *entity.Company) error {
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	if c, ok := r.companies[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *memCompanyRepo) GetByEmail(email string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCompanyRepo) GetByEIK(eik string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.EIK == eik {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCompanyRepo) List(status entity.CompanyStatus, limit, offset int) ([]entity.Company, error) {
	var out []entity.Company
	for _, c := range r.companies {
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *memCompanyRepo) UpdateStatus(c *entity.Company, expected entity.CompanyStatus) error {
	current, ok := r.companies[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if current.Status != expected {
		return domain.ErrConcurrentModification
	}
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *memCompanyRepo) Delete(id string) error {
	delete(r.companies, id)
	return nil
}

type memOrderRepo struct {
	orders map[string]*entity.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: map[string]*entity.Order{}}
}

func (r *memOrderRepo) Create(o *entity.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *memOrderRepo) GetByID(id string) (*entity.Order, error) {
	if o, ok := r.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (r *memOrderRepo) ListByCompany(companyID string, limit, offset int) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if o.CompanyID == companyID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) List(status entity.OrderStatus, limit, offset int) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

func (r *memOrderRepo) UpdateStatus(o *entity.Order, expected entity.OrderStatus) error {
	current, ok := r.orders[o.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if current.Status != expected {
		return domain.ErrConcurrentModification
	}
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}
func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) { return nil, nil }
func (r *memProductRepo) List(b2bOnly bool, limit, offset int) ([]entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) Delete(id string) error { return nil }

type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (n *recordingNotifier) Enqueue(e notify.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
}

func (n *recordingNotifier) all() []notify.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Event(nil), n.events...)
}

func hashPassword(pw string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	return string(h)
}
