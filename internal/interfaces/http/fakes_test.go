package http_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/lavanderia-api/internal/domain"
	"github.com/jhoicas/lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/lavanderia-api/internal/domain/report"
	"github.com/jhoicas/lavanderia-api/internal/domain/repository"
)

// billingStore tablas de facturación en memoria; failDetails hace fallar el último paso.
type billingStore struct {
	mu          sync.Mutex
	seq         int64
	clients     map[int64]entity.Client
	branches    map[int64]entity.Branch
	links       map[entity.ClientBranch]bool
	invoices    map[int64]entity.Invoice
	details     map[int64]entity.InvoiceDetail
	failDetails bool
}

func newBillingStore() *billingStore {
	return &billingStore{
		clients:  map[int64]entity.Client{},
		branches: map[int64]entity.Branch{},
		links:    map[entity.ClientBranch]bool{},
		invoices: map[int64]entity.Invoice{},
		details:  map[int64]entity.InvoiceDetail{},
	}
}

func (s *billingStore) next() int64 {
	s.seq++
	return s.seq
}

type clients struct{ s *billingStore }

func (r clients) Create(_ context.Context, c *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.next()
	r.s.clients[c.ID] = *c
	return nil
}

func (r clients) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.clients, id)
	return nil
}

type branches struct{ s *billingStore }

func (r branches) Create(_ context.Context, b *entity.Branch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b.ID = r.s.next()
	r.s.branches[b.ID] = *b
	return nil
}

func (r branches) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.branches, id)
	return nil
}

type links struct{ s *billingStore }

func (r links) Create(_ context.Context, l entity.ClientBranch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.links[l] = true
	return nil
}

func (r links) Delete(_ context.Context, l entity.ClientBranch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.links, l)
	return nil
}

type invoices struct{ s *billingStore }

func (r invoices) Create(_ context.Context, inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv.ID = r.s.next()
	if inv.Status == "" {
		inv.Status = entity.StatusPending
	}
	inv.Version = 1
	r.s.invoices[inv.ID] = *inv
	return nil
}

func (r invoices) CreateDetails(_ context.Context, ds []*entity.InvoiceDetail) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failDetails {
		return errors.New("insert factura_detalle: conexión perdida")
	}
	for _, d := range ds {
		d.ID = r.s.next()
		r.s.details[d.ID] = *d
	}
	return nil
}

func (r invoices) DeleteDetails(_ context.Context, invoiceID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, d := range r.s.details {
		if d.InvoiceID == invoiceID {
			delete(r.s.details, id)
		}
	}
	return nil
}

func (r invoices) GetByID(_ context.Context, id int64) (*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r invoices) UpdateIfVersion(_ context.Context, inv *entity.Invoice, expected int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.invoices[inv.ID]
	if !ok {
		return false, domain.ErrNotFound
	}
	if cur.Version != expected {
		return false, nil
	}
	inv.Version = expected + 1
	r.s.invoices[inv.ID] = *inv
	return true, nil
}

func (r invoices) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.invoices[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.invoices, id)
	return nil
}

func (r invoices) ListNested(context.Context) ([]map[string]any, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]map[string]any, 0, len(r.s.invoices))
	for _, inv := range r.s.invoices {
		out = append(out, map[string]any{"id_factura": inv.ID, "cod_factura": inv.Code, "estado": inv.Status})
	}
	return out, nil
}

type informes struct{}

func (informes) DeleteByInvoice(context.Context, int64) error { return nil }

type memUsers struct {
	mu    sync.Mutex
	seq   int64
	users map[int64]*entity.User
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	u.ID = m.seq
	m.users[u.ID] = u
	return nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) List(context.Context) ([]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUsers) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

// staticSource devuelve siempre los mismos registros.
type staticSource struct {
	records []report.Record
}

func (s staticSource) Fetch(context.Context, report.Type) ([]report.Record, error) {
	return s.records, nil
}

func (s staticSource) Search(context.Context, report.Filter) ([]report.Record, error) {
	return s.records, nil
}

type fakePDF struct{}

func (fakePDF) Render(t *report.Table, _ time.Time) ([]byte, error) {
	return []byte("%PDF-" + t.Title), nil
}

type staticDashboard struct {
	income   []repository.IncomeRow
	expenses []repository.ExpenseRow
}

func (d staticDashboard) Income(context.Context) ([]repository.IncomeRow, error) {
	return d.income, nil
}

func (d staticDashboard) Expenses(context.Context) ([]repository.ExpenseRow, error) {
	return d.expenses, nil
}
