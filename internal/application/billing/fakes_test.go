package billing_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/lavanderia-api/internal/domain"
	"github.com/jhoicas/lavanderia-api/internal/domain/entity"
)

// memStore simula las cinco tablas con IDs generados y fallos inyectables por paso.
type memStore struct {
	mu       sync.Mutex
	seq      int64
	writes   int
	clients  map[int64]entity.Client
	branches map[int64]entity.Branch
	links    map[entity.ClientBranch]bool
	invoices map[int64]entity.Invoice
	details  map[int64]entity.InvoiceDetail
	informes map[int64]int64 // id_informe -> id_factura
	fail     map[string]error
	failUndo map[string]error
	// beforeUpdate se ejecuta dentro de UpdateIfVersion antes de comparar versiones.
	beforeUpdate func(s *memStore, id int64)
}

func newMemStore() *memStore {
	return &memStore{
		clients:  map[int64]entity.Client{},
		branches: map[int64]entity.Branch{},
		links:    map[entity.ClientBranch]bool{},
		invoices: map[int64]entity.Invoice{},
		details:  map[int64]entity.InvoiceDetail{},
		informes: map[int64]int64{},
		fail:     map[string]error{},
		failUndo: map[string]error{},
	}
}

func (s *memStore) next() int64 {
	s.seq++
	return s.seq
}

type clientRepo struct{ s *memStore }

func (r clientRepo) Create(_ context.Context, c *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail["cliente"]; err != nil {
		return err
	}
	c.ID = r.s.next()
	r.s.clients[c.ID] = *c
	r.s.writes++
	return nil
}

func (r clientRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failUndo["cliente"]; err != nil {
		return err
	}
	delete(r.s.clients, id)
	return nil
}

type branchRepo struct{ s *memStore }

func (r branchRepo) Create(_ context.Context, b *entity.Branch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail["sucursal"]; err != nil {
		return err
	}
	b.ID = r.s.next()
	r.s.branches[b.ID] = *b
	r.s.writes++
	return nil
}

func (r branchRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.branches, id)
	return nil
}

type linkRepo struct{ s *memStore }

func (r linkRepo) Create(_ context.Context, l entity.ClientBranch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail["sucursal_cliente"]; err != nil {
		return err
	}
	r.s.links[l] = true
	r.s.writes++
	return nil
}

func (r linkRepo) Delete(_ context.Context, l entity.ClientBranch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.links, l)
	return nil
}

type invoiceRepo struct{ s *memStore }

func (r invoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail["factura"]; err != nil {
		return err
	}
	if _, ok := r.s.clients[inv.ClientID]; !ok {
		return errors.New("fk id_cliente")
	}
	inv.ID = r.s.next()
	inv.Version = 1
	r.s.invoices[inv.ID] = *inv
	r.s.writes++
	return nil
}

func (r invoiceRepo) CreateDetails(_ context.Context, details []*entity.InvoiceDetail) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail["factura_detalle"]; err != nil {
		return err
	}
	for _, d := range details {
		if _, ok := r.s.invoices[d.InvoiceID]; !ok {
			return errors.New("fk id_factura")
		}
	}
	for _, d := range details {
		d.ID = r.s.next()
		r.s.details[d.ID] = *d
	}
	r.s.writes++
	return nil
}

func (r invoiceRepo) DeleteDetails(_ context.Context, invoiceID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, d := range r.s.details {
		if d.InvoiceID == invoiceID {
			delete(r.s.details, id)
		}
	}
	return nil
}

func (r invoiceRepo) GetByID(_ context.Context, id int64) (*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r invoiceRepo) UpdateIfVersion(_ context.Context, inv *entity.Invoice, expected int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail["update"]; err != nil {
		return false, err
	}
	if r.s.beforeUpdate != nil {
		r.s.beforeUpdate(r.s, inv.ID)
	}
	cur, ok := r.s.invoices[inv.ID]
	if !ok || cur.Version != expected {
		return false, nil
	}
	inv.Version = expected + 1
	r.s.invoices[inv.ID] = *inv
	return true, nil
}

func (r invoiceRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail["delete"]; err != nil {
		return err
	}
	if _, ok := r.s.invoices[id]; !ok {
		return domain.ErrNotFound
	}
	for _, d := range r.s.details {
		if d.InvoiceID == id {
			return errors.New("fk factura_detalle")
		}
	}
	for _, inv := range r.s.informes {
		if inv == id {
			return errors.New("fk informe")
		}
	}
	delete(r.s.invoices, id)
	return nil
}

func (r invoiceRepo) ListNested(context.Context) ([]map[string]any, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]map[string]any, 0, len(r.s.invoices))
	for id, inv := range r.s.invoices {
		out = append(out, map[string]any{"id_factura": id, "cod_factura": inv.Code})
	}
	return out, nil
}

type reportRepo struct{ s *memStore }

func (r reportRepo) DeleteByInvoice(_ context.Context, invoiceID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, inv := range r.s.informes {
		if inv == invoiceID {
			delete(r.s.informes, id)
		}
	}
	return nil
}
