package costs_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lavanderia-api/internal/domain"
	"github.com/jhoicas/lavanderia-api/internal/domain/entity"
)

type memCosts struct {
	mu        sync.Mutex
	seq       int64
	expenses  map[int64]entity.Expense
	specific  map[int64]entity.SpecificCost
	employees map[int64]entity.Employee
	supplies  map[int64]entity.Supply
	details   map[int64]entity.SupplyDetail
	links     map[int64][]int64 // id_insumo -> id_detalle_insumo
	reports   map[int64]int64   // id_informe -> id_gastos
	failLink  error
	// failLinkAt hace fallar solo la n-ésima llamada a LinkDetails (desde 1).
	failLinkAt int
	linkCalls  int
	failDelete error
}

func newMemCosts() *memCosts {
	return &memCosts{
		expenses:  map[int64]entity.Expense{},
		specific:  map[int64]entity.SpecificCost{},
		employees: map[int64]entity.Employee{},
		supplies:  map[int64]entity.Supply{},
		details:   map[int64]entity.SupplyDetail{},
		links:     map[int64][]int64{},
		reports:   map[int64]int64{},
	}
}

func (m *memCosts) next() int64 {
	m.seq++
	return m.seq
}

type expenseRepo struct{ m *memCosts }

func (r expenseRepo) List(context.Context) ([]*entity.Expense, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ids := make([]int64, 0, len(r.m.expenses))
	for id := range r.m.expenses {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.Expense, 0, len(ids))
	for _, id := range ids {
		e := r.m.expenses[id]
		out = append(out, &e)
	}
	return out, nil
}

func (r expenseRepo) DeleteReportsBySupply(_ context.Context, supplyID int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for id, expenseID := range r.m.reports {
		e, ok := r.m.expenses[expenseID]
		if ok && e.SupplyID != nil && *e.SupplyID == supplyID {
			delete(r.m.reports, id)
		}
	}
	return nil
}

func (r expenseRepo) DeleteBySupply(_ context.Context, supplyID int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for id, e := range r.m.expenses {
		if e.SupplyID == nil || *e.SupplyID != supplyID {
			continue
		}
		for _, expenseID := range r.m.reports {
			if expenseID == id {
				return errors.New("fk informe")
			}
		}
	}
	for id, e := range r.m.expenses {
		if e.SupplyID != nil && *e.SupplyID == supplyID {
			delete(r.m.expenses, id)
		}
	}
	return nil
}

type specificRepo struct{ m *memCosts }

func (r specificRepo) List(context.Context) ([]*entity.SpecificCost, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]*entity.SpecificCost, 0, len(r.m.specific))
	for _, c := range r.m.specific {
		c := c
		out = append(out, &c)
	}
	return out, nil
}

func (r specificRepo) GetByID(_ context.Context, id int64) (*entity.SpecificCost, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	c, ok := r.m.specific[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r specificRepo) Create(_ context.Context, c *entity.SpecificCost) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	c.ID = r.m.next()
	r.m.specific[c.ID] = *c
	return nil
}

func (r specificRepo) Update(_ context.Context, c *entity.SpecificCost) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.specific[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.m.specific[c.ID] = *c
	return nil
}

func (r specificRepo) Delete(_ context.Context, id int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.specific[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.m.specific, id)
	return nil
}

type employeeRepo struct{ m *memCosts }

func (r employeeRepo) List(context.Context) ([]*entity.Employee, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]*entity.Employee, 0, len(r.m.employees))
	for _, e := range r.m.employees {
		e := e
		out = append(out, &e)
	}
	return out, nil
}

func (r employeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	e.ID = r.m.next()
	r.m.employees[e.ID] = *e
	return nil
}

func (r employeeRepo) SetPayment(_ context.Context, id int64, kind entity.PaymentKind, amount decimal.Decimal) (*entity.Employee, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	e, ok := r.m.employees[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	switch kind {
	case entity.PaymentBonus:
		e.Bonus = &amount
	case entity.PaymentSeverance:
		e.Severance = &amount
	}
	r.m.employees[id] = e
	return &e, nil
}

func (r employeeRepo) Delete(_ context.Context, id int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.employees[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.m.employees, id)
	return nil
}

type supplyRepo struct{ m *memCosts }

func (r supplyRepo) List(context.Context) ([]*entity.Supply, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]*entity.Supply, 0, len(r.m.supplies))
	for id, s := range r.m.supplies {
		s := s
		for _, did := range r.m.links[id] {
			s.Details = append(s.Details, r.m.details[did])
		}
		out = append(out, &s)
	}
	return out, nil
}

func (r supplyRepo) GetByID(_ context.Context, id int64) (*entity.Supply, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	s, ok := r.m.supplies[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r supplyRepo) Create(_ context.Context, s *entity.Supply) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	s.ID = r.m.next()
	r.m.supplies[s.ID] = entity.Supply{ID: s.ID, Name: s.Name, Value: s.Value}
	return nil
}

func (r supplyRepo) Update(_ context.Context, s *entity.Supply) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.supplies[s.ID]; !ok {
		return domain.ErrNotFound
	}
	r.m.supplies[s.ID] = entity.Supply{ID: s.ID, Name: s.Name, Value: s.Value}
	return nil
}

func (r supplyRepo) Delete(_ context.Context, id int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failDelete != nil {
		return r.m.failDelete
	}
	if len(r.m.links[id]) > 0 {
		return errors.New("fk insumo_detalle")
	}
	for _, e := range r.m.expenses {
		if e.SupplyID != nil && *e.SupplyID == id {
			return errors.New("fk gastos")
		}
	}
	delete(r.m.supplies, id)
	return nil
}

func (r supplyRepo) CreateDetails(_ context.Context, details []*entity.SupplyDetail) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, d := range details {
		d.ID = r.m.next()
		r.m.details[d.ID] = *d
	}
	return nil
}

func (r supplyRepo) DeleteOrphanDetails(_ context.Context, ids []int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, id := range ids {
		if !r.m.linked(id) {
			delete(r.m.details, id)
		}
	}
	return nil
}

func (r supplyRepo) DeleteDetails(_ context.Context, ids []int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, id := range ids {
		delete(r.m.details, id)
	}
	return nil
}

func (r supplyRepo) LinkDetails(_ context.Context, supplyID int64, ids []int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.linkCalls++
	if r.m.failLink != nil {
		return r.m.failLink
	}
	if r.m.failLinkAt == r.m.linkCalls {
		return errors.New("insert insumo_detalle")
	}
	r.m.links[supplyID] = append(r.m.links[supplyID], ids...)
	return nil
}

func (r supplyRepo) UnlinkAll(_ context.Context, supplyID int64) ([]int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ids := r.m.links[supplyID]
	delete(r.m.links, supplyID)
	return ids, nil
}

func (m *memCosts) linked(detailID int64) bool {
	for _, ids := range m.links {
		for _, id := range ids {
			if id == detailID {
				return true
			}
		}
	}
	return false
}
