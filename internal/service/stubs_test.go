package service_test

// In-memory repository stubs. Each enforces the same uniqueness rules as the
// real Postgres schema by returning gorm.ErrDuplicatedKey, so services see
// identical behavior in unit tests.

import (
	"context"
	"sort"

	"github.com/DoukeUCB/A-Todo-Gas/internal/model"
	"github.com/DoukeUCB/A-Todo-Gas/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Usuario ───────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	users map[uuid.UUID]*model.Usuario
	saves int
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	for _, e := range r.users {
		if e.CI == u.CI || e.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	r.saves++
	return nil
}

func (r *stubUsuarioRepo) FindByCI(_ context.Context, ci string) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.CI == ci {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	return r.users[id], nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	for _, e := range r.users {
		if e.ID != u.ID && e.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── Gasolinera ────────────────────────────────────────────────────────────────

// stubGasolineraRepo keeps insertion order so list results are deterministic.
type stubGasolineraRepo struct {
	stations map[uuid.UUID]*model.Gasolinera
	order    []uuid.UUID
	saves    int
}

func newStubGasolineraRepo() *stubGasolineraRepo {
	return &stubGasolineraRepo{stations: make(map[uuid.UUID]*model.Gasolinera)}
}

func (r *stubGasolineraRepo) Create(_ context.Context, g *model.Gasolinera) error {
	for _, e := range r.stations {
		if e.UserID == g.UserID || e.Address == g.Address {
			return gorm.ErrDuplicatedKey
		}
		// NULL keys never collide, mirroring the unique-index semantics.
		if g.StationNumber != nil && e.StationNumber != nil && *e.StationNumber == *g.StationNumber {
			return gorm.ErrDuplicatedKey
		}
		if g.ManagerCI != nil && e.ManagerCI != nil && *e.ManagerCI == *g.ManagerCI {
			return gorm.ErrDuplicatedKey
		}
	}
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	r.stations[g.ID] = g
	r.order = append(r.order, g.ID)
	r.saves++
	return nil
}

func (r *stubGasolineraRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Gasolinera, error) {
	return r.stations[id], nil
}

func (r *stubGasolineraRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*model.Gasolinera, error) {
	for _, g := range r.stations {
		if g.UserID == userID {
			return g, nil
		}
	}
	return nil, nil
}

func (r *stubGasolineraRepo) FindByAddress(_ context.Context, address string) (*model.Gasolinera, error) {
	for _, g := range r.stations {
		if g.Address == address {
			return g, nil
		}
	}
	return nil, nil
}

func (r *stubGasolineraRepo) FindByStationNumber(_ context.Context, n int) (*model.Gasolinera, error) {
	for _, g := range r.stations {
		if g.StationNumber != nil && *g.StationNumber == n {
			return g, nil
		}
	}
	return nil, nil
}

func (r *stubGasolineraRepo) FindByManagerCI(_ context.Context, ci string) (*model.Gasolinera, error) {
	for _, g := range r.stations {
		if g.ManagerCI != nil && *g.ManagerCI == ci {
			return g, nil
		}
	}
	return nil, nil
}

func (r *stubGasolineraRepo) FindAll(_ context.Context) ([]model.Gasolinera, error) {
	out := make([]model.Gasolinera, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.stations[id])
	}
	return out, nil
}

func (r *stubGasolineraRepo) Update(_ context.Context, g *model.Gasolinera) error {
	for _, e := range r.stations {
		if e.ID != g.ID && e.Address == g.Address {
			return gorm.ErrDuplicatedKey
		}
	}
	r.stations[g.ID] = g
	return nil
}

func (r *stubGasolineraRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.stations, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *stubGasolineraRepo) IncrementTicketCount(_ context.Context, _ *gorm.DB, id uuid.UUID) (int, error) {
	g, ok := r.stations[id]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	g.TicketCount++
	return g.TicketCount, nil
}

func (r *stubGasolineraRepo) DB() *gorm.DB { return nil }

var _ repository.GasolineraRepository = (*stubGasolineraRepo)(nil)

// ── Ticket ────────────────────────────────────────────────────────────────────

type stubTicketRepo struct {
	tickets map[uuid.UUID]*model.Ticket
	saves   int
}

func newStubTicketRepo() *stubTicketRepo {
	return &stubTicketRepo{tickets: make(map[uuid.UUID]*model.Ticket)}
}

func (r *stubTicketRepo) Create(_ context.Context, _ *gorm.DB, t *model.Ticket) error {
	for _, e := range r.tickets {
		if e.StationID == t.StationID && e.TicketNumber == t.TicketNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.tickets[t.ID] = t
	r.saves++
	return nil
}

func (r *stubTicketRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Ticket, error) {
	return r.tickets[id], nil
}

func (r *stubTicketRepo) FindByUserCI(_ context.Context, ci string) ([]model.Ticket, error) {
	var out []model.Ticket
	for _, t := range r.tickets {
		if t.CI == ci {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubTicketRepo) FindByStationID(_ context.Context, stationID uuid.UUID) ([]model.Ticket, error) {
	var out []model.Ticket
	for _, t := range r.tickets {
		if t.StationID == stationID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TicketNumber < out[j].TicketNumber })
	return out, nil
}

var _ repository.TicketRepository = (*stubTicketRepo)(nil)

// ── Surtidor / NivelCombustible ───────────────────────────────────────────────

type stubSurtidorRepo struct {
	surtidores map[uuid.UUID]*model.Surtidor
}

func newStubSurtidorRepo() *stubSurtidorRepo {
	return &stubSurtidorRepo{surtidores: make(map[uuid.UUID]*model.Surtidor)}
}

func (r *stubSurtidorRepo) Create(_ context.Context, s *model.Surtidor) error {
	for _, e := range r.surtidores {
		if e.GasolineraID == s.GasolineraID && e.Number == s.Number {
			return gorm.ErrDuplicatedKey
		}
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.surtidores[s.ID] = s
	return nil
}

func (r *stubSurtidorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Surtidor, error) {
	return r.surtidores[id], nil
}

func (r *stubSurtidorRepo) FindByGasolineraID(_ context.Context, stationID uuid.UUID) ([]model.Surtidor, error) {
	var out []model.Surtidor
	for _, s := range r.surtidores {
		if s.GasolineraID == stationID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

var _ repository.SurtidorRepository = (*stubSurtidorRepo)(nil)

type stubNivelRepo struct {
	niveles []model.NivelCombustible
	saves   int
}

func (r *stubNivelRepo) Save(_ context.Context, n *model.NivelCombustible) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	r.niveles = append(r.niveles, *n)
	r.saves++
	return nil
}

func (r *stubNivelRepo) FindBySurtidorID(_ context.Context, surtidorID uuid.UUID) ([]model.NivelCombustible, error) {
	var out []model.NivelCombustible
	for _, n := range r.niveles {
		if n.SurtidorID == surtidorID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordedAt.After(out[j].RecordedAt) })
	return out, nil
}

func (r *stubNivelRepo) FindUltimo(_ context.Context, surtidorID uuid.UUID) (*model.NivelCombustible, error) {
	var latest *model.NivelCombustible
	for i := range r.niveles {
		n := &r.niveles[i]
		if n.SurtidorID != surtidorID {
			continue
		}
		if latest == nil || n.RecordedAt.After(latest.RecordedAt) {
			latest = n
		}
	}
	return latest, nil
}

var _ repository.NivelCombustibleRepository = (*stubNivelRepo)(nil)
