// Package memory хранилище в памяти с теми же контрактами, что и PostgreSQL-репозитории.
// Используется в тестах usecase и handlers
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// Store услуги, мастера, расписания, клиенты и записи
type Store struct {
	mu sync.Mutex

	services     map[int64]*domain.Service
	masters      map[int64]*domain.Master
	schedules    []*domain.WorkSchedule
	clients      map[string]*domain.Client
	appointments map[int64]*domain.Appointment
	nextID       int64

	// Reads считает чтения записей мастера за день
	Reads int
}

// New создает пустое хранилище
func New() *Store {
	return &Store{
		services:     make(map[int64]*domain.Service),
		masters:      make(map[int64]*domain.Master),
		clients:      make(map[string]*domain.Client),
		appointments: make(map[int64]*domain.Appointment),
	}
}

// AddService добавляет услугу
func (s *Store) AddService(svc *domain.Service) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services[svc.ID] = svc
	return s
}

// AddMaster добавляет мастера
func (s *Store) AddMaster(m *domain.Master) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.masters[m.ID] = m
	return s
}

// AddSchedule добавляет рабочие часы мастера на день недели
func (s *Store) AddSchedule(masterID int64, weekday int, start, end types.TimeString) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules = append(s.schedules, &domain.WorkSchedule{
		ID:        int64(len(s.schedules) + 1),
		MasterID:  masterID,
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
	})
	return s
}

// Appointments все записи по возрастанию id
func (s *Store) Appointments() []*domain.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetServicesByIDs(_ context.Context, ids []int64) ([]*domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Service, 0, len(ids))
	for _, id := range domain.UniqueIDs(ids) {
		if svc, ok := s.services[id]; ok {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (s *Store) GetMasterByID(_ context.Context, id int64) (*domain.Master, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.masters[id]
	if !ok {
		return nil, catalogRepo.ErrMasterNotFound
	}
	return m, nil
}

func (s *Store) ListQualifiedMasters(_ context.Context, serviceIDs []int64) ([]*domain.Master, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Master, 0)
	for _, m := range s.masters {
		if m.IsSchedulable() && m.CanPerform(serviceIDs) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) HoursFor(_ context.Context, masterID int64, weekday int) (*domain.WorkSchedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ws := range s.schedules {
		if ws.MasterID == masterID && ws.Weekday == weekday {
			return ws, nil
		}
	}
	return nil, nil
}

func (s *Store) HoursForAny(_ context.Context, masterIDs []int64, weekday int) ([]*domain.WorkSchedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := make(map[int64]struct{}, len(masterIDs))
	for _, id := range masterIDs {
		wanted[id] = struct{}{}
	}
	out := make([]*domain.WorkSchedule, 0)
	for _, ws := range s.schedules {
		if _, ok := wanted[ws.MasterID]; ok && ws.Weekday == weekday {
			out = append(out, ws)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MasterID < out[j].MasterID })
	return out, nil
}

func (s *Store) GetByMasterAndDate(_ context.Context, masterID int64, date types.Date, loc *time.Location) ([]*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Reads++

	out := make([]*domain.Appointment, 0)
	for _, a := range s.appointments {
		if a.MasterID != masterID {
			continue
		}
		switch {
		case a.DateTime != nil && types.DateOf(a.DateTime.In(loc)).Equal(date):
			out = append(out, a)
		case a.DateTime == nil && a.Date != nil && a.Date.Equal(date):
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return a, nil
}

// Create сохраняет запись, длительность считается по услугам, как в SQL-агрегате
func (s *Store) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	a.ID = s.nextID
	a.ServiceIDs = domain.UniqueIDs(a.ServiceIDs)
	a.ServicesCount = 0
	a.DurationMinutes = 0
	for _, id := range a.ServiceIDs {
		if svc, ok := s.services[id]; ok {
			a.ServicesCount++
			a.DurationMinutes += svc.DurationMinutes
		}
	}
	if a.Confirmation == "" {
		a.Confirmation = domain.ConfirmationPending
	}
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	s.appointments[a.ID] = a
	return a, nil
}

func (s *Store) SetPaymentURL(_ context.Context, id int64, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.PaymentURL = &url
	return nil
}

// LockMasterDay в памяти ничего не блокирует, сериализацию даёт TxManager
func (s *Store) LockMasterDay(_ context.Context, _ int64, _ types.Date) error {
	return nil
}

func (s *Store) GetOrCreateByPhone(_ context.Context, name, phone string) (*domain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.clients[phone]; ok {
		return c, nil
	}
	c := &domain.Client{ID: int64(len(s.clients) + 1), Name: name, Phone: phone, CreatedAt: time.Now()}
	s.clients[phone] = c
	return c, nil
}

// TxManager выполняет транзакции строго по одной
type TxManager struct {
	mu sync.Mutex
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}
