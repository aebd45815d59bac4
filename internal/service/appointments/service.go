package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/appointment"
	"github.com/m04kA/SalonBookingService/internal/service/appointments/models"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

const defaultPageSize = 20

// Service сервис для работы с записями: просмотр и подтверждение
type Service struct {
	appointmentRepo AppointmentRepository
	loc             *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	loc *time.Location,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		loc:             loc,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// ListPending неподтверждённые записи, старые первыми, с общим количеством
func (s *Service) ListPending(ctx context.Context, req *models.PendingRequest) (*models.AppointmentListResponse, error) {
	filter := domain.PendingFilter{Limit: req.Limit, Offset: req.Offset}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > domain.MaxPendingPageSize || filter.Offset < 0 {
		s.logger.Warn("ListPending: invalid page limit=%d offset=%d", req.Limit, req.Offset)
		return nil, fmt.Errorf("%w: limit must be 1..%d and offset >= 0", ErrInvalidInput, domain.MaxPendingPageSize)
	}

	s.logger.Info("ListPending: fetching limit=%d offset=%d", filter.Limit, filter.Offset)

	appointments, err := s.appointmentRepo.ListPending(ctx, filter)
	if err != nil {
		s.logger.Error("ListPending: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPending - repository error: %v", ErrInternal, err)
	}

	total, err := s.appointmentRepo.CountPending(ctx)
	if err != nil {
		s.logger.Error("ListPending: count error: %v", err)
		return nil, fmt.Errorf("%w: ListPending - count error: %v", ErrInternal, err)
	}

	resp := models.FromDomainAppointmentList(appointments)
	resp.Total = &total
	return resp, nil
}

// Confirm подтверждает записи. Уже обработанные записи не меняются
func (s *Service) Confirm(ctx context.Context, req *models.ConfirmationRequest) (*models.ConfirmationResponse, error) {
	return s.transition(ctx, "Confirm", req, domain.ConfirmationConfirmed)
}

// Reject отклоняет записи. Время мастера остаётся занятым, как и у остальных записей дня
func (s *Service) Reject(ctx context.Context, req *models.ConfirmationRequest) (*models.ConfirmationResponse, error) {
	return s.transition(ctx, "Reject", req, domain.ConfirmationRejected)
}

func (s *Service) transition(ctx context.Context, op string, req *models.ConfirmationRequest, to domain.Confirmation) (*models.ConfirmationResponse, error) {
	ids := domain.UniqueIDs(req.IDs)
	if len(ids) == 0 {
		s.logger.Warn("%s: empty id list", op)
		return nil, fmt.Errorf("%w: ids are required", ErrInvalidInput)
	}
	if !domain.ConfirmationPending.CanTransitionTo(to) {
		return nil, fmt.Errorf("%w: unsupported confirmation %s", ErrInvalidInput, to)
	}

	s.logger.Info("%s: moving %d appointments to %s", op, len(ids), to)

	affected, err := s.appointmentRepo.UpdateConfirmation(ctx, ids, to)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if affected < int64(len(ids)) {
		s.logger.Warn("%s: %d of %d appointments were not pending", op, int64(len(ids))-affected, len(ids))
	}
	return &models.ConfirmationResponse{Affected: affected}, nil
}

// MasterDay записи мастера за день по времени, записи без времени первыми
func (s *Service) MasterDay(ctx context.Context, masterID int64, date types.Date) (*models.AppointmentListResponse, error) {
	s.logger.Info("MasterDay: fetching appointments of master=%d on %s", masterID, date)

	appointments, err := s.appointmentRepo.GetByMasterAndDate(ctx, masterID, date, s.loc)
	if err != nil {
		s.logger.Error("MasterDay: repository error for master=%d: %v", masterID, err)
		return nil, fmt.Errorf("%w: MasterDay - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appointments), nil
}

var weekdayNames = [...]string{"Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота", "Воскресенье"}

// WeeklyBoard записи недели, в которую попадает req.Date, разложенные по дням.
// Пустые дни тоже возвращаются
func (s *Service) WeeklyBoard(ctx context.Context, req *models.WeeklyRequest) (*models.WeeklyBoardResponse, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	monday := req.Date.AddDays(1 - req.Date.ISOWeekday())
	filter := domain.PeriodFilter{
		From:      monday,
		To:        monday.AddDays(len(weekdayNames)),
		MasterID:  req.MasterID,
		ServiceID: req.ServiceID,
	}
	s.logger.Info("WeeklyBoard: fetching appointments from %s to %s", filter.From, filter.To)

	appointments, err := s.appointmentRepo.ListByPeriod(ctx, filter, s.loc)
	if err != nil {
		s.logger.Error("WeeklyBoard: repository error: %v", err)
		return nil, fmt.Errorf("%w: WeeklyBoard - repository error: %v", ErrInternal, err)
	}

	resp := &models.WeeklyBoardResponse{Days: make([]models.DayBoard, len(weekdayNames))}
	for i, name := range weekdayNames {
		resp.Days[i] = models.DayBoard{
			Date:         monday.AddDays(i).String(),
			Day:          name,
			Appointments: []models.AppointmentResponse{},
		}
	}
	for _, a := range appointments {
		day := s.dayOf(a)
		if day.Before(filter.From) || !day.Before(filter.To) {
			continue
		}
		i := day.ISOWeekday() - 1
		resp.Days[i].Appointments = append(resp.Days[i].Appointments, *models.FromDomainAppointment(a))
	}
	return resp, nil
}

// BusySlots занятое время мастера за день. Запись без времени занимает весь день
func (s *Service) BusySlots(ctx context.Context, masterID int64, date types.Date) (*models.BusySlotsResponse, error) {
	if masterID <= 0 || date.IsZero() {
		return nil, fmt.Errorf("%w: master id and date are required", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByMasterAndDate(ctx, masterID, date, s.loc)
	if err != nil {
		s.logger.Error("BusySlots: repository error for master=%d: %v", masterID, err)
		return nil, fmt.Errorf("%w: BusySlots - repository error: %v", ErrInternal, err)
	}

	resp := &models.BusySlotsResponse{
		MasterID: masterID,
		Date:     date.String(),
		Busy:     make([]models.BusyInterval, 0, len(appointments)),
	}
	for _, a := range appointments {
		if !a.HasTime() {
			resp.AllDay = true
			continue
		}
		start := a.DateTime.In(s.loc)
		end := start.Add(time.Duration(a.DurationMinutes) * time.Minute)
		resp.Busy = append(resp.Busy, models.BusyInterval{
			Start: types.NewTimeString(start).String(),
			End:   types.NewTimeString(end).String(),
		})
	}
	return resp, nil
}

// dayOf календарный день записи в часовом поясе салона
func (s *Service) dayOf(a *domain.Appointment) types.Date {
	if a.DateTime != nil {
		return types.DateOf(a.DateTime.In(s.loc))
	}
	if a.Date != nil {
		return *a.Date
	}
	return types.Date{}
}
