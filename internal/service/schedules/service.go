package schedules

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SalonBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/SalonBookingService/internal/service/schedules/models"
)

// Service сервис рабочих расписаний мастеров
type Service struct {
	scheduleRepo ScheduleRepository
	masterRepo   MasterRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	masterRepo MasterRepository,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		masterRepo:   masterRepo,
		logger:       logger,
	}
}

// Set создает расписание мастера на день недели.
// Расписание на уже занятый день отклоняется с ErrDuplicateSchedule:
// сначала проверкой, затем уникальным ограничением в БД на случай гонки
func (s *Service) Set(ctx context.Context, req *models.SetScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Set: creating schedule for master=%d weekday=%d %s-%s",
		req.MasterID, req.Weekday, req.StartTime, req.EndTime)

	// 1. Валидируем входные данные
	schedule, err := s.validate(req)
	if err != nil {
		s.logger.Warn("Set: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что мастер существует
	if err := s.checkMaster(ctx, req.MasterID); err != nil {
		return nil, err
	}

	// 3. Проверяем, что день ещё не занят
	existing, err := s.scheduleRepo.HoursFor(ctx, req.MasterID, req.Weekday)
	if err != nil {
		s.logger.Error("Set: failed to check existing schedule: %v", err)
		return nil, fmt.Errorf("%w: Set - failed to check existing schedule: %v", ErrInternal, err)
	}
	if existing != nil {
		s.logger.Warn("Set: schedule already exists for master=%d weekday=%d", req.MasterID, req.Weekday)
		return nil, ErrDuplicateSchedule
	}

	// 4. Создаем расписание
	created, err := s.scheduleRepo.Create(ctx, schedule)
	if err != nil {
		return nil, s.mapRepoError("Set", err)
	}

	s.logger.Info("Set: successfully created schedule id=%d", created.ID)
	return models.FromDomainSchedule(created), nil
}

// Update меняет часы существующего расписания
func (s *Service) Update(ctx context.Context, req *models.SetScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule for master=%d weekday=%d", req.MasterID, req.Weekday)

	schedule, err := s.validate(req)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.scheduleRepo.Update(ctx, schedule)
	if err != nil {
		return nil, s.mapRepoError("Update", err)
	}
	return models.FromDomainSchedule(updated), nil
}

// Delete удаляет расписание, день становится выходным
func (s *Service) Delete(ctx context.Context, masterID int64, weekday int) error {
	s.logger.Info("Delete: removing schedule for master=%d weekday=%d", masterID, weekday)

	if weekday < domain.MinWeekday || weekday > domain.MaxWeekday {
		return fmt.Errorf("%w: weekday must be %d..%d", ErrInvalidInput, domain.MinWeekday, domain.MaxWeekday)
	}
	if err := s.scheduleRepo.Delete(ctx, masterID, weekday); err != nil {
		return s.mapRepoError("Delete", err)
	}
	return nil
}

// GetWeek недельное расписание мастера
func (s *Service) GetWeek(ctx context.Context, masterID int64) (*models.WeekResponse, error) {
	s.logger.Info("GetWeek: fetching schedules for master=%d", masterID)

	if err := s.checkMaster(ctx, masterID); err != nil {
		return nil, err
	}

	schedules, err := s.scheduleRepo.ListByMaster(ctx, masterID)
	if err != nil {
		s.logger.Error("GetWeek: repository error for master=%d: %v", masterID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainWeek(masterID, schedules), nil
}

func (s *Service) validate(req *models.SetScheduleRequest) (*domain.WorkSchedule, error) {
	if req.MasterID <= 0 {
		return nil, fmt.Errorf("%w: master id is required", ErrInvalidInput)
	}
	schedule, err := req.ToDomainSchedule()
	if err != nil {
		return nil, fmt.Errorf("%w: time must be HH:MM", ErrInvalidInput)
	}
	if !schedule.IsValid() {
		return nil, fmt.Errorf("%w: weekday must be %d..%d and start before end",
			ErrInvalidInput, domain.MinWeekday, domain.MaxWeekday)
	}
	return schedule, nil
}

func (s *Service) checkMaster(ctx context.Context, masterID int64) error {
	if _, err := s.masterRepo.GetMasterByID(ctx, masterID); err != nil {
		if errors.Is(err, catalogRepo.ErrMasterNotFound) {
			s.logger.Warn("checkMaster: master id=%d not found", masterID)
			return ErrMasterNotFound
		}
		s.logger.Error("checkMaster: failed to get master id=%d: %v", masterID, err)
		return fmt.Errorf("%w: checkMaster - failed to get master: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) mapRepoError(op string, err error) error {
	switch {
	case errors.Is(err, scheduleRepo.ErrDuplicateSchedule):
		s.logger.Warn("%s: duplicate schedule rejected by constraint", op)
		return ErrDuplicateSchedule
	case errors.Is(err, scheduleRepo.ErrScheduleNotFound):
		return ErrScheduleNotFound
	case errors.Is(err, scheduleRepo.ErrMasterNotFound):
		return ErrMasterNotFound
	case errors.Is(err, scheduleRepo.ErrInvalidTimeRange):
		return fmt.Errorf("%w: start must be before end", ErrInvalidInput)
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
