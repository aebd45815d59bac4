package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/internal/integrations/freedompay"
	"github.com/m04kA/SalonBookingService/internal/integrations/telegram"
	"github.com/m04kA/SalonBookingService/internal/service/scheduling"
	"github.com/m04kA/SalonBookingService/pkg/txmanager"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// UseCase use case для проверки и создания записи
type UseCase struct {
	resolver        Resolver
	validator       Validator
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	txManager       TransactionManager
	notifier        Notifier
	payments        PaymentProvider
	metrics         Metrics
	loc             *time.Location
	timeProvider    TimeProvider
	// dispatch запускает действия после коммита, по умолчанию в отдельной горутине
	dispatch func(func())
	logger   Logger
}

// NewUseCase создает новый экземпляр use case.
// notifier и payments могут быть nil, тогда соответствующий шаг после коммита пропускается
func NewUseCase(
	resolver Resolver,
	validator Validator,
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	notifier Notifier,
	payments PaymentProvider,
	metrics Metrics,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		resolver:        resolver,
		validator:       validator,
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		txManager:       txManager,
		notifier:        notifier,
		payments:        payments,
		metrics:         metrics,
		loc:             loc,
		timeProvider:    &RealTimeProvider{},
		dispatch:        func(f func()) { go f() },
		logger:          logger,
	}
}

// Execute проверяет запись цепочкой правил и сохраняет её.
// Блокировка дня мастера, проверка и вставка идут в одной транзакции READ COMMITTED.
// Блокировка берётся первым запросом, поэтому проверка видит записи,
// закоммиченные предыдущим владельцем блокировки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: master=%d, services=%v, date_time=%v, date=%v",
		req.MasterID, req.ServiceIDs, req.DateTime, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		uc.observe(resultRejected)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услуги и мастера
	services, err := uc.resolver.Services(ctx, req.ServiceIDs)
	if err != nil {
		return nil, uc.fail("resolve services", err)
	}
	master, err := uc.resolver.Master(ctx, req.MasterID, services)
	if err != nil {
		return nil, uc.fail("resolve master", err)
	}

	draft := &scheduling.Draft{
		MasterID: master.ID,
		Services: services,
		DateTime: req.DateTime,
		Date:     req.Date,
	}
	day := uc.lockDay(draft)

	var created *domain.Appointment

	// 4. Проверка и вставка в транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 4.1. Блокировка до чтения записей дня, следующий запрос ждёт commit и видит эту запись
		if err := uc.appointmentRepo.LockMasterDay(txCtx, master.ID, day); err != nil {
			return fmt.Errorf("%w: lock master day: %w", scheduling.ErrStore, err)
		}

		// 4.2. Цепочка правил, первое нарушение побеждает
		if err := uc.validator.Validate(txCtx, draft, now); err != nil {
			return err
		}

		// 4.3. Клиент по телефону
		clientID := req.ClientID
		clientName := req.ClientName
		if clientName == "" {
			clientName = defaultClientName
		}
		if clientID == nil && req.Phone != "" {
			client, err := uc.clientRepo.GetOrCreateByPhone(txCtx, clientName, req.Phone)
			if err != nil {
				return fmt.Errorf("%w: get or create client: %w", scheduling.ErrStore, err)
			}
			clientID = &client.ID
			clientName = client.Name
		}

		// 4.4. Сохраняем запись
		appointment, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientID:        clientID,
			ClientName:      clientName,
			Phone:           req.Phone,
			ServiceIDs:      domain.UniqueIDs(req.ServiceIDs),
			MasterID:        master.ID,
			DateTime:        draft.DateTime,
			Date:            draft.Date,
			Confirmation:    domain.ConfirmationPending,
			ReminderMinutes: req.ReminderMinutes,
			Prepayment:      req.Prepayment,
		})
		if err != nil {
			return fmt.Errorf("%w: create appointment: %w", scheduling.ErrStore, err)
		}
		created = appointment
		return nil
	})
	if err != nil {
		return nil, uc.failTx(err)
	}

	uc.observe(resultCreated)
	uc.logger.Info("CreateAppointment: created appointment id=%d for master=%d", created.ID, master.ID)

	// 5. Оплата и уведомление после коммита, их ошибки запись не отменяют
	uc.afterCommit(ctx, created, master, services)

	return &Response{
		ID:              created.ID,
		ClientID:        created.ClientID,
		ClientName:      created.ClientName,
		Phone:           created.Phone,
		MasterID:        master.ID,
		MasterName:      master.FullName(),
		ServiceIDs:      created.ServiceIDs,
		DateTime:        created.DateTime,
		Date:            created.Date,
		DurationMinutes: services.TotalDurationMinutes(),
		TotalPrice:      services.TotalPrice(),
		Confirmation:    created.Confirmation,
		ReminderMinutes: created.ReminderMinutes,
		Prepayment:      created.Prepayment,
		CreatedAt:       created.CreatedAt,
	}, nil
}

// lockDay календарный день записи в часовом поясе салона
func (uc *UseCase) lockDay(d *scheduling.Draft) types.Date {
	if d.DateTime != nil {
		return types.DateOf(d.DateTime.In(uc.loc))
	}
	return *d.Date
}

func (uc *UseCase) afterCommit(ctx context.Context, a *domain.Appointment, master *domain.Master, services domain.ServiceSet) {
	if uc.notifier == nil && uc.payments == nil {
		return
	}
	detached := context.WithoutCancel(ctx)
	uc.dispatch(func() {
		paymentURL := uc.createPayment(detached, a, services)

		if uc.notifier == nil {
			return
		}
		msg := &telegram.AppointmentMessage{
			AppointmentID: a.ID,
			ClientName:    a.ClientName,
			Phone:         a.Phone,
			MasterName:    master.FullName(),
			Services:      services.Names(),
			TotalPrice:    services.TotalPrice(),
			PaymentURL:    paymentURL,
		}
		if a.DateTime != nil {
			local := a.DateTime.In(uc.loc)
			msg.DateTime = &local
		} else if a.Date != nil {
			msg.Date = a.Date.String()
		}
		if err := uc.notifier.NotifyAppointment(detached, msg); err != nil {
			uc.logger.Error("CreateAppointment: failed to notify operators about id=%d: %v", a.ID, err)
		}
	})
}

// createPayment сумма: предоплата, если указана, иначе стоимость услуг
func (uc *UseCase) createPayment(ctx context.Context, a *domain.Appointment, services domain.ServiceSet) *string {
	if uc.payments == nil {
		return nil
	}
	amount := a.Prepayment
	if amount <= 0 {
		amount = services.TotalPrice()
	}
	if amount <= 0 {
		return nil
	}

	link, err := uc.payments.InitPayment(ctx, &freedompay.PaymentRequest{OrderID: a.ID, Amount: amount})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to init payment for id=%d: %v", a.ID, err)
		return nil
	}
	if err := uc.appointmentRepo.SetPaymentURL(ctx, a.ID, link); err != nil {
		uc.logger.Error("CreateAppointment: failed to save payment url for id=%d: %v", a.ID, err)
	}
	return &link
}

// fail логирует и пробрасывает ошибки резолвера: отказы как есть, ошибки хранилища как внутренние
func (uc *UseCase) fail(step string, err error) error {
	if errors.Is(err, scheduling.ErrStore) {
		uc.observe(resultError)
		uc.logger.Error("CreateAppointment: %s: %v", step, err)
		return fmt.Errorf("%w: %s: %v", ErrInternal, step, err)
	}
	uc.observe(resultRejected)
	uc.logger.Warn("CreateAppointment: %s: %v", step, err)
	return err
}

func (uc *UseCase) failTx(err error) error {
	if errors.Is(err, txmanager.ErrSerialization) {
		uc.observe(resultConflict)
		uc.logger.Warn("CreateAppointment: concurrent booking lost the race: %v", err)
		return fmt.Errorf("%w: %v", ErrConcurrencyConflict, err)
	}
	if ve, ok := scheduling.AsValidationError(err); ok {
		uc.observe(resultRejected)
		uc.logger.Warn("CreateAppointment: rule %s failed: %s", ve.Rule, ve.Reason)
		return ve
	}
	uc.observe(resultError)
	uc.logger.Error("CreateAppointment: transaction failed: %v", err)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

func (uc *UseCase) observe(result string) {
	if uc.metrics != nil {
		uc.metrics.ObserveBooking(result)
	}
}
