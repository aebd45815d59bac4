package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// FindConflict возвращает первую запись, занятость которой пересекается с candidate.
// Записи без услуг или без времени пропускаются
func FindConflict(existing []*domain.Appointment, candidate domain.Interval, cfg domain.SchedulingConfig, excludeID *int64) *domain.Appointment {
	for _, a := range existing {
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		busy, ok := a.Busy(cfg)
		if !ok {
			continue
		}
		if busy.Overlaps(candidate) {
			return a
		}
	}
	return nil
}

// Detector проверяет пересечение кандидата с записями мастера за тот же день
type Detector struct {
	appointments AppointmentReader
	cfg          domain.SchedulingConfig
	loc          *time.Location
}

// NewDetector создает детектор конфликтов
func NewDetector(appointments AppointmentReader, cfg domain.SchedulingConfig, loc *time.Location) *Detector {
	return &Detector{appointments: appointments, cfg: cfg, loc: loc}
}

// Conflicts есть ли пересечение [start, start+duration) с занятостью мастера
func (d *Detector) Conflicts(ctx context.Context, masterID int64, start time.Time, duration time.Duration, excludeID *int64) (bool, error) {
	conflict, err := d.Find(ctx, masterID, start, duration, excludeID)
	if err != nil {
		return false, err
	}
	return conflict != nil, nil
}

// Find как Conflicts, но возвращает саму пересекающуюся запись
func (d *Detector) Find(ctx context.Context, masterID int64, start time.Time, duration time.Duration, excludeID *int64) (*domain.Appointment, error) {
	date := types.DateOf(start.In(d.loc))
	existing, err := d.appointments.GetByMasterAndDate(ctx, masterID, date, d.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: get appointments of master=%d on %s: %w", ErrStore, masterID, date, err)
	}
	return FindConflict(existing, domain.NewInterval(start, duration), d.cfg, excludeID), nil
}
