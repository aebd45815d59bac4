package domain

import "time"

// SchedulingConfig параметры расчёта занятости и слотов
type SchedulingConfig struct {
	PreBuffer       time.Duration // подготовка перед записью
	PostBuffer      time.Duration // уборка после записи
	SlotGranularity time.Duration // шаг перебора слотов
	BookingNotice   time.Duration // минимальный запас до начала записи на сегодня
}

// DefaultSchedulingConfig 30/10/30 минут и 30 минут на запись "на сегодня"
func DefaultSchedulingConfig() SchedulingConfig {
	return SchedulingConfig{
		PreBuffer:       DefaultPreBufferMinutes * time.Minute,
		PostBuffer:      DefaultPostBufferMinutes * time.Minute,
		SlotGranularity: DefaultSlotGranularityMinutes * time.Minute,
		BookingNotice:   DefaultBookingNoticeMinutes * time.Minute,
	}
}

// NewSchedulingConfig собирает конфигурацию из минут, нулевой шаг заменяется значением по умолчанию
func NewSchedulingConfig(preMin, postMin, granularityMin, noticeMin int) SchedulingConfig {
	cfg := SchedulingConfig{
		PreBuffer:       time.Duration(preMin) * time.Minute,
		PostBuffer:      time.Duration(postMin) * time.Minute,
		SlotGranularity: time.Duration(granularityMin) * time.Minute,
		BookingNotice:   time.Duration(noticeMin) * time.Minute,
	}
	if cfg.SlotGranularity <= 0 {
		cfg.SlotGranularity = DefaultSlotGranularityMinutes * time.Minute
	}
	return cfg
}
