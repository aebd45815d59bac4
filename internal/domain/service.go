package domain

import "sort"

// Service услуга салона
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
	IsLong          bool // запись только на дату, без времени
	ParentIDs       []int64
}

// ServiceSet набор услуг одной записи
type ServiceSet []*Service

// TotalDurationMinutes суммарная длительность
func (s ServiceSet) TotalDurationMinutes() int {
	total := 0
	for _, svc := range s {
		total += svc.DurationMinutes
	}
	return total
}

// AnyLong есть ли среди услуг длинная
func (s ServiceSet) AnyLong() bool {
	for _, svc := range s {
		if svc.IsLong {
			return true
		}
	}
	return false
}

// TotalPrice суммарная стоимость
func (s ServiceSet) TotalPrice() float64 {
	var total float64
	for _, svc := range s {
		total += svc.Price
	}
	return total
}

// Names названия услуг
func (s ServiceSet) Names() []string {
	names := make([]string, 0, len(s))
	for _, svc := range s {
		names = append(names, svc.Name)
	}
	return names
}

// UniqueIDs убирает дубликаты и сортирует id по возрастанию
func UniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
