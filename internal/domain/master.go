package domain

import "strings"

// Master мастер салона
type Master struct {
	ID         int64
	FirstName  string
	LastName   string
	IsActive   bool
	IsEmployee bool
	ServiceIDs []int64
}

// FullName имя и фамилия
func (m *Master) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// IsSchedulable участвует ли мастер в расписании
func (m *Master) IsSchedulable() bool {
	return m.IsActive && m.IsEmployee
}

// CanPerform умеет ли мастер выполнять все перечисленные услуги
func (m *Master) CanPerform(serviceIDs []int64) bool {
	own := make(map[int64]struct{}, len(m.ServiceIDs))
	for _, id := range m.ServiceIDs {
		own[id] = struct{}{}
	}
	for _, id := range serviceIDs {
		if _, ok := own[id]; !ok {
			return false
		}
	}
	return true
}
