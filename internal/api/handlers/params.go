package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyIDList в списке id нет ни одного значения
var ErrEmptyIDList = errors.New("handlers: empty id list")

// ParseIDList разбирает список id через запятую, например "1,2,3"
func ParseIDList(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyIDList
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseOptionalID пустая строка даёт nil, иначе положительный id
func ParseOptionalID(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, fmt.Errorf("id must be positive: %d", id)
	}
	return &id, nil
}
