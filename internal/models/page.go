package models

import (
	"encoding/json"
	"strings"
)

// Meta метаданные постраничного ответа. Бэкенд называет счётчик по ресурсу
// (total_trips, total_reviews, ...), поэтому Total собирается из любого total_* ключа.
type Meta struct {
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
	TotalPages  int `json:"total_pages"`
	Total       int `json:"-"`
}

// UnmarshalJSON разбирает meta с произвольным именем счётчика.
func (m *Meta) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	fields := map[string]*int{
		"current_page": &m.CurrentPage,
		"page_size":    &m.PageSize,
		"total_pages":  &m.TotalPages,
	}
	for key, value := range raw {
		dst, ok := fields[key]
		if !ok {
			if !strings.HasPrefix(key, "total_") {
				continue
			}
			dst = &m.Total
		}
		if err := json.Unmarshal(value, dst); err != nil {
			return err
		}
	}
	return nil
}

// Page постраничный ответ {data, meta}.
type Page[T any] struct {
	Data T    `json:"data"`
	Meta Meta `json:"meta"`
}
