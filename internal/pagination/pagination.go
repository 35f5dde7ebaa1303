// Package pagination хранит состояние постраничных списков: доступность
// кнопок вперёд/назад, ограничение номера страницы и дополнение строк до размера страницы.
package pagination

import (
	"context"

	"github.com/magabrotheeeer/datadrive/internal/models"
)

const (
	// DefaultPageSize размер страницы, если клиент его не указал.
	DefaultPageSize = 10
	// MaxPageSize верхняя граница page_size.
	MaxPageSize = 100
)

// State позиция в постраничном списке. TotalPages == 0 означает пустой список.
type State struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// New нормализует запрошенные page и pageSize.
func New(page, pageSize int) State {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return State{Page: page, PageSize: pageSize}
}

// FromMeta строит состояние из meta ответа бэкенда.
func FromMeta(m models.Meta) State {
	s := New(m.CurrentPage, m.PageSize)
	s.TotalPages = m.TotalPages
	return s
}

// HasPrev false ровно на первой странице.
func (s State) HasPrev() bool {
	return s.Page > 1
}

// HasNext false на последней странице и за её пределами.
func (s State) HasNext() bool {
	return s.Page < s.TotalPages
}

// Next следующая страница, не дальше последней.
func (s State) Next() State {
	if s.HasNext() {
		s.Page++
	}
	return s
}

// Prev предыдущая страница, не раньше первой.
func (s State) Prev() State {
	if s.HasPrev() {
		s.Page--
	}
	return s
}

// Clamp ограничивает Page диапазоном [1, TotalPages], если TotalPages известен.
func (s State) Clamp() State {
	if s.TotalPages > 0 && s.Page > s.TotalPages {
		s.Page = s.TotalPages
	}
	if s.Page < 1 {
		s.Page = 1
	}
	return s
}

// View страница для представления. Rows дополнены nil до PageSize.
type View[T any] struct {
	Rows     []*T  `json:"rows"`
	Page     int   `json:"page"`
	Total    int   `json:"total"`
	State    State `json:"state"`
	HasPrev  bool  `json:"has_prev"`
	HasNext  bool  `json:"has_next"`
	PrevPage int   `json:"prev_page"`
	NextPage int   `json:"next_page"`
}

// NewView собирает представление; номер страницы берётся из meta бэкенда
// после нормализации, чтобы совпадать с доступностью кнопок.
func NewView[T any](items []T, meta models.Meta) View[T] {
	st := FromMeta(meta)
	size := st.PageSize
	if len(items) > size {
		size = len(items)
	}
	rows := make([]*T, size)
	for i := range items {
		rows[i] = &items[i]
	}
	return View[T]{
		Rows:     rows,
		Page:     st.Page,
		Total:    meta.Total,
		State:    st,
		HasPrev:  st.HasPrev(),
		HasNext:  st.HasNext(),
		PrevPage: st.Prev().Page,
		NextPage: st.Next().Page,
	}
}

// Fetch запрашивает страницу st.Page. Если бэкенд сообщает, что страниц меньше,
// запрос повторяется для последней страницы.
func Fetch[T any](ctx context.Context, st State, fetch func(ctx context.Context, page, pageSize int) (*models.Page[T], error)) (*models.Page[T], error) {
	res, err := fetch(ctx, st.Page, st.PageSize)
	if err != nil {
		return nil, err
	}
	st.TotalPages = res.Meta.TotalPages
	if clamped := st.Clamp(); clamped.Page != st.Page {
		return fetch(ctx, clamped.Page, st.PageSize)
	}
	return res, nil
}
