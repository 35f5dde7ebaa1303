package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeta_UnmarshalResourceTotals(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		total int
	}{
		{"trips", `{"current_page":2,"page_size":5,"total_pages":3,"total_trips":11}`, 11},
		{"reviews", `{"current_page":2,"page_size":5,"total_pages":3,"total_reviews":14}`, 14},
		{"cars", `{"current_page":2,"page_size":5,"total_pages":3,"total_available_cars":15}`, 15},
		{"no total", `{"current_page":2,"page_size":5,"total_pages":3}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Meta
			require.NoError(t, json.Unmarshal([]byte(tt.body), &m))
			assert.Equal(t, 2, m.CurrentPage)
			assert.Equal(t, 5, m.PageSize)
			assert.Equal(t, 3, m.TotalPages)
			assert.Equal(t, tt.total, m.Total)
		})
	}
}

func TestPage_Decode(t *testing.T) {
	body := `{"data":[{"license_plate":"ABC1234","make":"VW","model":"Golf","status":"AVAILABLE","cost_per_km":0.8,"location":"Athens"}],
	"meta":{"current_page":1,"page_size":5,"total_pages":1,"total_cars":1}}`

	var p Page[[]Car]
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	require.Len(t, p.Data, 1)
	assert.Equal(t, CarAvailable, p.Data[0].Status)
	assert.Equal(t, 1, p.Meta.Total)
}

func TestNormalizePlate(t *testing.T) {
	plate, ok := NormalizePlate(" abc1234 ")
	assert.True(t, ok)
	assert.Equal(t, "ABC1234", plate)

	_, ok = NormalizePlate("AB12345")
	assert.False(t, ok)
}

func TestCarStatus_Valid(t *testing.T) {
	assert.True(t, CarStatus("rented").Valid())
	assert.True(t, CarMaintenance.Valid())
	assert.False(t, CarStatus("BROKEN").Valid())
}
