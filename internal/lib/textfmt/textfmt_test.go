package textfmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Car not found", Capitalize("car not found"))
	assert.Equal(t, "Already", Capitalize("Already"))
	assert.Equal(t, "Ώρα", Capitalize("ώρα"))
}

func TestDateTime(t *testing.T) {
	assert.Equal(t, "Ongoing", DateTime(nil))
	assert.Equal(t, "Ongoing", DateTime(&time.Time{}))

	ts := time.Date(2024, 12, 3, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "03/12/2024, 09:05", DateTime(&ts))
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "Not yet calculated", Placeholder(nil, "km"))

	d := 12.5
	assert.Equal(t, "12.5 km", Placeholder(&d, "km"))
	assert.Equal(t, "12.5", Placeholder(&d, ""))
}

func TestPlateAndMoney(t *testing.T) {
	assert.Equal(t, "ABC-1234", Plate("ABC1234"))
	assert.Equal(t, "AB", Plate("AB"))
	assert.Equal(t, "8.40", Money(8.4))
}
