package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestYearOf(t *testing.T) {
	assert.Equal(t, 1995, YearOf(ptr("1995-03-10")))
	assert.Equal(t, 0, YearOf(nil))
	assert.Equal(t, 0, YearOf(ptr("1995")))
	assert.Equal(t, 0, YearOf(ptr("not a date")))
}

func TestAgeAt(t *testing.T) {
	age := AgeAt(ptr("1995-03-10"), ptr("2020-06-01"))
	require.NotNil(t, age)
	assert.Equal(t, 25, *age)

	assert.Nil(t, AgeAt(nil, ptr("2020-06-01")), "missing birth date")
	assert.Nil(t, AgeAt(ptr("1995-03-10"), nil), "missing publish date")
	assert.Nil(t, AgeAt(ptr("2030-01-01"), ptr("2020-06-01")), "negative age")
	assert.Nil(t, AgeAt(ptr("1800-01-01"), ptr("2020-06-01")), "implausibly old")

	zero := AgeAt(ptr("2020-01-01"), ptr("2020-06-01"))
	require.NotNil(t, zero, "age zero is valid")
	assert.Equal(t, 0, *zero)
}
