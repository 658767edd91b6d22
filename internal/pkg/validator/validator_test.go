package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsEmpty(c.input), "IsEmpty(%q)", c.input)
	}
}

func TestIsNumeric(t *testing.T) {
	for _, s := range []string{"0", "42", "007"} {
		assert.Truef(t, IsNumeric(s), "IsNumeric(%q)", s)
	}
	for _, s := range []string{"", "4.2", "-1", "abc", "1a"} {
		assert.Falsef(t, IsNumeric(s), "IsNumeric(%q)", s)
	}
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2026-02-28")
	assert.True(t, ok)

	for _, s := range []string{"2026-13-01", "2026-02-30", "26-02-28", "not-a-date"} {
		_, ok := IsValidDate(s)
		assert.Falsef(t, ok, "IsValidDate(%q)", s)
	}
}

func TestParsePeriod(t *testing.T) {
	year, month, err := ParsePeriod("2026-08")
	require.NoError(t, err)
	assert.Equal(t, 2026, year)
	assert.Equal(t, 8, month)

	year, month, err = ParsePeriod(" 2026-12 ")
	require.NoError(t, err, "surrounding whitespace is tolerated")
	assert.Equal(t, 2026, year)
	assert.Equal(t, 12, month)

	for _, s := range []string{"", "2026", "2026-13", "2026-00", "2026-8", "2026/08", "abcd-ef"} {
		_, _, err := ParsePeriod(s)
		assert.Errorf(t, err, "ParsePeriod(%q)", s)
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "period", Message: "invalid"},
		{Field: "room", Message: "required"},
	}
	m := errs.ToMap()
	assert.Equal(t, "invalid", m["period"])
	assert.Equal(t, "required", m["room"])
	assert.Equal(t, "period: invalid; room: required", errs.Error())
}
