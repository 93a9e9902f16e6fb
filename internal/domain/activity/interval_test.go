package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_Valid(t *testing.T) {
	d, err := ParseDate("15/05/2023")
	require.NoError(t, err)
	assert.Equal(t, 2023, d.Year())
	assert.Equal(t, time.May, d.Month())
	assert.Equal(t, 15, d.Day())
}

func TestParseDate_RoundTrip(t *testing.T) {
	for _, raw := range []string{"01/01/2023", "29/02/2024", "31/12/1999", "05/06/2023"} {
		d, err := ParseDate(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, d.String())
	}
}

func TestParseDate_Malformed(t *testing.T) {
	cases := []string{
		"",
		"2023-05-15",
		"15/5/2023",
		"5/05/2023",
		"15/05/23",
		"32/01/2023",
		"31/02/2023",
		"29/02/2023",
		"00/01/2023",
		"15/13/2023",
		"aa/bb/cccc",
		"15/05/2023 ",
		"15-05-2023",
	}
	for _, raw := range cases {
		_, err := ParseDate(raw)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", raw)
	}
}

func TestNewInterval_RejectsReversed(t *testing.T) {
	start := NewDate(2023, time.May, 20)
	end := NewDate(2023, time.May, 15)

	_, err := NewInterval(start, end)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestNewInterval_SingleDay(t *testing.T) {
	day := NewDate(2023, time.May, 15)

	iv, err := NewInterval(day, day)
	require.NoError(t, err)
	assert.Equal(t, 1, iv.DurationDays())
	assert.True(t, iv.Contains(day))
}

func TestInterval_Contains(t *testing.T) {
	iv, err := ParseInterval("15/05/2023", "20/05/2023")
	require.NoError(t, err)

	assert.True(t, iv.Contains(NewDate(2023, time.May, 15)), "start boundary")
	assert.True(t, iv.Contains(NewDate(2023, time.May, 17)))
	assert.True(t, iv.Contains(NewDate(2023, time.May, 20)), "end boundary")
	assert.False(t, iv.Contains(NewDate(2023, time.May, 14)))
	assert.False(t, iv.Contains(NewDate(2023, time.May, 21)))
}

func TestInterval_DurationDays(t *testing.T) {
	iv, err := ParseInterval("15/05/2023", "20/05/2023")
	require.NoError(t, err)
	assert.Equal(t, 6, iv.DurationDays())
}

func TestInterval_Overlaps(t *testing.T) {
	a, _ := ParseInterval("15/05/2023", "20/05/2023")
	b, _ := ParseInterval("20/05/2023", "25/05/2023")
	c, _ := ParseInterval("21/05/2023", "25/05/2023")

	assert.True(t, a.Overlaps(b), "shared boundary day")
	assert.True(t, b.Overlaps(a), "overlap is symmetric")
	assert.False(t, a.Overlaps(c))
	assert.False(t, c.Overlaps(a))
}

func TestInterval_Compare(t *testing.T) {
	a, _ := ParseInterval("15/05/2023", "20/05/2023")
	b, _ := ParseInterval("15/05/2023", "22/05/2023")
	c, _ := ParseInterval("16/05/2023", "16/05/2023")

	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, a.Compare(b), "same start, earlier end first")
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, -1, a.Compare(c), "earlier start first")
}

func TestDate_AddDays_AcrossMonth(t *testing.T) {
	d := NewDate(2023, time.May, 30)
	assert.Equal(t, "02/06/2023", d.AddDays(3).String())
	assert.Equal(t, "27/05/2023", d.AddDays(-3).String())
}

func TestDate_DaysUntil(t *testing.T) {
	a := NewDate(2023, time.May, 15)
	b := NewDate(2023, time.May, 20)
	assert.Equal(t, 5, a.DaysUntil(b))
	assert.Equal(t, -5, b.DaysUntil(a))
	assert.Equal(t, 0, a.DaysUntil(a))
}
