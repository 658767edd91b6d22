package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateFor(t *testing.T) {
	cases := []struct {
		day  int
		want int64
	}{
		{1, 130000},
		{45, 130000},
		{46, 150000},
		{90, 150000},
		{91, 170000},
		{135, 170000},
		{136, 190000},
		{180, 190000},
		{181, 210000},
		{225, 210000},
		{226, 230000},
		{270, 230000},
		{271, 250000},
		{10000, 250000},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RateFor(c.day).IntPart(), "RateFor(%d)", c.day)
	}
}

func TestRateForClampsBelowFirstDay(t *testing.T) {
	for _, day := range []int{0, -5} {
		assert.Equal(t, int64(130000), RateFor(day).IntPart(), "RateFor(%d)", day)
	}
}

func TestPayTiersAreContiguousAndAscending(t *testing.T) {
	for i := 1; i < len(PayTiers); i++ {
		prev, cur := PayTiers[i-1], PayTiers[i]
		assert.Equalf(t, prev.MaxDay+1, cur.MinDay, "tier %d does not start where the previous ends", i)
		assert.Truef(t, cur.Rate.GreaterThan(prev.Rate), "tier %d rate %s not above previous %s", i, cur.Rate, prev.Rate)
	}
	last := PayTiers[len(PayTiers)-1]
	assert.Zero(t, last.MaxDay, "final tier should be open-ended")
}
