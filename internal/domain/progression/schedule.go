package progression

import "github.com/shopspring/decimal"

// PayTier maps a closed range of cumulative work-days to a daily wage.
// MaxDay 0 marks the open-ended final tier.
type PayTier struct {
	MinDay int
	MaxDay int
	Rate   decimal.Decimal
}

// PayTiers is the staircase wage schedule. Boundaries are 1-based
// cumulative work-day counts, inclusive on both ends.
var PayTiers = []PayTier{
	{MinDay: 1, MaxDay: 45, Rate: decimal.NewFromInt(130000)},
	{MinDay: 46, MaxDay: 90, Rate: decimal.NewFromInt(150000)},
	{MinDay: 91, MaxDay: 135, Rate: decimal.NewFromInt(170000)},
	{MinDay: 136, MaxDay: 180, Rate: decimal.NewFromInt(190000)},
	{MinDay: 181, MaxDay: 225, Rate: decimal.NewFromInt(210000)},
	{MinDay: 226, MaxDay: 270, Rate: decimal.NewFromInt(230000)},
	{MinDay: 271, MaxDay: 0, Rate: decimal.NewFromInt(250000)},
}

// RateFor returns the daily wage for the given cumulative work-day. It is
// total over non-negative inputs: days below the first boundary take the
// first rate, days beyond the last boundary take the final rate.
func RateFor(cumulativeDay int) decimal.Decimal {
	if cumulativeDay < PayTiers[0].MinDay {
		return PayTiers[0].Rate
	}
	for _, tier := range PayTiers {
		if tier.MaxDay == 0 || cumulativeDay <= tier.MaxDay {
			return tier.Rate
		}
	}
	return PayTiers[len(PayTiers)-1].Rate
}
