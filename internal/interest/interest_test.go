package interest_test

import (
	"testing"

	"github.com/bjaus/minifmt/internal/interest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalance(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		principal, rate, deposit float64
		years                    int
		want                     float64
	}{
		"principal only": {principal: 1000, rate: 12, years: 1, want: 1126.825030},
		"deposits only":  {deposit: 100, rate: 12, years: 1, want: 1280.932804},
		"zero rate":      {principal: 500, deposit: 50, years: 2, want: 1700},
		"zero years":     {principal: 1000, rate: 5, deposit: 100, years: 0, want: 1000},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := interest.Balance(tt.principal, tt.rate, tt.deposit, tt.years)
			assert.InDelta(t, tt.want, got, 1e-5)
		})
	}
}

func TestScheduleWithoutDeposits(t *testing.T) {
	t.Parallel()
	plan := interest.Plan{Principal: 1000, RatePercent: 12, MonthlyDeposit: 100, Years: 2}
	years := interest.Schedule(plan, false)
	require.Len(t, years, 2)

	assert.Equal(t, 1, years[0].Number)
	assert.InDelta(t, 1126.825030, years[0].Balance, 1e-5)
	assert.InDelta(t, 126.825030, years[0].Interest, 1e-5)

	assert.Equal(t, 2, years[1].Number)
	assert.InDelta(t, 1269.734649, years[1].Balance, 1e-5)
	assert.InDelta(t, years[1].Balance-years[0].Balance, years[1].Interest, 1e-9)
}

func TestScheduleWithDeposits(t *testing.T) {
	t.Parallel()
	plan := interest.Plan{Principal: 1000, RatePercent: 12, MonthlyDeposit: 100, Years: 1}
	years := interest.Schedule(plan, true)
	require.Len(t, years, 1)
	assert.InDelta(t, 1126.825030+1280.932804, years[0].Balance, 1e-5)
	assert.InDelta(t, years[0].Balance-(1000+1200), years[0].Interest, 1e-9)
}

func TestScheduleEmpty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, interest.Schedule(interest.Plan{Principal: 1, Years: 0}, true))
	assert.Empty(t, interest.Schedule(interest.Plan{Principal: 1, Years: -3}, true))
}
