package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		days int
		want time.Time
	}{
		{"跨月", date(2024, 1, 1), 30, date(2024, 1, 31)},
		{"跨年", date(2023, 12, 25), 14, date(2024, 1, 8)},
		{"闰日", date(2024, 2, 28), 1, date(2024, 2, 29)},
		{"剔除时区影响", time.Date(2024, 1, 1, 23, 30, 0, 0, time.FixedZone("IST", 5*3600+1800)), 1, date(2024, 1, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddDays(tt.in, tt.days); !got.Equal(tt.want) {
				t.Errorf("AddDays(%v, %d) = %v, want %v", tt.in, tt.days, got, tt.want)
			}
		})
	}
}

func TestAddMonthsClampsToMonthEnd(t *testing.T) {
	tests := []struct {
		name   string
		in     time.Time
		months int
		want   time.Time
	}{
		{"闰年一月底加一个月", date(2024, 1, 31), 1, date(2024, 2, 29)},
		{"平年一月底加一个月", date(2023, 1, 31), 1, date(2023, 2, 28)},
		{"三十一号到三十号月份", date(2024, 3, 31), 1, date(2024, 4, 30)},
		{"普通日期不收敛", date(2024, 1, 15), 2, date(2024, 3, 15)},
		{"加零个月", date(2024, 5, 10), 0, date(2024, 5, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddMonths(tt.in, tt.months); !got.Equal(tt.want) {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tt.in, tt.months, got, tt.want)
			}
		})
	}
}

func TestAddYears(t *testing.T) {
	tests := []struct {
		name  string
		in    time.Time
		years int
		want  time.Time
	}{
		{"保持月日", date(2024, 6, 15), 10, date(2034, 6, 15)},
		{"闰日落到平年", date(2024, 2, 29), 1, date(2025, 2, 28)},
		{"闰日落到闰年", date(2024, 2, 29), 4, date(2028, 2, 29)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddYears(tt.in, tt.years); !got.Equal(tt.want) {
				t.Errorf("AddYears(%v, %d) = %v, want %v", tt.in, tt.years, got, tt.want)
			}
		})
	}
}

func TestAgeInMonths(t *testing.T) {
	tests := []struct {
		name  string
		dob   time.Time
		today time.Time
		want  int
	}{
		{"整年", date(2020, 3, 10), date(2024, 3, 10), 48},
		{"差一天不满月", date(2024, 1, 15), date(2024, 2, 14), 0},
		{"刚满一个月", date(2024, 1, 15), date(2024, 2, 15), 1},
		{"当日出生", date(2024, 5, 1), date(2024, 5, 1), 0},
		{"未来出生日期", date(2025, 1, 1), date(2024, 1, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeInMonths(tt.dob, tt.today); got != tt.want {
				t.Errorf("AgeInMonths(%v, %v) = %d, want %d", tt.dob, tt.today, got, tt.want)
			}
		})
	}
}

func TestEligibleSince(t *testing.T) {
	// 最低月龄 1 个月，一月底出生收敛到二月末
	if got := EligibleSince(date(2024, 1, 31), 1); !got.Equal(date(2024, 2, 29)) {
		t.Errorf("EligibleSince 闰年 = %v, want 2024-02-29", got)
	}
	if got := EligibleSince(date(2023, 1, 31), 1); !got.Equal(date(2023, 2, 28)) {
		t.Errorf("EligibleSince 平年 = %v, want 2023-02-28", got)
	}
}
