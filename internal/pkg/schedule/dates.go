package schedule

import (
	"time"
)

// 所有日期运算统一在 UTC 的零点日历日上进行，避免时区漂移

// Day 把任意时间截断为 UTC 日历日
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays 日计数间隔
func AddDays(t time.Time, days int) time.Time {
	return Day(t).AddDate(0, 0, days)
}

// AddMonths 月锚定，日号超出目标月时收敛到月末
// 例：1月31日 + 1个月 → 2月28/29日
func AddMonths(t time.Time, months int) time.Time {
	t = Day(t)
	y, m, d := t.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

// AddYears 年锚定，保持月日不变，2月29日在平年收敛到2月28日
func AddYears(t time.Time, years int) time.Time {
	t = Day(t)
	y, m, d := t.Date()
	if m == time.February && d == 29 {
		target := time.Date(y+years, time.March, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
		return target
	}
	return time.Date(y+years, m, d, 0, 0, 0, 0, time.UTC)
}

// AgeInMonths 计算整月龄：当前日号小于出生日号时少算一个月
func AgeInMonths(dateOfBirth, today time.Time) int {
	dob := Day(dateOfBirth)
	now := Day(today)
	if now.Before(dob) {
		return 0
	}
	months := (now.Year()-dob.Year())*12 + int(now.Month()) - int(dob.Month())
	if now.Day() < dob.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// EligibleSince 出生日期加最低月龄得到首剂可接种日期
func EligibleSince(dateOfBirth time.Time, eligibilityAgeMonths int) time.Time {
	return AddMonths(dateOfBirth, eligibilityAgeMonths)
}
