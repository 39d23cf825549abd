package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	HoursPerDay    = 9
	secondsPerHour = 3600
	moneyPrecision = 2
)

var (
	ProfessionalTax = decimal.NewFromInt(200)

	hundred   = decimal.NewFromInt(100)
	pfOfBasic = decimal.RequireFromString("0.50")
)

// Input is everything the engine needs for one (profile, month).
type Input struct {
	MonthlyCTC         decimal.Decimal
	BasicPercent       decimal.Decimal
	HRAPercent         decimal.Decimal
	OvertimeMultiplier decimal.Decimal
	WorkingDays        int
	DaysPresent        int
	OvertimeSeconds    int64
	Insurance          decimal.Decimal
	ESI                decimal.Decimal
}

// Breakdown holds unrounded amounts. Round only when persisting.
type Breakdown struct {
	WorkingDays     int
	DaysPresent     int
	OvertimeSeconds int64

	MonthlyGross    decimal.Decimal
	ProrataGross    decimal.Decimal
	Basic           decimal.Decimal
	HRA             decimal.Decimal
	PF              decimal.Decimal
	ProfessionalTax decimal.Decimal
	Insurance       decimal.Decimal
	ESI             decimal.Decimal
	HourlyRate      decimal.Decimal
	OvertimeAmount  decimal.Decimal
	Deductions      decimal.Decimal
	NetAmount       decimal.Decimal
}

// WorkingDays counts Monday to Friday in the month.
func WorkingDays(year int, month time.Month) int {
	n := 0
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			n++
		}
	}
	return n
}

func Compute(in Input) Breakdown {
	b := Breakdown{
		WorkingDays:     in.WorkingDays,
		DaysPresent:     in.DaysPresent,
		OvertimeSeconds: in.OvertimeSeconds,
		MonthlyGross:    in.MonthlyCTC,
		ProrataGross:    decimal.Zero,
		HourlyRate:      decimal.Zero,
		OvertimeAmount:  decimal.Zero,
		ProfessionalTax: ProfessionalTax,
		Insurance:       in.Insurance,
		ESI:             in.ESI,
	}

	b.Basic = in.MonthlyCTC.Mul(in.BasicPercent).Div(hundred)
	b.HRA = in.MonthlyCTC.Mul(in.HRAPercent).Div(hundred)
	b.PF = b.Basic.Mul(pfOfBasic)

	if in.WorkingDays > 0 {
		wd := decimal.NewFromInt(int64(in.WorkingDays))
		b.ProrataGross = in.MonthlyCTC.Mul(decimal.NewFromInt(int64(in.DaysPresent))).Div(wd)
		b.HourlyRate = in.MonthlyCTC.Div(wd.Mul(decimal.NewFromInt(HoursPerDay)))
		hours := decimal.NewFromInt(in.OvertimeSeconds).Div(decimal.NewFromInt(secondsPerHour))
		b.OvertimeAmount = hours.Mul(b.HourlyRate).Mul(in.OvertimeMultiplier)
	}

	b.Deductions = b.PF.Add(b.ProfessionalTax).Add(b.Insurance).Add(b.ESI)
	b.NetAmount = b.ProrataGross.Add(b.OvertimeAmount).Sub(b.Deductions)
	return b
}

// Round is banker's rounding to two places.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(moneyPrecision)
}

func money(d decimal.Decimal) string {
	return Round(d).StringFixedBank(moneyPrecision)
}

// Details is the JSON breakdown stored on the payslip.
func (b Breakdown) Details() map[string]any {
	return map[string]any{
		"working_days":     b.WorkingDays,
		"days_present":     b.DaysPresent,
		"overtime_seconds": b.OvertimeSeconds,
		"monthly_gross":    money(b.MonthlyGross),
		"prorata_gross":    money(b.ProrataGross),
		"basic":            money(b.Basic),
		"hra":              money(b.HRA),
		"pf":               money(b.PF),
		"professional_tax": money(b.ProfessionalTax),
		"insurance":        money(b.Insurance),
		"esi":              money(b.ESI),
		"hourly_rate":      money(b.HourlyRate),
		"overtime_amount":  money(b.OvertimeAmount),
		"deductions":       money(b.Deductions),
		"net_amount":       money(b.NetAmount),
	}
}
