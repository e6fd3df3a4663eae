// Package locale formats money and dates the way the German admin UI shows them.
//
// Amounts are EUR with German digit grouping ("1.234,50 €"). The space before
// the euro sign is a no-break space, matching de-DE currency output in browsers.
// Dates use German formatting-context month abbreviations ("05. März").
package locale

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// euroSuffix is the no-break space plus euro sign appended to amounts.
const euroSuffix = "\u00a0€"

// german groups digits; Printer is safe for concurrent use.
var german = message.NewPrinter(language.German)

var monthAbbrevs = [...]string{
	"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
	"Juli", "Aug.", "Sep.", "Okt.", "Nov.", "Dez.",
}

// EUR formats an amount with two decimals, e.g. 1234.5 → "1.234,50 €".
// Rounding is half away from zero.
func EUR(amount float64) string {
	cents := int64(math.Round(math.Abs(amount) * 100))
	return fmt.Sprintf("%s%s,%02d%s", sign(amount, cents), group(cents/100), cents%100, euroSuffix)
}

// EURWhole formats an amount without decimals, e.g. 1234.5 → "1.235 €".
func EURWhole(amount float64) string {
	whole := int64(math.Round(math.Abs(amount)))
	return sign(amount, whole) + group(whole) + euroSuffix
}

// MonthAbbrev returns the German abbreviated month name, e.g. time.March → "März".
func MonthAbbrev(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthAbbrevs[m-1]
}

// DayMonth formats t as "dd. MMM", e.g. "05. März".
func DayMonth(t time.Time) string {
	return fmt.Sprintf("%02d. %s", t.Day(), MonthAbbrev(t.Month()))
}

// DayMonthYear formats t as "dd. MMM yyyy", e.g. "05. März 2026".
func DayMonthYear(t time.Time) string {
	return fmt.Sprintf("%02d. %s %d", t.Day(), MonthAbbrev(t.Month()), t.Year())
}

// Number formats an integer with German digit grouping, e.g. 12345 → "12.345".
func Number(n int) string {
	if n < 0 {
		return "-" + group(int64(-n))
	}
	return group(int64(n))
}

func group(n int64) string {
	return german.Sprintf("%d", n)
}

// sign returns "-" for negative amounts that do not round to zero.
func sign(amount float64, rounded int64) string {
	if amount < 0 && rounded != 0 {
		return "-"
	}
	return ""
}
