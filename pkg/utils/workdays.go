package util

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// CountWorkingDays menghitung jumlah hari kerja (Senin-Jumat) pada rentang
// tanggal inklusif. Dipakai untuk menghitung working_days pengajuan cuti.
func CountWorkingDays(startDate, endDate string, loc *time.Location) (int, error) {
	start, err := time.ParseInLocation("2006-01-02", startDate, loc)
	if err != nil {
		return 0, fmt.Errorf("tanggal mulai tidak valid: %w", err)
	}

	end, err := time.ParseInLocation("2006-01-02", endDate, loc)
	if err != nil {
		return 0, fmt.Errorf("tanggal selesai tidak valid: %w", err)
	}

	if end.Before(start) {
		return 0, fmt.Errorf("tanggal selesai sebelum tanggal mulai")
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
		Dtstart:   start,
		Until:     end,
	})
	if err != nil {
		return 0, err
	}

	return len(r.All()), nil
}
