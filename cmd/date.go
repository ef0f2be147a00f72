package cmd

import (
	"fmt"
	"strings"

	"github.com/chris-regnier/caldiary/internal/day"
)

// parseDateArg accepts YYYY-MM-DD or one of today, yesterday and tomorrow.
func parseDateArg(arg string, today day.Date) (day.Date, error) {
	shift := map[string]int{"today": 0, "yesterday": -1, "tomorrow": 1}
	if n, ok := shift[strings.ToLower(arg)]; ok {
		d, ok := today.AddDays(n)
		if !ok {
			return day.Date{}, fmt.Errorf("date %s is out of range", arg)
		}
		return d, nil
	}
	d, err := day.Parse(arg)
	if err != nil {
		return day.Date{}, err
	}
	if !d.Valid() {
		return day.Date{}, fmt.Errorf("date %s is out of range", arg)
	}
	return d, nil
}
