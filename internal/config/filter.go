package config

import (
	"slices"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/urfave/cli/v2"

	"github.com/odakapp/odak/internal/timeutil"
)

// FilterConfig determines which sessions a read query reports on.
type FilterConfig struct {
	StartTime  time.Time
	EndTime    time.Time
	Categories []string
}

// getTimeRange returns the start and end time according to the
// specified time period.
func getTimeRange(period timeutil.Period) (start, end time.Time) {
	now := time.Now()

	start = timeutil.RoundToStart(now)

	end = timeutil.RoundToEnd(now)

	//nolint:exhaustive // other cases covered by default
	switch period {
	case timeutil.PeriodToday:
		return
	case timeutil.PeriodYesterday:
		start = now.AddDate(0, 0, -timeutil.Range[period])
		start = timeutil.RoundToStart(start)
		end = timeutil.RoundToEnd(start)

		return
	case timeutil.PeriodAllTime:
		start = time.Time{}
		return
	default:
		start = now.AddDate(0, 0, -(timeutil.Range[period] - 1))
		start = timeutil.RoundToStart(start)
	}

	return
}

// setFilterConfig updates the filter configuration from command-line
// arguments.
func setFilterConfig(ctx *cli.Context, cfg *FilterConfig) error {
	if ctx.String("category") != "" {
		cfg.Categories = strings.Split(ctx.String("category"), ",")
	}

	period := timeutil.Period(strings.TrimSpace(ctx.String("period")))

	if period != "" && !slices.Contains(timeutil.PeriodCollection, period) {
		return errInvalidPeriod
	}

	if period == "" {
		period = timeutil.Period7Days
	}

	cfg.StartTime, cfg.EndTime = getTimeRange(period)

	start := ctx.String("start")
	if start != "" {
		dateTime, err := dateparse.ParseAny(start)
		if err != nil {
			return err
		}

		cfg.StartTime = dateTime
	}

	end := ctx.String("end")
	if end != "" {
		dateTime, err := dateparse.ParseAny(end)
		if err != nil {
			return err
		}

		cfg.EndTime = dateTime
	}

	if !cfg.EndTime.IsZero() && cfg.EndTime.Before(cfg.StartTime) {
		return errInvalidDateRange
	}

	return nil
}

// Filter builds the session filter from command-line arguments.
func Filter(ctx *cli.Context) (*FilterConfig, error) {
	cfg := &FilterConfig{}

	if err := setFilterConfig(ctx, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
