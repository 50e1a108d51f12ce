package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/pterm/pterm"

	"github.com/odakapp/odak/internal/models"
	"github.com/odakapp/odak/internal/timeutil"
	"github.com/odakapp/odak/internal/ui"
	"github.com/odakapp/odak/store"
)

const (
	barChartChar  = "▇"
	noSessionsMsg = "No sessions found for the specified time range"
)

// Stats loads the session history and computes every aggregate the stats
// report displays.
type Stats struct {
	DB     store.DB       `json:"-"`
	Clock  timeutil.Clock `json:"-"`
	Stdout io.Writer      `json:"-"`

	Today        time.Duration     `json:"today"`
	LastWeek     time.Duration     `json:"last_week"`
	AllTime      time.Duration     `json:"all_time"`
	Distractions int               `json:"distractions"`
	Completed    int               `json:"completed"`
	Abandoned    int               `json:"abandoned"`
	Categories   []CategorySummary `json:"categories"`
	Records      Records           `json:"records"`
	Weekly       []DayTotal        `json:"weekly"`
	Monthly      []DayTotal        `json:"monthly"`
}

// Compute loads the session history and fills in every aggregate. Store
// failures surface here as empty inputs, so the report degrades to zeros
// rather than failing.
func (s *Stats) Compute() {
	if s.Clock == nil {
		s.Clock = time.Now
	}

	now := s.Clock()

	all := s.DB.AllSessions()
	today := s.DB.TodaySessions()
	weekly := s.DB.SessionsByDateRange(7)

	s.Today = TotalDuration(today)
	s.LastWeek = TotalDuration(weekly)
	s.AllTime = TotalDuration(all)
	s.Distractions = TotalDistractions(all)
	s.Completed = CompletedCount(all)
	s.Abandoned = len(all) - s.Completed
	s.Categories = CategoryBreakdown(all)
	s.Records = ComputeRecords(all, now)
	s.Weekly = WeeklyBuckets(weekly, now)
	s.Monthly = MonthlyCalendar(all, now)
}

func (s *Stats) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

// FormatDuration expresses a duration in at most two units, e.g. "2 hours 30
// minutes".
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "0 minutes"
	}

	//nolint:gomnd // limit to first 2 units
	return durafmt.Parse(d).LimitToUnit("hours").LimitFirstN(2).String()
}

func (s *Stats) summary() string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	timeLogged := fmt.Sprintf(
		"Today: %s\nLast 7 days: %s\nAll time: %s\n",
		ui.Green(FormatDuration(s.Today)),
		ui.Green(FormatDuration(s.LastWeek)),
		ui.Green(FormatDuration(s.AllTime)),
	)

	completed := fmt.Sprintln("Sessions completed:", ui.Green(s.Completed))
	abandoned := fmt.Sprintln("Sessions abandoned:", ui.Green(s.Abandoned))
	distractions := fmt.Sprintln("Distractions:", ui.Red(s.Distractions))

	return header + timeLogged + completed + abandoned + distractions
}

func (s *Stats) records() string {
	header := fmt.Sprintf("\n%s\n", ui.Blue("Records"))

	bestDay := "Best day: -\n"
	if s.Records.BestDay.Total > 0 {
		bestDay = fmt.Sprintf(
			"Best day: %s (%s)\n",
			ui.Green(FormatDuration(s.Records.BestDay.Total)),
			s.Records.BestDay.Day,
		)
	}

	bestWeek := fmt.Sprintf(
		"Best week: %s\n",
		ui.Green(FormatDuration(s.Records.BestWeek)),
	)

	longest := fmt.Sprintf(
		"Longest session: %s\n",
		ui.Green(FormatDuration(s.Records.LongestSession)),
	)

	perfect := fmt.Sprintln(
		"Perfect sessions:",
		ui.Green(s.Records.PerfectCount),
	)

	return header + bestDay + bestWeek + longest + perfect
}

// categories renders the per-category totals and percentage shares.
func (s *Stats) categories() string {
	if len(s.Categories) == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Categories")))

	for _, c := range s.Categories {
		builder.WriteString(fmt.Sprintf(
			"%s: %s (%s%%)\n",
			c.Name,
			ui.Green(FormatDuration(c.Total)),
			ui.Cyan(c.Percent),
		))
	}

	return builder.String()
}

// weeklyChart renders the last 7 days as a horizontal bar chart of minutes.
func (s *Stats) weeklyChart() string {
	if len(s.Weekly) == 0 {
		return ""
	}

	header := ui.Blue("\nLast 7 days (minutes)")

	var bars pterm.Bars

	for _, b := range s.Weekly {
		label := b.Day

		if date, err := time.Parse(timeutil.DayLayout, b.Day); err == nil {
			label = date.Format("Mon Jan 02")
		}

		bars = append(bars, pterm.Bar{
			Value: timeutil.Round(b.Total.Minutes()),
			Label: label,
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

// monthlyCalendar renders the current month as a week grid with the days
// that have recorded sessions highlighted.
func (s *Stats) monthlyCalendar() string {
	if len(s.Monthly) == 0 {
		return ""
	}

	first, err := time.Parse(timeutil.DayLayout, s.Monthly[0].Day)
	if err != nil {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf(
		"\n%s\n",
		ui.Blue(first.Format("January 2006")),
	))
	builder.WriteString("Su Mo Tu We Th Fr Sa\n")
	builder.WriteString(strings.Repeat("   ", int(first.Weekday())))

	for i, d := range s.Monthly {
		day := first.AddDate(0, 0, i)

		cell := fmt.Sprintf("%2d", day.Day())
		if d.Total > 0 {
			cell = ui.Green(cell)
		}

		builder.WriteString(cell)

		if day.Weekday() == time.Saturday {
			builder.WriteString("\n")
		} else {
			builder.WriteString(" ")
		}
	}

	builder.WriteString("\n")

	return builder.String()
}

// Show displays the statistics report after making the necessary
// calculations.
func (s *Stats) Show() {
	if s.Stdout == nil {
		s.Stdout = os.Stdout
	}

	output := fmt.Sprint(
		s.summary(),
		s.records(),
		s.categories(),
		s.weeklyChart(),
		s.monthlyCalendar(),
	)

	fmt.Fprintln(s.Stdout, strings.TrimSpace(output))
}

func printTable(data [][]string, writer io.Writer) {
	d := [][]string{
		{"#", "DATE", "CATEGORY", "DURATION", "DISTRACTIONS", "STATUS"},
	}

	d = append(d, data...)

	ui.PrintTable(d, writer)
}

// PrintSessionsTable prints out a table of sessions, most recent first.
func PrintSessionsTable(w io.Writer, sessions []models.FocusSession) {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return
	}

	tableBody := make([][]string, 0, len(sessions))

	for i := range sessions {
		sess := sessions[i]

		statusText := ui.Green("completed")
		if !sess.Completed {
			statusText = ui.Red("abandoned")
		}

		date := sess.Date
		if t := sess.Time(); !t.IsZero() {
			date = t.Format("January 02, 2006 03:04 PM")
		}

		row := []string{
			fmt.Sprintf("%d", i+1),
			date,
			sess.Category,
			FormatDuration(time.Duration(sess.Duration) * time.Second),
			fmt.Sprintf("%d", sess.Distractions),
			statusText,
		}

		tableBody = append(tableBody, row)
	}

	printTable(tableBody, w)
}
