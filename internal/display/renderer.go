// Package display renders weather results as terminal tables, banners and an
// ASCII temperature chart. All output goes through a Renderer bound to one
// writer; colors are applied only when that writer is a terminal.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const defaultChartWidth = 60

type Renderer struct {
	out        io.Writer
	colors     bool
	chartWidth int
}

// NewRenderer builds a renderer for out, enabling colors when out is a
// terminal.
func NewRenderer(out io.Writer) *Renderer {
	colors := false
	if f, ok := out.(*os.File); ok {
		colors = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Renderer{out: out, colors: colors, chartWidth: defaultChartWidth}
}

// Error prints the single error banner every user-visible failure goes
// through.
func (r *Renderer) Error(msg string) {
	r.banner("Error: "+msg, color.FgRed)
}

// Info prints a non-fatal informational notice.
func (r *Renderer) Info(msg string) {
	r.banner("Info: "+msg, color.FgGreen)
}

// Warn prints a no-data style notice, without a prefix.
func (r *Renderer) Warn(msg string) {
	r.banner(msg, color.FgYellow)
}

// Prompt styles an interactive prompt string without printing it.
func (r *Renderer) Prompt(s string) string {
	if r.colors {
		return color.New(color.FgCyan, color.Bold).Sprint(s)
	}
	return s
}

func (r *Renderer) banner(msg string, attr color.Attribute) {
	if r.colors {
		msg = color.New(attr, color.Bold).Sprint(msg)
	}
	fmt.Fprintln(r.out, msg)
}

func (r *Renderer) title(s string) {
	fmt.Fprintln(r.out)
	if r.colors {
		s = color.New(color.FgBlue, color.Bold).Sprint(s)
	}
	fmt.Fprintln(r.out, s)
}

// formatScalar renders a single decoded weather value. json.Number values
// keep their wire form, so 55.0 stays "55.0" instead of collapsing to "55".
func formatScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return "N/A"
	case json.Number:
		return t.String()
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// toFloat converts a decoded weather value to float64 for computation.
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case float64:
		return t, true
	case int:
		return float64(t), true
	}
	return 0, false
}

// unixSeconds extracts a Unix timestamp from a value decoded with the
// unixtime timeformat.
func unixSeconds(v any) (int64, bool) {
	if n, ok := v.(json.Number); ok {
		if secs, err := n.Int64(); err == nil {
			return secs, true
		}
	}
	return 0, false
}

// formatCurrentTime renders a current-weather timestamp: iso8601 strings are
// shown as-is, unixtime values are converted to local date and time.
func formatCurrentTime(v any) string {
	if secs, ok := unixSeconds(v); ok {
		return time.Unix(secs, 0).Format("2006-01-02 15:04")
	}
	return formatScalar(v)
}

// formatHourlyTime keeps only the clock part of an iso8601 stamp; unixtime
// values keep their date because an hourly range can span days.
func formatHourlyTime(v any) string {
	if secs, ok := unixSeconds(v); ok {
		return time.Unix(secs, 0).Format("2006-01-02 15:04")
	}
	s := formatScalar(v)
	if idx := strings.IndexByte(s, 'T'); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

// formatDailyTime renders a daily timestamp as a date.
func formatDailyTime(v any) string {
	if secs, ok := unixSeconds(v); ok {
		return time.Unix(secs, 0).Format("2006-01-02")
	}
	return formatScalar(v)
}

// withUnit joins a value and its unit with a space, the way measurement rows
// are displayed.
func withUnit(v any, unit string) string {
	return formatScalar(v) + " " + unit
}

// unitOr looks up a unit string, falling back when the API did not send one.
func unitOr(units map[string]string, key, fallback string) string {
	if u, ok := units[key]; ok && u != "" {
		return u
	}
	return fallback
}

func timezoneOr(tz string) string {
	if tz == "" {
		return "N/A"
	}
	return tz
}
