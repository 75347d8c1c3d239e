// Package duration normalizes the heterogeneous session duration values the
// training device emits: either a plain number of seconds or a clock string
// like "0:01:42.123456".
package duration

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const secondsPerMinute = 60

// Duration is a session duration as stored upstream. It decodes from either a
// JSON number (total seconds) or a JSON string (H:MM:SS.ffffff or free text).
type Duration struct {
	seconds float64
	text    string
	numeric bool
}

// FromSeconds builds a numeric Duration.
func FromSeconds(seconds float64) Duration {
	return Duration{seconds: seconds, numeric: true}
}

// FromText builds a textual Duration.
func FromText(text string) Duration {
	return Duration{text: text}
}

// UnmarshalJSON accepts a number or a string.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*d = FromSeconds(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a number or a string: %w", err)
	}
	*d = FromText(s)
	return nil
}

// MarshalJSON round-trips the stored representation.
func (d Duration) MarshalJSON() ([]byte, error) {
	if d.numeric {
		return json.Marshal(d.seconds)
	}
	return json.Marshal(d.text)
}

// Display renders the duration for presentation.
//
// Numeric values are total seconds: "{minutes}分{seconds}秒", the minutes part
// omitted when zero. Clock strings are split on ":"; the second field is the
// minutes, the third the (fractional) seconds, each falling back to zero when
// unparseable. Anything else is returned as-is rather than rejected.
// The projection is lossy on purpose: fractions are rounded away.
func (d Duration) Display() string {
	if d.numeric {
		return render(int(d.seconds)/secondsPerMinute, math.Mod(d.seconds, secondsPerMinute))
	}
	parts := strings.Split(d.text, ":")
	if len(parts) != 3 {
		return d.text
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		minutes = 0
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		seconds = 0
	}
	return render(minutes, seconds)
}

func render(minutes int, seconds float64) string {
	rounded := int(math.Round(seconds))
	if minutes > 0 {
		return fmt.Sprintf("%d分%d秒", minutes, rounded)
	}
	return fmt.Sprintf("%d秒", rounded)
}

// String implements fmt.Stringer with the raw stored value.
func (d Duration) String() string {
	if d.numeric {
		return strconv.FormatFloat(d.seconds, 'f', -1, 64)
	}
	return d.text
}
