package intervals

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Microseconds per unit. Intervals accumulate in microseconds and truncate
// toward zero when converted to milliseconds.
const (
	microsPerMilli  = int64(1000)
	microsPerSecond = 1000 * microsPerMilli
	microsPerMinute = 60 * microsPerSecond
	microsPerHour   = 60 * microsPerMinute
	microsPerDay    = 24 * microsPerHour
	microsPerWeek   = 7 * microsPerDay
)

// ParseMillis converts a calendar interval string into milliseconds.
//
// The accepted form is an optional leading "interval" keyword followed by one
// or more whitespace-separated value-unit pairs, for example "interval 1 week"
// or "3 days 4 hours". Units may be singular or plural and are matched
// case-insensitively: week, day, hour, minute, second, millisecond,
// microsecond. Negative values are allowed; callers that require non-negative
// durations enforce that themselves.
func ParseMillis(raw string) (int64, error) {
	parts := strings.Fields(raw)
	if len(parts) == 0 {
		return 0, fmt.Errorf("empty interval string")
	}
	if strings.EqualFold(parts[0], "interval") {
		parts = parts[1:]
	}
	if len(parts) == 0 {
		return 0, fmt.Errorf("interval %q has no value", raw)
	}
	if len(parts)%2 != 0 {
		return 0, fmt.Errorf("interval %q is missing a unit", raw)
	}

	var micros int64
	for i := 0; i < len(parts); i += 2 {
		value, err := strconv.ParseInt(parts[i], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid interval value %q in %q", parts[i], raw)
		}
		unit, err := unitMicros(parts[i+1])
		if err != nil {
			return 0, fmt.Errorf("%w in %q", err, raw)
		}
		// unit is always positive, so these bounds are exact.
		if value > math.MaxInt64/unit || value < math.MinInt64/unit {
			return 0, fmt.Errorf("interval %q is out of range", raw)
		}
		component := value * unit
		sum := micros + component
		if (component > 0 && sum < micros) || (component < 0 && sum > micros) {
			return 0, fmt.Errorf("interval %q is out of range", raw)
		}
		micros = sum
	}
	return micros / microsPerMilli, nil
}

func unitMicros(unit string) (int64, error) {
	switch strings.TrimSuffix(strings.ToLower(unit), "s") {
	case "week":
		return microsPerWeek, nil
	case "day":
		return microsPerDay, nil
	case "hour":
		return microsPerHour, nil
	case "minute":
		return microsPerMinute, nil
	case "second":
		return microsPerSecond, nil
	case "millisecond":
		return microsPerMilli, nil
	case "microsecond":
		return 1, nil
	case "month", "year":
		return 0, fmt.Errorf("interval unit %q is not accepted, specify the duration in days instead", unit)
	default:
		return 0, fmt.Errorf("unknown interval unit %q", unit)
	}
}
