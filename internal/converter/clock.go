package converter

import "clinic-booking/internal/domain/entity"

// clock renders a stored time column as HH:MM, leaving unparsable values untouched.
func clock(s string) string {
	if normalized, err := entity.NormalizeClock(s); err == nil {
		return normalized
	}
	return s
}
