// Package clock implements a clock that shows the same time in 12- and
// 24-hour formats, and the console session that drives it.
package clock

import (
	"errors"
	"fmt"
)

// ErrInvalidTime reports a time outside 00:00:00..23:59:59.
var ErrInvalidTime = errors.New("invalid time")

// Clock is a time of day with second resolution. The zero value is
// midnight.
type Clock struct {
	hours, minutes, seconds int
}

// New returns a Clock set to the given 24-hour time.
func New(hours, minutes, seconds int) (Clock, error) {
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 || seconds < 0 || seconds > 59 {
		return Clock{}, fmt.Errorf("%w: %02d:%02d:%02d", ErrInvalidTime, hours, minutes, seconds)
	}
	return Clock{hours: hours, minutes: minutes, seconds: seconds}, nil
}

// Hours returns the hour in 24-hour format.
func (c Clock) Hours() int { return c.hours }

// Minutes returns the minute.
func (c Clock) Minutes() int { return c.minutes }

// Seconds returns the second.
func (c Clock) Seconds() int { return c.seconds }

// AddHour advances the clock by one hour, wrapping at midnight.
func (c *Clock) AddHour() {
	c.hours++
	c.carry()
}

// AddMinute advances the clock by one minute.
func (c *Clock) AddMinute() {
	c.minutes++
	c.carry()
}

// AddSecond advances the clock by one second.
func (c *Clock) AddSecond() {
	c.seconds++
	c.carry()
}

func (c *Clock) carry() {
	c.minutes += c.seconds / 60
	c.seconds %= 60
	c.hours += c.minutes / 60
	c.minutes %= 60
	c.hours %= 24
}

// Format24 returns the time as HH:MM:SS.
func (c Clock) Format24() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.hours, c.minutes, c.seconds)
}

// Format12 returns the time as hh:MM:SS AM or PM, with midnight and noon
// shown as 12.
func (c Clock) Format12() string {
	h := c.hours % 12
	if h == 0 {
		h = 12
	}
	period := "AM"
	if c.hours >= 12 {
		period = "PM"
	}
	return fmt.Sprintf("%02d:%02d:%02d %s", h, c.minutes, c.seconds, period)
}
