package stages

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fleetsense/fleetsense/pkg/config"
)

// SlotOffer is one bookable appointment start, offered to the scheduler.
type SlotOffer struct {
	Center *config.ServiceCenterConfig
	Start  time.Time // UTC
}

// partFor maps a diagnosed component to the stocked part the repair needs.
// Components without a mapping match any center.
var partFor = map[string]string{
	"engine_coolant_system":     "coolant_fluid",
	"engine_lubrication_system": "engine_oil",
	"battery":                   "battery_pack",
	"engine":                    "spark_plugs",
	"braking_system":            "brake_pads",
}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
	time.Sunday:    "sunday",
}

// ExpandSlots synthesises the hourly appointment instants for one center:
// each day's local operating window over the horizon becomes hourly UTC
// starts, minus slots already at capacity. Only strictly future instants
// qualify.
func ExpandSlots(center *config.ServiceCenterConfig, from time.Time, horizonDays int, booked map[time.Time]int) ([]time.Time, error) {
	loc, err := center.Location()
	if err != nil {
		return nil, err
	}

	var slots []time.Time
	day := from.In(loc)
	for i := 0; i < horizonDays; i++ {
		hours, ok := center.OperatingHours[weekdayNames[day.Weekday()]]
		if ok && !hours.Closed() {
			openH, openM, err := parseClock(hours.Open)
			if err != nil {
				return nil, fmt.Errorf("service center %s: %w", center.ID, err)
			}
			closeH, closeM, err := parseClock(hours.Close)
			if err != nil {
				return nil, fmt.Errorf("service center %s: %w", center.ID, err)
			}
			slot := time.Date(day.Year(), day.Month(), day.Day(), openH, openM, 0, 0, loc)
			close := time.Date(day.Year(), day.Month(), day.Day(), closeH, closeM, 0, 0, loc)
			for ; slot.Before(close); slot = slot.Add(time.Hour) {
				utc := slot.UTC()
				if !utc.After(from) {
					continue
				}
				if booked[utc] >= center.CapacityPerSlot {
					continue
				}
				slots = append(slots, utc)
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return slots, nil
}

func parseClock(s string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid clock value %q", s)
	}
	hour, err = strconv.Atoi(h)
	if err == nil {
		minute, err = strconv.Atoi(m)
	}
	if err != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid clock value %q", s)
	}
	return hour, minute, nil
}

// offerSlots walks the registry in order and returns offers from the first
// center that stocks the needed part and has at least need open slots. When
// no center reaches need, the best partial set wins so the caller can still
// surface whatever capacity exists.
func offerSlots(ctx context.Context, deps Deps, part string, now time.Time, need int) ([]SlotOffer, error) {
	until := now.AddDate(0, 0, deps.Defaults.PlanningHorizonDays)

	var best []SlotOffer
	for _, center := range deps.Centers.Ordered() {
		if !center.HasPart(part) {
			continue
		}
		booked, err := deps.Bookings.BookedSlots(ctx, center.ID, now, until)
		if err != nil {
			return nil, err
		}
		starts, err := ExpandSlots(center, now, deps.Defaults.PlanningHorizonDays, booked)
		if err != nil {
			return nil, err
		}
		offers := make([]SlotOffer, 0, len(starts))
		for _, s := range starts {
			offers = append(offers, SlotOffer{Center: center, Start: s})
		}
		if len(offers) >= need {
			return offers, nil
		}
		if len(offers) > len(best) {
			best = offers
		}
	}
	if len(best) == 0 {
		return nil, fmt.Errorf("no service center has open slots within %d days", deps.Defaults.PlanningHorizonDays)
	}
	return best, nil
}
