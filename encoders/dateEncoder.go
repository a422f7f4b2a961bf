package encoders

import (
	"fmt"
	"strings"
	"time"

	"github.com/htm-community/sdrenc/sdr"
	"go.uber.org/zap"
)

/*
	Params for the date encoder. A field is encoded when its width is
	non zero.
*/
type DateEncoderParams struct {
	HolidayWidth    int
	HolidayRadius   float64
	SeasonWidth     int
	SeasonRadius    float64
	DayOfWeekWidth  int
	DayOfWeekRadius float64
	WeekendWidth    int
	TimeOfDayWidth  int
	TimeOfDayRadius float64
	Name            string
}

func NewDateEncoderParams() *DateEncoderParams {
	p := new(DateEncoderParams)

	//set defaults
	p.SeasonRadius = 91.5 //days
	p.DayOfWeekRadius = 1
	p.TimeOfDayRadius = 4
	p.HolidayRadius = 1
	p.Name = "date"

	return p
}

type dateField struct {
	name   string
	offset int
	encode func(date time.Time) *sdr.SDR
}

/*
	Date encoder encodes a datetime to a SDR. Each enabled attribute is
	encoded by its own sub encoder and the outputs are concatenated in the
	order season, day of week, weekend, holiday, time of day.
*/
type DateEncoder struct {
	name        string
	fields      []dateField
	width       int
	n           int
	description string
}

/*
	Intializes a new date encoder
*/
func NewDateEncoder(params *DateEncoderParams) (*DateEncoder, error) {
	de := &DateEncoder{name: params.Name}
	if de.name == "" {
		de.name = "date"
	}

	if params.SeasonWidth != 0 {
		// Ignore leapyear differences -- assume 366 days in a year
		// Radius = 91.5 days = length of season
		// Value is number of days since beginning of year (0 - 365)
		sep := NewScalarEncoderParams(params.SeasonWidth, 0, 366)
		sep.Name = "season"
		sep.Size = Radius(params.SeasonRadius)
		sep.Periodic = true
		enc, err := NewScalarEncoder(sep)
		if err != nil {
			return nil, err
		}
		de.addField("season", enc, func(date time.Time) *sdr.SDR {
			return enc.Encode(float64(date.YearDay() - 1))
		})
	}

	if params.DayOfWeekWidth != 0 {
		// Value is day of week, Sunday = 0
		// Radius is 1 day
		sep := NewScalarEncoderParams(params.DayOfWeekWidth, 0, 7)
		sep.Name = "day of week"
		sep.Size = Radius(params.DayOfWeekRadius)
		sep.Periodic = true
		enc, err := NewScalarEncoder(sep)
		if err != nil {
			return nil, err
		}
		de.addField("day of week", enc, func(date time.Time) *sdr.SDR {
			return enc.Encode(float64(date.Weekday()))
		})
	}

	if params.WeekendWidth != 0 {
		// Binary value, somewhat redundant with dayOfWeek
		enc, err := NewBooleanEncoder(params.WeekendWidth)
		if err != nil {
			return nil, err
		}
		de.addField("weekend", enc, func(date time.Time) *sdr.SDR {
			return enc.Encode(isWeekend(date))
		})
	}

	if params.HolidayWidth != 0 {
		// A "continuous" binary value. = 1 on the holiday itself and smooth ramp
		// 0->1 on the day before the holiday and 1->0 on the day after the holiday.
		sep := NewScalarEncoderParams(params.HolidayWidth, 0, 1)
		sep.Name = "holiday"
		sep.Size = Radius(params.HolidayRadius)
		enc, err := NewScalarEncoder(sep)
		if err != nil {
			return nil, err
		}
		de.addField("holiday", enc, func(date time.Time) *sdr.SDR {
			return enc.Encode(holidayValue(date))
		})
	}

	if params.TimeOfDayWidth != 0 {
		// Value is time of day in hours
		// Radius = 4 hours, e.g. morning, afternoon, evening, early night,
		// late night, etc.
		sep := NewScalarEncoderParams(params.TimeOfDayWidth, 0, 24)
		sep.Name = "time of day"
		sep.Size = Radius(params.TimeOfDayRadius)
		sep.Periodic = true
		enc, err := NewScalarEncoder(sep)
		if err != nil {
			return nil, err
		}
		de.addField("time of day", enc, func(date time.Time) *sdr.SDR {
			return enc.Encode(timeOfDay(date))
		})
	}

	if len(de.fields) == 0 {
		return nil, configErr(de.name, "fields", "no date attribute has a width")
	}

	parts := make([]string, len(de.fields))
	for i, f := range de.fields {
		parts[i] = fmt.Sprintf("%v: %v", f.name, f.offset)
	}
	de.description = strings.Join(parts, ", ")

	Logger().Debug("date encoder configured",
		zap.String("name", de.name),
		zap.Int("n", de.n),
		zap.String("fields", de.description))

	return de, nil
}

func (de *DateEncoder) addField(name string, enc ValueEncoder, encode func(time.Time) *sdr.SDR) {
	de.fields = append(de.fields, dateField{
		name:   name,
		offset: de.n,
		encode: encode,
	})
	de.width += enc.Width()
	de.n += enc.N()
}

// Width returns the number of active bits of every encoding.
func (de *DateEncoder) Width() int {
	return de.width
}

func (de *DateEncoder) N() int {
	return de.n
}

func (de *DateEncoder) Name() string {
	return de.name
}

// Description lists every encoded attribute with its bit offset.
func (de *DateEncoder) Description() string {
	return de.description
}

func (de *DateEncoder) Encode(date time.Time) *sdr.SDR {
	result := sdr.Zeros(0)
	for _, f := range de.fields {
		result = result.Append(f.encode(date))
	}
	return result
}

//saturday, sunday or friday evening
func isWeekend(date time.Time) bool {
	dayOfWeek := date.Weekday()
	return dayOfWeek == time.Saturday ||
		dayOfWeek == time.Sunday ||
		(dayOfWeek == time.Friday && timeOfDay(date) > 18)
}

func timeOfDay(date time.Time) float64 {
	return float64(date.Hour()) + float64(date.Minute())/60.0 + float64(date.Second())/3600.0
}

// holidays that occur on a fixed date every year
var holidays = []struct {
	month time.Month
	day   int
}{
	{time.December, 25},
}

const day = 24 * time.Hour

func holidayValue(date time.Time) float64 {
	for _, h := range holidays {
		// hDate is midnight on the holiday
		hDate := time.Date(date.Year(), h.month, h.day, 0, 0, 0, 0, date.Location())
		if !date.Before(hDate) {
			diff := date.Sub(hDate)
			switch diff / day {
			case 0:
				return 1
			case 1:
				// ramp smoothly from 1 -> 0 on the next day
				return 1.0 - float64(diff%day)/float64(day)
			}
		} else {
			diff := hDate.Sub(date)
			if diff/day == 0 {
				// ramp smoothly from 0 -> 1 on the previous day
				return 1.0 - float64(diff%day)/float64(day)
			}
		}
	}
	return 0
}
