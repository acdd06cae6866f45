package duration

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestParse(t *testing.T) {
	cases := map[string]Duration{
		"PT2H":              {Hours: 2},
		"P3D":               {Days: 3},
		"P1000D":            {Days: 1000},
		"PT10M":             {Minutes: 10},
		"P10M":              {Months: 10},
		"P2M3D":             {Months: 2, Days: 3},
		"P1Y":               {Years: 1},
		"P1Y3D":             {Years: 1, Days: 3},
		"PT50S":             {Seconds: 50},
		"PT40M50S":          {Minutes: 40, Seconds: 50},
		"PT12H40M50S":       {Hours: 12, Minutes: 40, Seconds: 50},
		"P1Y2M3DT12H40M50S": {Years: 1, Months: 2, Days: 3, Hours: 12, Minutes: 40, Seconds: 50},
		"PT0S":              {},
		"P0Y2M":             {Months: 2},
		"P":                 {},
	}
	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			is := is.New(t)
			got, err := Parse(input)
			is.NoErr(err)
			is.Equal(got, want)
		})
	}
}

func TestParseErrors(t *testing.T) {
	bad := map[string]string{
		"":             "no P prefix",
		"2H":           "no P prefix",
		"PS":           "designator without digits",
		"P1D2":         "trailing digits",
		"PT1H2":        "trailing digits",
		"P1H":          "hours in the date part",
		"PT1Y":         "years in the time part",
		"PT1D":         "days in the time part",
		"P1M2Y":        "out of order",
		"PT2S1H":       "out of order",
		"P1DT2HT3M":    "repeated T",
		"P1W":          "unknown designator",
		"P4294967296D": "overflow of uint32",
	}
	for input, why := range bad {
		t.Run(input, func(t *testing.T) {
			is := is.New(t)
			_, err := Parse(input)
			if err == nil {
				t.Fatalf("expected error (%s) for %q", why, input)
			}
			var perr *ParseError
			is.True(errors.As(err, &perr))
			is.Equal(perr.Input, input)
		})
	}
}

func TestParseLenient(t *testing.T) {
	is := is.New(t)

	p := Parser{Lenient: true}
	d, err := p.Parse("P3D1Y")
	is.NoErr(err)
	is.Equal(d, Duration{Years: 1, Days: 3})

	// M is still split at T even when order is relaxed.
	d, err = p.Parse("P2MT2M")
	is.NoErr(err)
	is.Equal(d, Duration{Months: 2, Minutes: 2})

	// Designators still cannot cross halves.
	_, err = p.Parse("PT1H2D")
	if err == nil {
		t.Fatal("expected error for day designator in time part")
	}

	// Strict parser rejects what lenient accepts.
	_, err = Parse("P3D1Y")
	if err == nil {
		t.Fatal("expected strict parser to reject out-of-order designators")
	}
}

func TestString(t *testing.T) {
	cases := map[string]Duration{
		"PT2H":              {Hours: 2},
		"P3D":               {Days: 3},
		"P10M":              {Months: 10},
		"PT10M":             {Minutes: 10},
		"P1Y2M3DT12H40M50S": {Years: 1, Months: 2, Days: 3, Hours: 12, Minutes: 40, Seconds: 50},
		"PT0S":              {},
		// Explicit zero components are dropped on format; P0Y2M came in,
		// P2M goes out. Component equality, not byte equality.
		"P2M": {Months: 2},
	}
	for want, d := range cases {
		t.Run(want, func(t *testing.T) {
			is := is.New(t)
			is.Equal(d.String(), want)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	is := is.New(t)
	durations := []Duration{
		{},
		{Hours: 2},
		{Minutes: 90},
		{Years: 1, Seconds: 1},
		{Months: 12, Days: 31, Minutes: 59},
		{Years: 4294967295, Seconds: 4294967295},
	}
	for _, d := range durations {
		got, err := Parse(d.String())
		is.NoErr(err)
		is.Equal(got, d)
	}
}

func TestNumSeconds(t *testing.T) {
	is := is.New(t)
	is.Equal(OfHours(2).NumSeconds(), uint64(7200))
	is.Equal(OfWeeks(1).NumSeconds(), uint64(7*24*3600))
	is.Equal(Duration{Years: 1}.NumSeconds(), uint64(365*24*3600))
	is.Equal(Duration{Months: 1}.NumSeconds(), uint64(30*24*3600))
}

func TestSmooth(t *testing.T) {
	is := is.New(t)
	is.Equal(OfSeconds(7200).Smooth(), Duration{Hours: 2})
	is.Equal(Duration{Minutes: 90}.Smooth(), Duration{Hours: 1, Minutes: 30})
	is.Equal(Duration{Months: 13}.Smooth(), Duration{Years: 1, Months: 1})
	is.Equal(Duration{Hours: 25}.Smooth(), Duration{Days: 1, Hours: 1})
}

func TestAdd(t *testing.T) {
	is := is.New(t)
	is.Equal(MustParse("P2D").Add(OfHours(3)), Duration{Days: 2, Hours: 3})
	is.Equal(OfMinutes(40).Add(OfMinutes(40)), Duration{Minutes: 80})
}

func TestJSON(t *testing.T) {
	is := is.New(t)

	b, err := OfHours(2).MarshalJSON()
	is.NoErr(err)
	is.Equal(string(b), `"PT2H"`)

	var d Duration
	is.NoErr(d.UnmarshalJSON([]byte(`"P1Y2M"`)))
	is.Equal(d, Duration{Years: 1, Months: 2})

	err = d.UnmarshalJSON([]byte(`"nope"`))
	if err == nil {
		t.Fatal("expected error for invalid duration string")
	}
}
