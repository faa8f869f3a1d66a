package flights_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "github.com/adrianjuliusaluoch/Airline-Booking-System/internal"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/catalog"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/flights"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/random"
)

func newGenerator(seed int64) *flights.Generator {
	return flights.NewGenerator(catalog.New(), random.New(seed))
}

func TestGenerateReturnsThreeOptions(t *testing.T) {
	gen := newGenerator(1)

	options := gen.Generate("Nairobi", "London", "2025-07-10")
	require.Len(t, options, 3)

	for i, f := range options {
		assert.Equal(t, "Nairobi", f.Origin)
		assert.Equal(t, "London", f.Destination)
		assert.Equal(t, "NBO", f.OriginCode)
		assert.Equal(t, "LGW", f.DestinationCode)
		assert.Equal(t, "2025-07-10", f.DepartureDate)
		assert.Regexp(t, `^KQ\d{3}$`, f.FlightNumber)
		assert.True(t, strings.HasPrefix(f.Duration, strconv.Itoa(f.DurationMinutes/60)))
		assert.GreaterOrEqual(t, f.DurationMinutes, 180)
		assert.LessOrEqual(t, f.DurationMinutes, 840)

		for class, price := range f.Prices {
			assert.Positive(t, price, "option %d cabin %s", i, class)
		}
	}
}

func TestGenerateDepartureTimesAreFixedSlots(t *testing.T) {
	gen := newGenerator(7)

	options := gen.Generate("Nairobi", "Dubai", "2025-07-10")
	require.Len(t, options, 3)

	assert.Equal(t, "06:30", options[0].DepartureTime)
	assert.Equal(t, "10:45", options[1].DepartureTime)
	assert.Equal(t, "14:20", options[2].DepartureTime)
}

func TestGeneratePriceEscalation(t *testing.T) {
	gen := newGenerator(42)

	// NBO-LGW base fare is 945; slots escalate 15% per index.
	options := gen.Generate("Nairobi", "London", "2025-07-10")
	require.Len(t, options, 3)

	assert.Equal(t, 945, options[0].Prices[models.ClassEconomy])
	assert.Equal(t, 1087, options[1].Prices[models.ClassEconomy])
	assert.Equal(t, 1229, options[2].Prices[models.ClassEconomy])
}

func TestGenerateCabinPriceRatios(t *testing.T) {
	gen := newGenerator(3)

	for trial := 0; trial < 20; trial++ {
		for _, f := range gen.Generate("Nairobi", "New York", "2025-08-01") {
			economy := f.Prices[models.ClassEconomy]
			assert.Equal(t, economy*5/2, f.Prices[models.ClassBusiness])

			first, hasFirst := f.Prices[models.ClassFirst]
			if f.Aircraft == "Boeing 777-300ER" {
				require.True(t, hasFirst)
				assert.Equal(t, economy*4, first)
			} else {
				assert.False(t, hasFirst, "aircraft %s has no first cabin", f.Aircraft)
			}
		}
	}
}

func TestGenerateSeatsWithinCapacity(t *testing.T) {
	cat := catalog.New()
	gen := flights.NewGenerator(cat, random.New(11))

	for trial := 0; trial < 20; trial++ {
		for _, f := range gen.Generate("Nairobi", "Amsterdam", "2025-07-10") {
			aircraft, ok := cat.AircraftByModel(f.Aircraft)
			require.True(t, ok)

			for class, available := range f.SeatsAvailable {
				assert.LessOrEqual(t, available, aircraft.Seats[class])
				assert.Positive(t, available)
			}
		}
	}
}

func TestGenerateFirstOptionIsDirect(t *testing.T) {
	gen := newGenerator(5)

	for trial := 0; trial < 20; trial++ {
		options := gen.Generate("Nairobi", "Lagos", "2025-07-10")
		require.Len(t, options, 3)
		assert.Equal(t, 0, options[0].Stops)
		for _, f := range options[1:] {
			assert.Contains(t, []int{0, 1}, f.Stops)
		}
	}
}

func TestGenerateDefaultFareForUnpublishedRoute(t *testing.T) {
	gen := newGenerator(9)

	// Rome-Bangkok has no published fare; the default applies.
	options := gen.Generate("Rome", "Bangkok", "2025-07-10")
	require.Len(t, options, 3)
	assert.Equal(t, 600, options[0].Prices[models.ClassEconomy])
}

func TestGenerateUnknownCity(t *testing.T) {
	gen := newGenerator(1)

	assert.Empty(t, gen.Generate("Atlantis", "London", "2025-07-10"))
	assert.Empty(t, gen.Generate("Nairobi", "Atlantis", "2025-07-10"))
}

func TestGenerateArrivalTimeWrapsMidnight(t *testing.T) {
	gen := newGenerator(2)

	for trial := 0; trial < 20; trial++ {
		for _, f := range gen.Generate("Nairobi", "Mumbai", "2025-07-10") {
			parts := strings.SplitN(f.DepartureTime, ":", 2)
			hour, _ := strconv.Atoi(parts[0])
			minute, _ := strconv.Atoi(parts[1])

			total := hour*60 + minute + f.DurationMinutes
			want := fmt.Sprintf("%02d:%02d", (total/60)%24, total%60)
			assert.Equal(t, want, f.ArrivalTime)
		}
	}
}

func TestStatus(t *testing.T) {
	gen := newGenerator(4)

	for trial := 0; trial < 50; trial++ {
		status := gen.Status("KQ100")

		assert.Equal(t, "KQ100", status.FlightNumber)
		assert.Contains(t, []string{"On Time", "Delayed", "Boarding", "Departed", "Arrived", "Cancelled"}, status.Status)
		assert.Regexp(t, `^A\d+$`, status.Gate)
		assert.Contains(t, []string{"1A", "1B", "1C"}, status.Terminal)

		if status.Status == "Delayed" {
			assert.GreaterOrEqual(t, status.DelayMinutes, 15)
			assert.LessOrEqual(t, status.DelayMinutes, 180)
		} else {
			assert.Zero(t, status.DelayMinutes)
		}

		if status.Status == "Arrived" || status.Status == "Boarding" {
			require.NotNil(t, status.BaggageClaim)
			assert.GreaterOrEqual(t, *status.BaggageClaim, 1)
			assert.LessOrEqual(t, *status.BaggageClaim, 8)
		} else {
			assert.Nil(t, status.BaggageClaim)
		}
	}
}
