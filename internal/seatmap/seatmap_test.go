package seatmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "github.com/adrianjuliusaluoch/Airline-Booking-System/internal"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/random"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/seatmap"
)

func TestGenerateDreamlinerEconomyGrid(t *testing.T) {
	gen := seatmap.NewGenerator(random.New(1))

	grid, err := gen.Generate("Boeing 787-8", models.ClassEconomy)
	require.NoError(t, err)

	assert.Equal(t, 39, grid.Rows)
	assert.Equal(t, "ABCDEFGHJ", grid.Letters)
	require.Len(t, grid.Seats, 351)

	for _, seat := range grid.Seats {
		switch seat.Letter {
		case "A", "K":
			assert.Equal(t, models.SeatWindow, seat.Type, "seat %s", seat.SeatID)
			assert.Equal(t, 25, seat.Price)
		case "C", "F":
			assert.Equal(t, models.SeatAisle, seat.Type, "seat %s", seat.SeatID)
			assert.Equal(t, 15, seat.Price)
		default:
			assert.Equal(t, models.SeatMiddle, seat.Type, "seat %s", seat.SeatID)
			assert.Equal(t, 0, seat.Price)
		}
	}
}

func TestGenerateNoSurchargeOutsideEconomy(t *testing.T) {
	gen := seatmap.NewGenerator(random.New(2))

	grid, err := gen.Generate("Boeing 777-300ER", models.ClassBusiness)
	require.NoError(t, err)
	require.Len(t, grid.Seats, 7*4)

	for _, seat := range grid.Seats {
		assert.Equal(t, 0, seat.Price)
	}
}

func TestGenerateOccupancyBounds(t *testing.T) {
	gen := seatmap.NewGenerator(random.New(3))

	for trial := 0; trial < 10; trial++ {
		grid, err := gen.Generate("Boeing 737-800", models.ClassEconomy)
		require.NoError(t, err)

		occupied := 0
		for _, seat := range grid.Seats {
			if !seat.Available {
				occupied++
			}
		}
		total := len(grid.Seats)
		// Sampling with replacement can land under the 30% floor, but
		// never over the 70% ceiling.
		assert.Greater(t, occupied, 0)
		assert.LessOrEqual(t, occupied, int(float64(total)*0.7))
	}
}

func TestGenerateSeatIDs(t *testing.T) {
	gen := seatmap.NewGenerator(random.New(4))

	grid, err := gen.Generate("Embraer E190", models.ClassEconomy)
	require.NoError(t, err)
	require.Len(t, grid.Seats, 24*4)

	assert.Equal(t, "1A", grid.Seats[0].SeatID)
	assert.Equal(t, 1, grid.Seats[0].Row)

	last := grid.Seats[len(grid.Seats)-1]
	assert.Equal(t, "24D", last.SeatID)
	assert.Equal(t, 24, last.Row)
}

func TestGenerateUnknownAircraft(t *testing.T) {
	gen := seatmap.NewGenerator(random.New(5))

	_, err := gen.Generate("Concorde", models.ClassEconomy)
	assert.ErrorIs(t, err, models.ErrUnknownAircraft)
}

func TestGenerateUnknownCabin(t *testing.T) {
	gen := seatmap.NewGenerator(random.New(6))

	// Only the 777-300ER carries a First cabin.
	_, err := gen.Generate("Boeing 787-8", models.ClassFirst)
	assert.ErrorIs(t, err, models.ErrUnknownCabin)
}
