package program

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRentMinimumBalance(t *testing.T) {
	rent := DefaultRent()
	assert.Equal(t, uint64(128*6960), rent.MinimumBalance(0))
	assert.Equal(t, uint64((128+82)*6960), rent.MinimumBalance(HeaderSize))

	// saturates instead of wrapping
	rent = Rent{Overhead: 1, PerByte: math.MaxUint64 / 2}
	assert.Equal(t, uint64(math.MaxUint64), rent.MinimumBalance(10))

	rent = Rent{Overhead: math.MaxUint64, PerByte: 1}
	assert.Equal(t, uint64(math.MaxUint64), rent.MinimumBalance(1))
}

func TestRentValidate(t *testing.T) {
	assert.NoError(t, DefaultRent().Validate())

	err := Rent{Overhead: 128}.Validate()
	assert.Equal(t, InvalidArgument, KindOf(err))

	err = Rent{Overhead: 128, PerByte: math.MaxUint64 / 1000}.Validate()
	assert.Equal(t, InvalidArgument, KindOf(err))
}

func TestNewInvalidRent(t *testing.T) {
	assert.Panics(t, func() {
		New(Config{ProgramID: testProgramID, Rent: Rent{Overhead: 128}}, nil)
	})

	assert.PanicsWithValue(t, "challenge: missing program id", func() {
		New(Config{Rent: DefaultRent()}, nil)
	})
}
