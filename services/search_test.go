package services_test

import (
	"testing"

	"hotelsys/errors"
	"hotelsys/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSearchFixture(t *testing.T) *services.HotelSystem {
	t.Helper()
	system, _ := newTestSystem(t)

	hotel := mustCreateHotel(t, system, "Hotel Busqueda", 20)
	roberto := mustCreateCustomer(t, system, "Roberto Martinez")
	jose := mustCreateCustomer(t, system, "José León")
	mustCreateCustomer(t, system, "Sofia Lopez")

	_, err := system.CreateReservation(roberto.CustomerID, hotel.HotelID, 2)
	require.NoError(t, err)
	_, err = system.CreateReservation(roberto.CustomerID, hotel.HotelID, 1)
	require.NoError(t, err)
	_, err = system.CreateReservation(jose.CustomerID, hotel.HotelID, 1)
	require.NoError(t, err)

	return system
}

func TestSearchReservationsByName(t *testing.T) {
	system := seedSearchFixture(t)

	t.Run("matches by substring regardless of case", func(t *testing.T) {
		for _, query := range []string{"rob", "ROB", "Roberto Martinez"} {
			results, err := system.SearchReservationsByName(query)
			require.NoError(t, err, "query %q", query)
			require.Len(t, results, 2)
			for _, detail := range results {
				assert.Equal(t, "Roberto Martinez", detail.CustomerName)
			}
		}
	})

	t.Run("matches regardless of accents", func(t *testing.T) {
		results, err := system.SearchReservationsByName("jose")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "José León", results[0].CustomerName)
	})

	t.Run("empty query fails", func(t *testing.T) {
		_, err := system.SearchReservationsByName("   ")
		assert.True(t, errors.HasCode(err, errors.ErrCodeEmptyQuery))
	})

	t.Run("no matching customer suggests the closest name", func(t *testing.T) {
		_, err := system.SearchReservationsByName("roberto martines")
		require.True(t, errors.HasCode(err, errors.ErrCodeNoMatches))
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Contains(t, appErr.Message, "Roberto Martinez")
	})

	t.Run("distant query gets no suggestion", func(t *testing.T) {
		_, err := system.SearchReservationsByName("zzzzzzzzzz")
		require.True(t, errors.HasCode(err, errors.ErrCodeNoMatches))
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.NotContains(t, appErr.Message, "closest match")
	})

	t.Run("matched customer without reservations fails", func(t *testing.T) {
		_, err := system.SearchReservationsByName("sofia")
		assert.True(t, errors.HasCode(err, errors.ErrCodeNoMatches))
	})
}
