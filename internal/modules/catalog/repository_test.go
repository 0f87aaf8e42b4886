package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Club_Lookup_Hits_By_ID(t *testing.T) {
	// Arrange
	repository := NewRepository()

	// Act
	club, found := repository.Club("2")

	// Assert
	require.True(t, found)
	require.Equal(t, "Urban Padel Center", club.Name)
	require.Equal(t, 8, club.Courts)
}

func Test_Club_Lookup_Miss_Reports_Not_Found(t *testing.T) {
	// Arrange
	repository := NewRepository()

	// Act
	_, found := repository.Club("999")

	// Assert
	require.False(t, found)
}

func Test_Coach_And_Match_Lookups(t *testing.T) {
	// Arrange
	repository := NewRepository()

	// Act
	coach, coachFound := repository.Coach("3")
	match, matchFound := repository.Match("1")
	_, missFound := repository.Match("42")

	// Assert
	require.True(t, coachFound)
	require.Equal(t, "Juan Martín", coach.Name)

	require.True(t, matchFound)
	require.Equal(t, "open", match.Status)
	require.Len(t, match.Players, 4)

	require.False(t, missFound)
}

func Test_TimeSlots_Cover_The_Evening_Grid(t *testing.T) {
	// Arrange
	repository := NewRepository()

	// Act
	slots := repository.TimeSlots()

	// Assert
	require.Len(t, slots, 14)
	require.Equal(t, "16:00", slots[0])
	require.Equal(t, "22:30", slots[len(slots)-1])
}

func Test_Listings_Hand_Out_Copies(t *testing.T) {
	// Arrange
	repository := NewRepository()

	// Act
	clubs := repository.Clubs()
	clubs[0].Name = "mutated"

	// Assert
	club, _ := repository.Club(clubs[0].ID)
	require.NotEqual(t, "mutated", club.Name)
}
