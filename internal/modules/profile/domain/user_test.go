package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Validate_Accepts_Well_Formed_User(t *testing.T) {
	// Arrange
	user := User{ID: "1", Name: "Alex", Level: 3.5, Matches: 24, Wins: 16, Losses: 8}

	// Act
	err := user.Validate()

	// Assert
	require.NoError(t, err)
}

func Test_Validate_Rejects_Empty_ID(t *testing.T) {
	// Arrange
	user := User{Name: "Alex", Level: 3.5}

	// Act
	err := user.Validate()

	// Assert
	require.Error(t, err)
}

func Test_Validate_Rejects_Negative_Counters(t *testing.T) {
	// Arrange
	user := User{ID: "1", Name: "Alex", Level: 3.5, Matches: -1}

	// Act
	err := user.Validate()

	// Assert
	require.Error(t, err)
}

func Test_Validate_Allows_Wins_And_Losses_Exceeding_Matches(t *testing.T) {
	// Arrange
	user := User{ID: "1", Name: "Alex", Level: 3.5, Matches: 1, Wins: 5, Losses: 5}

	// Act
	err := user.Validate()

	// Assert
	require.NoError(t, err)
}

func Test_LoginUser_Takes_Name_From_Email_Local_Part(t *testing.T) {
	// Act
	user := LoginUser("sofia@example.com")

	// Assert
	require.Equal(t, "sofia", user.Name)
	require.Equal(t, "1", user.ID)
	require.Equal(t, 3.5, user.Level)
	require.Equal(t, 24, user.Matches)
	require.NoError(t, user.Validate())
}

func Test_RegisterUser_Generates_Unique_IDs(t *testing.T) {
	// Act
	first := RegisterUser("Marco")
	second := RegisterUser("Marco")

	// Assert
	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, 0, first.Matches)
	require.Equal(t, 2.0, first.Level)
	require.NoError(t, first.Validate())
}
