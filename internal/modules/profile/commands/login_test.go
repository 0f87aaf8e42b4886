package commands

import (
	"context"
	"testing"

	"github.com/courtbook/courtbook/internal/modules/profile"
	"github.com/courtbook/courtbook/internal/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestState(t *testing.T) *profile.State {
	t.Helper()
	return profile.NewState(context.Background(), storage.NewMemoryStore(), zap.NewNop())
}

func Test_Login_Stores_The_Fabricated_User(t *testing.T) {
	// Arrange
	state := newTestState(t)
	handler := NewLoginCommandHandler(state)

	// Act
	user, err := handler.Handle(context.Background(), LoginCommand{
		Email:    "sofia@example.com",
		Password: "secret",
	})

	// Assert
	require.NoError(t, err)
	require.Equal(t, "sofia", user.Name)

	stored, found := state.User()
	require.True(t, found)
	require.Equal(t, user, stored)
}

func Test_LoginCommand_Validate_Rejects_Empty_Credentials(t *testing.T) {
	require.Error(t, LoginCommand{Password: "secret"}.Validate())
	require.Error(t, LoginCommand{Email: "a@b.c"}.Validate())
	require.NoError(t, LoginCommand{Email: "a@b.c", Password: "secret"}.Validate())
}

func Test_Register_Then_Logout_Clears_The_User(t *testing.T) {
	// Arrange
	state := newTestState(t)
	registerHandler := NewRegisterCommandHandler(state)
	logoutHandler := NewLogoutCommandHandler(state)

	user, err := registerHandler.Handle(context.Background(), RegisterCommand{
		Name:            "Marco",
		Email:           "marco@example.com",
		Password:        "secret",
		ConfirmPassword: "secret",
	})
	require.NoError(t, err)
	require.Equal(t, "Marco", user.Name)

	// Act
	_, err = logoutHandler.Handle(context.Background(), LogoutCommand{})

	// Assert
	require.NoError(t, err)

	_, found := state.User()
	require.False(t, found)
}

func Test_RegisterCommand_Validate_Rejects_Password_Mismatch(t *testing.T) {
	// Arrange
	command := RegisterCommand{
		Name:            "Marco",
		Email:           "marco@example.com",
		Password:        "secret",
		ConfirmPassword: "different",
	}

	// Act
	err := command.Validate()

	// Assert
	require.Error(t, err)
}
