package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type User struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Avatar  string  `json:"avatar"`
	Level   float64 `json:"level"`
	Matches int     `json:"matches"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
}

// Validate rejects records no caller should ever produce. Wins and
// losses exceeding the match count is not rejected - profile data has
// never guaranteed it.
func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("invalid ID - empty")
	}

	if u.Name == "" {
		return fmt.Errorf("invalid Name - empty")
	}

	if u.Level < 0 {
		return fmt.Errorf("invalid Level - %f", u.Level)
	}

	if u.Matches < 0 || u.Wins < 0 || u.Losses < 0 {
		return fmt.Errorf(
			"invalid counters - matches: %d, wins: %d, losses: %d",
			u.Matches, u.Wins, u.Losses,
		)
	}

	return nil
}

const defaultAvatar = "https://images.unsplash.com/photo-1633332755192-727a05c4013d?ixlib=rb-1.2.1&auto=format&fit=crop&w=256&q=80"

// LoginUser fabricates the demo profile handed out on login. There is
// no credential check behind it - the name comes from the email's
// local part, everything else is the canned demo record.
func LoginUser(email string) User {
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}

	return User{
		ID:      "1",
		Name:    name,
		Avatar:  defaultAvatar,
		Level:   3.5,
		Matches: 24,
		Wins:    16,
		Losses:  8,
	}
}

// RegisterUser fabricates a fresh profile for a new account.
func RegisterUser(name string) User {
	return User{
		ID:     uuid.NewString(),
		Name:   name,
		Avatar: defaultAvatar,
		Level:  2.0,
	}
}
