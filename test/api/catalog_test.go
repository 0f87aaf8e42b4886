package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_GetClubs_Returns_The_Catalog_With_Favorite_Flags(t *testing.T) {
	// Act
	resp := doJSON(t, http.MethodGet, "/clubs", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var clubs []struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Rating   float64 `json:"rating"`
		Courts   int     `json:"courts"`
		Favorite bool    `json:"favorite"`
	}
	readJSON(t, resp, &clubs)

	// Assert
	require.Len(t, clubs, 3)
	require.Equal(t, "Indie Pádel Club", clubs[0].Name)
	require.Equal(t, 6, clubs[0].Courts)
}

func Test_GetClub_Returns_404_For_Unknown_ID(t *testing.T) {
	// Act
	resp := doJSON(t, http.MethodGet, "/clubs/999", nil)
	defer resp.Body.Close()

	// Assert
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func Test_GetClubTimeSlots_Returns_The_Grid(t *testing.T) {
	// Act
	resp := doJSON(t, http.MethodGet, "/clubs/1/time-slots", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var slots []string
	readJSON(t, resp, &slots)

	// Assert
	require.Len(t, slots, 14)
	require.Equal(t, "16:00", slots[0])
}

func Test_GetClubTimeSlots_Returns_404_For_Unknown_Club(t *testing.T) {
	// Act
	resp := doJSON(t, http.MethodGet, "/clubs/999/time-slots", nil)
	defer resp.Body.Close()

	// Assert
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func Test_GetCoaches_And_GetCoach(t *testing.T) {
	// Act
	listResp := doJSON(t, http.MethodGet, "/coaches", nil)
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var coaches []struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Specialties []string `json:"specialties"`
	}
	readJSON(t, listResp, &coaches)

	// Assert
	require.Len(t, coaches, 3)

	getResp := doJSON(t, http.MethodGet, "/coaches/"+coaches[0].ID, nil)
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	var coach struct {
		Name string `json:"name"`
	}
	readJSON(t, getResp, &coach)
	require.Equal(t, coaches[0].Name, coach.Name)

	missResp := doJSON(t, http.MethodGet, "/coaches/999", nil)
	missResp.Body.Close()
	require.Equal(t, http.StatusNotFound, missResp.StatusCode)
}

func Test_GetMatches_Returns_Open_Matches(t *testing.T) {
	// Act
	resp := doJSON(t, http.MethodGet, "/matches", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var matches []struct {
		ID      string `json:"id"`
		Status  string `json:"status"`
		Players []struct {
			Name string `json:"name"`
		} `json:"players"`
	}
	readJSON(t, resp, &matches)

	// Assert
	require.Len(t, matches, 2)
	require.Equal(t, "open", matches[0].Status)
	require.Len(t, matches[0].Players, 4)
}
