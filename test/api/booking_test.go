package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type bookingView struct {
	ID       string   `json:"id"`
	ClubID   string   `json:"clubId"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Duration int      `json:"duration"`
	Court    int      `json:"court"`
	Players  []string `json:"players"`
}

type bookingsView struct {
	Bookings []bookingView `json:"bookings"`
	Upcoming []bookingView `json:"upcoming"`
	Past     []bookingView `json:"past"`
}

func listBookings(t *testing.T) bookingsView {
	t.Helper()

	resp := doJSON(t, http.MethodGet, "/bookings", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view bookingsView
	readJSON(t, resp, &view)

	return view
}

func countBooking(view bookingsView, id string) int {
	count := 0
	for _, b := range view.Bookings {
		if b.ID == id {
			count++
		}
	}
	return count
}

func Test_CreateBooking_Then_Cancel_Restores_The_List(t *testing.T) {
	// Arrange
	before := listBookings(t)

	body := map[string]interface{}{
		"clubId":   "1",
		"day":      15,
		"time":     "18:00",
		"duration": 90,
	}

	// Act
	resp := doJSON(t, http.MethodPost, "/bookings", body)
	resp.Body.Close()

	// Assert
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	location := resp.Header.Get("Location")
	require.NotEmpty(t, location)

	created := listBookings(t)
	require.Len(t, created.Bookings, len(before.Bookings)+1)

	var createdID string
	for _, b := range created.Bookings {
		if countBooking(before, b.ID) == 0 {
			createdID = b.ID

			require.Equal(t, "1", b.ClubID)
			require.Equal(t, "18:00", b.Time)
			require.Equal(t, 90, b.Duration)
			require.GreaterOrEqual(t, b.Court, 1)
			require.LessOrEqual(t, b.Court, 6)
		}
	}
	require.NotEmpty(t, createdID)

	cancel := doJSON(t, http.MethodPut, "/bookings/"+createdID+"/actions/cancel", nil)
	cancel.Body.Close()
	require.Equal(t, http.StatusOK, cancel.StatusCode)

	after := listBookings(t)
	require.Len(t, after.Bookings, len(before.Bookings))
	require.Equal(t, 0, countBooking(after, createdID))
}

func Test_GetBooking_Returns_The_Created_Booking_Then_404_After_Cancel(t *testing.T) {
	// Arrange
	body := map[string]interface{}{
		"clubId":   "2",
		"day":      20,
		"time":     "19:30",
		"duration": 60,
	}

	createResp := doJSON(t, http.MethodPost, "/bookings", body)
	createResp.Body.Close()
	require.Equal(t, http.StatusCreated, createResp.StatusCode)

	before := listBookings(t)
	var createdID string
	for _, b := range before.Bookings {
		if b.ClubID == "2" && b.Time == "19:30" {
			createdID = b.ID
		}
	}
	require.NotEmpty(t, createdID)

	// Act
	getResp := doJSON(t, http.MethodGet, "/bookings/"+createdID, nil)
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	var fetched bookingView
	readJSON(t, getResp, &fetched)

	// Assert
	require.Equal(t, createdID, fetched.ID)
	require.Equal(t, "2", fetched.ClubID)
	require.Equal(t, "19:30", fetched.Time)
	require.Equal(t, 60, fetched.Duration)

	cancel := doJSON(t, http.MethodPut, "/bookings/"+createdID+"/actions/cancel", nil)
	cancel.Body.Close()
	require.Equal(t, http.StatusOK, cancel.StatusCode)

	missResp := doJSON(t, http.MethodGet, "/bookings/"+createdID, nil)
	missResp.Body.Close()
	require.Equal(t, http.StatusNotFound, missResp.StatusCode)
}

func Test_Cancelling_An_Unknown_Booking_Is_Idempotent(t *testing.T) {
	// Arrange
	before := listBookings(t)

	// Act
	resp := doJSON(t, http.MethodPut, "/bookings/does-not-exist/actions/cancel", nil)
	resp.Body.Close()

	// Assert
	require.Equal(t, http.StatusOK, resp.StatusCode)

	after := listBookings(t)
	require.Len(t, after.Bookings, len(before.Bookings))
}

func Test_Bookings_Partition_Into_Upcoming_And_Past(t *testing.T) {
	// Act
	view := listBookings(t)

	// Assert
	require.Len(t, view.Bookings, len(view.Upcoming)+len(view.Past))

	for _, b := range view.Bookings {
		require.Equal(t, 1, countBooking(bookingsView{Bookings: view.Upcoming}, b.ID)+
			countBooking(bookingsView{Bookings: view.Past}, b.ID))
	}
}

func Test_CreateBooking_Returns_400_For_Unknown_Duration(t *testing.T) {
	// Arrange
	body := map[string]interface{}{
		"clubId":   "1",
		"day":      15,
		"time":     "18:00",
		"duration": 45,
	}

	// Act
	resp := doJSON(t, http.MethodPost, "/bookings", body)
	defer resp.Body.Close()

	// Assert
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func Test_CreateBooking_Returns_404_For_Unknown_Club(t *testing.T) {
	// Arrange
	body := map[string]interface{}{
		"clubId":   "999",
		"day":      15,
		"time":     "18:00",
		"duration": 90,
	}

	// Act
	resp := doJSON(t, http.MethodPost, "/bookings", body)
	defer resp.Body.Close()

	// Assert
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func Test_Selection_Setters_Are_Reflected_In_The_Selection_View(t *testing.T) {
	// Act
	dayResp := doJSON(t, http.MethodPut, "/bookings/selection/day", map[string]int{"day": 15})
	dayResp.Body.Close()
	require.Equal(t, http.StatusOK, dayResp.StatusCode)

	timeResp := doJSON(t, http.MethodPut, "/bookings/selection/time", map[string]string{"time": "18:00"})
	timeResp.Body.Close()
	require.Equal(t, http.StatusOK, timeResp.StatusCode)

	// Assert
	resp := doJSON(t, http.MethodGet, "/bookings/selection", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var selection struct {
		SelectedDay  int     `json:"selectedDay"`
		SelectedTime *string `json:"selectedTime"`
	}
	readJSON(t, resp, &selection)
	require.Equal(t, 15, selection.SelectedDay)
	require.NotNil(t, selection.SelectedTime)
	require.Equal(t, "18:00", *selection.SelectedTime)

	// Act - clearing the time back to absent
	clearResp := doJSON(t, http.MethodPut, "/bookings/selection/time", map[string]interface{}{"time": nil})
	clearResp.Body.Close()
	require.Equal(t, http.StatusOK, clearResp.StatusCode)

	// Assert
	resp = doJSON(t, http.MethodGet, "/bookings/selection", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	readJSON(t, resp, &selection)
	require.Nil(t, selection.SelectedTime)
}
