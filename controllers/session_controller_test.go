package controllers

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservation/config"
	"hotel-reservation/services"
)

type desk struct {
	ctrl    *SessionController
	rooms   *services.RoomService
	counter *services.ReceiptCounter
	out     *bytes.Buffer
	cfg     *config.Config
}

func newDesk(t *testing.T, lines ...string) *desk {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		InventoryFile:    filepath.Join(dir, "Room Availability.txt"),
		ReservationsFile: filepath.Join(dir, "reservation.txt"),
		ReceiptStart:     services.DefaultReceiptStart,
		HotelName:        "Aerostop Hotel",
	}

	rooms := services.NewRoomService(cfg.InventoryFile)
	require.NoError(t, rooms.Load())
	counter := services.NewReceiptCounter(cfg.ReceiptStart)

	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	ctrl := NewSessionController(cfg, rooms, counter, services.NewGuestService(), in, out)
	ctrl.now = func() time.Time { return time.Date(2030, 3, 1, 10, 0, 0, 0, time.Local) }

	return &desk{ctrl: ctrl, rooms: rooms, counter: counter, out: out, cfg: cfg}
}

var guestLines = []string{"Juan Dela Cruz", "09171234567", "juan.dc@example.com", "Late check-in"}

func script(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestRunSession_TwoReservationsOneReceipt(t *testing.T) {
	d := newDesk(t, script(
		[]string{"Y", "01", "2030-03-10", "2"},
		guestLines,
		[]string{"Y", "Y"},
		[]string{"07", "2030-03-12", "1", "Y", "N"},
	)...)

	result, err := d.ctrl.RunSession()
	require.NoError(t, err)

	require.Len(t, result.Reservations, 2)
	assert.Equal(t, "01", result.Reservations[0].Room.RoomNumber)
	assert.Equal(t, "4356.80", result.Reservations[0].Total.String())
	assert.Equal(t, "07", result.Reservations[1].Room.RoomNumber)
	assert.Equal(t, 1001, result.ReceiptNumber)
	assert.Equal(t, 1002, d.counter.Current())
	assert.Equal(t, "Juan Dela Cruz", result.Guest.Name)

	out := d.out.String()
	assert.Equal(t, 1, strings.Count(out, "Enter your name: "), "guest details are collected once")
	assert.Equal(t, 2, strings.Count(out, "Invoice"))
	assert.Equal(t, 1, strings.Count(out, "Official Receipt"))
	assert.Contains(t, result.Receipt, "Item 1 - Reference: "+result.Reservations[0].ID)
	assert.Contains(t, result.Receipt, "Item 2 - Reference: "+result.Reservations[1].ID)

	// inventory persisted with both rooms booked
	inv, err := os.ReadFile(d.cfg.InventoryFile)
	require.NoError(t, err)
	assert.Contains(t, string(inv), "01,Standard,false\n")
	assert.Contains(t, string(inv), "07,Deluxe,false\n")
	assert.Contains(t, string(inv), "02,Standard,true\n")

	// both reservations appended under the pending receipt number
	res, err := os.ReadFile(d.cfg.ReservationsFile)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(res), "Receipt No.: 1001\n"))
	assert.Contains(t, string(res), "Date: 2030-03-01\n")
}

func TestRunSession_DeclineLeavesStateUntouched(t *testing.T) {
	d := newDesk(t, "n")
	before, err := os.ReadFile(d.cfg.InventoryFile)
	require.NoError(t, err)

	result, err := d.ctrl.RunSession()
	require.NoError(t, err)

	assert.True(t, result.Declined)
	assert.Empty(t, result.Reservations)
	assert.Zero(t, result.ReceiptNumber)
	assert.Equal(t, 1001, d.counter.Current())
	assert.Contains(t, d.out.String(), "Exiting reservation process.")

	after, err := os.ReadFile(d.cfg.InventoryFile)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	_, err = os.Stat(d.cfg.ReservationsFile)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRunSession_RetriesInvalidInput(t *testing.T) {
	d := newDesk(t,
		"maybe", "Y",
		"99", "01",
		"2030-02-28", "03/10/2030", "2030-03-01",
		"0", "two", "3",
		"Juan Dela Cruz",
		"0917123456", "09171234567",
		"a.b@example", "a.b@example.com",
		"",
		"x", "Y",
		"N",
	)

	result, err := d.ctrl.RunSession()
	require.NoError(t, err)

	out := d.out.String()
	assert.Contains(t, out, "Invalid input, enter Y or N. Try again.")
	assert.Contains(t, out, "Invalid room number or room is not available. Try again.")
	assert.Contains(t, out, "Check-in date cannot be in the past. Try again.")
	assert.Contains(t, out, "Invalid date format, expected YYYY-MM-DD. Try again.")
	assert.Contains(t, out, "Number of nights must be a whole number greater than zero. Try again.")
	assert.Contains(t, out, "Invalid contact number, must be 11 digits. Try again.")
	assert.Contains(t, out, "Invalid email format. Try again.")

	require.Len(t, result.Reservations, 1)
	res := result.Reservations[0]
	assert.Equal(t, 3, res.Nights)
	assert.Equal(t, "2030-03-01", res.CheckIn.Format("2006-01-02"))
	assert.Equal(t, "2030-03-04", res.CheckOut.Format("2006-01-02"))
	assert.Equal(t, "a.b@example.com", result.Guest.Email)
	assert.Empty(t, result.Guest.SpecialRequest)
}

func TestRunSession_CancelDiscardsPendingSelection(t *testing.T) {
	d := newDesk(t, script(
		[]string{"Y", "01", "2030-03-10", "2"},
		guestLines,
		[]string{"N"},
		// guest details are asked again since nothing was confirmed
		[]string{"01", "2030-03-11", "1"},
		[]string{"Maria Santos", "09998887766", "maria@example.com", ""},
		[]string{"Y", "N"},
	)...)

	result, err := d.ctrl.RunSession()
	require.NoError(t, err)

	assert.Contains(t, d.out.String(), "Reservation canceled. Starting over...")
	require.Len(t, result.Reservations, 1)
	assert.Equal(t, "01", result.Reservations[0].Room.RoomNumber)
	assert.Equal(t, 1, result.Reservations[0].Nights)
	assert.Equal(t, "Maria Santos", result.Guest.Name)
	assert.Equal(t, 1002, d.counter.Current())
}

func TestRunSession_BookedRoomUnselectableInLaterSession(t *testing.T) {
	d := newDesk(t, script(
		[]string{"Y", "01", "2030-03-10", "2"},
		guestLines,
		[]string{"Y", "N"},
		// second session, new guest
		[]string{"Y", "01", "02", "2030-03-10", "1"},
		[]string{"Maria Santos", "09998887766", "maria@example.com", ""},
		[]string{"Y", "N"},
	)...)

	first, err := d.ctrl.RunSession()
	require.NoError(t, err)
	d.out.Reset()

	second, err := d.ctrl.RunSession()
	require.NoError(t, err)

	assert.Equal(t, 1001, first.ReceiptNumber)
	assert.Equal(t, 1002, second.ReceiptNumber)
	assert.Equal(t, "Maria Santos", second.Guest.Name)
	require.Len(t, second.Reservations, 1)
	assert.Equal(t, "02", second.Reservations[0].Room.RoomNumber)

	out := d.out.String()
	assert.Contains(t, out, "Invalid room number or room is not available. Try again.")
	assert.NotContains(t, out, "Room No: 01\n")
	assert.Equal(t, 1, strings.Count(out, "Enter your name: "), "guest is collected again in a new session")
}

func TestRunSession_EndOfInput(t *testing.T) {
	d := newDesk(t)
	_, err := d.ctrl.RunSession()
	assert.True(t, errors.Is(err, io.EOF))
	assert.Equal(t, 1001, d.counter.Current())
}

func TestRunSession_EndOfInputAfterConfirmationStillIssuesReceipt(t *testing.T) {
	d := newDesk(t, script(
		[]string{"Y", "10", "2030-03-10", "1"},
		guestLines,
		[]string{"Y"},
	)...)

	result, err := d.ctrl.RunSession()
	assert.True(t, errors.Is(err, io.EOF))
	require.Len(t, result.Reservations, 1)
	assert.Equal(t, 1001, result.ReceiptNumber)
	assert.Equal(t, 1002, d.counter.Current())
}

func TestRunSession_NoRoomsAvailable(t *testing.T) {
	d := newDesk(t, "Y")
	for _, r := range d.rooms.Rooms() {
		d.rooms.SetAvailability(r, false)
	}

	result, err := d.ctrl.RunSession()
	require.NoError(t, err)

	assert.Empty(t, result.Reservations)
	assert.Zero(t, result.ReceiptNumber)
	assert.Equal(t, "abandoned", result.Outcome())
	assert.Contains(t, d.out.String(), "no rooms available")
}

func TestRunSession_FileFailuresAreNotFatal(t *testing.T) {
	d := newDesk(t, script(
		[]string{"Y", "04", "2030-03-10", "1"},
		guestLines,
		[]string{"Y", "N"},
	)...)
	missing := filepath.Join(t.TempDir(), "gone", "reservation.txt")
	d.cfg.ReservationsFile = missing

	result, err := d.ctrl.RunSession()
	require.NoError(t, err)

	require.Len(t, result.Reservations, 1)
	assert.Equal(t, 1001, result.ReceiptNumber)
	_, ok := d.rooms.FindAvailableByNumber("04")
	assert.False(t, ok)
}
