package models

import (
	"fmt"
	"strings"
)

// RoomType is the room class tag. The nightly rate and the details text
// are both keyed on it.
type RoomType string

const (
	Standard RoomType = "Standard"
	Classic  RoomType = "Classic"
	Deluxe   RoomType = "Deluxe"
	Family   RoomType = "Family"
)

// RoomTypes lists every room type in catalog order.
var RoomTypes = []RoomType{Standard, Classic, Deluxe, Family}

var nightlyRates = map[RoomType]Money{
	Standard: PHP(1945),
	Classic:  PHP(2200),
	Deluxe:   PHP(2980),
	Family:   PHP(4200),
}

// amenities shown on the welcome menu, per type.
var amenities = map[RoomType][]string{
	Standard: {"for 1 - 2 pax with 2 single bed", "24 Hours Wifi", "Fitness Center", "Swimming pool", "Free breakfast"},
	Classic:  {"solo or 2 with Queen bed", "24 Hours Wifi", "Fitness Center", "Swimming pool", "Free breakfast"},
	Deluxe:   {"Perfect for 2 - 4 pax", "24 Hours Wifi", "Fitness Center", "Swimming pool", "Free breakfast"},
	Family:   {"Up to 6 pax", "24 Hours Wifi", "Fitness Center", "Swimming pool", "Free breakfast", "Free Access to the gym"},
}

// ParseRoomType maps a persisted type name back to a RoomType.
func ParseRoomType(s string) (RoomType, bool) {
	t := RoomType(strings.TrimSpace(s))
	_, ok := nightlyRates[t]
	return t, ok
}

// Rate is the nightly rate for the type. Unknown types rate at zero.
func (t RoomType) Rate() Money {
	return nightlyRates[t]
}

func (t RoomType) String() string {
	return string(t)
}

// Label is the display name, e.g. "Deluxe Room".
func (t RoomType) Label() string {
	return string(t) + " Room"
}

// Amenities returns the bullet points listed for the type on the menu.
func (t RoomType) Amenities() []string {
	return append([]string(nil), amenities[t]...)
}

// Details renders the room block used on the room list, invoice and receipt.
func (t RoomType) Details(roomNumber string) string {
	return fmt.Sprintf("Room Type: %s\nRoom No: %s\nRoom Rate: PHP %s\n", t.Label(), roomNumber, t.Rate())
}
