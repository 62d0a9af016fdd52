package utils

import (
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservation/models"
)

func TestSMTPSettingsEnabled(t *testing.T) {
	assert.False(t, SMTPSettings{}.Enabled())
	assert.False(t, SMTPSettings{Host: "smtp.example.com", Port: "587"}.Enabled())
	assert.True(t, SMTPSettings{Host: "smtp.example.com", Port: "587", Username: "u", Password: "p"}.Enabled())
}

func TestBuildReceiptMessage(t *testing.T) {
	settings := SMTPSettings{Username: "desk@aerostop.example", FromName: "Aerostop Hotel"}
	r := models.Receipt{
		Number:       1001,
		Date:         time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC),
		HotelName:    "Aerostop Hotel",
		Guest:        sampleGuest,
		Reservations: []models.Reservation{sampleReservation("01", models.Standard, 2)},
	}

	msg := BuildReceiptMessage(settings, r)

	assert.True(t, strings.HasPrefix(msg, "From: Aerostop Hotel <desk@aerostop.example>\r\n"))
	assert.Contains(t, msg, "To: juan.dc@example.com\r\n")
	assert.Contains(t, msg, "Subject: Aerostop Hotel - Official Receipt No. 1001\r\n")
	assert.Contains(t, msg, "Amount Paid: PHP 4356.80\r\n")
	assert.NotContains(t, strings.ReplaceAll(msg, "\r\n", ""), "\n")
}

func TestSendReceiptEmail_MockWhenDisabled(t *testing.T) {
	r := models.Receipt{Number: 1001, Guest: sampleGuest}
	assert.NoError(t, SendReceiptEmail(SMTPSettings{}, r))
	assert.NoError(t, SendReceiptEmail(SMTPSettings{}, models.Receipt{}))
}

func TestSendReceiptEmail_StalledServerTimesOut(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	// accept and never send the greeting
	held := make(chan net.Conn, 1)
	go func() {
		if conn, err := ln.Accept(); err == nil {
			held <- conn
		}
	}()
	t.Cleanup(func() {
		select {
		case conn := <-held:
			conn.Close()
		default:
		}
	})

	prev := smtpTimeout
	smtpTimeout = 200 * time.Millisecond
	t.Cleanup(func() { smtpTimeout = prev })

	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	settings := SMTPSettings{Host: host, Port: port, Username: "desk@aerostop.example", Password: "secret"}

	start := time.Now()
	err = SendReceiptEmail(settings, models.Receipt{Number: 1001, Guest: sampleGuest})
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
