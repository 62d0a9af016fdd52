package controllers

import (
	"io"
	"log"
	"time"

	"hotel-reservation/config"
	"hotel-reservation/models"
	"hotel-reservation/services"
	"hotel-reservation/utils"
)

const separator = "\n---------------------------------------------------------\n"

// SessionController drives the reservation desk, one guest session per
// RunSession call. The room catalog and the receipt counter outlive the
// sessions; guest and ledger are fresh each time.
type SessionController struct {
	cfg     *config.Config
	rooms   *services.RoomService
	counter *services.ReceiptCounter
	guests  *services.GuestService
	prompt  *Prompter
	now     func() time.Time
}

func NewSessionController(
	cfg *config.Config,
	rooms *services.RoomService,
	counter *services.ReceiptCounter,
	guests *services.GuestService,
	in io.Reader,
	out io.Writer,
) *SessionController {
	return &SessionController{
		cfg:     cfg,
		rooms:   rooms,
		counter: counter,
		guests:  guests,
		prompt:  NewPrompter(in, out),
		now:     time.Now,
	}
}

// session is the per-run state.
type session struct {
	ledger *services.BookingService
	guest  *models.Guest
}

// RunSession runs Welcome through Receipt once. It only returns an error
// when the input ends; a session with confirmed reservations still gets
// its receipt in that case.
func (c *SessionController) RunSession() (models.SessionResult, error) {
	c.prompt.Print(utils.FormatWelcome(c.cfg.HotelName))

	reserve, err := c.askYesNo(separator + "Do you want to reserve a room? (Y/N): ")
	if err != nil {
		return models.SessionResult{}, err
	}
	if !reserve {
		c.prompt.Println("Exiting reservation process.\n")
		return models.SessionResult{Declined: true}, nil
	}

	s := &session{ledger: services.NewBookingService(c.cfg.ReservationsFile)}
	err = c.reserveLoop(s)
	return c.finish(s), err
}

func (c *SessionController) reserveLoop(s *session) error {
	for {
		if !c.hasAvailableRooms() {
			c.prompt.Println("\nSorry, there are no rooms available at the moment.")
			return nil
		}
		c.prompt.Print(utils.FormatRoomList(c.rooms.ListAvailable()))

		room, err := askUntil(c.prompt, separator+"\nEnter room number to reserve: ", c.parseRoom)
		if err != nil {
			return err
		}
		checkIn, err := askUntil(c.prompt, separator+"\nEnter check-in date (YYYY-MM-DD): ", func(in string) (time.Time, error) {
			return c.guests.ParseCheckInDate(in, c.now())
		})
		if err != nil {
			return err
		}
		nights, err := askUntil(c.prompt, "Enter number of nights: ", c.guests.ParseNights)
		if err != nil {
			return err
		}
		checkOut := checkIn.AddDate(0, 0, nights)

		guest := s.guest
		if guest == nil {
			if guest, err = c.collectGuest(); err != nil {
				return err
			}
		}

		confirmed, err := c.askYesNo(separator + "Do you want to confirm your reservation? (Y/N): ")
		if err != nil {
			return err
		}
		if !confirmed {
			c.prompt.Println("\nReservation canceled. Starting over...\n")
			continue
		}

		if !c.confirm(s, room, checkIn, checkOut, guest) {
			continue
		}

		more, err := c.askYesNo(separator + "Do you want to reserve more rooms? (Y/N): ")
		if err != nil {
			return err
		}
		c.prompt.Println(separator)
		if !more {
			return nil
		}
	}
}

// confirm books the room, persists the catalog and the reservation record,
// and prints the invoice. File failures are logged and do not undo the
// booking.
func (c *SessionController) confirm(s *session, room *models.Room, checkIn, checkOut time.Time, guest *models.Guest) bool {
	c.rooms.SetAvailability(room, false)

	res, err := s.ledger.Record(room, checkIn, checkOut, guest)
	if err != nil {
		c.rooms.SetAvailability(room, true)
		log.Printf("❌ reservation not recorded: %v", err)
		c.prompt.Println(capitalize(err.Error()) + ". Starting over...")
		return false
	}
	s.guest = guest

	if err := c.rooms.Save(); err != nil {
		log.Printf("❌ Error saving inventory: %v", err)
	}
	if err := s.ledger.AppendToFile(res, *guest, c.counter.Current(), c.now()); err != nil {
		log.Printf("❌ Error saving reservation: %v", err)
	}

	c.prompt.Print(utils.FormatInvoice(res, *guest))
	return true
}

// finish prints the receipt for a non-empty ledger and builds the result.
func (c *SessionController) finish(s *session) models.SessionResult {
	result := models.SessionResult{
		Guest:        s.guest,
		Reservations: s.ledger.Reservations(),
	}

	receipt, ok := s.ledger.Receipt(c.counter, c.cfg.HotelName, c.now())
	if !ok {
		return result
	}

	text := utils.FormatReceipt(receipt)
	c.prompt.Print(text)
	c.prompt.Println("\nThank you for choosing " + c.cfg.HotelName + "! We look forward to your stay.\n" +
		"-------------------------------------------------\n")

	if err := utils.SendReceiptEmail(c.cfg.SMTP, receipt); err != nil {
		log.Printf("⚠️ receipt %d not emailed: %v", receipt.Number, err)
	}

	result.ReceiptNumber = receipt.Number
	result.Receipt = text
	return result
}

func (c *SessionController) collectGuest() (*models.Guest, error) {
	name, err := c.prompt.Ask("\nEnter your name: ")
	if err != nil {
		return nil, err
	}
	contact, err := askUntil(c.prompt, "\nEnter your contact number: ", func(in string) (string, error) {
		return in, c.guests.ValidateContactNumber(in)
	})
	if err != nil {
		return nil, err
	}
	email, err := askUntil(c.prompt, "Enter your email: ", func(in string) (string, error) {
		return in, c.guests.ValidateEmail(in)
	})
	if err != nil {
		return nil, err
	}
	request, err := c.prompt.Ask("\nDo you have any special requests? \n(ex: Wheelchair accessible room: ) ")
	if err != nil {
		return nil, err
	}
	return c.guests.NewGuest(name, contact, email, request)
}

func (c *SessionController) parseRoom(number string) (*models.Room, error) {
	room, ok := c.rooms.FindAvailableByNumber(number)
	if !ok {
		return nil, services.ErrRoomNotAvailable
	}
	return room, nil
}

func (c *SessionController) askYesNo(question string) (bool, error) {
	return askUntil(c.prompt, question, c.guests.ParseYesNo)
}

func (c *SessionController) hasAvailableRooms() bool {
	for range c.rooms.ListAvailable() {
		return true
	}
	return false
}
