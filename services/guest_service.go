package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"hotel-reservation/models"
)

var (
	contactNumberRegex = regexp.MustCompile(`^\d{11}$`)
	guestEmailRegex    = regexp.MustCompile(`^[\w.%+-]+@[\w.-]+\.[a-zA-Z]{2,6}$`)
)

// GuestService validates everything the guest types in: contact details,
// dates, night counts and Y/N answers.
type GuestService struct {
	validate *validator.Validate
}

func NewGuestService() *GuestService {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("contact_number", func(fl validator.FieldLevel) bool {
		return contactNumberRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("guest_email", func(fl validator.FieldLevel) bool {
		return guestEmailRegex.MatchString(fl.Field().String())
	})
	return &GuestService{validate: v}
}

// ValidateContactNumber accepts exactly 11 ASCII digits.
func (s *GuestService) ValidateContactNumber(contact string) error {
	if err := s.validate.Var(contact, "contact_number"); err != nil {
		return ErrInvalidContactNumber
	}
	return nil
}

// ValidateEmail checks the address against the guest e-mail pattern.
func (s *GuestService) ValidateEmail(email string) error {
	if err := s.validate.Var(email, "guest_email"); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// NewGuest validates and builds the session guest.
func (s *GuestService) NewGuest(name, contact, email, specialRequest string) (*models.Guest, error) {
	g := &models.Guest{
		Name:           strings.TrimSpace(name),
		ContactNumber:  contact,
		Email:          email,
		SpecialRequest: strings.TrimSpace(specialRequest),
	}
	if err := s.validate.Struct(g); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Tag() {
			case "contact_number":
				return nil, ErrInvalidContactNumber
			case "guest_email":
				return nil, ErrInvalidEmail
			}
		}
		return nil, fmt.Errorf("validate guest: %w", err)
	}
	return g, nil
}

// ParseYesNo reads a Y/N answer, case-insensitively.
func (s *GuestService) ParseYesNo(answer string) (bool, error) {
	a := strings.ToUpper(strings.TrimSpace(answer))
	if err := s.validate.Var(a, "required,oneof=Y N"); err != nil {
		return false, ErrInvalidAnswer
	}
	return a == "Y", nil
}

// ParseCheckInDate parses a YYYY-MM-DD date that must not be before today.
func (s *GuestService) ParseCheckInDate(input string, today time.Time) (time.Time, error) {
	d, err := time.Parse(models.DateLayout, strings.TrimSpace(input))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	if d.Before(CalendarDate(today)) {
		return time.Time{}, ErrPastDate
	}
	return d, nil
}

// ParseNights parses a positive whole number of nights.
func (s *GuestService) ParseNights(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrInvalidNights
	}
	if err := s.validate.Var(n, "gt=0"); err != nil {
		return 0, ErrInvalidNights
	}
	return n, nil
}
