// services/room_service.go
package services

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log"
	"os"
	"strconv"
	"strings"

	"hotel-reservation/models"
)

// defaultRoomsPerType is how many rooms of each type a fresh inventory gets.
const defaultRoomsPerType = 3

// RoomService is the room catalog. The in-memory rooms are authoritative;
// the inventory file mirrors them after every Save.
type RoomService struct {
	path  string
	rooms []*models.Room
}

func NewRoomService(inventoryPath string) *RoomService {
	return &RoomService{path: inventoryPath}
}

// Load replaces the catalog with the contents of the inventory file. A
// missing file falls back to InitializeDefault. The catalog is left
// untouched when the file holds invalid data.
func (s *RoomService) Load() error {
	log.Printf("➡️ RoomService.Load path=%q", s.path)

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("⚠️ No inventory file found. Loading default inventory...")
		return s.InitializeDefault()
	}
	if err != nil {
		return fmt.Errorf("open inventory: %w: %w", ErrFileIO, err)
	}
	defer f.Close()

	var rooms []*models.Room
	seen := make(map[string]int)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		room, err := parseInventoryLine(line)
		if err != nil {
			return fmt.Errorf("inventory line %d: %w", lineNo, err)
		}
		// unique case-insensitively, matching FindAvailableByNumber
		key := strings.ToLower(room.RoomNumber)
		if first, dup := seen[key]; dup {
			return fmt.Errorf("inventory line %d: %w: room %q already listed on line %d",
				lineNo, ErrInvalidInventoryData, room.RoomNumber, first)
		}
		seen[key] = lineNo
		rooms = append(rooms, room)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read inventory: %w: %w", ErrFileIO, err)
	}

	s.rooms = rooms
	log.Printf("⬅️ RoomService.Load ok: %d rooms", len(rooms))
	return nil
}

// LoadOrInitialize loads the inventory and falls back to the default
// inventory when the file cannot be read or parsed.
func (s *RoomService) LoadOrInitialize() {
	err := s.Load()
	if err == nil {
		return
	}
	log.Printf("❌ RoomService.Load failed: %v; loading default inventory", err)
	if err := s.InitializeDefault(); err != nil {
		log.Printf("⚠️ could not persist default inventory: %v", err)
	}
}

func parseInventoryLine(line string) (*models.Room, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: expected 3 fields, got %d", ErrInvalidInventoryData, len(fields))
	}

	number := strings.TrimSpace(fields[0])
	if number == "" {
		return nil, fmt.Errorf("%w: empty room number", ErrInvalidInventoryData)
	}
	roomType, ok := models.ParseRoomType(fields[1])
	if !ok {
		return nil, fmt.Errorf("%w: unknown room type %q", ErrInvalidInventoryData, strings.TrimSpace(fields[1]))
	}
	available, err := strconv.ParseBool(strings.TrimSpace(fields[2]))
	if err != nil {
		return nil, fmt.Errorf("%w: availability %q", ErrInvalidInventoryData, strings.TrimSpace(fields[2]))
	}

	room := models.NewRoom(number, roomType)
	room.Available = available
	return room, nil
}

// InitializeDefault resets the catalog to three available rooms of each
// type numbered "01".."12" and persists it. The in-memory catalog is set
// even if the write fails.
func (s *RoomService) InitializeDefault() error {
	rooms := make([]*models.Room, 0, len(models.RoomTypes)*defaultRoomsPerType)
	n := 1
	for _, t := range models.RoomTypes {
		for i := 0; i < defaultRoomsPerType; i++ {
			rooms = append(rooms, models.NewRoom(fmt.Sprintf("%02d", n), t))
			n++
		}
	}
	s.rooms = rooms
	return s.Save()
}

// Save overwrites the inventory file with the current catalog.
func (s *RoomService) Save() error {
	var sb strings.Builder
	for _, r := range s.rooms {
		fmt.Fprintf(&sb, "%s,%s,%t\n", r.RoomNumber, r.Type, r.Available)
	}
	if err := os.WriteFile(s.path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("save inventory: %w: %w", ErrFileIO, err)
	}
	return nil
}

// Rooms returns every room in catalog order.
func (s *RoomService) Rooms() []*models.Room {
	return append([]*models.Room(nil), s.rooms...)
}

// ListAvailable yields the available rooms in catalog order. Each call
// starts a fresh pass over the catalog.
func (s *RoomService) ListAvailable() iter.Seq[*models.Room] {
	return func(yield func(*models.Room) bool) {
		for _, r := range s.rooms {
			if !r.Available {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// FindAvailableByNumber matches number case-insensitively against the
// available rooms.
func (s *RoomService) FindAvailableByNumber(number string) (*models.Room, bool) {
	number = strings.TrimSpace(number)
	for r := range s.ListAvailable() {
		if strings.EqualFold(r.RoomNumber, number) {
			return r, true
		}
	}
	return nil, false
}

// SetAvailability flips the in-memory flag only; call Save to persist it.
func (s *RoomService) SetAvailability(room *models.Room, available bool) {
	room.Available = available
}
