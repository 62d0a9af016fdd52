package models

// Room is one bookable room of the catalog. Its rate follows its Type.
type Room struct {
	RoomNumber string
	Type       RoomType
	Available  bool
}

func NewRoom(number string, t RoomType) *Room {
	return &Room{RoomNumber: number, Type: t, Available: true}
}

func (r *Room) Rate() Money {
	return r.Type.Rate()
}

func (r *Room) Details() string {
	return r.Type.Details(r.RoomNumber)
}
