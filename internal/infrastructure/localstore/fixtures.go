package localstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/skarki/stayhub-api/internal/domain/entity"
)

// Datos de muestra: se devuelven cuando la colección no existe o el archivo
// está corrupto. Son los mismos registros de la demo original.

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleBookings() []*entity.Booking {
	return []*entity.Booking{
		{
			ID:          "HTB123456",
			HotelID:     "1",
			HotelName:   "Grand Himalaya Hotel",
			Location:    "Thamel, Kathmandu",
			RoomType:    "Deluxe Room",
			CheckIn:     date(2024, time.March, 15),
			CheckOut:    date(2024, time.March, 18),
			Guests:      2,
			Rooms:       1,
			TotalAmount: decimal.NewFromInt(25500),
			Status:      entity.BookingConfirmed,
			GuestName:   "John Doe",
			GuestEmail:  "john.doe@email.com",
			GuestPhone:  "+977-9841234567",
			Image:       "/assets/hotel-room-1.jpg",
			Rating:      4.8,
			CreatedAt:   date(2024, time.March, 10),
		},
		{
			ID:          "HTB123457",
			HotelID:     "2",
			HotelName:   "Royal Palace Resort",
			Location:    "Lakeside, Pokhara",
			RoomType:    "Executive Suite",
			CheckIn:     date(2024, time.February, 10),
			CheckOut:    date(2024, time.February, 13),
			Guests:      2,
			Rooms:       1,
			TotalAmount: decimal.NewFromInt(36000),
			Status:      entity.BookingCompleted,
			GuestName:   "John Doe",
			GuestEmail:  "john.doe@email.com",
			GuestPhone:  "+977-9841234567",
			Image:       "/assets/hotel-room-2.jpg",
			Rating:      4.6,
			CreatedAt:   date(2024, time.February, 5),
		},
		{
			ID:          "HTB123458",
			HotelID:     "3",
			HotelName:   "Mountain View Lodge",
			Location:    "Nagarkot, Bhaktapur",
			RoomType:    "Standard Room",
			CheckIn:     date(2024, time.April, 20),
			CheckOut:    date(2024, time.April, 22),
			Guests:      1,
			Rooms:       1,
			TotalAmount: decimal.NewFromInt(19000),
			Status:      entity.BookingUpcoming,
			GuestName:   "John Doe",
			GuestEmail:  "john.doe@email.com",
			GuestPhone:  "+977-9841234567",
			Image:       "/assets/hotel-room-1.jpg",
			Rating:      4.7,
			CreatedAt:   date(2024, time.April, 15),
		},
	}
}

func sampleUsers() []*entity.User {
	return []*entity.User{
		{
			ID:    "1",
			Name:  "John Doe",
			Email: "john.doe@email.com",
			Role:  entity.RoleUser,
			Profile: entity.Profile{
				FirstName: "John",
				LastName:  "Doe",
				Email:     "john.doe@email.com",
				Phone:     "+977-9841234567",
				Address:   "Kathmandu, Nepal",
			},
			CreatedAt: date(2023, time.December, 15),
		},
		{
			ID:    "2",
			Name:  "Jane Smith",
			Email: "jane@email.com",
			Role:  entity.RoleUser,
			Profile: entity.Profile{
				FirstName: "Jane",
				LastName:  "Smith",
				Email:     "jane@email.com",
				Phone:     "+977-9851234567",
				Address:   "Pokhara, Nepal",
			},
			CreatedAt: date(2024, time.January, 10),
		},
		{
			ID:    "3",
			Name:  "Mike Johnson",
			Email: "mike@email.com",
			Role:  entity.RoleUser,
			Profile: entity.Profile{
				FirstName: "Mike",
				LastName:  "Johnson",
				Email:     "mike@email.com",
				Phone:     "+977-9861234567",
				Address:   "Bhaktapur, Nepal",
			},
			CreatedAt: date(2024, time.February, 20),
		},
	}
}

func sampleHotels() []*entity.Hotel {
	return []*entity.Hotel{
		{
			ID:          "1",
			Name:        "Grand Himalaya Hotel",
			Location:    "Thamel, Kathmandu",
			Rooms:       45,
			Rating:      4.8,
			Status:      entity.HotelActive,
			Description: "Luxury hotel in the heart of Kathmandu",
			CreatedAt:   date(2023, time.January, 15),
		},
		{
			ID:          "2",
			Name:        "Royal Palace Resort",
			Location:    "Lakeside, Pokhara",
			Rooms:       60,
			Rating:      4.6,
			Status:      entity.HotelActive,
			Description: "Beautiful resort by the lake",
			CreatedAt:   date(2023, time.February, 20),
		},
		{
			ID:          "3",
			Name:        "Business Central Hotel",
			Location:    "New Baneshwor, Kathmandu",
			Rooms:       30,
			Rating:      4.4,
			Status:      entity.HotelMaintenance,
			Description: "Modern business hotel",
			CreatedAt:   date(2023, time.March, 10),
		},
	}
}
