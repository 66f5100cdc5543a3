package handlers

import (
	"fitlink/services/availability"
	"fitlink/services/booking"
	"fitlink/services/gym"
	"fitlink/services/matching"
	"fitlink/services/trainer"
	"fitlink/services/user"
)

// Handler groups all endpoint handlers with the services they dispatch to.
type Handler struct {
	Users        user.UserService
	Trainers     trainer.TrainerService
	Gyms         gym.GymService
	Bookings     booking.BookingService
	Matching     matching.MatchingService
	Availability availability.Resolver
}
