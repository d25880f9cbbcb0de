package routers

import (
	"booking-service/internal/app/delivery/http/controllers"
	"booking-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.Head("/", bookingController.HeadBookings)
	router.Get("/", bookingController.ListBookings)
	router.With(middlewares.Authenticate).Post("/", bookingController.SaveBookings)
	router.With(middlewares.Authenticate).Delete("/{id}", bookingController.DeleteBooking)
}
