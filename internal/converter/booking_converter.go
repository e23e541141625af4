package converter

import (
	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/domain/entity"
)

func BookingToUpcomingResponse(booking *entity.Booking) *dto.UpcomingBookingResponse {
	resp := &dto.UpcomingBookingResponse{
		ID:          booking.ID,
		UserName:    booking.UserName,
		UserEmail:   booking.UserEmail,
		UserPhone:   booking.UserPhone,
		Gender:      booking.Gender,
		CustomField: booking.CustomField,
		Status:      string(booking.Status),
		ScheduledAt: booking.ScheduledAt,
	}
	if booking.Service != nil {
		resp.ServiceName = &booking.Service.Name
	}
	if booking.Workshop != nil {
		resp.WorkshopTitle = &booking.Workshop.Title
	}
	if booking.Payment != nil {
		status := string(booking.Payment.Status)
		resp.PaymentStatus = &status
		resp.PaymentAmount = &booking.Payment.Amount
	}
	return resp
}

func BookingsToUpcomingResponses(bookings []entity.Booking) []dto.UpcomingBookingResponse {
	responses := make([]dto.UpcomingBookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, *BookingToUpcomingResponse(&bookings[i]))
	}
	return responses
}
