package converter

import (
	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/domain/entity"
)

func WorkshopToResponse(workshop *entity.Workshop, includeCount bool) *dto.WorkshopResponse {
	resp := &dto.WorkshopResponse{
		ID:             workshop.ID,
		Title:          workshop.Title,
		Description:    workshop.Description,
		Date:           workshop.Date,
		DurationMin:    workshop.DurationMin,
		MaxSeats:       workshop.MaxSeats,
		Price:          workshop.Price,
		Active:         workshop.Active,
		ImageURL:       workshop.ImageURL,
		RemainingSeats: workshop.RemainingSeats(),
	}
	if includeCount {
		count := len(workshop.Bookings)
		resp.ConfirmedBookings = &count
	}
	return resp
}

func WorkshopsToResponses(workshops []entity.Workshop, includeCount bool) []dto.WorkshopResponse {
	responses := make([]dto.WorkshopResponse, 0, len(workshops))
	for i := range workshops {
		responses = append(responses, *WorkshopToResponse(&workshops[i], includeCount))
	}
	return responses
}

func WorkshopRegistrationsToResponses(bookings []entity.Booking) []dto.WorkshopRegistrationResponse {
	responses := make([]dto.WorkshopRegistrationResponse, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		resp := dto.WorkshopRegistrationResponse{
			ID:        b.ID,
			UserName:  b.UserName,
			UserEmail: b.UserEmail,
			UserPhone: b.UserPhone,
			Status:    string(b.Status),
			CreatedAt: b.CreatedAt,
		}
		if b.Payment != nil {
			status := string(b.Payment.Status)
			resp.PaymentStatus = &status
		}
		responses = append(responses, resp)
	}
	return responses
}
