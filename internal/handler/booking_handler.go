package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ChrisHanshia/Ticket-Booking-API/internal/model"
	"github.com/ChrisHanshia/Ticket-Booking-API/internal/service"
	apperrors "github.com/ChrisHanshia/Ticket-Booking-API/pkg/app_errors"
	"github.com/ChrisHanshia/Ticket-Booking-API/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	bookingService service.BookingService
	ticketService  service.TicketService
}

func NewBookingHandler(bookingService service.BookingService, ticketService service.TicketService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		ticketService:  ticketService,
	}
}

func (h *BookingHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/booking")
	{
		router.POST("/", h.BookTicket)
		router.GET("/ticket", h.ListTickets)
		router.PUT("/tickets/:id", h.RescheduleTicket)
		router.DELETE("/tickets/:id", h.CancelTicket)
		router.GET("/seats/availability", h.CheckAvailability)
	}
}

// TicketRequest is the booking payload.
type TicketRequest struct {
	PassengerName    string `json:"passenger_name" binding:"required"`
	TrainNumber      string `json:"train_number" binding:"required"`
	SeatNumber       string `json:"seat_number" binding:"required"`
	Date             string `json:"date" binding:"required"`
	Time             string `json:"time" binding:"required"`
	BoardingStation  string `json:"boarding_station" binding:"required"`
	DepartureStation string `json:"departure_station" binding:"required"`
}

// TicketUpdateRequest carries a reschedule: only date and time may change.
type TicketUpdateRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type AvailabilityQuery struct {
	SeatNumber  string `form:"seat_number" binding:"required"`
	TrainNumber string `form:"train_number" binding:"required"`
	Date        string `form:"date" binding:"required"`
}

func (h *BookingHandler) BookTicket(c *gin.Context) {
	var req TicketRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	travelDate, err := model.ParseTravelDate(req.Date)
	if err != nil {
		h.handleError(c, err, "BookTicket")
		return
	}

	ticket := &model.Ticket{
		PassengerName:    req.PassengerName,
		TrainNumber:      req.TrainNumber,
		SeatNumber:       req.SeatNumber,
		TravelDate:       travelDate,
		DepartureTime:    req.Time,
		BoardingStation:  req.BoardingStation,
		DepartureStation: req.DepartureStation,
	}

	created, err := h.bookingService.Book(c, ticket)
	if err != nil {
		h.handleError(c, err, "BookTicket")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "ticket booked Successfully",
		"ticket":  created.ToResponse(),
	})
}

func (h *BookingHandler) ListTickets(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "page must be a positive integer"})
		return
	}

	tickets, err := h.ticketService.List(c, page)
	if err != nil {
		h.handleError(c, err, "ListTickets")
		return
	}

	responses := make([]*model.TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		responses = append(responses, ticket.ToResponse())
	}

	c.JSON(http.StatusOK, responses)
}

func (h *BookingHandler) RescheduleTicket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid ticket id"})
		return
	}

	var req TicketUpdateRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	newDate, err := model.ParseTravelDate(req.Date)
	if err != nil {
		h.handleError(c, err, "RescheduleTicket")
		return
	}

	updated, err := h.ticketService.Reschedule(c, id, newDate, req.Time)
	if err != nil {
		h.handleError(c, err, "RescheduleTicket")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ticket updated successfully",
		"ticket":  updated.ToResponse(),
	})
}

func (h *BookingHandler) CancelTicket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid ticket id"})
		return
	}

	if err := h.ticketService.Cancel(c, id); err != nil {
		h.handleError(c, err, "CancelTicket")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ticket cancelled Successfully"})
}

func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var query AvailabilityQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	travelDate, err := model.ParseTravelDate(query.Date)
	if err != nil {
		h.handleError(c, err, "CheckAvailability")
		return
	}

	status, err := h.bookingService.CheckAvailability(c, query.TrainNumber, query.SeatNumber, travelDate)
	if err != nil {
		h.handleError(c, err, "CheckAvailability")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"train_number": query.TrainNumber,
		"seat_number":  query.SeatNumber,
		"date":         query.Date,
		"status":       status,
	})
}

func (h *BookingHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrSeatAlreadyReserved):
		log.Warn("Seat already reserved")
		c.JSON(http.StatusBadRequest, gin.H{"error": "The seat is already reserved."})
	case errors.Is(err, apperrors.ErrInvalidSeatFormat):
		log.Warn("Invalid seat number format")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid seat number: expected a row A-S and a column 1-25, like 'A 1'"})
	case errors.Is(err, apperrors.ErrInvalidTimeFormat):
		log.Warn("Invalid time format")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid time: expected 24-hour HH:MM"})
	case errors.Is(err, apperrors.ErrInvalidDate):
		log.Warn("Invalid travel date")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid date: must be a calendar date not in the past"})
	case errors.Is(err, apperrors.ErrTicketNotFound):
		log.Warn("Ticket not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
