package handler

import (
	"net/http"

	"github.com/ChrisHanshia/Ticket-Booking-API/internal/service"
	"github.com/ChrisHanshia/Ticket-Booking-API/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TrainHandler struct {
	service service.TrainService
}

func NewTrainHandler(service service.TrainService) *TrainHandler {
	return &TrainHandler{service: service}
}

func (h *TrainHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/train")
	{
		router.GET("/", h.List)
	}
}

func (h *TrainHandler) List(c *gin.Context) {
	trains, err := h.service.List(c)
	if err != nil {
		logger.WithComponent("handler").Error("list trains failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, trains)
}
