package main

import (
	"context"
	"log"

	"github.com/ChrisHanshia/Ticket-Booking-API/config"
	"github.com/ChrisHanshia/Ticket-Booking-API/internal/cache"
	"github.com/ChrisHanshia/Ticket-Booking-API/internal/database"
	"github.com/ChrisHanshia/Ticket-Booking-API/internal/handler"
	"github.com/ChrisHanshia/Ticket-Booking-API/internal/queue"
	"github.com/ChrisHanshia/Ticket-Booking-API/internal/repository"
	"github.com/ChrisHanshia/Ticket-Booking-API/internal/service"
	"github.com/ChrisHanshia/Ticket-Booking-API/internal/worker"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()
	ctx := context.Background()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	ticketRepo := repository.NewTicketRepository(pool)
	trainRepo := repository.NewTrainRepository(pool)
	eventRepo := repository.NewBookingEventRepository(pool)

	seatCache := cache.NewSeatAvailabilityCache(rdb)

	var eventQueue queue.BookingEventQueue
	if cfg.Server.QueueDriver == "memory" {
		eventQueue = queue.NewBookingEventQueue(1024)
	} else {
		eventQueue, err = queue.NewRedisStreamBookingEventQueue(rdb, "", nil)
		if err != nil {
			log.Fatalf("Failed to initialize booking event queue: %v", err)
		}
	}

	eventWorker := worker.NewBookingEventWorker(eventRepo, eventQueue)
	if err := eventWorker.Start(ctx); err != nil {
		log.Fatalf("Failed to start booking event worker: %v", err)
	}

	bookingService := service.NewBookingService(ticketRepo, seatCache, eventQueue)
	ticketService := service.NewTicketService(ticketRepo, seatCache, eventQueue)
	trainService := service.NewTrainService(trainRepo)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
	}))

	handler.NewBookingHandler(bookingService, ticketService).RegisterRoutes(router)
	handler.NewTrainHandler(trainService).RegisterRoutes(router)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
