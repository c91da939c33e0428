package service

import (
	"context"

	"github.com/ChrisHanshia/Ticket-Booking-API/internal/model"
	"github.com/ChrisHanshia/Ticket-Booking-API/internal/repository"
)

type TrainService interface {
	List(ctx context.Context) ([]*model.Train, error)
}

type TrainServiceImpl struct {
	repo repository.TrainRepository
}

func NewTrainService(repo repository.TrainRepository) TrainService {
	return &TrainServiceImpl{repo: repo}
}

func (s *TrainServiceImpl) List(ctx context.Context) ([]*model.Train, error) {
	return s.repo.List(ctx)
}
