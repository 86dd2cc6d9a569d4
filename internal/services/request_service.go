package services

import (
	"context"

	"github.com/baharkarakas/sitecraft-backend/internal/logger"
	"github.com/baharkarakas/sitecraft-backend/internal/metrics"
	"github.com/baharkarakas/sitecraft-backend/internal/models"
	"github.com/baharkarakas/sitecraft-backend/internal/schema"
)

// RequestService validates the payloads handed to the generation backend.
type RequestService struct{}

func NewRequestService() *RequestService { return &RequestService{} }

func (s *RequestService) WebsiteGenerator(ctx context.Context, input any) (models.WebsiteGeneratorInput, error) {
	in, err := schema.ParseWebsiteGenerator(input)
	metrics.ObserveValidation(schema.WebsiteGenerator.Name(), err)
	if err != nil {
		logger.From(ctx).Debug("website generator request rejected", "err", err)
		return models.WebsiteGeneratorInput{}, err
	}
	return in, nil
}

func (s *RequestService) CodeAssistance(ctx context.Context, input any) (models.CodeAssistanceInput, error) {
	in, err := schema.ParseCodeAssistance(input)
	metrics.ObserveValidation(schema.CodeAssistance.Name(), err)
	if err != nil {
		logger.From(ctx).Debug("code assistance request rejected", "err", err)
		return models.CodeAssistanceInput{}, err
	}
	return in, nil
}
