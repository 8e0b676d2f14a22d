package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"getcooked/internal/domain"
	"getcooked/internal/ports/output"

	"github.com/sirupsen/logrus"
)

const defaultModelTimeout = 60 * time.Second

// RoastStage names a step of the roast pipeline, used for logging
type RoastStage string

const (
	StageIdle           RoastStage = "Idle"
	StageAggregating    RoastStage = "Aggregating"
	StageVibeClassified RoastStage = "VibeClassified"
	StagePrompted       RoastStage = "Prompted"
	StageModelInvoked   RoastStage = "ModelInvoked"
	StageParsed         RoastStage = "Parsed"
	StageFallback       RoastStage = "Fallback"
	StageDone           RoastStage = "Done"
)

// RoastService struct - Application service implementing the roast use case
type RoastService struct {
	aggregator   *ProfileAggregator
	generator    output.TextGenerator
	roastCount   int
	modelTimeout time.Duration
}

// NewRoastService func - Creates new roast service
func NewRoastService(aggregator *ProfileAggregator, generator output.TextGenerator, roastCount int, modelTimeout time.Duration) *RoastService {
	if roastCount <= 0 {
		roastCount = domain.DefaultRoastCount
	}
	if modelTimeout <= 0 {
		modelTimeout = defaultModelTimeout
	}
	return &RoastService{
		aggregator:   aggregator,
		generator:    generator,
		roastCount:   roastCount,
		modelTimeout: modelTimeout,
	}
}

// Roast func - Use case: aggregate, classify, prompt, invoke the model and extract roasts
func (s *RoastService) Roast(ctx context.Context, session domain.Session) (*domain.RoastResult, error) {
	log := logrus.WithField("pipeline", "roast")
	log.WithField("stage", StageIdle).Debug("Roast requested")

	if !session.IsAuthenticated() {
		return nil, domain.ErrUnauthenticated
	}

	log.WithField("stage", StageAggregating).Debug("Fetching Spotify data")
	summary, err := s.aggregator.FetchSummary(ctx, session.AccessToken)
	if err != nil {
		return nil, err
	}

	summary.VibeGuess = domain.ClassifyVibe(summary.TopArtists)
	log.WithFields(logrus.Fields{"stage": StageVibeClassified, "vibe": summary.VibeGuess}).Debug("Vibe classified")

	prompt, err := BuildPrompt(*summary, summary.VibeGuess, s.roastCount)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"stage": StagePrompted, "prompt_length": len(prompt)}).Debug("Prompt rendered")

	rawText, err := s.invokeModel(ctx, prompt)
	if err != nil {
		log.Errorf("Model invocation failed: %v", err)
		return nil, err
	}
	log.WithField("stage", StageModelInvoked).Debug("Model replied")

	roasts, parseErr := extractRoasts(rawText)
	if parseErr != nil {
		log.WithField("stage", StageFallback).Warnf("Falling back to raw model output: %v", parseErr)
	} else {
		log.WithFields(logrus.Fields{"stage": StageParsed, "roasts": len(roasts)}).Debug("Model output parsed")
		if len(roasts) != s.roastCount {
			log.Infof("Model returned %d roasts, asked for %d", len(roasts), s.roastCount)
		}
	}

	log.WithField("stage", StageDone).Debug("Roast complete")

	return &domain.RoastResult{
		Roasts:  roasts,
		Summary: *summary,
	}, nil
}

// invokeModel calls the generator once with its own deadline; there is no retry
func (s *RoastService) invokeModel(ctx context.Context, prompt string) (string, error) {
	modelCtx, cancel := context.WithTimeout(ctx, s.modelTimeout)
	defer cancel()

	rawText, err := s.generator.GenerateText(modelCtx, prompt)
	switch {
	case err == nil:
		return rawText, nil
	case errors.Is(err, domain.ErrModelTimeout), errors.Is(err, domain.ErrModelInvocation):
		return "", err
	case errors.Is(modelCtx.Err(), context.DeadlineExceeded):
		return "", fmt.Errorf("%w: %v", domain.ErrModelTimeout, err)
	default:
		return "", fmt.Errorf("%w: %v", domain.ErrModelInvocation, err)
	}
}
