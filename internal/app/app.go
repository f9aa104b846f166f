// Package app wires the openai clients, services and action boundary
// shared by the server and the terminal front-end.
package app

import (
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/socialposts/internal/action"
	"github.com/kahvecikaan/socialposts/internal/config"
	"github.com/kahvecikaan/socialposts/internal/domain"
	"github.com/kahvecikaan/socialposts/internal/events"
	"github.com/kahvecikaan/socialposts/internal/openai"
	"github.com/kahvecikaan/socialposts/internal/prompt"
	"github.com/kahvecikaan/socialposts/internal/service"
	"time"
)

type Options struct {
	Config       *config.Config
	APIKey       string
	BaseURL      string
	EventBus     *events.EventBus[any]
	Logger       hclog.Logger
	RetryBackoff time.Duration
}

type App struct {
	Actions  *action.Actions
	Posts    service.PostService
	EventBus *events.EventBus[any]
}

func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	eventBus := opts.EventBus
	if eventBus == nil {
		eventBus = events.NewEventBus[any]()
	}

	// Research gets its own client: web search is slower than generation
	generationClient := openai.NewClient(openai.Config{
		APIKey:     opts.APIKey,
		BaseURL:    opts.BaseURL,
		Timeout:    cfg.API.Timeout,
		MaxRetries: cfg.API.Retries,
		Backoff:    opts.RetryBackoff,
	}, logger.Named("openai"))

	researchClient := openai.NewClient(openai.Config{
		APIKey:     opts.APIKey,
		BaseURL:    opts.BaseURL,
		Timeout:    cfg.Research.Timeout,
		MaxRetries: cfg.Research.Retries,
		Backoff:    opts.RetryBackoff,
	}, logger.Named("openai-research"))

	rs := service.NewResearchService(
		logger.Named("research-service"),
		researchClient,
		cfg.Research.Model,
		time.Now,
	)

	gs := service.NewGenerationService(
		logger.Named("generation-service"),
		generationClient,
		cfg,
	)

	ps := service.NewPostService(
		rs,
		prompt.NewBuilder(cfg),
		gs,
		eventBus,
		logger.Named("post-service"),
	)

	return &App{
		Actions:  action.New(ps, domain.NewValidation(), logger.Named("action")),
		Posts:    ps,
		EventBus: eventBus,
	}
}
