package service

import (
	"context"

	"github.com/egz13/logprobe/internal/broker"
	"github.com/egz13/logprobe/internal/domain"
	"github.com/egz13/logprobe/internal/metrics"
	"github.com/egz13/logprobe/internal/repo"
	"github.com/egz13/logprobe/internal/resolver"
)

type Analyzer interface {
	AnalyzeLogs(ctx context.Context, params AnalyzeParams) (AnalyzeReport, error)
	SearchLogs(ctx context.Context, params SearchParams) (SearchReport, error)
	LogConfig(ctx context.Context) (ConfigReport, error)
	SuggestFix(ctx context.Context, input DefectInput) (domain.FixSuggestion, error)
}

type Services struct {
	Analyzer
}

// Limits bound the per-call analysis work.
type Limits struct {
	MaxBlockLines       int
	MaxCauseDepth       int
	ContextLines        int
	MaxDefects          int
	MaxMatches          int
	SearchMaxLines      int
	KeepThrowSite       bool
	CaseSensitiveSearch bool
}

type ServicesDependencies struct {
	Repos          *repo.Repositories
	Resolver       *resolver.Resolver
	Counters       *metrics.Counters
	BrokerProducer broker.Producer
	Limits         Limits
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Analyzer: NewAnalyzerService(deps.Repos.Snapshot, deps.Resolver, deps.Counters, deps.BrokerProducer, deps.Limits),
	}
}
