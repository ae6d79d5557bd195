package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/egz13/logprobe/internal/analysis"
	"github.com/egz13/logprobe/internal/broker"
	"github.com/egz13/logprobe/internal/domain"
	"github.com/egz13/logprobe/internal/metrics"
	"github.com/egz13/logprobe/internal/repo"
	"github.com/egz13/logprobe/internal/repo/repoerrs"
	"github.com/egz13/logprobe/internal/resolver"
	errorsUtils "github.com/egz13/logprobe/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	defaultMaxDefects     = 50
	defaultMaxMatches     = 30
	defaultSearchMaxLines = 1000
	excerptMaxRunes       = 200
)

// AnalyzerService implements the callable operations of the engine. Every
// call resolves its own configuration, opens its own snapshot and builds its
// own entities, so concurrent calls share nothing mutable.
type AnalyzerService struct {
	snapshots repo.Snapshot
	resolver  *resolver.Resolver
	counters  *metrics.Counters
	producer  broker.Producer
	limits    Limits

	extractor  *analysis.Extractor
	classifier *analysis.Classifier
	suggester  *analysis.Suggester
	searcher   *analysis.Searcher
}

func NewAnalyzerService(s repo.Snapshot, r *resolver.Resolver, cnt *metrics.Counters, p broker.Producer, limits Limits) *AnalyzerService {
	if limits.MaxDefects <= 0 {
		limits.MaxDefects = defaultMaxDefects
	}
	if limits.MaxMatches <= 0 {
		limits.MaxMatches = defaultMaxMatches
	}
	if limits.SearchMaxLines <= 0 {
		limits.SearchMaxLines = defaultSearchMaxLines
	}

	return &AnalyzerService{
		snapshots:  s,
		resolver:   r,
		counters:   cnt,
		producer:   p,
		limits:     limits,
		extractor:  analysis.NewExtractor(limits.MaxBlockLines, limits.MaxCauseDepth),
		classifier: analysis.NewClassifier(),
		suggester:  analysis.NewSuggester(),
		searcher:   analysis.NewSearcher(limits.ContextLines, limits.CaseSensitiveSearch),
	}
}

func (s *AnalyzerService) AnalyzeLogs(ctx context.Context, params AnalyzeParams) (AnalyzeReport, error) {
	if params.MaxLines <= 0 {
		return AnalyzeReport{}, fmt.Errorf("%w: max_lines must be positive", ErrValidation)
	}
	if !params.Kind.Valid() {
		return AnalyzeReport{}, fmt.Errorf("%w: unknown log level %q", ErrValidation, params.Kind)
	}

	path, err := s.resolver.LogPath(params.Kind, params.LogPath)
	if err != nil {
		return AnalyzeReport{}, fmt.Errorf("%w: log path for level %q", ErrConfig, params.Kind)
	}
	appPackage, err := s.resolver.AppPackage()
	if err != nil {
		return AnalyzeReport{}, fmt.Errorf("%w: application package prefix", ErrConfig)
	}

	s.counters.AnalysesRun.Inc(string(params.Kind))

	lines, err := s.snapshots.ReadTail(ctx, path.Value, params.MaxLines)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return AnalyzeReport{}, fmt.Errorf("%w: %s", ErrNotFound, path.Value)
		}
		return AnalyzeReport{}, errorsUtils.WrapPathErr(err)
	}

	filter := analysis.NewFrameFilter(appPackage.Value, s.limits.KeepThrowSite)

	var defects []DefectReport
	for _, ext := range s.extractor.Extract(lines) {
		defectType, severity := s.classifier.Classify(ext.Record, ext.Entry.Level)
		root := ext.Record.Root()

		defects = append(defects, DefectReport{
			Type:          defectType,
			Severity:      severity,
			ExceptionType: root.Type,
			Message:       root.Message,
			StackFrames:   filter.Filter(root.Frames),
			SourceExcerpt: excerpt(root.Type, root.Message),
			LineNum:       ext.Entry.LineNum,
		})

		s.counters.DefectsFound.Inc(string(defectType), string(severity))
		if severity == domain.SeverityCritical {
			s.notify(ctx, path.Value, defectType, root)
		}
	}

	// Stable: equal severities keep scan order, so repeated calls over the
	// same snapshot return the same list.
	sort.SliceStable(defects, func(i, j int) bool {
		return defects[i].Severity.Rank() < defects[j].Severity.Rank()
	})

	report := AnalyzeReport{
		TotalDefects: len(defects),
		Defects:      defects,
		LogPath:      path.Value,
	}
	if len(defects) > s.limits.MaxDefects {
		report.Defects = defects[:s.limits.MaxDefects]
	}
	return report, nil
}

func (s *AnalyzerService) SearchLogs(ctx context.Context, params SearchParams) (SearchReport, error) {
	if params.Keyword == "" {
		return SearchReport{}, fmt.Errorf("%w: keyword must not be empty", ErrValidation)
	}
	if params.Kind == "" {
		params.Kind = resolver.KindAll
	}
	if !params.Kind.Valid() {
		return SearchReport{}, fmt.Errorf("%w: unknown log level %q", ErrValidation, params.Kind)
	}
	if params.MaxResults <= 0 {
		params.MaxResults = s.limits.MaxMatches
	}

	path, err := s.resolver.LogPath(params.Kind, params.LogPath)
	if err != nil {
		return SearchReport{}, fmt.Errorf("%w: log path for level %q", ErrConfig, params.Kind)
	}

	s.counters.SearchesRun.Inc(string(params.Kind))

	lines, err := s.snapshots.ReadTail(ctx, path.Value, s.limits.SearchMaxLines)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return SearchReport{}, fmt.Errorf("%w: %s", ErrNotFound, path.Value)
		}
		return SearchReport{}, errorsUtils.WrapPathErr(err)
	}

	result := s.searcher.Search(lines, params.Keyword, params.MaxResults)

	return SearchReport{
		TotalMatches: result.Total,
		Matches:      result.Matches,
		LogPath:      path.Value,
	}, nil
}

func (s *AnalyzerService) LogConfig(ctx context.Context) (ConfigReport, error) {
	appName, err := s.resolver.AppName()
	if err != nil {
		return ConfigReport{}, fmt.Errorf("%w: application name", ErrConfig)
	}
	appPackage, err := s.resolver.AppPackage()
	if err != nil {
		return ConfigReport{}, fmt.Errorf("%w: application package prefix", ErrConfig)
	}

	report := ConfigReport{
		AppName:    ResolvedField{Value: appName.Value, Source: appName.Source},
		AppPackage: ResolvedField{Value: appPackage.Value, Source: appPackage.Source},
	}

	for _, target := range []struct {
		kind  resolver.Kind
		field *ResolvedField
	}{
		{resolver.KindError, &report.ErrorPath},
		{resolver.KindWarn, &report.WarnPath},
		{resolver.KindAll, &report.AllPath},
	} {
		path, err := s.resolver.LogPath(target.kind, "")
		if err != nil {
			return ConfigReport{}, fmt.Errorf("%w: log path for level %q", ErrConfig, target.kind)
		}
		*target.field = ResolvedField{Value: path.Value, Source: path.Source}
	}

	return report, nil
}

func (s *AnalyzerService) SuggestFix(ctx context.Context, input DefectInput) (domain.FixSuggestion, error) {
	if input.Type == "" && input.ExceptionType == "" {
		return domain.FixSuggestion{}, fmt.Errorf("%w: defect type or exception type required", ErrValidation)
	}

	appPackage, err := s.resolver.AppPackage()
	if err != nil {
		return domain.FixSuggestion{}, fmt.Errorf("%w: application package prefix", ErrConfig)
	}

	defectType := input.Type
	if defectType == "" {
		level := input.Level
		if level == "" {
			level = domain.LevelError
		}
		rec := &domain.ExceptionRecord{Type: input.ExceptionType, Message: input.Message}
		defectType, _ = s.classifier.Classify(rec, level)
	}

	filter := analysis.NewFrameFilter(appPackage.Value, s.limits.KeepThrowSite)
	return s.suggester.Suggest(defectType, filter.Filter(input.Frames)), nil
}

// notify publishes a critical defect to the alert topic; analysis never fails
// because of the broker.
func (s *AnalyzerService) notify(ctx context.Context, path string, defectType domain.DefectType, root *domain.ExceptionRecord) {
	if s.producer == nil {
		return
	}

	payload, err := json.Marshal(map[string]string{
		"defect_type":    string(defectType),
		"exception_type": root.Type,
		"message":        root.Message,
		"log_path":       path,
	})
	if err != nil {
		return
	}

	if err := s.producer.SendMessage(ctx, payload); err != nil {
		log.WithField("defect_type", defectType).
			Warnf("failed to publish defect alert: %v", err)
	}
}

// excerpt rebuilds the signature line of the innermost cause, bounded to keep
// report payloads small.
func excerpt(exceptionType, message string) string {
	text := exceptionType
	if message != "" {
		text += ": " + message
	}
	runes := []rune(text)
	if len(runes) > excerptMaxRunes {
		return string(runes[:excerptMaxRunes]) + "..."
	}
	return text
}
