package httpv1

import (
	"github.com/egz13/logprobe/internal/domain"
	"github.com/egz13/logprobe/internal/resolver"
	"github.com/egz13/logprobe/internal/service"
)

type analyzeRequest struct {
	LogLevel string `json:"log_level"`
	MaxLines int    `json:"max_lines"`
	LogPath  string `json:"log_path,omitempty"`
}

type frameDTO struct {
	DeclaringType string `json:"declaring_type,omitempty"`
	Method        string `json:"method,omitempty"`
	SourceFile    string `json:"source_file,omitempty"`
	Line          int    `json:"line,omitempty"`
	Omitted       int    `json:"omitted,omitempty"`
}

type defectDTO struct {
	DefectType    string     `json:"defect_type"`
	Severity      string     `json:"severity"`
	ExceptionType string     `json:"exception_type"`
	Message       string     `json:"message"`
	StackFrames   []frameDTO `json:"stack_frames"`
	SourceExcerpt string     `json:"source_excerpt"`
	LineNumber    int        `json:"line_number"`
}

type analyzeResponse struct {
	TotalDefects int         `json:"total_defects"`
	Defects      []defectDTO `json:"defects"`
	LogPath      string      `json:"log_path"`
}

type matchDTO struct {
	Line          string   `json:"line"`
	LineNumber    int      `json:"line_number"`
	ContextBefore []string `json:"context_before"`
	ContextAfter  []string `json:"context_after"`
}

type searchResponse struct {
	TotalMatches int        `json:"total_matches"`
	Matches      []matchDTO `json:"matches"`
	LogPath      string     `json:"log_path"`
}

type resolvedFieldDTO struct {
	Value  string `json:"value"`
	Source string `json:"source"`
}

type configResponse struct {
	AppName    resolvedFieldDTO `json:"app_name"`
	AppPackage resolvedFieldDTO `json:"app_package"`
	ErrorPath  resolvedFieldDTO `json:"error_path"`
	WarnPath   resolvedFieldDTO `json:"warn_path"`
	AllPath    resolvedFieldDTO `json:"all_path"`
}

type fixRequest struct {
	DefectType    string     `json:"defect_type,omitempty"`
	ExceptionType string     `json:"exception_type,omitempty"`
	Message       string     `json:"message,omitempty"`
	LogLevel      string     `json:"log_level,omitempty"`
	StackFrames   []frameDTO `json:"stack_frames,omitempty"`
}

type fixResponse struct {
	LikelyCause  string    `json:"likely_cause"`
	CodeLocation *frameDTO `json:"code_location,omitempty"`
	SuggestedFix string    `json:"suggested_fix"`
	Confidence   string    `json:"confidence"`
}

func toAnalyzeParams(req analyzeRequest) service.AnalyzeParams {
	return service.AnalyzeParams{
		Kind:     resolver.Kind(req.LogLevel),
		MaxLines: req.MaxLines,
		LogPath:  req.LogPath,
	}
}

func toAnalyzeResponse(report service.AnalyzeReport) analyzeResponse {
	resp := analyzeResponse{
		TotalDefects: report.TotalDefects,
		Defects:      make([]defectDTO, 0, len(report.Defects)),
		LogPath:      report.LogPath,
	}
	for _, d := range report.Defects {
		resp.Defects = append(resp.Defects, defectDTO{
			DefectType:    string(d.Type),
			Severity:      string(d.Severity),
			ExceptionType: d.ExceptionType,
			Message:       d.Message,
			StackFrames:   toFrameDTOs(d.StackFrames),
			SourceExcerpt: d.SourceExcerpt,
			LineNumber:    d.LineNum,
		})
	}
	return resp
}

func toFrameDTOs(frames []domain.FilteredFrame) []frameDTO {
	out := make([]frameDTO, 0, len(frames))
	for _, f := range frames {
		if f.Frame == nil {
			out = append(out, frameDTO{Omitted: f.Omitted})
			continue
		}
		out = append(out, frameDTO{
			DeclaringType: f.Frame.DeclaringType,
			Method:        f.Frame.Method,
			SourceFile:    f.Frame.SourceFile,
			Line:          f.Frame.Line,
		})
	}
	return out
}

func toSearchResponse(report service.SearchReport) searchResponse {
	resp := searchResponse{
		TotalMatches: report.TotalMatches,
		Matches:      make([]matchDTO, 0, len(report.Matches)),
		LogPath:      report.LogPath,
	}
	for _, m := range report.Matches {
		resp.Matches = append(resp.Matches, matchDTO{
			Line:          m.Line,
			LineNumber:    m.LineNum,
			ContextBefore: m.ContextBefore,
			ContextAfter:  m.ContextAfter,
		})
	}
	return resp
}

func toConfigResponse(report service.ConfigReport) configResponse {
	field := func(f service.ResolvedField) resolvedFieldDTO {
		return resolvedFieldDTO{Value: f.Value, Source: string(f.Source)}
	}
	return configResponse{
		AppName:    field(report.AppName),
		AppPackage: field(report.AppPackage),
		ErrorPath:  field(report.ErrorPath),
		WarnPath:   field(report.WarnPath),
		AllPath:    field(report.AllPath),
	}
}

func toDefectInput(req fixRequest) service.DefectInput {
	input := service.DefectInput{
		Type:          domain.DefectType(req.DefectType),
		ExceptionType: req.ExceptionType,
		Message:       req.Message,
		Level:         domain.Level(req.LogLevel),
	}
	for _, f := range req.StackFrames {
		if f.Omitted > 0 {
			continue
		}
		input.Frames = append(input.Frames, domain.StackFrame{
			DeclaringType: f.DeclaringType,
			Method:        f.Method,
			SourceFile:    f.SourceFile,
			Line:          f.Line,
		})
	}
	return input
}

func toFixResponse(s domain.FixSuggestion) fixResponse {
	resp := fixResponse{
		LikelyCause:  s.LikelyCause,
		SuggestedFix: s.SuggestedFix,
		Confidence:   string(s.Confidence),
	}
	if s.CodeLocation != nil {
		resp.CodeLocation = &frameDTO{
			DeclaringType: s.CodeLocation.DeclaringType,
			Method:        s.CodeLocation.Method,
			SourceFile:    s.CodeLocation.SourceFile,
			Line:          s.CodeLocation.Line,
		}
	}
	return resp
}
