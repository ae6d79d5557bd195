package httpv1_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	v1 "github.com/egz13/logprobe/internal/controller/http/v1"
	"github.com/egz13/logprobe/internal/domain"
	"github.com/egz13/logprobe/internal/metrics"
	service_mock "github.com/egz13/logprobe/internal/mocks/service"
	"github.com/egz13/logprobe/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T) (*echo.Echo, *service_mock.MockAnalyzer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAnalyzer := service_mock.NewMockAnalyzer(ctrl)
	handler := echo.New()
	v1.RegisterRoutes(handler, &service.Services{Analyzer: mockAnalyzer}, metrics.NewTestCounters())
	return handler, mockAnalyzer
}

func TestAnalyzerController_AnalyzeLogs(t *testing.T) {
	type mockBehavior func(a *service_mock.MockAnalyzer)

	testCases := []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		wantStatus   int
		wantBody     []string
	}{
		{
			name: "success",
			body: `{"log_level":"error","max_lines":500}`,
			mockBehavior: func(a *service_mock.MockAnalyzer) {
				a.EXPECT().
					AnalyzeLogs(gomock.Any(), gomock.Any()).
					Return(service.AnalyzeReport{
						TotalDefects: 1,
						Defects: []service.DefectReport{{
							Type:          domain.DefectNullReference,
							Severity:      domain.SeverityHigh,
							ExceptionType: "java.lang.NullPointerException",
						}},
						LogPath: "/logs/log_error.log",
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"total_defects":1`, `"defect_type":"NullReference"`},
		},
		{
			name:         "invalid log level",
			body:         `{"log_level":"fatal","max_lines":500}`,
			mockBehavior: func(a *service_mock.MockAnalyzer) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "non positive max_lines",
			body:         `{"log_level":"error","max_lines":0}`,
			mockBehavior: func(a *service_mock.MockAnalyzer) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "missing log file",
			body: `{"log_level":"error","max_lines":10}`,
			mockBehavior: func(a *service_mock.MockAnalyzer) {
				a.EXPECT().
					AnalyzeLogs(gomock.Any(), gomock.Any()).
					Return(service.AnalyzeReport{}, service.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "unresolved configuration",
			body: `{"log_level":"error","max_lines":10}`,
			mockBehavior: func(a *service_mock.MockAnalyzer) {
				a.EXPECT().
					AnalyzeLogs(gomock.Any(), gomock.Any()).
					Return(service.AnalyzeReport{}, service.ErrConfig)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, mockAnalyzer := newTestServer(t)
			tc.mockBehavior(mockAnalyzer)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/logs/analyze", strings.NewReader(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			for _, fragment := range tc.wantBody {
				assert.Contains(t, rec.Body.String(), fragment)
			}
		})
	}
}

func TestAnalyzerController_SearchLogs(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, mockAnalyzer := newTestServer(t)
		mockAnalyzer.EXPECT().
			SearchLogs(gomock.Any(), service.SearchParams{Keyword: "payment", MaxResults: 5}).
			Return(service.SearchReport{
				TotalMatches: 2,
				Matches:      []domain.SearchMatch{{Line: "payment declined", LineNum: 4}},
				LogPath:      "/logs/all.log",
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/logs/search?keyword=payment&max_results=5", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_matches":2`)
	})

	t.Run("missing keyword", func(t *testing.T) {
		handler, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/logs/search", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad max_results", func(t *testing.T) {
		handler, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/logs/search?keyword=payment&max_results=abc", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAnalyzerController_LogConfig(t *testing.T) {
	handler, mockAnalyzer := newTestServer(t)
	mockAnalyzer.EXPECT().
		LogConfig(gomock.Any()).
		Return(service.ConfigReport{
			AppName:    service.ResolvedField{Value: "billing-service", Source: "environment"},
			AppPackage: service.ResolvedField{Value: "com.example.billing", Source: "config"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/config", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"value":"billing-service"`)
	assert.Contains(t, rec.Body.String(), `"source":"environment"`)
}

func TestAnalyzerController_SuggestFix(t *testing.T) {
	handler, mockAnalyzer := newTestServer(t)
	mockAnalyzer.EXPECT().
		SuggestFix(gomock.Any(), gomock.Any()).
		Return(domain.FixSuggestion{
			LikelyCause:  "a null value was dereferenced",
			SuggestedFix: "Add a null check before the failing call.",
			Confidence:   domain.ConfidenceLow,
		}, nil)

	body := `{"exception_type":"java.lang.NullPointerException"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/defects/fix", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"confidence":"LOW"`)
	assert.NotContains(t, rec.Body.String(), "code_location")
}
