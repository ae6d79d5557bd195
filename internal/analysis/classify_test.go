package analysis_test

import (
	"testing"

	"github.com/egz13/logprobe/internal/analysis"
	"github.com/egz13/logprobe/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	testCases := []struct {
		name         string
		rec          *domain.ExceptionRecord
		level        domain.Level
		wantDefect   domain.DefectType
		wantSeverity domain.Severity
	}{
		{
			name:         "null pointer",
			rec:          &domain.ExceptionRecord{Type: "java.lang.NullPointerException"},
			level:        domain.LevelError,
			wantDefect:   domain.DefectNullReference,
			wantSeverity: domain.SeverityHigh,
		},
		{
			name:         "out of memory is critical",
			rec:          &domain.ExceptionRecord{Type: "java.lang.OutOfMemoryError"},
			level:        domain.LevelError,
			wantDefect:   domain.DefectResourceExhaustion,
			wantSeverity: domain.SeverityCritical,
		},
		{
			name: "classification uses the innermost cause",
			rec: &domain.ExceptionRecord{
				Type: "org.springframework.dao.DataAccessException",
				Cause: &domain.ExceptionRecord{
					Type: "java.lang.NullPointerException",
				},
			},
			level:        domain.LevelError,
			wantDefect:   domain.DefectNullReference,
			wantSeverity: domain.SeverityHigh,
		},
		{
			name:         "suffix match on vendor subclass",
			rec:          &domain.ExceptionRecord{Type: "org.postgresql.util.PSQLException"},
			level:        domain.LevelError,
			wantDefect:   domain.DefectDataAccess,
			wantSeverity: domain.SeverityHigh,
		},
		{
			name:         "suffix must sit at a dot",
			rec:          &domain.ExceptionRecord{Type: "com.example.NotANullPointerException"},
			level:        domain.LevelError,
			wantDefect:   domain.DefectUnknown,
			wantSeverity: domain.SeverityHigh,
		},
		{
			name:         "serialization is medium",
			rec:          &domain.ExceptionRecord{Type: "com.fasterxml.jackson.core.JsonParseException"},
			level:        domain.LevelError,
			wantDefect:   domain.DefectSerialization,
			wantSeverity: domain.SeverityMedium,
		},
		{
			name:         "message fallback on timeout wording",
			rec:          &domain.ExceptionRecord{Type: "com.example.custom.GatewayException", Message: "upstream call timed out after 5s"},
			level:        domain.LevelError,
			wantDefect:   domain.DefectTimeout,
			wantSeverity: domain.SeverityMedium,
		},
		{
			name:         "message fallback is case insensitive",
			rec:          &domain.ExceptionRecord{Type: "com.example.custom.AccessException", Message: "Permission Denied for /etc/app"},
			level:        domain.LevelError,
			wantDefect:   domain.DefectConfiguration,
			wantSeverity: domain.SeverityMedium,
		},
		{
			name:         "unknown from error level",
			rec:          &domain.ExceptionRecord{Type: "com.example.custom.WeirdException", Message: "no rule matches this"},
			level:        domain.LevelError,
			wantDefect:   domain.DefectUnknown,
			wantSeverity: domain.SeverityHigh,
		},
		{
			name:         "unknown from warn level",
			rec:          &domain.ExceptionRecord{Type: "com.example.custom.WeirdException"},
			level:        domain.LevelWarn,
			wantDefect:   domain.DefectUnknown,
			wantSeverity: domain.SeverityMedium,
		},
	}

	c := analysis.NewClassifier()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			defect, severity := c.Classify(tc.rec, tc.level)
			assert.Equal(t, tc.wantDefect, defect)
			assert.Equal(t, tc.wantSeverity, severity)
		})
	}
}

func TestClassifier_Deterministic(t *testing.T) {
	c := analysis.NewClassifier()
	rec := &domain.ExceptionRecord{Type: "java.util.ConcurrentModificationException"}

	d1, s1 := c.Classify(rec, domain.LevelError)
	for i := 0; i < 10; i++ {
		d2, s2 := c.Classify(rec, domain.LevelError)
		assert.Equal(t, d1, d2)
		assert.Equal(t, s1, s2)
	}
}
