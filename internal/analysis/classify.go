package analysis

import (
	"strings"

	"github.com/egz13/logprobe/internal/domain"
)

type typeRule struct {
	suffix   string
	defect   domain.DefectType
	severity domain.Severity
}

type messageRule struct {
	substr   string
	defect   domain.DefectType
	severity domain.Severity
}

// typeRules maps exception type names to defect categories. Matching is exact
// or suffix-at-a-dot against the normalized type name; first hit wins.
var typeRules = []typeRule{
	{"NullPointerException", domain.DefectNullReference, domain.SeverityHigh},
	{"ArrayIndexOutOfBoundsException", domain.DefectBounds, domain.SeverityHigh},
	{"StringIndexOutOfBoundsException", domain.DefectBounds, domain.SeverityHigh},
	{"IndexOutOfBoundsException", domain.DefectBounds, domain.SeverityHigh},
	{"OutOfMemoryError", domain.DefectResourceExhaustion, domain.SeverityCritical},
	{"StackOverflowError", domain.DefectResourceExhaustion, domain.SeverityCritical},
	{"RejectedExecutionException", domain.DefectResourceExhaustion, domain.SeverityHigh},
	{"SQLException", domain.DefectDataAccess, domain.SeverityHigh},
	{"SQLSyntaxErrorException", domain.DefectDataAccess, domain.SeverityHigh},
	{"PSQLException", domain.DefectDataAccess, domain.SeverityHigh},
	{"JDBCConnectionException", domain.DefectDataAccess, domain.SeverityHigh},
	{"DataAccessException", domain.DefectDataAccess, domain.SeverityHigh},
	{"DataIntegrityViolationException", domain.DefectDataAccess, domain.SeverityHigh},
	{"DeadlockLoserDataAccessException", domain.DefectConcurrency, domain.SeverityHigh},
	{"JsonProcessingException", domain.DefectSerialization, domain.SeverityMedium},
	{"JsonMappingException", domain.DefectSerialization, domain.SeverityMedium},
	{"JsonParseException", domain.DefectSerialization, domain.SeverityMedium},
	{"InvalidFormatException", domain.DefectSerialization, domain.SeverityMedium},
	{"SerializationException", domain.DefectSerialization, domain.SeverityMedium},
	{"HttpMessageNotReadableException", domain.DefectSerialization, domain.SeverityMedium},
	{"ConcurrentModificationException", domain.DefectConcurrency, domain.SeverityHigh},
	{"IllegalMonitorStateException", domain.DefectConcurrency, domain.SeverityHigh},
	{"InterruptedException", domain.DefectConcurrency, domain.SeverityMedium},
	{"ClassNotFoundException", domain.DefectConfiguration, domain.SeverityHigh},
	{"NoClassDefFoundError", domain.DefectConfiguration, domain.SeverityHigh},
	{"NoSuchMethodError", domain.DefectConfiguration, domain.SeverityHigh},
	{"UnsatisfiedLinkError", domain.DefectConfiguration, domain.SeverityHigh},
	{"BeanCreationException", domain.DefectConfiguration, domain.SeverityHigh},
	{"BeanDefinitionStoreException", domain.DefectConfiguration, domain.SeverityHigh},
	{"MissingResourceException", domain.DefectConfiguration, domain.SeverityMedium},
	{"FileNotFoundException", domain.DefectConfiguration, domain.SeverityMedium},
	{"NoSuchFileException", domain.DefectConfiguration, domain.SeverityMedium},
	{"SocketTimeoutException", domain.DefectTimeout, domain.SeverityMedium},
	{"ConnectTimeoutException", domain.DefectTimeout, domain.SeverityMedium},
	{"ReadTimeoutException", domain.DefectTimeout, domain.SeverityMedium},
	{"TimeoutException", domain.DefectTimeout, domain.SeverityMedium},
	{"ConnectException", domain.DefectTimeout, domain.SeverityMedium},
}

// messageRules are the fallback for exception types no type rule knows,
// keyed on message substrings.
var messageRules = []messageRule{
	{"timed out", domain.DefectTimeout, domain.SeverityMedium},
	{"timeout", domain.DefectTimeout, domain.SeverityMedium},
	{"connection refused", domain.DefectTimeout, domain.SeverityMedium},
	{"connection reset", domain.DefectTimeout, domain.SeverityMedium},
	{"deadlock", domain.DefectConcurrency, domain.SeverityHigh},
	{"permission denied", domain.DefectConfiguration, domain.SeverityMedium},
	{"access denied", domain.DefectConfiguration, domain.SeverityMedium},
}

// Classifier maps an exception record to a defect category and severity.
// Classification is a pure function of (exception type, message, log level),
// so repeated calls over identical input always agree.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify inspects the innermost cause of the chain, which usually names the
// root defect. When no rule matches, the defect is Unknown and severity falls
// back to the originating log level.
func (c *Classifier) Classify(rec *domain.ExceptionRecord, level domain.Level) (domain.DefectType, domain.Severity) {
	root := rec.Root()
	name := strings.TrimSpace(root.Type)

	for _, r := range typeRules {
		if name == r.suffix || strings.HasSuffix(name, "."+r.suffix) {
			return r.defect, r.severity
		}
	}

	message := strings.ToLower(root.Message)
	for _, r := range messageRules {
		if strings.Contains(message, r.substr) {
			return r.defect, r.severity
		}
	}

	return domain.DefectUnknown, severityFromLevel(level)
}

func severityFromLevel(level domain.Level) domain.Severity {
	switch level {
	case domain.LevelError:
		return domain.SeverityHigh
	case domain.LevelWarn:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}
