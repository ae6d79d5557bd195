package analysis

import "github.com/egz13/logprobe/internal/domain"

type fixTemplate struct {
	likelyCause  string
	suggestedFix string
}

// fixTemplates hold pattern-level guidance per defect category. No source
// code is visible to this component, so the texts never propose a concrete
// line edit.
var fixTemplates = map[domain.DefectType]fixTemplate{
	domain.DefectNullReference: {
		likelyCause:  "a null value was dereferenced",
		suggestedFix: "Add a null check before the failing call, or model the optional value explicitly (Optional, default instance).",
	},
	domain.DefectBounds: {
		likelyCause:  "an index fell outside the bounds of an array or list",
		suggestedFix: "Validate the index against the collection size before the access, and check off-by-one arithmetic around it.",
	},
	domain.DefectResourceExhaustion: {
		likelyCause:  "heap, stack or executor capacity was exhausted",
		suggestedFix: "Raise the resource limit only after ruling out a leak: check unbounded collections, recursion depth and queue growth.",
	},
	domain.DefectDataAccess: {
		likelyCause:  "a database statement or connection failed",
		suggestedFix: "Check the SQL statement, schema expectations, connection settings and transaction boundaries around the failing call.",
	},
	domain.DefectSerialization: {
		likelyCause:  "a payload did not match the target type during (de)serialization",
		suggestedFix: "Compare the payload shape with the bound type; align field names, types and nullability, and verify mapping annotations.",
	},
	domain.DefectConcurrency: {
		likelyCause:  "shared state was mutated without proper synchronization",
		suggestedFix: "Guard the shared structure with a lock or use a concurrent variant; review lock acquisition order for the involved paths.",
	},
	domain.DefectConfiguration: {
		likelyCause:  "a required class, resource or configuration value was missing",
		suggestedFix: "Verify the classpath, resource paths and configuration values referenced by the failing component.",
	},
	domain.DefectTimeout: {
		likelyCause:  "a remote dependency was slow or unreachable",
		suggestedFix: "Confirm the dependency is reachable, then either address its latency or raise the client timeout deliberately.",
	},
	domain.DefectUnknown: {
		likelyCause:  "the exception type matched no known defect rule",
		suggestedFix: "Inspect the exception message and the retained stack frames to narrow the failure down before changing code.",
	},
}

// Suggester turns a classified defect into a fix suggestion bundle.
type Suggester struct{}

func NewSuggester() *Suggester {
	return &Suggester{}
}

// Suggest picks the template for the defect category and anchors it at the
// first application-owned frame of the filtered stack. Without any owned
// frame the suggestion cannot point anywhere, and confidence drops to LOW.
func (s *Suggester) Suggest(defectType domain.DefectType, filtered []domain.FilteredFrame) domain.FixSuggestion {
	tpl, ok := fixTemplates[defectType]
	if !ok {
		tpl = fixTemplates[domain.DefectUnknown]
	}

	location := FirstOwned(filtered)

	confidence := domain.ConfidenceHigh
	switch {
	case location == nil:
		confidence = domain.ConfidenceLow
	case defectType == domain.DefectUnknown:
		confidence = domain.ConfidenceMedium
	}

	return domain.FixSuggestion{
		LikelyCause:  tpl.likelyCause,
		CodeLocation: location,
		SuggestedFix: tpl.suggestedFix,
		Confidence:   confidence,
	}
}
