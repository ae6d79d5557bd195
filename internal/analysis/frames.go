package analysis

import (
	"strings"

	"github.com/egz13/logprobe/internal/domain"
)

// FrameFilter reduces a raw stack trace to frames owned by the application
// package, collapsing every run of dropped frames into a single omission
// marker. Relative frame order is always preserved.
type FrameFilter struct {
	prefix        string
	keepThrowSite bool
}

// NewFrameFilter builds a filter for the given dotted package prefix. With
// keepThrowSite set, the first frame of a raw trace is retained even when it
// falls outside the prefix.
func NewFrameFilter(prefix string, keepThrowSite bool) *FrameFilter {
	return &FrameFilter{prefix: prefix, keepThrowSite: keepThrowSite}
}

// Filter applies the ownership rule to a raw frame sequence.
func (f *FrameFilter) Filter(frames []domain.StackFrame) []domain.FilteredFrame {
	seq := make([]domain.FilteredFrame, 0, len(frames))
	for i := range frames {
		seq = append(seq, domain.FilteredFrame{Frame: &frames[i]})
	}
	return f.FilterSeq(seq)
}

// FilterSeq filters a sequence that may already contain omission markers.
// Markers pass through untouched and are never merged with newly dropped
// frames, which makes the operation idempotent.
func (f *FrameFilter) FilterSeq(seq []domain.FilteredFrame) []domain.FilteredFrame {
	out := make([]domain.FilteredFrame, 0, len(seq))
	omitted := 0

	flush := func() {
		if omitted > 0 {
			out = append(out, domain.FilteredFrame{Omitted: omitted})
			omitted = 0
		}
	}

	for i, el := range seq {
		if el.Frame == nil {
			flush()
			out = append(out, el)
			continue
		}

		keep := f.owns(el.Frame.DeclaringType)
		if f.keepThrowSite && i == 0 {
			keep = true
		}

		if keep {
			flush()
			out = append(out, el)
		} else {
			omitted++
		}
	}
	flush()

	return out
}

// owns reports whether the declaring type sits inside the application
// package. The match is anchored at a package boundary so that a prefix of
// "com.example.app" does not claim "com.example.appendix".
func (f *FrameFilter) owns(declaringType string) bool {
	if f.prefix == "" {
		return false
	}
	if !strings.HasPrefix(declaringType, f.prefix) {
		return false
	}
	return len(declaringType) == len(f.prefix) || declaringType[len(f.prefix)] == '.'
}

// FirstOwned returns the first kept frame of a filtered sequence, or nil when
// filtering removed every application frame.
func FirstOwned(seq []domain.FilteredFrame) *domain.StackFrame {
	for _, el := range seq {
		if el.Frame != nil {
			return el.Frame
		}
	}
	return nil
}
