package planner

import (
	"sort"
	"strings"
)

// segmentKeywords is the fixed dictionary backing ICP-segment inference.
// A segment attaches to a post only when both the subreddit name and the
// company description contain a hit for the segment's keyword list.
var segmentKeywords = map[string][]string{
	"consulting":    {"consult", "freelance", "agency"},
	"design":        {"design", "creative", "figma"},
	"education":     {"education", "teacher", "student", "learning", "school"},
	"engineering":   {"engineer", "developer", "programming", "software", "code"},
	"finance":       {"finance", "accounting", "invest", "budget"},
	"marketing":     {"marketing", "growth", "seo", "advertis", "brand"},
	"presentations": {"powerpoint", "slides", "presentation", "keynote", "deck"},
	"productivity":  {"productivity", "workflow", "automation", "getdisciplined"},
	"sales":         {"sales", "selling", "crm", "outreach"},
}

// InferICPSegment returns the ideal-customer-profile segment label for a
// post, or empty when no segment matches both the subreddit name and the
// company description. Matching is lexical substring containment; semantic
// analysis is out of scope.
func InferICPSegment(subreddit, companyDescription string) string {
	sub := strings.ToLower(subreddit)
	desc := strings.ToLower(companyDescription)

	segments := make([]string, 0, len(segmentKeywords))
	for s := range segmentKeywords {
		segments = append(segments, s)
	}
	sort.Strings(segments)

	for _, segment := range segments {
		if containsAny(sub, segmentKeywords[segment]) && containsAny(desc, segmentKeywords[segment]) {
			return segment
		}
	}
	return ""
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
