package service

import (
	"seoaudit/internal/model"
)

const (
	slowLoadSeconds = 3.0
	minWordCount    = 300

	penaltySlowLoad    = 15
	penaltyNotMobile   = 10
	penaltySSLError    = 10
	penaltyThinContent = 10
	penaltyNoDesc      = 5
	penaltyBrokenLinks = 5
	penaltyMissingAlts = 5
)

// CalculateScore derives the 0-100 audit score from the four sub-reports.
// Each penalty applies independently; the result is floored at zero. The
// same sub-report values always yield the same score.
func CalculateScore(content model.ContentAnalysis, technical model.TechnicalAnalysis, meta model.MetaAnalysis, images model.ImageAnalysis) int {
	score := 100

	if technical.LoadTime > slowLoadSeconds {
		score -= penaltySlowLoad
	}
	if !technical.MobileFriendly {
		score -= penaltyNotMobile
	}
	if technical.SSLInfo.Failed() {
		score -= penaltySSLError
	}
	if content.WordCount < minWordCount {
		score -= penaltyThinContent
	}
	if meta.MetaDescription == "" {
		score -= penaltyNoDesc
	}
	if len(content.BrokenLinks) > 0 {
		score -= penaltyBrokenLinks
	}
	if len(images.ImagesWithoutAlt) > 0 {
		score -= penaltyMissingAlts
	}

	if score < 0 {
		score = 0
	}
	return score
}

// CriticalIssues lists the conditions serious enough to surface at the top
// of the report, in fixed order.
func CriticalIssues(content model.ContentAnalysis, technical model.TechnicalAnalysis, images model.ImageAnalysis) []string {
	var issues []string
	if technical.LoadTime > slowLoadSeconds {
		issues = append(issues, "- Slow page load (>3s)")
	}
	if !technical.MobileFriendly {
		issues = append(issues, "- Not mobile-friendly")
	}
	if len(content.BrokenLinks) > 0 {
		issues = append(issues, "- Broken links detected")
	}
	if len(images.ImagesWithoutAlt) > 0 {
		issues = append(issues, "- Images missing alt text")
	}
	return issues
}

// Recommendations returns the fixed improvement suggestions matching the
// report's rule set. Numbering is stable per rule, not per position.
func Recommendations(content model.ContentAnalysis, technical model.TechnicalAnalysis, images model.ImageAnalysis) []string {
	var recs []string
	if technical.LoadTime > slowLoadSeconds {
		recs = append(recs, "1. Optimize page speed:\n   - Compress images\n   - Minimize CSS/JS\n   - Enable caching")
	}
	if !technical.MobileFriendly {
		recs = append(recs, "2. Implement responsive design")
	}
	if content.WordCount < minWordCount {
		recs = append(recs, "3. Add more quality content")
	}
	if len(images.ImagesWithoutAlt) > 0 {
		recs = append(recs, "4. Add alt text to images")
	}
	return recs
}
