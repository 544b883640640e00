package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"seoaudit/internal/model"
)

const (
	noIssuesPlaceholder = "No critical issues found"
	noRecsPlaceholder   = "No major improvements needed"
)

func glyph(bad bool) string {
	if bad {
		return "🔴"
	}
	return "🟢"
}

// RenderReport produces the human-readable Markdown summary embedded in the
// report. Section structure and field formatting are part of the external
// contract.
func RenderReport(url string, score int, content model.ContentAnalysis, technical model.TechnicalAnalysis, meta model.MetaAnalysis, images model.ImageAnalysis, timestamp time.Time) string {
	issues := CriticalIssues(content, technical, images)
	issuesText := noIssuesPlaceholder
	if len(issues) > 0 {
		issuesText = strings.Join(issues, "\n")
	}

	recs := Recommendations(content, technical, images)
	recsText := noRecsPlaceholder
	if len(recs) > 0 {
		recsText = strings.Join(recs, "\n\n")
	}

	mobileText := "🔴 No"
	if technical.MobileFriendly {
		mobileText = "🟢 Yes"
	}

	sslText := "🟢 Valid"
	if technical.SSLInfo.Failed() {
		sslText = "🔴 Invalid"
	}

	domainAge := "unknown"
	if technical.DomainAge != nil {
		domainAge = strconv.Itoa(*technical.DomainAge)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# SEO Analysis Report for %s\n", url)
	fmt.Fprintf(&b, "Generated: %s\n", timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Overall Score: %d/100\n\n", score)

	fmt.Fprintf(&b, "## Critical Issues\n%s\n\n", issuesText)

	b.WriteString("## Technical Analysis\n")
	fmt.Fprintf(&b, "- Load Time: %.2fs %s\n", technical.LoadTime, glyph(technical.LoadTime > slowLoadSeconds))
	fmt.Fprintf(&b, "- Mobile Friendly: %s\n", mobileText)
	fmt.Fprintf(&b, "- SSL: %s\n", sslText)
	fmt.Fprintf(&b, "- Domain Age: %s days\n\n", domainAge)

	b.WriteString("## Content Analysis\n")
	fmt.Fprintf(&b, "- Words: %d %s\n", content.WordCount, glyph(content.WordCount <= minWordCount))
	fmt.Fprintf(&b, "- Reading Score: %.1f\n", content.ReadabilityScore)
	fmt.Fprintf(&b, "- Internal Links: %d\n", len(content.InternalLinks))
	fmt.Fprintf(&b, "- External Links: %d\n", len(content.ExternalLinks))
	fmt.Fprintf(&b, "- Broken Links: %d\n\n", len(content.BrokenLinks))

	b.WriteString("## Meta Tags\n")
	fmt.Fprintf(&b, "- Title (%d/60): %s\n", meta.TitleLength, meta.Title)
	fmt.Fprintf(&b, "- Description (%d/160): %s\n", meta.MetaDescriptionLength, meta.MetaDescription)
	fmt.Fprintf(&b, "- OG Tags: %d\n", len(meta.OGTags))
	fmt.Fprintf(&b, "- Twitter Cards: %d\n\n", len(meta.TwitterTags))

	b.WriteString("## Images\n")
	fmt.Fprintf(&b, "- Total: %d\n", images.TotalImages)
	fmt.Fprintf(&b, "- Missing Alt: %d\n", len(images.ImagesWithoutAlt))
	fmt.Fprintf(&b, "- Large Images: %d\n\n", len(images.LargeImages))

	fmt.Fprintf(&b, "## Recommendations\n%s", recsText)

	return b.String()
}
