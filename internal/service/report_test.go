package service

import (
	"strings"
	"testing"
	"time"
)

func TestRenderReportHealthy(t *testing.T) {
	content, technical, meta, images := healthyInputs()
	age := 3650
	technical.DomainAge = &age
	timestamp := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)

	text := RenderReport("https://example.com", 100, content, technical, meta, images, timestamp)

	for _, want := range []string{
		"# SEO Analysis Report for https://example.com",
		"Generated: 2026-08-25 10:30:00",
		"Overall Score: 100/100",
		"## Critical Issues\nNo critical issues found",
		"## Technical Analysis",
		"- Load Time: 1.20s 🟢",
		"- Mobile Friendly: 🟢 Yes",
		"- SSL: 🟢 Valid",
		"- Domain Age: 3650 days",
		"## Content Analysis",
		"- Words: 500 🟢",
		"## Meta Tags",
		"- Title (5/60): Hello",
		"- Description (14/160): A description.",
		"## Images",
		"- Total: 2",
		"## Recommendations\nNo major improvements needed",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q\n---\n%s", want, text)
		}
	}
}

func TestRenderReportUnhealthy(t *testing.T) {
	content, technical, meta, images := healthyInputs()
	technical.LoadTime = 4.5
	technical.MobileFriendly = false
	technical.SSLInfo.Error = "SSL certificate issue detected"
	technical.DomainAge = nil
	content.WordCount = 120
	content.BrokenLinks = []string{"https://other.com/b"}
	images.ImagesWithoutAlt = []string{"a.png"}
	timestamp := time.Now()

	text := RenderReport("https://example.com", 40, content, technical, meta, images, timestamp)

	for _, want := range []string{
		"- Slow page load (>3s)",
		"- Not mobile-friendly",
		"- Broken links detected",
		"- Images missing alt text",
		"- Load Time: 4.50s 🔴",
		"- Mobile Friendly: 🔴 No",
		"- SSL: 🔴 Invalid",
		"- Domain Age: unknown days",
		"- Words: 120 🔴",
		"- Broken Links: 1",
		"- Missing Alt: 1",
		"1. Optimize page speed:\n   - Compress images\n   - Minimize CSS/JS\n   - Enable caching",
		"2. Implement responsive design",
		"3. Add more quality content",
		"4. Add alt text to images",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q\n---\n%s", want, text)
		}
	}

	if strings.Contains(text, "No critical issues found") {
		t.Error("placeholder shown alongside real issues")
	}
	if strings.Contains(text, "No major improvements needed") {
		t.Error("placeholder shown alongside real recommendations")
	}

	// Recommendations are separated by a blank line.
	if !strings.Contains(text, "Enable caching\n\n2. Implement responsive design") {
		t.Error("recommendations not joined with a blank line")
	}
}

func TestRenderReportWordGlyphBoundary(t *testing.T) {
	content, technical, meta, images := healthyInputs()
	content.WordCount = 300
	text := RenderReport("https://example.com", 100, content, technical, meta, images, time.Now())
	// 300 words avoids the score penalty but still renders red; only a count
	// above 300 turns the glyph green.
	if !strings.Contains(text, "- Words: 300 🔴") {
		t.Error("expected red glyph at exactly 300 words")
	}

	content.WordCount = 301
	text = RenderReport("https://example.com", 100, content, technical, meta, images, time.Now())
	if !strings.Contains(text, "- Words: 301 🟢") {
		t.Error("expected green glyph above 300 words")
	}
}
