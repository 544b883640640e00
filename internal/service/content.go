package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"seoaudit/internal/log"
	"seoaudit/internal/model"
	"seoaudit/internal/textutil"
	"seoaudit/internal/util/htmlutil"
)

// analyzeContent builds the content sub-report from the already-fetched
// document. Only the external-link probes touch the network; each probe
// failure marks its own link broken and nothing else.
func (a *Analyzer) analyzeContent(ctx context.Context, root *html.Node, rawHTML []byte, t target) model.ContentAnalysis {
	corpus := htmlutil.VisibleText(root)
	words := strings.Fields(corpus)

	internal, external := classifyLinks(extractLinks(root), t.domain)
	broken := a.probeLinks(ctx, external)

	ratio := 0.0
	if len(rawHTML) > 0 {
		ratio = float64(len(corpus)) / float64(len(rawHTML))
	}

	return model.ContentAnalysis{
		WordCount:        len(words),
		KeywordDensity:   textutil.KeywordDensity(corpus),
		ReadabilityScore: textutil.Readability(corpus),
		TextHTMLRatio:    ratio,
		HeadingStructure: extractHeadings(root),
		InternalLinks:    internal,
		ExternalLinks:    external,
		BrokenLinks:      broken,
	}
}

// extractHeadings collects heading text per level h1..h6 in document order.
// Every level is present in the result, empty or not.
func extractHeadings(root *html.Node) map[string][]string {
	headings := make(map[string][]string, 6)
	for i := 1; i <= 6; i++ {
		headings[fmt.Sprintf("h%d", i)] = []string{}
	}

	var visitNode func(*html.Node)
	visitNode = func(node *html.Node) {
		if node.Type == html.ElementNode {
			switch node.Data {
			case "h1", "h2", "h3", "h4", "h5", "h6":
				headings[node.Data] = append(headings[node.Data], strings.TrimSpace(htmlutil.InnerText(node)))
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			visitNode(child)
		}
	}
	visitNode(root)

	return headings
}

// extractLinks returns every non-empty href in document order.
func extractLinks(root *html.Node) []string {
	var links []string

	var visitNode func(*html.Node)
	visitNode = func(node *html.Node) {
		if htmlutil.IsElement(node, "a") {
			if href := htmlutil.Attr(node, "href"); href != "" {
				links = append(links, href)
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			visitNode(child)
		}
	}
	visitNode(root)

	return links
}

// classifyLinks splits hrefs into internal and external. A link is internal
// iff it contains the target domain as a substring; everything else,
// relative paths and anchors included, is external and gets probed.
func classifyLinks(links []string, domain string) (internal, external []string) {
	internal = []string{}
	external = []string{}
	for _, link := range links {
		if strings.Contains(link, domain) {
			internal = append(internal, link)
		} else {
			external = append(external, link)
		}
	}
	return internal, external
}

// probeLinks HEAD-checks every external link through a bounded worker pool.
// Results are paired to links by index, so completion order never changes
// which link is reported broken.
func (a *Analyzer) probeLinks(ctx context.Context, links []string) []string {
	broken := []string{}
	if len(links) == 0 {
		return broken
	}

	results := make([]bool, len(links))
	jobs := make(chan int, len(links))

	numWorkers := a.linkWorkers
	if len(links) < numWorkers {
		numWorkers = len(links)
	}

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
					results[idx] = a.linkBroken(ctx, links[idx])
				}
			}
		}()
	}

	for i := range links {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, isBroken := range results {
		if isBroken {
			broken = append(broken, links[i])
		}
	}
	return broken
}

func (a *Analyzer) linkBroken(ctx context.Context, link string) bool {
	res, err := a.prober.Head(ctx, link)
	if err != nil {
		log.Logger.Debug("link probe failed",
			zap.String("link", link),
			zap.Error(err),
		)
		return true
	}
	return res.StatusCode >= 400
}
