package service

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/idna"

	"seoaudit/internal/cache"
	"seoaudit/internal/config"
	"seoaudit/internal/fetch"
	"seoaudit/internal/model"
)

// Analyzer runs the full audit pipeline for one URL: a fatal bootstrap fetch
// feeding the content, meta, and image analyzers, and an independent
// technical analyzer with its own timed fetch and network probes. All probe
// dependencies are injected so the pipeline is testable without a network.
type Analyzer struct {
	fetcher       fetch.PageFetcher
	prober        fetch.HeadProber
	probeCache    *cache.ProbeCache
	tlsProbe      func(ctx context.Context, host string) model.SSLInfo
	domainCreated func(domain string) (*time.Time, error)
	linkWorkers   int
	imageWorkers  int
}

// NewAnalyzer wires an Analyzer with real network probes from config.
func NewAnalyzer(cfg *config.Config) *Analyzer {
	fetchTimeout := time.Duration(cfg.FetchTimeoutSec) * time.Second
	probeTimeout := time.Duration(cfg.ProbeTimeoutSec) * time.Second
	client := fetch.NewClient(fetchTimeout, probeTimeout, cfg.UserAgent)

	return &Analyzer{
		fetcher:       client,
		prober:        client,
		probeCache:    cache.New(time.Duration(cfg.ProbeCacheTTLMin) * time.Minute),
		tlsProbe:      tlsProber(probeTimeout),
		domainCreated: lookupDomainCreated,
		linkWorkers:   cfg.LinkWorkers,
		imageWorkers:  cfg.ImageWorkers,
	}
}

// target is the immutable analysis input, derived once at pipeline entry.
type target struct {
	url    string
	domain string // host[:port], used for link classification and well-known paths
	host   string // bare hostname, IDNA-normalized, used for TLS and WHOIS
}

func newTarget(rawURL string) (target, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return target{}, fmt.Errorf("parse URL: %w", err)
	}
	if u.Host == "" {
		return target{}, fmt.Errorf("URL %q has no host", rawURL)
	}

	host := u.Hostname()
	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		host = ascii
	}

	return target{
		url:    rawURL,
		domain: u.Host,
		host:   host,
	}, nil
}

// Analyze produces a complete SEOReport or a single error. Failure of either
// bootstrap fetch is fatal; every sub-probe inside the analyzers degrades to
// its fallback value instead.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string) (*model.SEOReport, error) {
	t, err := newTarget(rawURL)
	if err != nil {
		return nil, err
	}

	page, err := a.fetcher.Fetch(ctx, t.url)
	if err != nil {
		return nil, err
	}

	root, err := html.Parse(bytes.NewReader(page.Body))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	var (
		content   model.ContentAnalysis
		technical model.TechnicalAnalysis
		meta      model.MetaAnalysis
		images    model.ImageAnalysis
		techErr   error
	)

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		technical, techErr = a.analyzeTechnical(ctx, t)
	}()

	go func() {
		defer wg.Done()
		content = a.analyzeContent(ctx, root, page.Body, t)
	}()

	go func() {
		defer wg.Done()
		meta = analyzeMeta(doc)
	}()

	go func() {
		defer wg.Done()
		images = a.analyzeImages(ctx, doc, t)
	}()

	wg.Wait()

	if techErr != nil {
		return nil, techErr
	}
	// A cancelled request returns an error, never a partial report.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timestamp := time.Now()
	score := CalculateScore(content, technical, meta, images)

	return &model.SEOReport{
		URL:        t.url,
		Content:    content,
		Technical:  technical,
		Meta:       meta,
		Images:     images,
		Timestamp:  timestamp,
		Score:      score,
		ReportText: RenderReport(t.url, score, content, technical, meta, images, timestamp),
	}, nil
}
