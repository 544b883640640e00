package service

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
	"github.com/temoto/robotstxt"
	"go.uber.org/zap"

	"seoaudit/internal/log"
	"seoaudit/internal/model"
)

const sslErrorMessage = "SSL certificate issue detected"

var sitemapPaths = []string{"/sitemap.xml", "/sitemap_index.xml"}

// analyzeTechnical re-fetches the page to time it, then runs the TLS,
// robots.txt, sitemap, and WHOIS probes concurrently. Only the timing fetch
// is fatal; every probe substitutes its fallback value on failure.
func (a *Analyzer) analyzeTechnical(ctx context.Context, t target) (model.TechnicalAnalysis, error) {
	page, err := a.fetcher.Fetch(ctx, t.url)
	if err != nil {
		return model.TechnicalAnalysis{}, err
	}

	var (
		wg      sync.WaitGroup
		ssl     model.SSLInfo
		robots  model.RobotsInfo
		sitemap map[string]model.SitemapState
		age     *int
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		ssl = a.tlsProbe(ctx, t.host)
	}()
	go func() {
		defer wg.Done()
		robots = a.checkRobots(ctx, t)
	}()
	go func() {
		defer wg.Done()
		sitemap = a.checkSitemaps(ctx, t)
	}()
	go func() {
		defer wg.Done()
		age = a.domainAge(t.host)
	}()
	wg.Wait()

	return model.TechnicalAnalysis{
		LoadTime:       page.Elapsed.Seconds(),
		PageSize:       page.Size(),
		SSLInfo:        ssl,
		MobileFriendly: hasViewportTag(page.Body),
		RobotsTxt:      robots,
		SitemapStatus:  sitemap,
		DomainAge:      age,
		ServerInfo:     serverInfo(page.Header),
	}, nil
}

// tlsProber returns the default TLS handshake probe with a bounded dial.
func tlsProber(timeout time.Duration) func(ctx context.Context, host string) model.SSLInfo {
	return func(ctx context.Context, host string) model.SSLInfo {
		dialer := &tls.Dialer{
			NetDialer: &net.Dialer{Timeout: timeout},
			Config:    &tls.Config{ServerName: host},
		}

		conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, "443"))
		if err != nil {
			log.Logger.Warn("TLS probe failed",
				zap.String("host", host),
				zap.Error(err),
			)
			return model.SSLInfo{Error: sslErrorMessage}
		}
		defer conn.Close()

		state := conn.(*tls.Conn).ConnectionState()
		info := model.SSLInfo{Version: tlsVersionName(state.Version)}
		if len(state.PeerCertificates) > 0 {
			info.Expiry = state.PeerCertificates[0].NotAfter.UTC().Format("Jan _2 15:04:05 2006 GMT")
		}
		return info
	}
}

func tlsVersionName(version uint16) string {
	switch version {
	case tls.VersionTLS13:
		return "TLSv1.3"
	case tls.VersionTLS12:
		return "TLSv1.2"
	case tls.VersionTLS11:
		return "TLSv1.1"
	case tls.VersionTLS10:
		return "TLSv1.0"
	default:
		return "unknown"
	}
}

// checkRobots fetches and parses robots.txt. Any failure, transport or
// parse, degrades to exists=false.
func (a *Analyzer) checkRobots(ctx context.Context, t target) model.RobotsInfo {
	page, err := a.fetcher.Fetch(ctx, "https://"+t.domain+"/robots.txt")
	if err != nil || page.StatusCode != http.StatusOK {
		return model.RobotsInfo{Exists: false}
	}

	data, err := robotstxt.FromBytes(page.Body)
	if err != nil {
		log.Logger.Warn("failed to parse robots.txt",
			zap.String("domain", t.domain),
			zap.Error(err),
		)
		return model.RobotsInfo{Exists: false}
	}

	info := model.RobotsInfo{
		Exists:  true,
		Allowed: data.TestAgent("/", "*"),
	}
	if group := data.FindGroup("*"); group != nil && group.CrawlDelay > 0 {
		delay := group.CrawlDelay.Seconds()
		info.CrawlDelay = &delay
	}
	return info
}

// checkSitemaps probes the well-known sitemap paths independently; one
// path's failure never affects the other.
func (a *Analyzer) checkSitemaps(ctx context.Context, t target) map[string]model.SitemapState {
	status := make(map[string]model.SitemapState, len(sitemapPaths))

	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, path := range sitemapPaths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			state := a.checkSitemap(ctx, "https://"+t.domain+path)
			mu.Lock()
			status[path] = state
			mu.Unlock()
		}(path)
	}
	wg.Wait()

	return status
}

func (a *Analyzer) checkSitemap(ctx context.Context, url string) model.SitemapState {
	page, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		return model.SitemapErrorChecking
	}
	if page.StatusCode == http.StatusOK {
		return model.SitemapFound
	}
	return model.SitemapNotFound
}

// lookupDomainCreated resolves the registration creation date via WHOIS.
func lookupDomainCreated(domain string) (*time.Time, error) {
	raw, err := whois.Whois(domain)
	if err != nil {
		return nil, err
	}
	parsed, err := whoisparser.Parse(raw)
	if err != nil {
		return nil, err
	}
	if parsed.Domain == nil || parsed.Domain.CreatedDateInTime == nil {
		return nil, errors.New("creation date unavailable")
	}
	return parsed.Domain.CreatedDateInTime, nil
}

// domainAge converts the registration date into age in days; nil when the
// lookup fails or no creation date is published.
func (a *Analyzer) domainAge(domain string) *int {
	created, err := a.domainCreated(domain)
	if err != nil {
		log.Logger.Debug("WHOIS lookup failed",
			zap.String("domain", domain),
			zap.Error(err),
		)
		return nil
	}
	days := int(time.Since(*created).Hours() / 24)
	return &days
}

// hasViewportTag re-parses the fetched body and reports whether a viewport
// meta tag is present. A coarse heuristic, but it is the advertised one.
func hasViewportTag(body []byte) bool {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return false
	}
	return doc.Find("meta[name='viewport']").Length() > 0
}

func serverInfo(header http.Header) model.ServerInfo {
	info := model.ServerInfo{}
	if v := header.Get("Server"); v != "" {
		info.Server = &v
	}
	if v := header.Get("X-Powered-By"); v != "" {
		info.PoweredBy = &v
	}
	return info
}
