package model

import (
	"encoding/json"
	"time"
)

// SitemapState is the outcome of probing one well-known sitemap path.
type SitemapState string

const (
	SitemapFound         SitemapState = "Found"
	SitemapNotFound      SitemapState = "Not found"
	SitemapErrorChecking SitemapState = "Error checking"
)

// SSLInfo holds the result of the TLS handshake probe. Exactly one of the
// two shapes is ever populated: {version, expiry} on success, {error} on
// any handshake, connect, or certificate failure.
type SSLInfo struct {
	Version string
	Expiry  string
	Error   string
}

func (s SSLInfo) Failed() bool {
	return s.Error != ""
}

func (s SSLInfo) MarshalJSON() ([]byte, error) {
	if s.Failed() {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{Error: s.Error})
	}
	return json.Marshal(struct {
		Version string `json:"version"`
		Expiry  string `json:"expiry"`
	}{Version: s.Version, Expiry: s.Expiry})
}

func (s *SSLInfo) UnmarshalJSON(data []byte) error {
	var raw struct {
		Version string `json:"version"`
		Expiry  string `json:"expiry"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = SSLInfo{Version: raw.Version, Expiry: raw.Expiry, Error: raw.Error}
	return nil
}

// RobotsInfo describes the robots.txt probe. Allowed and CrawlDelay are
// meaningful only when Exists is true and are omitted from JSON otherwise.
type RobotsInfo struct {
	Exists     bool
	Allowed    bool
	CrawlDelay *float64
}

func (r RobotsInfo) MarshalJSON() ([]byte, error) {
	if !r.Exists {
		return json.Marshal(struct {
			Exists bool `json:"exists"`
		}{Exists: false})
	}
	return json.Marshal(struct {
		Exists     bool     `json:"exists"`
		Allowed    bool     `json:"allowed"`
		CrawlDelay *float64 `json:"crawl_delay"`
	}{Exists: true, Allowed: r.Allowed, CrawlDelay: r.CrawlDelay})
}

func (r *RobotsInfo) UnmarshalJSON(data []byte) error {
	var raw struct {
		Exists     bool     `json:"exists"`
		Allowed    bool     `json:"allowed"`
		CrawlDelay *float64 `json:"crawl_delay"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = RobotsInfo{Exists: raw.Exists, Allowed: raw.Allowed, CrawlDelay: raw.CrawlDelay}
	return nil
}

// ServerInfo carries server identification headers, both optional.
type ServerInfo struct {
	Server    *string `json:"server"`
	PoweredBy *string `json:"powered_by"`
}

// ContentAnalysis is the content sub-report. BrokenLinks is always a subset
// of ExternalLinks; internal links are never probed.
type ContentAnalysis struct {
	WordCount        int                 `json:"word_count"`
	KeywordDensity   map[string]float64  `json:"keyword_density"`
	ReadabilityScore float64             `json:"readability_score"`
	TextHTMLRatio    float64             `json:"text_html_ratio"`
	HeadingStructure map[string][]string `json:"heading_structure"`
	InternalLinks    []string            `json:"internal_links"`
	ExternalLinks    []string            `json:"external_links"`
	BrokenLinks      []string            `json:"broken_links"`
}

type TechnicalAnalysis struct {
	LoadTime       float64                 `json:"load_time"`
	PageSize       int                     `json:"page_size"`
	SSLInfo        SSLInfo                 `json:"ssl_info"`
	MobileFriendly bool                    `json:"mobile_friendly"`
	RobotsTxt      RobotsInfo              `json:"robots_txt"`
	SitemapStatus  map[string]SitemapState `json:"sitemap_status"`
	DomainAge      *int                    `json:"domain_age"`
	ServerInfo     ServerInfo              `json:"server_info"`
}

type MetaAnalysis struct {
	Title                 string            `json:"title"`
	TitleLength           int               `json:"title_length"`
	MetaDescription       string            `json:"meta_description"`
	MetaDescriptionLength int               `json:"meta_description_length"`
	MetaKeywords          []string          `json:"meta_keywords"`
	CanonicalURL          *string           `json:"canonical_url"`
	OGTags                map[string]string `json:"og_tags"`
	TwitterTags           map[string]string `json:"twitter_tags"`
}

// LargeImage records one image whose content-length exceeded the large-image
// threshold.
type LargeImage struct {
	Src  string `json:"src"`
	Size int64  `json:"size"`
}

type ImageAnalysis struct {
	TotalImages      int            `json:"total_images"`
	ImagesWithoutAlt []string       `json:"images_without_alt"`
	LargeImages      []LargeImage   `json:"large_images"`
	ImageFormats     map[string]int `json:"image_formats"`
}

// SEOReport is the aggregate result of one analysis request. It is assembled
// exactly once per request and never mutated afterwards.
type SEOReport struct {
	URL        string            `json:"url"`
	Content    ContentAnalysis   `json:"content"`
	Technical  TechnicalAnalysis `json:"technical"`
	Meta       MetaAnalysis      `json:"meta"`
	Images     ImageAnalysis     `json:"images"`
	Timestamp  time.Time         `json:"timestamp"`
	ReportText string            `json:"report_text"`
	Score      int               `json:"score"`
}
