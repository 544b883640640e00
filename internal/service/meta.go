package service

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"seoaudit/internal/model"
)

// analyzeMeta is pure extraction over the parsed document; it performs no
// network calls and cannot fail once the document parsed.
func analyzeMeta(doc *goquery.Document) model.MetaAnalysis {
	meta := model.MetaAnalysis{
		MetaKeywords: []string{},
		OGTags:       map[string]string{},
		TwitterTags:  map[string]string{},
	}

	meta.Title = doc.Find("title").First().Text()
	meta.TitleLength = utf8.RuneCountInString(meta.Title)

	if desc, ok := doc.Find("meta[name='description']").Attr("content"); ok {
		meta.MetaDescription = desc
	}
	meta.MetaDescriptionLength = utf8.RuneCountInString(meta.MetaDescription)

	if keywords, ok := doc.Find("meta[name='keywords']").Attr("content"); ok {
		for _, keyword := range strings.Split(keywords, ",") {
			meta.MetaKeywords = append(meta.MetaKeywords, strings.TrimSpace(keyword))
		}
	}

	if canonical, ok := doc.Find("link[rel='canonical']").Attr("href"); ok {
		meta.CanonicalURL = &canonical
	}

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		if property, ok := s.Attr("property"); ok && strings.HasPrefix(property, "og:") {
			meta.OGTags[property], _ = s.Attr("content")
		}
		if name, ok := s.Attr("name"); ok && strings.HasPrefix(name, "twitter:") {
			meta.TwitterTags[name], _ = s.Attr("content")
		}
	})

	return meta
}
