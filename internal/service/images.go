package service

import (
	"context"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"seoaudit/internal/fetch"
	"seoaudit/internal/log"
	"seoaudit/internal/model"
)

// largeImageThreshold is the content-length in bytes above which an image is
// reported as large.
const largeImageThreshold = 100000

type imageJob struct {
	src      string
	probeURL string
}

// analyzeImages enumerates every img element. The missing-alt check needs no
// network; size and format come from HEAD probes, and a failed probe only
// excludes that image from the size/format tallies.
func (a *Analyzer) analyzeImages(ctx context.Context, doc *goquery.Document, t target) model.ImageAnalysis {
	report := model.ImageAnalysis{
		ImagesWithoutAlt: []string{},
		LargeImages:      []model.LargeImage{},
		ImageFormats:     map[string]int{},
	}

	imgs := doc.Find("img")
	report.TotalImages = imgs.Length()

	var jobs []imageJob
	imgs.Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if src == "" {
			return
		}
		if alt, ok := s.Attr("alt"); !ok || alt == "" {
			report.ImagesWithoutAlt = append(report.ImagesWithoutAlt, src)
		}
		jobs = append(jobs, imageJob{src: src, probeURL: resolveImageURL(t.url, src)})
	})

	for i, res := range a.probeImages(ctx, jobs) {
		if res == nil {
			continue
		}
		if res.ContentLength > largeImageThreshold {
			report.LargeImages = append(report.LargeImages, model.LargeImage{
				Src:  jobs[i].src,
				Size: res.ContentLength,
			})
		}
		report.ImageFormats[imageFormat(res.ContentType)]++
	}

	return report
}

// probeImages runs the HEAD probes through a bounded worker pool with
// results paired to jobs by index. A nil entry means the probe failed.
func (a *Analyzer) probeImages(ctx context.Context, jobs []imageJob) []*fetch.HeadResult {
	results := make([]*fetch.HeadResult, len(jobs))
	if len(jobs) == 0 {
		return results
	}

	indexes := make(chan int, len(jobs))

	numWorkers := a.imageWorkers
	if len(jobs) < numWorkers {
		numWorkers = len(jobs)
	}

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				select {
				case <-ctx.Done():
					return
				default:
					results[idx] = a.probeImage(ctx, jobs[idx].probeURL)
				}
			}
		}()
	}

	for i := range jobs {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return results
}

func (a *Analyzer) probeImage(ctx context.Context, url string) *fetch.HeadResult {
	if a.probeCache != nil {
		if res, found := a.probeCache.Get(url); found {
			return res
		}
	}

	res, err := a.prober.Head(ctx, url)
	if err != nil {
		log.Logger.Debug("image probe failed",
			zap.String("url", url),
			zap.Error(err),
		)
		return nil
	}

	if a.probeCache != nil {
		a.probeCache.Set(url, res)
	}
	return res
}

// resolveImageURL passes absolute sources through and joins relative ones
// onto the page URL with a plain path separator. This mirrors the advertised
// behavior; it is not full base-URL resolution.
func resolveImageURL(pageURL, src string) string {
	if strings.HasPrefix(src, "http") {
		return src
	}
	return pageURL + "/" + src
}

// imageFormat derives the format tally key from a content type, e.g.
// "image/png" becomes "png". An absent content type tallies under "".
func imageFormat(contentType string) string {
	parts := strings.Split(contentType, "/")
	return parts[len(parts)-1]
}
