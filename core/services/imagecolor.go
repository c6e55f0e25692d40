// ABOUTME: Image color metrics service computing colorfulness and prominence
// ABOUTME: Uses K-means clustering over downloaded pixels, degrading to neutral defaults

package services

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"brochure-app-api/core/interfaces"

	"github.com/EdlinOrg/prominentcolor"
	_ "golang.org/x/image/webp" // WebP support
)

const (
	colorHTTPTimeout   = 10 * time.Second
	colorUserAgent     = "Mozilla/5.0 (compatible; BrochureBot/1.0)"
	colorCacheTTL      = 24 * time.Hour
	colorBatchWorkers  = 5
	neutralColorMetric = 0.5

	// maxCentroidDistance is the RGB-space distance between black and white,
	// the normalizer for the colorfulness spread.
	maxCentroidDistance = 441.673
)

// ColorMetricsService extracts colorfulness and prominence statistics from
// image pixels for the thumbnail composite score.
type ColorMetricsService struct {
	deps       interfaces.Dependencies
	httpClient *http.Client
}

// NewColorMetricsService creates a new color metrics service.
func NewColorMetricsService(deps interfaces.Dependencies) *ColorMetricsService {
	return &ColorMetricsService{
		deps: deps,
		httpClient: &http.Client{
			Timeout: colorHTTPTimeout,
		},
	}
}

// ExtractMetrics implements interfaces.ImageColorService. Extraction
// failures degrade to neutral metrics so a broken image never blocks
// thumbnail selection.
func (s *ColorMetricsService) ExtractMetrics(ctx context.Context, imageURL string) (*interfaces.ColorMetrics, error) {
	if imageURL == "" {
		return s.defaultMetrics(), nil
	}

	cacheKey := fmt.Sprintf("colormetrics:%s", imageURL)
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var metrics interfaces.ColorMetrics
			if _, err := fmt.Sscanf(string(data), "%f,%f", &metrics.Colorfulness, &metrics.Prominence); err == nil {
				return &metrics, nil
			}
		}
	}

	metrics, err := s.extractFromURL(ctx, imageURL)
	if err != nil {
		s.deps.Logger.Debug("Failed to extract color metrics", map[string]interface{}{
			"url":   imageURL,
			"error": err.Error(),
		})
		metrics = s.defaultMetrics()
	}

	if s.deps.Cache != nil {
		cacheData := fmt.Sprintf("%.4f,%.4f", metrics.Colorfulness, metrics.Prominence)
		_ = s.deps.Cache.Set(ctx, cacheKey, []byte(cacheData), colorCacheTTL)
	}

	return metrics, nil
}

// extractFromURL downloads the image and clusters its colors.
func (s *ColorMetricsService) extractFromURL(ctx context.Context, imageURL string) (metrics *interfaces.ColorMetrics, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			s.deps.Logger.Debug("Recovered from panic in color extraction", map[string]interface{}{
				"url":   imageURL,
				"panic": fmt.Sprintf("%v", rec),
			})
			metrics = s.defaultMetrics()
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	parsedURL, parseErr := url.Parse(imageURL)
	if parseErr != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid image URL: %s", imageURL)
	}

	// SVGs can't be decoded as raster images.
	if strings.HasSuffix(strings.ToLower(parsedURL.Path), ".svg") {
		return nil, fmt.Errorf("SVG images are not supported")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", colorUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has empty bounds")
	}

	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	colors, err := prominentcolor.KmeansWithAll(
		prominentcolor.ArgumentDefault,
		imgNRGBA,
		prominentcolor.DefaultK,
		1,
		prominentcolor.GetDefaultMasks(),
	)
	if err != nil || len(colors) == 0 {
		// Masks can reject the whole image; retry on raw pixels.
		colors, err = prominentcolor.KmeansWithAll(
			prominentcolor.ArgumentDefault,
			imgNRGBA,
			prominentcolor.DefaultK,
			1,
			nil,
		)
		if err != nil || len(colors) == 0 {
			return nil, fmt.Errorf("no colors extracted from image")
		}
	}

	return &interfaces.ColorMetrics{
		Colorfulness: colorfulness(colors),
		Prominence:   prominence(colors),
	}, nil
}

// colorfulness measures the spread of the cluster centroids in RGB space,
// normalized to [0,1]. Monochrome images cluster tightly and score low.
func colorfulness(colors []prominentcolor.ColorItem) float64 {
	if len(colors) < 2 {
		return 0
	}

	var total float64
	var pairs int
	for i := 0; i < len(colors); i++ {
		for j := i + 1; j < len(colors); j++ {
			total += centroidDistance(colors[i], colors[j])
			pairs++
		}
	}

	spread := total / float64(pairs) / maxCentroidDistance
	if spread > 1 {
		spread = 1
	}
	return spread
}

// prominence is the pixel share of the dominant cluster.
func prominence(colors []prominentcolor.ColorItem) float64 {
	var totalCnt int
	for _, c := range colors {
		totalCnt += c.Cnt
	}
	if totalCnt == 0 {
		return 0
	}
	return float64(colors[0].Cnt) / float64(totalCnt)
}

func centroidDistance(a, b prominentcolor.ColorItem) float64 {
	dr := float64(a.Color.R) - float64(b.Color.R)
	dg := float64(a.Color.G) - float64(b.Color.G)
	db := float64(a.Color.B) - float64(b.Color.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// defaultMetrics is the neutral stand-in when extraction fails.
func (s *ColorMetricsService) defaultMetrics() *interfaces.ColorMetrics {
	return &interfaces.ColorMetrics{
		Colorfulness: neutralColorMetric,
		Prominence:   neutralColorMetric,
	}
}

// ExtractMetricsBatch implements interfaces.ImageColorService for multiple
// URLs with bounded concurrency. URLs whose extraction errored out are
// absent from the result so they get recomputed next time.
func (s *ColorMetricsService) ExtractMetricsBatch(ctx context.Context, imageURLs []string) map[string]*interfaces.ColorMetrics {
	results := make(map[string]*interfaces.ColorMetrics)
	var mu sync.Mutex
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, colorBatchWorkers)

	for _, u := range imageURLs {
		wg.Add(1)
		go func(imageURL string) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()

				metrics, err := s.ExtractMetrics(ctx, imageURL)
				if err != nil {
					s.deps.Logger.Debug("Failed to extract color metrics in batch", map[string]interface{}{
						"url":   imageURL,
						"error": err.Error(),
					})
					return
				}

				mu.Lock()
				results[imageURL] = metrics
				mu.Unlock()

			case <-ctx.Done():
				return
			}
		}(u)
	}

	wg.Wait()
	return results
}
