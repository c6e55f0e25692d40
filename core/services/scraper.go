// ABOUTME: Page scraper service producing ScrapedDocuments for the fusion engine
// ABOUTME: Uses go-readability for main text and colly for image metadata extraction

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"brochure-app-api/core/domain"
	coreerrors "brochure-app-api/core/errors"
	"brochure-app-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"
	readability "github.com/go-shiori/go-readability"
)

const (
	scraperUserAgent = "Mozilla/5.0 (compatible; BrochureBot/1.0)"
	scrapeTimeout    = 30 * time.Second
	scrapeCacheTTL   = 24 * time.Hour
	maxImageContext  = 300
	maxImagesPerPage = 50
	scraperMaxBody   = 10 * 1024 * 1024
)

// ScraperService fetches web pages and reduces them to the text and image
// metadata the fusion engine consumes.
type ScraperService struct {
	deps interfaces.Dependencies
}

// NewScraperService creates a new scraper service.
func NewScraperService(deps interfaces.Dependencies) *ScraperService {
	return &ScraperService{deps: deps}
}

// FetchDocument implements interfaces.DocumentFetcher.
func (s *ScraperService) FetchDocument(ctx context.Context, pageURL string) (*domain.ScrapedDocument, error) {
	if pageURL == "" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "cannot be empty"}
	}

	cacheKey := fmt.Sprintf("scrape:%s", pageURL)
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var doc domain.ScrapedDocument
			if err := json.Unmarshal(data, &doc); err == nil {
				return &doc, nil
			}
		}
	}

	article, err := readability.FromURL(pageURL, scrapeTimeout)
	if err != nil {
		return nil, coreerrors.WrapError(err, fmt.Sprintf("failed to extract content from %s", pageURL))
	}

	doc := &domain.ScrapedDocument{
		URL:      pageURL,
		Title:    article.Title,
		MainText: article.TextContent,
		Images:   s.collectImages(pageURL),
	}

	if s.deps.Cache != nil {
		if data, err := json.Marshal(doc); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, scrapeCacheTTL)
		}
	}

	return doc, nil
}

// collectImages scrapes the page's img tags for metadata. Readability
// strips most images from the article body, so this is a separate pass.
func (s *ScraperService) collectImages(pageURL string) []domain.ImageRecord {
	c := colly.NewCollector(
		colly.UserAgent(scraperUserAgent),
		colly.MaxBodySize(scraperMaxBody),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(scrapeTimeout)

	var images []domain.ImageRecord
	seen := make(map[string]bool)

	c.OnHTML("img", func(e *colly.HTMLElement) {
		if len(images) >= maxImagesPerPage {
			return
		}

		src := e.Attr("src")
		if src == "" {
			src = e.Attr("data-src")
		}
		if src == "" {
			return
		}

		absURL := e.Request.AbsoluteURL(src)
		if absURL == "" || seen[absURL] {
			return
		}
		seen[absURL] = true

		width, _ := strconv.Atoi(e.Attr("width"))
		height, _ := strconv.Atoi(e.Attr("height"))

		images = append(images, domain.ImageRecord{
			URL:     absURL,
			Alt:     strings.TrimSpace(e.Attr("alt")),
			Title:   strings.TrimSpace(e.Attr("title")),
			Width:   width,
			Height:  height,
			Quality: estimateQuality(width, height),
			Context: surroundingText(e.DOM),
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		s.deps.Logger.Debug("Image scrape pass failed", map[string]interface{}{
			"url":    pageURL,
			"error":  err.Error(),
			"status": r.StatusCode,
		})
	})

	_ = c.Visit(pageURL)

	return images
}

// surroundingText grabs the text around an image as classifier context.
// An explicit figure caption beats generic parent text.
func surroundingText(sel *goquery.Selection) string {
	if caption := sel.Closest("figure").Find("figcaption").First(); caption.Length() > 0 {
		if text := strings.TrimSpace(caption.Text()); text != "" {
			return clipContext(text)
		}
	}

	text := strings.TrimSpace(sel.Parent().Text())
	if text == "" {
		text = strings.TrimSpace(sel.Parent().Parent().Text())
	}
	return clipContext(text)
}

func clipContext(text string) string {
	if len(text) > maxImageContext {
		return text[:maxImageContext]
	}
	return text
}

// estimateQuality derives a baseline quality in [0,1] from the declared
// dimensions. The classifier's relevance score can only raise it.
func estimateQuality(width, height int) float64 {
	if width <= 0 || height <= 0 {
		return 0.5
	}
	switch {
	case width >= 1600 && height >= 900:
		return 0.9
	case width >= 1200 && height >= 600:
		return 0.8
	case width >= 800 && height >= 400:
		return 0.6
	case width >= 400:
		return 0.4
	default:
		return 0.2
	}
}
