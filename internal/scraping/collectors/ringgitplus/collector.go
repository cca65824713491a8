// internal/scraping/collectors/ringgitplus/collector.go
package ringgitplus

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"

	"github.com/Elwinc2799/credit-card-crawler/internal/domain"
	"github.com/Elwinc2799/credit-card-crawler/internal/scraping/extract"
)

// StatusError reports a page that answered with anything but 200 OK.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request URL %s failed with status %d", e.URL, e.Code)
}

type Options struct {
	BaseURL        string
	ListingPath    string
	UserAgent      string
	RequestTimeout time.Duration
}

// RinggitPlusCollector fetches ringgitplus.com pages one at a time.
type RinggitPlusCollector struct {
	collector  *colly.Collector
	baseURL    *url.URL
	listingURL string
}

func NewRinggitPlusCollector(opts Options) (*RinggitPlusCollector, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", opts.BaseURL, err)
	}
	listing, err := base.Parse(opts.ListingPath)
	if err != nil {
		return nil, fmt.Errorf("invalid listing path %q: %w", opts.ListingPath, err)
	}

	// The listing may name the same card twice; every visit must go out.
	// A truncated listing would silently lose the cards at its end, so the
	// body is never capped.
	c := colly.NewCollector(
		colly.AllowURLRevisit(),
		colly.MaxBodySize(0),
	)
	if opts.UserAgent != "" {
		c.UserAgent = opts.UserAgent
	}
	// zero means no client timeout
	c.SetRequestTimeout(opts.RequestTimeout)

	return &RinggitPlusCollector{
		collector:  c,
		baseURL:    base,
		listingURL: listing.String(),
	}, nil
}

// BaseURL is the origin detail links are resolved against.
func (p *RinggitPlusCollector) BaseURL() *url.URL {
	return p.baseURL
}

// ListingURL is the absolute url of the cashback card listing.
func (p *RinggitPlusCollector) ListingURL() string {
	return p.listingURL
}

// FetchDocument GETs link and parses the body. Anything but a 200 response
// is returned as a *StatusError.
func (p *RinggitPlusCollector) FetchDocument(ctx context.Context, link string) (*goquery.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		body   []byte
		status int
		err    error
	)

	c := p.collector.Clone()
	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = r.Body
	})
	c.OnError(func(r *colly.Response, e error) {
		if r != nil && r.StatusCode != 0 {
			status = r.StatusCode
			return
		}
		err = fmt.Errorf("request URL %s failed: %w", link, e)
	})

	zap.L().Debug("fetching page", zap.String("url", link))
	if visitErr := c.Visit(link); visitErr != nil && err == nil && status == 0 {
		err = fmt.Errorf("request URL %s failed: %w", link, visitErr)
	}
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &StatusError{URL: link, Code: status}
	}

	return goquery.NewDocumentFromReader(bytes.NewReader(body))
}

// ScrapeMainPage fetches the listing and returns its cards in page order.
func (p *RinggitPlusCollector) ScrapeMainPage(ctx context.Context) ([]domain.CardSummary, error) {
	doc, err := p.FetchDocument(ctx, p.listingURL)
	if err != nil {
		return nil, err
	}
	return extract.ExtractCardIndex(doc, p.baseURL)
}

// ScrapeCardDetails fetches a card page once and runs every detail
// extractor over the same document.
func (p *RinggitPlusCollector) ScrapeCardDetails(ctx context.Context, link string) (domain.CardDetail, error) {
	doc, err := p.FetchDocument(ctx, link)
	if err != nil {
		return domain.CardDetail{}, err
	}

	detail, err := extract.ExtractDetail(doc)
	if err != nil {
		return domain.CardDetail{}, fmt.Errorf("error extracting %s: %w", link, err)
	}
	return detail, nil
}
