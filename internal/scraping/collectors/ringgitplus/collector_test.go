package ringgitplus_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Elwinc2799/credit-card-crawler/internal/domain"
	"github.com/Elwinc2799/credit-card-crawler/internal/scraping/collectors/ringgitplus"
	"github.com/Elwinc2799/credit-card-crawler/internal/scraping/extract"
)

const listing = `<html><body><section class="Sidebar"><ul class="Products CRCD">
<li><h3><a href="/en/credit-card/one.html">Card One</a></h3><dl><dt>Cashback</dt><dd>5%</dd></dl></li>
</ul></section></body></html>`

const detail = `<html><body>
<section class="Summary"><dl><dt>Min. Income</dt><dd><span>RM 2,000</span></dd><dt>Annual Fee</dt><dd>RM200</dd></dl></section>
<section class="Tile" id="cashback"><table>
<tr><th>Category</th><th>Rate</th><th>Cap</th><th>Spend</th></tr>
<tr><td>Dining</td><td><span>5%</span></td><td>RM50</td><td>RM500</td></tr>
</table></section>
</body></html>`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/en/credit-card/cashback/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, listing)
	})
	mux.HandleFunc("/en/credit-card/one.html", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, detail)
	})
	mux.HandleFunc("/en/credit-card/gone.html", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newCollector(t *testing.T, baseURL string) *ringgitplus.RinggitPlusCollector {
	t.Helper()
	c, err := ringgitplus.NewRinggitPlusCollector(ringgitplus.Options{
		BaseURL:     baseURL,
		ListingPath: "/en/credit-card/cashback/",
		UserAgent:   "credit-card-crawler-test",
	})
	require.NoError(t, err)
	return c
}

func TestScrapeMainPage(t *testing.T) {
	server := newServer(t)
	c := newCollector(t, server.URL)

	cards, err := c.ScrapeMainPage(context.Background())
	require.NoError(t, err)
	require.Equal(t, []domain.CardSummary{{
		Name:             "Card One",
		HeadlineCashback: "5%",
		DetailLink:       server.URL + "/en/credit-card/one.html",
	}}, cards)
}

func TestScrapeMainPageStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newCollector(t, server.URL).ScrapeMainPage(context.Background())

	var statusErr *ringgitplus.StatusError
	require.True(t, errors.As(err, &statusErr), "got %v", err)
	require.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
}

func TestScrapeMainPageStructure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html><body><p>redesigned</p></body></html>")
	}))
	defer server.Close()

	_, err := newCollector(t, server.URL).ScrapeMainPage(context.Background())
	require.ErrorIs(t, err, extract.ErrStructureChanged)
}

func TestScrapeCardDetails(t *testing.T) {
	server := newServer(t)
	c := newCollector(t, server.URL)

	t.Run("extracts from a single fetch", func(t *testing.T) {
		got, err := c.ScrapeCardDetails(context.Background(), server.URL+"/en/credit-card/one.html")
		require.NoError(t, err)
		require.Equal(t, "RM 2,000", got.MinIncome)
		require.Equal(t, []domain.CashbackLineItem{
			{Category: "Dining", Rate: "5%", MonthlyCap: "RM50", Spend: "RM500"},
		}, got.Cashback)
		require.Nil(t, got.AnnualFeeTiers)
		require.Equal(t, "RM200", *got.AnnualFeeSummary)
	})

	t.Run("same page can be fetched again", func(t *testing.T) {
		_, err := c.ScrapeCardDetails(context.Background(), server.URL+"/en/credit-card/one.html")
		require.NoError(t, err)
	})

	t.Run("missing page is a status error", func(t *testing.T) {
		_, err := c.ScrapeCardDetails(context.Background(), server.URL+"/en/credit-card/gone.html")
		var statusErr *ringgitplus.StatusError
		require.ErrorAs(t, err, &statusErr)
		require.Equal(t, http.StatusNotFound, statusErr.Code)
	})

	t.Run("cancelled context is not fetched", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := c.ScrapeCardDetails(ctx, server.URL+"/en/credit-card/one.html")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewRinggitPlusCollector(t *testing.T) {
	c, err := ringgitplus.NewRinggitPlusCollector(ringgitplus.Options{
		BaseURL:     "https://ringgitplus.com",
		ListingPath: "/en/credit-card/cashback/",
	})
	require.NoError(t, err)
	require.Equal(t, "https://ringgitplus.com/en/credit-card/cashback/", c.ListingURL())
	require.Equal(t, "ringgitplus.com", c.BaseURL().Host)
}

func TestScrapeMainPageLargeListing(t *testing.T) {
	const cards = 40
	var b strings.Builder
	b.WriteString(`<html><body><section class="Sidebar">`)
	// pushes the product list past colly's default 10 MiB body cap
	b.WriteString(`<div class="Promo">`)
	b.WriteString(strings.Repeat("x", 11<<20))
	b.WriteString(`</div><ul class="Products CRCD">`)
	for i := 0; i < cards; i++ {
		fmt.Fprintf(&b, `<li><h3><a href="/en/credit-card/card-%d.html">Card %d</a></h3><dl><dt>Cashback</dt><dd>1%%</dd></dl></li>`, i, i)
	}
	b.WriteString(`</ul></section></body></html>`)
	page := b.String()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, page)
	}))
	defer server.Close()

	got, err := newCollector(t, server.URL).ScrapeMainPage(context.Background())
	require.NoError(t, err)
	require.Len(t, got, cards)
	require.Equal(t, fmt.Sprintf("Card %d", cards-1), got[cards-1].Name)
}

func TestRequestTimeout(t *testing.T) {
	slowServer := func(t *testing.T, delay time.Duration) *httptest.Server {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(delay)
			io.WriteString(w, listing)
		}))
		t.Cleanup(server.Close)
		return server
	}

	t.Run("configured timeout cuts a slow page", func(t *testing.T) {
		server := slowServer(t, 500*time.Millisecond)
		c, err := ringgitplus.NewRinggitPlusCollector(ringgitplus.Options{
			BaseURL:        server.URL,
			ListingPath:    "/en/credit-card/cashback/",
			RequestTimeout: 50 * time.Millisecond,
		})
		require.NoError(t, err)

		_, err = c.ScrapeMainPage(context.Background())
		require.Error(t, err)
		var statusErr *ringgitplus.StatusError
		require.False(t, errors.As(err, &statusErr), "timeout reported as %v", err)
	})

	t.Run("zero waits past the colly default", func(t *testing.T) {
		if testing.Short() {
			t.Skip("waits longer than ten seconds")
		}
		server := slowServer(t, 11*time.Second)

		cards, err := newCollector(t, server.URL).ScrapeMainPage(context.Background())
		require.NoError(t, err)
		require.Len(t, cards, 1)
	})
}
