package fetch

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	UserAgent = "gameflow-cli/1.0 (github.com/mhowell/gameflow)"
	Timeout   = 30 * time.Second
)

// Document is a fetched page: its parsed tree plus the URL it came from.
// Immutable once fetched.
type Document struct {
	URL string
	Doc *goquery.Document
}

// Fetcher retrieves and parses HTML documents
type Fetcher struct {
	client *http.Client
}

// New creates a Fetcher with the default timeout
func New() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: Timeout,
		},
	}
}

// Fetch retrieves the given URL and parses the response body. A transport
// error or non-200 status fails the fetch; there is no retry.
func (f *Fetcher) Fetch(url string) (*Document, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status code: %d", url, resp.StatusCode)
	}

	return Parse(resp.Body, url)
}

// Parse builds a Document from raw markup. Split out from Fetch so tests can
// parse fixtures without a network.
func Parse(r io.Reader, url string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML from %s: %w", url, err)
	}

	return &Document{
		URL: url,
		Doc: doc,
	}, nil
}
