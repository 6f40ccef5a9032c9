// Package isbn looks up book metadata by ISBN through the Google Books
// volumes API. The marketplace treats it purely as an optional pre-fill
// source for new listings: on any failure or empty result the caller
// falls back to manual field entry.
package isbn

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "net/http"
    "net/url"
    "strconv"
    "strings"
    "time"
)

// ErrNotFound is returned when the API reports no volume for the ISBN.
var ErrNotFound = errors.New("no book found with that ISBN")

const defaultBaseURL = "https://www.googleapis.com/books/v1"

// BookData is the pre-fill payload mapped from the first matching volume.
type BookData struct {
    Title       string `json:"title"`
    Author      string `json:"author"`
    CoverURL    string `json:"coverUrl"`
    Description string `json:"description,omitempty"`
    Genre       string `json:"genre,omitempty"`
    Year        int    `json:"year,omitempty"`
    ISBN        string `json:"isbn"`
}

// Client queries the volumes API with a bounded per-request timeout.
type Client struct {
    baseURL string
    http    *http.Client
}

// NewClient returns a lookup client. An empty baseURL selects the real
// Google Books endpoint; tests point it at a local server.
func NewClient(baseURL string, timeout time.Duration) *Client {
    if baseURL == "" {
        baseURL = defaultBaseURL
    }
    if timeout <= 0 {
        timeout = 10 * time.Second
    }
    return &Client{
        baseURL: strings.TrimRight(baseURL, "/"),
        http:    &http.Client{Timeout: timeout},
    }
}

// Clean strips hyphens and spaces from a raw ISBN string.
func Clean(raw string) string {
    return strings.Map(func(r rune) rune {
        if r == '-' || r == ' ' {
            return -1
        }
        return r
    }, raw)
}

// volumesResponse mirrors just the fields of the API response we read.
type volumesResponse struct {
    Items []struct {
        VolumeInfo struct {
            Title         string   `json:"title"`
            Authors       []string `json:"authors"`
            Description   string   `json:"description"`
            Categories    []string `json:"categories"`
            PublishedDate string   `json:"publishedDate"`
            ImageLinks    struct {
                Thumbnail string `json:"thumbnail"`
            } `json:"imageLinks"`
        } `json:"volumeInfo"`
    } `json:"items"`
}

// Lookup fetches at most one match for the given ISBN. The ISBN is
// cleaned before querying; the first returned volume wins.
func (c *Client) Lookup(ctx context.Context, rawISBN string) (BookData, error) {
    cleaned := Clean(rawISBN)
    if cleaned == "" {
        return BookData{}, fmt.Errorf("%w: empty ISBN", ErrNotFound)
    }

    u := fmt.Sprintf("%s/volumes?q=%s", c.baseURL, url.QueryEscape("isbn:"+cleaned))
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
    if err != nil {
        return BookData{}, err
    }
    resp, err := c.http.Do(req)
    if err != nil {
        return BookData{}, fmt.Errorf("fetch book data: %w", err)
    }
    defer resp.Body.Close()
    if resp.StatusCode != http.StatusOK {
        return BookData{}, fmt.Errorf("fetch book data: unexpected status %d", resp.StatusCode)
    }

    var body volumesResponse
    if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
        return BookData{}, fmt.Errorf("decode book data: %w", err)
    }
    if len(body.Items) == 0 {
        return BookData{}, ErrNotFound
    }

    info := body.Items[0].VolumeInfo
    out := BookData{
        Title:       info.Title,
        Author:      "Unknown Author",
        CoverURL:    info.ImageLinks.Thumbnail,
        Description: info.Description,
        ISBN:        cleaned,
    }
    if len(info.Authors) > 0 {
        out.Author = strings.Join(info.Authors, ", ")
    }
    if len(info.Categories) > 0 {
        out.Genre = info.Categories[0]
    }
    if y := publishedYear(info.PublishedDate); y > 0 {
        out.Year = y
    }
    return out, nil
}

// publishedYear extracts the leading year from dates like "1965",
// "1965-08" or "1965-08-01". Returns 0 when none can be parsed.
func publishedYear(date string) int {
    if len(date) < 4 {
        return 0
    }
    y, err := strconv.Atoi(date[:4])
    if err != nil {
        return 0
    }
    return y
}
