package isbn

import (
    "context"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

const duneVolume = `{
  "items": [
    {
      "volumeInfo": {
        "title": "Dune",
        "authors": ["Frank Herbert"],
        "description": "A desert planet saga.",
        "categories": ["Science Fiction", "Adventure"],
        "publishedDate": "1965-08-01",
        "imageLinks": {"thumbnail": "http://books.example/dune.jpg"}
      }
    },
    {
      "volumeInfo": {"title": "Dune (other edition)"}
    }
  ]
}`

func TestCleanStripsHyphensAndSpaces(t *testing.T) {
    assert.Equal(t, "9780441013593", Clean("978-0-441-01359-3"))
    assert.Equal(t, "9780441013593", Clean("978 0441 013593"))
    assert.Equal(t, "", Clean(" - "))
}

func TestLookupMapsFirstVolume(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        assert.Equal(t, "/volumes", r.URL.Path)
        assert.Equal(t, "isbn:9780441013593", r.URL.Query().Get("q"))
        w.Header().Set("Content-Type", "application/json")
        w.Write([]byte(duneVolume))
    }))
    defer srv.Close()

    c := NewClient(srv.URL, time.Second)
    data, err := c.Lookup(context.Background(), "978-0-441-01359-3")
    require.NoError(t, err)

    assert.Equal(t, "Dune", data.Title)
    assert.Equal(t, "Frank Herbert", data.Author)
    assert.Equal(t, "http://books.example/dune.jpg", data.CoverURL)
    assert.Equal(t, "A desert planet saga.", data.Description)
    assert.Equal(t, "Science Fiction", data.Genre)
    assert.Equal(t, 1965, data.Year)
    assert.Equal(t, "9780441013593", data.ISBN)
}

func TestLookupFallbacks(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Write([]byte(`{"items":[{"volumeInfo":{"title":"Mystery Book","publishedDate":"n.d."}}]}`))
    }))
    defer srv.Close()

    c := NewClient(srv.URL, time.Second)
    data, err := c.Lookup(context.Background(), "1234567890")
    require.NoError(t, err)

    assert.Equal(t, "Unknown Author", data.Author)
    assert.Empty(t, data.Genre)
    assert.Zero(t, data.Year)
}

func TestLookupNoItems(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Write([]byte(`{"totalItems": 0}`))
    }))
    defer srv.Close()

    c := NewClient(srv.URL, time.Second)
    _, err := c.Lookup(context.Background(), "0000000000")
    assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupEmptyISBN(t *testing.T) {
    c := NewClient("http://unused.example", time.Second)
    _, err := c.Lookup(context.Background(), "--- ")
    assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupUpstreamError(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusInternalServerError)
    }))
    defer srv.Close()

    c := NewClient(srv.URL, time.Second)
    _, err := c.Lookup(context.Background(), "1234567890")
    require.Error(t, err)
    assert.NotErrorIs(t, err, ErrNotFound)
}

func TestPublishedYear(t *testing.T) {
    assert.Equal(t, 1965, publishedYear("1965"))
    assert.Equal(t, 1965, publishedYear("1965-08"))
    assert.Equal(t, 0, publishedYear("19"))
    assert.Equal(t, 0, publishedYear("abcd-01"))
}
