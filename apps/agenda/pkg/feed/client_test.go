package feed_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"site.ateliermosaique.fr/apps/agenda/pkg/feed"
)

func writeFeedFile(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "events.json")
	err := os.WriteFile(path, []byte(body), 0o600)
	require.Nil(t, err)

	return path
}

func TestFetchBareArray(t *testing.T) {
	client := feed.New(writeFeedFile(
		t,
		`[{"date":"2024-03-07"},{"date":"2024-03-08"}]`,
	))

	records, err := client.Fetch(context.Background())

	require.Nil(t, err)
	assert.Len(t, records, 2)
}

func TestFetchEnvelope(t *testing.T) {
	client := feed.New(writeFeedFile(
		t,
		`{"events":[{"date":"2024-03-07"}]}`,
	))

	records, err := client.Fetch(context.Background())

	require.Nil(t, err)
	assert.Len(t, records, 1)
}

func TestFetchEnvelopeWithExtraFields(t *testing.T) {
	client := feed.New(writeFeedFile(
		t,
		`{"version":1,"events":[{"date":"2024-03-07"}]}`,
	))

	records, err := client.Fetch(context.Background())

	require.Nil(t, err)
	assert.Len(t, records, 1)
}

func TestFetchEmptyArray(t *testing.T) {
	client := feed.New(writeFeedFile(t, `[]`))

	records, err := client.Fetch(context.Background())

	require.Nil(t, err)
	assert.Empty(t, records)
}

func TestFetchInvalidPayloadShape(t *testing.T) {
	cases := map[string]string{
		"null":                  `null`,
		"object without events": `{"foo":1}`,
		"events null":           `{"events":null}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			client := feed.New(writeFeedFile(t, body))

			_, err := client.Fetch(context.Background())

			assert.ErrorIs(t, err, feed.ErrInvalidPayload)
		})
	}
}

func TestFetchMalformedBody(t *testing.T) {
	cases := map[string]string{
		"not json":           `{not json`,
		"bare string":        `"events"`,
		"bare number":        `42`,
		"events not a array": `{"events":"nope"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			client := feed.New(writeFeedFile(t, body))

			_, err := client.Fetch(context.Background())

			assert.NotNil(t, err)
			assert.NotErrorIs(t, err, feed.ErrInvalidPayload)
		})
	}
}

func TestFetchMissingFile(t *testing.T) {
	client := feed.New(filepath.Join(t.TempDir(), "nope.json"))

	_, err := client.Fetch(context.Background())

	assert.NotNil(t, err)
}

func TestFetchHTTP(t *testing.T) {
	var cacheControl string
	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cacheControl = r.Header.Get("Cache-Control")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"date":"2024-03-07"}]`))
		}),
	)
	defer srv.Close()

	client := feed.New(srv.URL)

	records, err := client.Fetch(context.Background())

	require.Nil(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "no-cache", cacheControl)
}

func TestFetchHTTPNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}),
	)
	defer srv.Close()

	client := feed.New(srv.URL)

	_, err := client.Fetch(context.Background())

	var statusErr *feed.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}
