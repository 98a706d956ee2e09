package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"site.ateliermosaique.fr/apps/agenda/internal/models"
)

func TestParseDate(t *testing.T) {
	date, ok := models.ParseDate("2024-03-07")

	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 7, 0, 0, 0, 0, time.Local), date)
}

func TestParseDateLeapDay(t *testing.T) {
	_, ok := models.ParseDate("2024-02-29")
	assert.True(t, ok)

	_, ok = models.ParseDate("2023-02-29")
	assert.False(t, ok)
}

func TestParseDateNoRollover(t *testing.T) {
	cases := []string{
		"2024-02-30",
		"2024-04-31",
		"2024-13-01",
		"2024-00-10",
		"2024-01-32",
		"2024-01-00",
	}

	for _, value := range cases {
		_, ok := models.ParseDate(value)
		assert.False(t, ok, value)
	}
}

func TestParseDatePatternMismatch(t *testing.T) {
	cases := []string{
		"abcd-01-01",
		"2024-3-7",
		"2024-03-07T00:00:00",
		"07-03-2024",
		"2024-03-07 ",
		"",
	}

	for _, value := range cases {
		_, ok := models.ParseDate(value)
		assert.False(t, ok, value)
	}
}

func TestNormalizeEvent(t *testing.T) {
	event, ok := models.NormalizeEvent(json.RawMessage(
		`{"date":"2024-03-07","title":"  Vernissage  ","description":" Ouverture de la saison. "}`,
	))

	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 7, 0, 0, 0, 0, time.Local), event.Date)
	assert.Equal(t, "Vernissage", event.Title)
	assert.Equal(t, "Ouverture de la saison.", event.Description)
}

func TestNormalizeEventRejections(t *testing.T) {
	cases := map[string]string{
		"empty title":           `{"date":"2024-03-07","title":"","description":"d"}`,
		"whitespace title":      `{"date":"2024-03-07","title":"   ","description":"d"}`,
		"missing description":   `{"date":"2024-03-07","title":"t"}`,
		"impossible date":       `{"date":"2024-04-31","title":"t","description":"d"}`,
		"missing date":          `{"title":"t","description":"d"}`,
		"mistyped date":         `{"date":20240307,"title":"t","description":"d"}`,
		"mistyped title":        `{"date":"2024-03-07","title":5,"description":"d"}`,
		"null record":           `null`,
		"record not an object":  `"vernissage"`,
		"record is bare number": `7`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, ok := models.NormalizeEvent(json.RawMessage(raw))
			assert.False(t, ok)
		})
	}
}

func TestDisplayDate(t *testing.T) {
	event := models.Event{
		Date:        time.Date(2024, time.March, 7, 0, 0, 0, 0, time.Local),
		Title:       "Vernissage",
		Description: "Ouverture de la saison.",
	}

	assert.Equal(t, "7 mars 2024", event.DisplayDate())
}
