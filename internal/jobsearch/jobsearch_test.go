package jobsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_MapsPostings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "python,go", r.URL.Query().Get("skills"))
		assert.Equal(t, "Berlin", r.URL.Query().Get("location"))
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jobs": [{
			"title": "Backend Engineer",
			"company": "Acme",
			"location": "Berlin",
			"salary": "90k",
			"description": "<p>Build <b>APIs</b> in Go.</p>",
			"requirements": ["go", "sql"],
			"url": "https://jobs.example.com/1"
		}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "key")
	postings, err := client.Search(context.Background(), []string{"python", "go"}, "Berlin")
	require.NoError(t, err)

	require.Len(t, postings, 1)
	assert.Equal(t, "Backend Engineer", postings[0].Title)
	assert.Equal(t, "Build APIs in Go.", postings[0].Description)
	assert.Equal(t, []string{"go", "sql"}, postings[0].Requirements)
}

func TestSearch_TruncatesSkillList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "a,b,c,d,e", r.URL.Query().Get("skills"))
		_, _ = w.Write([]byte(`{"jobs": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.Search(context.Background(), []string{"a", "b", "c", "d", "e", "f", "g"}, "")
	require.NoError(t, err)
}

func TestSearch_UnconfiguredReturnsEmpty(t *testing.T) {
	client := NewClient("", "")
	postings, err := client.Search(context.Background(), []string{"go"}, "")
	require.NoError(t, err)
	assert.Empty(t, postings)
}

func TestSearch_Non2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.Search(context.Background(), []string{"go"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "plain text stays", stripHTML("plain text stays"))
	assert.Equal(t, "Nested tags flatten", stripHTML("<div><p>Nested <em>tags</em></p> flatten</div>"))
}
