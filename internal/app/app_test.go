package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/holocron/internal/config"
	"github.com/five82/holocron/internal/labels"
	"github.com/five82/holocron/internal/swapi"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigAppliesOverrides(t *testing.T) {
	path := writeConfig(t, `
base_url = "https://example.test/api"
language = "ru"
[log]
level = "warn"
`)

	cfg, err := LoadConfig(Options{
		ConfigPath: path,
		BaseURL:    "http://localhost:9000/api",
		LogLevel:   "debug",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/api", cfg.BaseURL)
	assert.Equal(t, "ru", cfg.Language)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigInvalidFile(t *testing.T) {
	path := writeConfig(t, "language = [")
	_, err := LoadConfig(Options{ConfigPath: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestChooseLabels(t *testing.T) {
	assert.Equal(t, "en", chooseLabels("en", "ru", "ru").Code())
	assert.Equal(t, "en", chooseLabels("", "en", "ru").Code())
	assert.Equal(t, "en", chooseLabels("", "", "en_US.UTF-8").Code())
	assert.Equal(t, "ru", chooseLabels("", "", "").Code())
}

// newServer serves 82 people ten at a time, like SWAPI.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	const total, perPage = 82, 10
	mux := http.NewServeMux()
	mux.HandleFunc("/api/people/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/people/":
			if r.URL.Query().Get("search") == "nobody" {
				_, _ = w.Write([]byte(`{"count":0,"results":[]}`))
				return
			}
			page, err := strconv.Atoi(r.URL.Query().Get("page"))
			if err != nil || page < 1 || (page-1)*perPage >= total {
				http.NotFound(w, r)
				return
			}
			resp := swapi.Page{Count: total}
			for id := (page-1)*perPage + 1; id <= min(page*perPage, total); id++ {
				resp.Results = append(resp.Results, swapi.Person{
					Name:   fmt.Sprintf("P%d", id),
					Height: "172",
					Gender: "male",
					URL:    fmt.Sprintf("https://swapi.dev/api/people/%d/", id),
				})
			}
			if page*perPage < total {
				resp.Next = fmt.Sprintf("https://swapi.dev/api/people/?page=%d", page+1)
			}
			if page > 1 {
				resp.Previous = fmt.Sprintf("https://swapi.dev/api/people/?page=%d", page-1)
			}
			_ = json.NewEncoder(w).Encode(resp)
		case "/api/people/1/":
			_, _ = w.Write([]byte(`{"name":"Luke Skywalker","height":"172","mass":"77","films":["a","b","c","d"],"url":"https://swapi.dev/api/people/1/"}`))
		default:
			http.NotFound(w, r)
		}
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newReporter(t *testing.T, out *bytes.Buffer) Reporter {
	t.Helper()
	server := newServer(t)
	cfg := config.Default()
	cfg.BaseURL = server.URL + "/api"
	cfg.RequestTimeout = 2 * time.Second
	client, err := NewClient(cfg, nil)
	require.NoError(t, err)
	return Reporter{Repo: client, Labels: labels.For("en"), Out: out}
}

func TestReporterList(t *testing.T) {
	var out bytes.Buffer
	r := newReporter(t, &out)

	require.NoError(t, r.List(context.Background(), 1, ""))
	text := out.String()
	assert.Contains(t, text, "P1 ")
	assert.Contains(t, text, "P10 ")
	assert.Contains(t, text, "Total: 82")
	assert.Contains(t, text, "Page 1 of 9")
}

func TestReporterListEveryPageReachable(t *testing.T) {
	tests := []struct {
		page     int
		first    string
		last     string
		pageLine string
	}{
		{page: 5, first: "P41 ", last: "P50 ", pageLine: "Page 5 of 9"},
		{page: 9, first: "P81 ", last: "P82 ", pageLine: "Page 9 of 9"},
	}
	for _, tt := range tests {
		t.Run(tt.pageLine, func(t *testing.T) {
			var out bytes.Buffer
			r := newReporter(t, &out)

			require.NoError(t, r.List(context.Background(), tt.page, ""))
			text := out.String()
			assert.Contains(t, text, tt.first)
			assert.Contains(t, text, tt.last)
			assert.Contains(t, text, tt.pageLine)
		})
	}
}

func TestReporterListEmpty(t *testing.T) {
	var out bytes.Buffer
	r := newReporter(t, &out)

	require.NoError(t, r.List(context.Background(), 1, "nobody"))
	assert.Equal(t, "Nothing found\n", out.String())
}

func TestReporterShow(t *testing.T) {
	var out bytes.Buffer
	r := newReporter(t, &out)

	require.NoError(t, r.Show(context.Background(), "1"))
	text := out.String()
	assert.Contains(t, text, "Luke Skywalker")
	assert.Regexp(t, `Films\s+4`, text)
}

func TestReporterShowNotFound(t *testing.T) {
	var out bytes.Buffer
	r := newReporter(t, &out)

	err := r.Show(context.Background(), "999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Empty(t, out.String())
}

func TestLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holocron.log")
	lines := []string{
		`level=INFO msg=one`,
		`level=WARN msg=two`,
		`level=INFO msg=three`,
	}
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, Logs(&out, path, 2, "info"))
	assert.Equal(t, "level=WARN msg=two\nlevel=INFO msg=three\n", out.String())

	out.Reset()
	require.NoError(t, Logs(&out, path, 0, "warn"))
	assert.Equal(t, "level=WARN msg=two\n", out.String())
}
