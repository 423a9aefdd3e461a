package main

import (
	"github.com/goccy/go-json"
	"github.com/myrjola/casefile/internal/casefile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

const testCaseYAML = `id: rue-morgue
title: The Murders in the Rue Morgue
locations:
  - id: rue-morgue
    title: Rue Morgue Murder Scene
    description: A locked room with the window nailed shut.
witnesses:
  - name: Adolphe Le Bon
evidence:
  - name: Bloodied razor
solution:
  culprit: ourang-outang
`

func writeCaseFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600)
		require.NoError(t, err)
	}
	return dir
}

func getJSON(t *testing.T, url string, want int, v any) {
	t.Helper()
	resp, err := http.Get(url) //nolint:gosec,noctx // test helper hitting the test server.
	require.NoError(t, err)
	defer func(body io.ReadCloser) {
		assert.NoError(t, body.Close())
	}(resp.Body)

	require.Equal(t, want, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func Test_application_listCases(t *testing.T) {
	dir := writeCaseFiles(t, map[string]string{
		"case_001.yaml": testCaseYAML,
		"case_002.yaml": "",
	})
	url := startTestServer(t, os.Stdout, testLookupEnv(dir))

	var got casesResponse
	getJSON(t, url+"/api/cases", http.StatusOK, &got)

	require.Len(t, got.Cases, 1)
	require.Equal(t, "rue-morgue", got.Cases[0].ID)
	require.Equal(t, "The Murders in the Rue Morgue", got.Cases[0].Title)
	require.Len(t, got.Errors, 1)
	require.Contains(t, got.Errors[0], "case_002")
	require.Contains(t, got.Errors[0], "empty")
}

func Test_application_listCases_allRejected(t *testing.T) {
	dir := writeCaseFiles(t, map[string]string{
		"case_001.yaml": "",
		"case_002.yaml": "title: No id here\n",
	})
	url := startTestServer(t, os.Stdout, testLookupEnv(dir))

	var got casesResponse
	getJSON(t, url+"/api/cases", http.StatusInternalServerError, &got)

	require.Empty(t, got.Cases)
	require.Len(t, got.Errors, 2)
}

func Test_application_listCases_emptyDirectory(t *testing.T) {
	url := startTestServer(t, os.Stdout, testLookupEnv(t.TempDir()))

	var got casesResponse
	getJSON(t, url+"/api/cases", http.StatusOK, &got)

	require.Empty(t, got.Cases)
	require.Empty(t, got.Errors)
}

func Test_application_getCase(t *testing.T) {
	dir := writeCaseFiles(t, map[string]string{
		"case_001.yaml": testCaseYAML,
		"case_002.yaml": "id: broken\n",
	})
	url := startTestServer(t, os.Stdout, testLookupEnv(dir))

	t.Run("well-formed case", func(t *testing.T) {
		var got casefile.Case
		getJSON(t, url+"/api/cases/001", http.StatusOK, &got)

		require.Equal(t, "rue-morgue", got.ID)
		require.Len(t, got.Locations, 1)
		require.Equal(t, "rue-morgue", got.Locations[0].ID)
	})

	t.Run("unknown case", func(t *testing.T) {
		resp, err := http.Get(url + "/api/cases/999") //nolint:noctx // test request.
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("case with schema violations", func(t *testing.T) {
		var got casefile.CaseError
		getJSON(t, url+"/api/cases/002", http.StatusUnprocessableEntity, &got)

		require.Equal(t, "002", got.ID)
		require.NotEmpty(t, got.FieldErrors)
		paths := make([]string, len(got.FieldErrors))
		for i, fieldErr := range got.FieldErrors {
			paths[i] = fieldErr.Path
		}
		require.Contains(t, paths, "title")
		require.Contains(t, paths, "locations")
	})
}
