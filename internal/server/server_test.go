package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fjacquet/budget-csv/internal/budgetparser"
	"fjacquet/budget-csv/internal/classifier"
	"fjacquet/budget-csv/internal/models"
	"fjacquet/budget-csv/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const uploadCSV = `date,kind,amount,category,group,note
2026-01-01,income,1200,Lohn,,
2026-01-02,expense,600,Miete,fix,
2026-01-05,expense,45.50,Restaurant,want,Pizza
`

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	rules := models.DefaultRules()
	if opts.Parser == nil {
		opts.Parser = budgetparser.New(classifier.New(rules, nil), nil)
	}
	if opts.Generator == nil {
		opts.Generator = report.NewGenerator(rules, nil)
	}
	return New(opts)
}

func multipartBody(t *testing.T, filename, contents string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(contents))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleTemplate(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/template", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "budget_template.csv")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "date,kind,amount,category,group,note"))
}

func TestHandleUpload(t *testing.T) {
	s := newTestServer(t, Options{})
	body, contentType := multipartBody(t, "budget.csv", uploadCSV, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var rep report.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, "1200", rep.Summary.TotalIncome.String())
	assert.Equal(t, "645.5", rep.Summary.TotalExpense.String())
	assert.NotEmpty(t, rep.Charts)
	// Average net is positive, so the savings projection runs by default.
	assert.NotEmpty(t, rep.Projection)
}

func TestHandleUploadMonthlyOverride(t *testing.T) {
	s := newTestServer(t, Options{})
	body, contentType := multipartBody(t, "budget.csv", uploadCSV, map[string]string{"monthly": "300"})

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var rep report.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, "300", rep.MonthlySaving.String())
}

func TestHandleUploadBadRow(t *testing.T) {
	s := newTestServer(t, Options{})
	csv := "date,kind,amount,category\n2026-01-01,income,1200,Lohn\n2026-01-02,expense,abc,Miete\n"
	body, contentType := multipartBody(t, "budget.csv", csv, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Line)
	assert.Contains(t, resp.Error, "line 3")
}

func TestHandleUploadMissingFile(t *testing.T) {
	s := newTestServer(t, Options{})
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("monthly", "100"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUploadTooLarge(t *testing.T) {
	s := newTestServer(t, Options{MaxUploadBytes: 256})
	big := uploadCSV + strings.Repeat("2026-01-06,expense,1,Kino,want,\n", 64)
	body, contentType := multipartBody(t, "budget.csv", big, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandleProjection(t *testing.T) {
	s := newTestServer(t, Options{HorizonYears: 10})
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projection?monthly=200", nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Series []models.ProjectionSeries `json:"series"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Series, 3)
	for _, series := range resp.Series {
		assert.Len(t, series.Points, 11)
	}
}

func TestHandleProjectionMissingParam(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projection", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleProjectionBadAmount(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projection?monthly=abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
