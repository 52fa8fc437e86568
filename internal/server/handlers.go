package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"fjacquet/budget-csv/internal/aggregate"
	"fjacquet/budget-csv/internal/budgetparser"
	"fjacquet/budget-csv/internal/logging"
	"fjacquet/budget-csv/internal/models"
	"fjacquet/budget-csv/internal/parsererror"
	"fjacquet/budget-csv/internal/projection"

	"github.com/shopspring/decimal"
)

// errorResponse is the JSON body returned on any request failure. Line is
// set when a CSV row could be pinpointed, so clients can highlight it.
type errorResponse struct {
	Error string `json:"error"`
	Line  int    `json:"line,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Error("Failed to encode JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	resp := errorResponse{Error: err.Error()}
	var rowErr *parsererror.RowError
	if errors.As(err, &rowErr) {
		resp.Line = rowErr.Line
	}
	s.writeJSON(w, status, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleTemplate serves a ready-to-fill CSV with the expected header and a
// few sample rows.
func (s *Server) handleTemplate(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="budget_template.csv"`)
	if err := budgetparser.WriteTemplate(w); err != nil {
		s.logger.WithError(err).Error("Failed to write template CSV")
	}
}

// handleProjection returns the savings scenarios for a fixed monthly
// contribution given as ?monthly=N.
func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("monthly")
	if raw == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("missing query parameter: monthly"))
		return
	}
	monthly, err := decimal.NewFromString(raw)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New("invalid monthly amount: "+raw))
		return
	}

	series, err := projection.Series(monthly, s.scenarios, s.horizon)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"monthly": monthly,
		"series":  series,
	})
}

// handleUpload accepts a multipart CSV upload, runs the full pipeline and
// returns the report as JSON. An optional "monthly" form field overrides the
// projection contribution; the default is the average monthly net.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, http.StatusRequestEntityTooLarge,
				errors.New("uploaded file exceeds the size limit"))
			return
		}
		s.writeError(w, http.StatusBadRequest, errors.New("invalid multipart request"))
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New("missing form file: file"))
		return
	}
	defer file.Close()

	declared := declaredCharset(header.Header.Get("Content-Type"))

	buf, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New("failed to read uploaded file"))
		return
	}

	transactions, err := s.parser.ParseBytes(buf, declared)
	if err != nil {
		s.logger.WithError(err).Warn("Rejected uploaded CSV",
			logging.Field{Key: logging.FieldFile, Value: header.Filename})
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	summary := aggregate.Compute(transactions)

	monthlySaving := summary.AverageNet
	if raw := r.FormValue("monthly"); raw != "" {
		monthlySaving, err = decimal.NewFromString(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, errors.New("invalid monthly amount: "+raw))
			return
		}
	}

	var series []models.ProjectionSeries
	if monthlySaving.IsPositive() {
		series, err = projection.Series(monthlySaving, s.scenarios, s.horizon)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, err)
			return
		}
	}

	showIncome := r.FormValue("show_income") != "false"
	rep := s.generator.Build(summary, series, monthlySaving, showIncome)

	s.logger.Info("Processed uploaded CSV",
		logging.Field{Key: logging.FieldFile, Value: header.Filename},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	s.writeJSON(w, http.StatusOK, rep)
}

// declaredCharset extracts the charset parameter from a Content-Type header,
// if any. Uploads rarely carry one, but browsers sometimes do.
func declaredCharset(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return params["charset"]
}
