package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/pdf2firefly/internal/converter"
	"fjacquet/pdf2firefly/internal/logging"
	"fjacquet/pdf2firefly/internal/pdfparser"
)

var statementRows = [][]string{
	{"Date", "Descriptions", "Withdrawal / Deposit", "Channel", "Details"},
	{"2024-01-05", "Grocery", "DR 45.00", "POS", "Store A"},
	{"2024-01-06", "Salary", "CR 2,000.00", "Transfer", ""},
}

func newTestServer(t *testing.T, extractor pdfparser.TableExtractor) (*Server, string, string) {
	t.Helper()

	uploadDir := filepath.Join(t.TempDir(), "uploads")
	outputDir := filepath.Join(t.TempDir(), "outputs")

	conv := converter.New(extractor, nil, &logging.MockLogger{})
	srv, err := New(conv, uploadDir, outputDir, 8, &logging.MockLogger{})
	require.NoError(t, err)

	return srv, uploadDir, outputDir
}

func multipartUpload(t *testing.T, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(uploadField, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func TestHandleRoot(t *testing.T) {
	srv, _, _ := newTestServer(t, pdfparser.NewMockTableExtractor(statementRows, nil))

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Bank Statement PDF to CSV Converter API", payload["message"])
}

func TestHandleHealth(t *testing.T) {
	srv, _, _ := newTestServer(t, pdfparser.NewMockTableExtractor(statementRows, nil))

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestHandleConvertRejectsNonPDF(t *testing.T) {
	srv, uploadDir, _ := newTestServer(t, pdfparser.NewMockTableExtractor(statementRows, nil))

	body, contentType := multipartUpload(t, "statement.txt", []byte("not a pdf"))
	req := httptest.NewRequest(http.MethodPost, "/convert", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Only PDF files are accepted")
	assertDirEmpty(t, uploadDir)
}

func TestHandleConvertMissingFile(t *testing.T) {
	srv, _, _ := newTestServer(t, pdfparser.NewMockTableExtractor(statementRows, nil))

	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleConvert(t *testing.T) {
	srv, uploadDir, _ := newTestServer(t, pdfparser.NewMockTableExtractor(statementRows, nil))

	body, contentType := multipartUpload(t, "statement.pdf", []byte("%PDF-1.5"))
	req := httptest.NewRequest(http.MethodPost, "/convert", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "statement_firefly.csv")

	csvBody, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(csvBody), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Description,Withdrawal,Deposit,Category,Notes", lines[0])
	assert.Equal(t, "2024-01-05,Grocery - Store A,45.00,,POS,", lines[1])

	// The staged upload is removed after the request.
	assertDirEmpty(t, uploadDir)
}

func TestHandleConvertFailure(t *testing.T) {
	srv, uploadDir, _ := newTestServer(t, pdfparser.NewMockTableExtractor(nil, nil))

	body, contentType := multipartUpload(t, "statement.pdf", []byte("%PDF-1.5"))
	req := httptest.NewRequest(http.MethodPost, "/convert", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "No tables found in PDF")
	assertDirEmpty(t, uploadDir)
}

func TestHandleConvertJSON(t *testing.T) {
	srv, uploadDir, outputDir := newTestServer(t, pdfparser.NewMockTableExtractor(statementRows, nil))

	body, contentType := multipartUpload(t, "statement.pdf", []byte("%PDF-1.5"))
	req := httptest.NewRequest(http.MethodPost, "/convert-json", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload convertJSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	assert.True(t, payload.Success)
	assert.Equal(t, "statement.pdf", payload.Filename)
	assert.Equal(t, 2, payload.Rows)
	require.Len(t, payload.Data, 2)
	assert.Equal(t, "45.00", payload.Data[0].Withdrawal)
	assert.Equal(t, "2000.00", payload.Data[1].Deposit)
	// csv_content carries the CSV rendering of the same records.
	assert.True(t, strings.HasPrefix(payload.CSVContent, "Date,Description,Withdrawal,Deposit,Category,Notes"))
	assert.Contains(t, payload.CSVContent, "2024-01-05,Grocery - Store A,45.00,,POS,\n")
	assert.Contains(t, payload.CSVContent, "2024-01-06,Salary,,2000.00,Transfer,\n")

	// Both the staged upload and the output file are removed.
	assertDirEmpty(t, uploadDir)
	assertDirEmpty(t, outputDir)
}

func TestHandleConvertJSONFailure(t *testing.T) {
	srv, uploadDir, outputDir := newTestServer(t, pdfparser.NewMockTableExtractor(nil, nil))

	body, contentType := multipartUpload(t, "statement.pdf", []byte("%PDF-1.5"))
	req := httptest.NewRequest(http.MethodPost, "/convert-json", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assertDirEmpty(t, uploadDir)
	assertDirEmpty(t, outputDir)
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
