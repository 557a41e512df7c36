package server

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"fjacquet/pdf2firefly/internal/common"
	"fjacquet/pdf2firefly/internal/converter"
	"fjacquet/pdf2firefly/internal/fileutils"
	"fjacquet/pdf2firefly/internal/logging"
	"fjacquet/pdf2firefly/internal/models"
	"fjacquet/pdf2firefly/internal/parsererror"
)

// uploadField is the multipart form field holding the statement file.
const uploadField = "file"

// convertJSONResponse is the payload of POST /convert-json.
type convertJSONResponse struct {
	Success    bool                 `json:"success"`
	Filename   string               `json:"filename"`
	Rows       int                  `json:"rows"`
	Data       []models.Transaction `json:"data"`
	CSVContent string               `json:"csv_content"`
}

// handleRoot serves static service metadata.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Bank Statement PDF to CSV Converter API",
		"endpoints": map[string]string{
			"/convert": "POST - Upload PDF file to convert to CSV",
			"/health":  "GET - Health check",
		},
	})
}

// handleHealth serves the health check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// handleConvert accepts a PDF upload and responds with the converted CSV as
// a file download named "<original stem>_firefly.csv".
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	upload, ok := s.stageUpload(w, r)
	if !ok {
		return
	}
	defer upload.cleanupInput()

	if _, err := s.conv.Convert(upload.inputPath, upload.outputPath); err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("Conversion failed: %v", err))
		return
	}

	downloadName := fileutils.Stem(upload.fileName) + converter.OutputSuffix
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	http.ServeFile(w, r, upload.outputPath)
}

// handleConvertJSON accepts a PDF upload and responds with the converted
// records as JSON, with the CSV rendering of the same records embedded as
// csv_content. The output CSV file is deleted once the response is built.
func (s *Server) handleConvertJSON(w http.ResponseWriter, r *http.Request) {
	upload, ok := s.stageUpload(w, r)
	if !ok {
		return
	}
	defer upload.cleanupInput()
	defer fileutils.RemoveIfExists(upload.outputPath)

	transactions, err := s.conv.Convert(upload.inputPath, upload.outputPath)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("Conversion failed: %v", err))
		return
	}

	csvContent, err := common.MarshalTransactionsToString(transactions)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("Conversion failed: %v", err))
		return
	}

	s.writeJSON(w, http.StatusOK, convertJSONResponse{
		Success:    true,
		Filename:   upload.fileName,
		Rows:       len(transactions),
		Data:       transactions,
		CSVContent: csvContent,
	})
}

// stagedUpload tracks the per-request input and output paths of one
// conversion. Both carry a fresh uuid so concurrent requests never collide.
type stagedUpload struct {
	fileName   string
	inputPath  string
	outputPath string
	cleanup    func()
}

func (u *stagedUpload) cleanupInput() {
	u.cleanup()
}

// stageUpload validates the multipart upload and writes it under a unique
// name in the upload directory. On failure it writes the HTTP error itself
// and returns ok=false.
func (s *Server) stageUpload(w http.ResponseWriter, r *http.Request) (*stagedUpload, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "missing file upload")
		return nil, false
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.log.WithError(err).Warn("Failed to close upload")
		}
	}()

	fileName := filepath.Base(header.Filename)
	if !strings.HasSuffix(fileName, ".pdf") {
		vErr := &parsererror.ValidationError{FileName: fileName, Reason: "Only PDF files are accepted"}
		s.log.WithError(vErr).Warn("Rejected upload")
		s.writeError(w, http.StatusBadRequest, vErr.Reason)
		return nil, false
	}

	jobID := uuid.New().String()
	upload := &stagedUpload{
		fileName:   fileName,
		inputPath:  filepath.Join(s.uploadDir, jobID+"_"+fileName),
		outputPath: filepath.Join(s.outputDir, jobID+converter.OutputSuffix),
	}
	upload.cleanup = func() {
		fileutils.RemoveIfExists(upload.inputPath)
	}

	if err := s.saveUpload(file, upload.inputPath); err != nil {
		upload.cleanup()
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to store upload: %v", err))
		return nil, false
	}

	s.log.Debug("Staged upload",
		logging.Field{Key: logging.FieldFile, Value: upload.inputPath},
		logging.Field{Key: logging.FieldRequestID, Value: jobID})

	return upload, true
}

func (s *Server) saveUpload(src multipart.File, destPath string) error {
	dest, err := os.Create(destPath) // #nosec G304 -- path is built from a fresh uuid under the configured dir
	if err != nil {
		return err
	}
	defer func() {
		if err := dest.Close(); err != nil {
			s.log.WithError(err).Warn("Failed to close staged file")
		}
	}()

	_, err = io.Copy(dest, src)
	return err
}
