package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ridoystarlord/prismaviz/formatter"
	"github.com/ridoystarlord/prismaviz/highlight"
	"github.com/ridoystarlord/prismaviz/loader"
	"github.com/ridoystarlord/prismaviz/psl"
	"github.com/ridoystarlord/prismaviz/schema"
	"github.com/ridoystarlord/prismaviz/visualise"
)

const maxUploadSize = loader.MaxSchemaSize + 1<<20

// VisualiseOutput is the response of the visualise endpoint.
type VisualiseOutput struct {
	Result      []formatter.Model   `json:"result"`
	Schema      string              `json:"schema"`
	Diagnostics psl.Diagnostics     `json:"diagnostics"`
	Warnings    []visualise.Warning `json:"warnings"`
}

// CodeHighlightInput asks for the markup of the model at Span in Schema.
type CodeHighlightInput struct {
	Schema string      `json:"schema"`
	Span   schema.Span `json:"span"`
}

type CodeHighlightOutput struct {
	Code schema.Fragment `json:"code"`
}

type errorResponse struct {
	Error       string          `json:"error"`
	Diagnostics psl.Diagnostics `json:"diagnostics,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeSchemaError maps core errors onto status codes.
func (s *Server) writeSchemaError(w http.ResponseWriter, err error) {
	var parseErr *visualise.UnparsableSchemaError
	switch {
	case errors.As(err, &parseErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:       parseErr.Error(),
			Diagnostics: parseErr.Diagnostics,
		})
	case errors.Is(err, highlight.ErrModelNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, loader.ErrUnreadableInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) handleFiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if s.config.AssetsDir == "" {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, "Schema Visualiser")
		return
	}

	// Clean against a rooted path so the result never leaves AssetsDir.
	name := path.Clean("/" + r.URL.Path)
	if name == "/" {
		name = "/index.html"
	}
	file := filepath.Join(s.config.AssetsDir, filepath.FromSlash(name))
	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, file)
}

func (s *Server) handleVisualise(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	upload, _, err := r.FormFile("schema")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Something wrong with the request: missing schema file")
		return
	}
	defer upload.Close()

	text, err := s.spoolUpload(upload)
	if err != nil {
		s.writeSchemaError(w, err)
		return
	}

	result, err := visualise.Extract(text)
	if err != nil {
		s.writeSchemaError(w, err)
		return
	}

	for i := range result.Models {
		result.Models[i].ID = uuid.NewString()
	}
	writeJSON(w, http.StatusOK, VisualiseOutput{
		Result:      formatter.ToWire(result.Models),
		Schema:      result.Schema,
		Diagnostics: nonNilDiagnostics(result.Diagnostics),
		Warnings:    nonNilWarnings(result.Warnings),
	})
}

// spoolUpload copies the upload to a uniquely named temp file and reads it
// back. The temp file is always removed.
func (s *Server) spoolUpload(upload io.Reader) (string, error) {
	tempPath := filepath.Join(os.TempDir(), uuid.NewString()+".prisma")
	f, err := os.Create(tempPath)
	if err != nil {
		return "", err
	}
	defer os.Remove(tempPath)

	if _, err := io.Copy(f, upload); err != nil {
		f.Close()
		return "", errors.Join(loader.ErrUnreadableInput, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return loader.LoadSchemaFile(tempPath)
}

func (s *Server) handleCodeHighlight(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var input CodeHighlightInput
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	fragment, err := highlight.Lookup(input.Schema, input.Span)
	if err != nil {
		s.writeSchemaError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CodeHighlightOutput{Code: fragment})
}

func nonNilDiagnostics(d psl.Diagnostics) psl.Diagnostics {
	if d == nil {
		return psl.Diagnostics{}
	}
	return d
}

func nonNilWarnings(w []visualise.Warning) []visualise.Warning {
	if w == nil {
		return []visualise.Warning{}
	}
	return w
}
