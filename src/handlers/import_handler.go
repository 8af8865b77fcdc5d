// backend/src/handlers/import_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/username/kontoflow/backend/src/config"
	"github.com/username/kontoflow/backend/src/logger"
	"github.com/username/kontoflow/backend/src/models"
	"github.com/username/kontoflow/backend/src/security/validation"
	"github.com/username/kontoflow/backend/src/services"
	"github.com/username/kontoflow/backend/src/utils"
)

const defaultRunListLimit = 50

type ImportHandler struct {
	importService services.ImportService
}

func NewImportHandler(service services.ImportService) *ImportHandler {
	return &ImportHandler{
		importService: service,
	}
}

// HandleUpload receives one statement file as multipart form data. Optional
// form fields: `format` (dialect hint, used only when detection fails) and
// `preview` (parse without recording a run).
func (h *ImportHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(config.Cfg.MaxUploadSizeBytes); err != nil {
		logger.L.Warn("Failed to parse multipart form or request too large", "error", err, "limit", config.Cfg.MaxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("Failed to parse form or request too large (max %d MB)", config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		logger.L.Warn("Failed to retrieve file from request", "error", err)
		utils.SendJSONError(w, "Failed to retrieve file from request. Ensure 'file' field is used.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if fileHeader.Size > config.Cfg.MaxUploadSizeBytes {
		logger.L.Warn("Uploaded file header reports size too large", "fileSize", fileHeader.Size, "limit", config.Cfg.MaxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("File too large, max %d MB", config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
		return
	}

	clientContentType := fileHeader.Header.Get("Content-Type")
	if err := validation.ValidateClientContentType(clientContentType); err != nil {
		logger.L.Warn("Invalid client-declared file type", "contentType", clientContentType, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	detectedContentType, err := validation.ValidateFileContentByMagicBytes(file)
	if err != nil {
		logger.L.Warn("Server-side file content validation failed", "filename", fileHeader.Filename, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	logger.L.Info("File content validated", "filename", fileHeader.Filename, "clientType", clientContentType, "detectedType", detectedContentType)

	formatHint := models.FormatIdentifier(r.FormValue("format"))
	if formatHint != "" && !formatHint.Valid() {
		utils.SendJSONError(w, fmt.Sprintf("unknown format %q; see GET /api/import/formats", formatHint), http.StatusBadRequest)
		return
	}
	preview := r.FormValue("preview") == "true"

	result, err := h.importService.ProcessUpload(file, fileHeader.Filename, formatHint, preview)
	if err != nil {
		if errors.Is(err, services.ErrParsingFailed) {
			logger.L.Warn("Upload processing failed during statement parsing", "filename", fileHeader.Filename, "error", err)
			utils.SendJSONError(w, fmt.Sprintf("Error parsing statement file: %v", err), http.StatusBadRequest)
		} else {
			logger.L.Error("Internal error processing upload", "filename", fileHeader.Filename, "error", err)
			utils.SendJSONError(w, "An internal error occurred while processing the file. Please try again later.", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleListFormats returns the stable dialect vocabulary for format pickers.
func (h *ImportHandler) HandleListFormats(w http.ResponseWriter, r *http.Request) {
	formats := models.SupportedFormats()

	if etag, err := utils.GenerateETag(formats); err == nil {
		w.Header().Set("ETag", `"`+etag+`"`)
		if r.Header.Get("If-None-Match") == `"`+etag+`"` {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string][]models.FormatIdentifier{"formats": formats})
}

// HandleListRuns returns recent import run summaries.
func (h *ImportHandler) HandleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := defaultRunListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			utils.SendJSONError(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	runs, err := h.importService.ListImportRuns(limit)
	if err != nil {
		logger.L.Error("Error listing import runs", "error", err)
		utils.SendJSONError(w, "Error retrieving import runs", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.ImportRun{"runs": runs})
}

// HandleGetRun returns one run summary and, while still cached, the parsed
// transactions from that run.
func (h *ImportHandler) HandleGetRun(w http.ResponseWriter, r *http.Request) {
	runID := r.PathValue("id")
	if runID == "" {
		utils.SendJSONError(w, "run id is required", http.StatusBadRequest)
		return
	}

	run, err := h.importService.GetImportRun(runID)
	if err != nil {
		if errors.Is(err, services.ErrRunNotFound) {
			utils.SendJSONError(w, fmt.Sprintf("import run %s not found", runID), http.StatusNotFound)
		} else {
			logger.L.Error("Error retrieving import run", "runID", runID, "error", err)
			utils.SendJSONError(w, "Error retrieving import run", http.StatusInternalServerError)
		}
		return
	}

	response := map[string]interface{}{"run": run}
	if result, found := h.importService.GetImportResult(runID); found {
		response["result"] = result
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.L.Error("Error encoding JSON response", "error", err)
	}
}
