package handler

import (
	"net/http"

	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/response"

	"github.com/gorilla/mux"
)

type ExportHandler struct {
	exportUsecase usecase.ExportUsecase
}

func NewExportHandler(exportUsecase usecase.ExportUsecase) *ExportHandler {
	return &ExportHandler{
		exportUsecase: exportUsecase,
	}
}

func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	file, err := h.exportUsecase.Export(r.Context(), vars["entity"], r.URL.Query().Get("format"))
	if err != nil {
		switch err {
		case usecase.ErrUnknownExportEntity:
			response.NotFound(w, "Unknown export entity")
		case usecase.ErrUnknownExportFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to export data")
		}
		return
	}

	response.File(w, file.ContentType, file.Filename, file.Body)
}
