package update

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime"
	"net/http"

	"github.com/yudzxml/updates-service/internal/response"
)

// maxMultipartMemory is how much of a multipart body is held in memory
// before the parser spills to a temp file (cleaned up by the stdlib when the
// request finishes).
const maxMultipartMemory = 32 << 20 // 32 MiB

// Handler holds HTTP handlers for the update endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new update Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type publishJSONRequest struct {
	Author      string `json:"author"      example:"yudz"`
	Title       string `json:"title"       example:"Tool"`
	Version     string `json:"version"     example:"1.0"`
	KeyScript   string `json:"keyScript"   example:"abc"`
	VersionType string `json:"versionType" example:"full"`
	FileBase64  string `json:"fileBase64"`
}

// List godoc
//
//	@Summary		List updates
//	@Description	Returns every published update, newest first. Requires the public read key.
//	@Tags			updates
//	@Produce		json
//	@Param			key	query		string	true	"Public read key"
//	@Success		200	{object}	response.ListEnvelope{data=[]Record}
//	@Failure		400	{object}	response.ErrorEnvelope
//	@Failure		500	{object}	response.ErrorEnvelope
//	@Router			/api/updates [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context())
	if err != nil {
		log.Printf("list updates: %v", err)
		response.InternalError(w)
		return
	}
	response.List(w, records)
}

// Publish godoc
//
//	@Summary		Publish an update
//	@Description	Uploads a release artifact and records its metadata. Accepts a JSON body with a base64 file or a multipart form with a "file" part.
//	@Tags			updates
//	@Accept			json
//	@Accept			mpfd
//	@Produce		json
//	@Param			x-admin-key	header		string				true	"Admin secret key"
//	@Param			request		body		publishJSONRequest	true	"Update fields plus base64 payload"
//	@Success		200			{object}	response.SuccessEnvelope{data=Record}
//	@Failure		400			{object}	response.ErrorEnvelope
//	@Failure		403			{object}	response.ErrorEnvelope
//	@Failure		500			{object}	response.ErrorEnvelope
//	@Router			/api/updates [post]
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	in, ok := h.parsePublishRequest(w, r)
	if !ok {
		return
	}

	rec, err := h.svc.Publish(r.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingField):
			response.BadRequest(w, "Semua field wajib diisi + file wajib ada")
		case errors.Is(err, ErrInvalidVersionType):
			response.BadRequest(w, "versionType harus 'full' atau 'lite'")
		default:
			log.Printf("publish update: %v", err)
			response.InternalError(w)
		}
		return
	}

	response.Success(w, fmt.Sprintf("Update '%s' berhasil diupload", rec.VersionType), rec)
}

// Delete godoc
//
//	@Summary		Delete an update
//	@Description	Removes one update record by its id, given as the docId query parameter.
//	@Tags			updates
//	@Produce		json
//	@Param			x-admin-key	header		string	true	"Admin secret key"
//	@Param			docId		query		string	true	"Record id to delete"
//	@Success		200			{object}	response.DeleteEnvelope{deletedDoc=Record}
//	@Failure		400			{object}	response.ErrorEnvelope
//	@Failure		403			{object}	response.ErrorEnvelope
//	@Failure		404			{object}	response.ErrorEnvelope
//	@Failure		500			{object}	response.ErrorEnvelope
//	@Router			/api/updates [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	docID := r.URL.Query().Get("docId")
	if docID == "" {
		response.BadRequest(w, "docId wajib diberikan")
		return
	}

	rec, err := h.svc.Delete(r.Context(), docID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, fmt.Sprintf("Document %s tidak ditemukan.", docID))
			return
		}
		log.Printf("delete update %s: %v", docID, err)
		response.InternalError(w)
		return
	}

	response.Deleted(w, fmt.Sprintf("Update %s berhasil dihapus.", docID), rec)
}

// parsePublishRequest extracts a PublishInput from either body encoding.
// On a malformed body it writes a 400 and returns ok=false; validation of
// field contents is left to the service.
func (h *Handler) parsePublishRequest(w http.ResponseWriter, r *http.Request) (PublishInput, bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return h.parseMultipart(w, r)
	}
	return h.parseJSON(w, r)
}

func (h *Handler) parseJSON(w http.ResponseWriter, r *http.Request) (PublishInput, bool) {
	var req publishJSONRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Body JSON tidak valid")
		return PublishInput{}, false
	}

	in := PublishInput{
		Author:      req.Author,
		Title:       req.Title,
		Version:     req.Version,
		KeyScript:   req.KeyScript,
		VersionType: req.VersionType,
	}

	if req.FileBase64 != "" {
		payload, err := base64.StdEncoding.DecodeString(req.FileBase64)
		if err != nil {
			response.BadRequest(w, "fileBase64 tidak valid")
			return PublishInput{}, false
		}
		in.File = bytes.NewReader(payload)
		in.FileSize = int64(len(payload))
	}
	return in, true
}

func (h *Handler) parseMultipart(w http.ResponseWriter, r *http.Request) (PublishInput, bool) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		response.BadRequest(w, "Form multipart tidak valid")
		return PublishInput{}, false
	}

	in := PublishInput{
		Author:      r.FormValue("author"),
		Title:       r.FormValue("title"),
		Version:     r.FormValue("version"),
		KeyScript:   r.FormValue("keyScript"),
		VersionType: r.FormValue("versionType"),
	}

	file, header, err := r.FormFile("file")
	if err == nil {
		// Closed by the stdlib when the multipart form is cleaned up.
		in.File = file
		in.FileSize = header.Size
	} else if !errors.Is(err, http.ErrMissingFile) {
		response.BadRequest(w, "Form multipart tidak valid")
		return PublishInput{}, false
	}
	return in, true
}
