package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/norahazel/mydiary-backend/internal/domain"
	"github.com/norahazel/mydiary-backend/internal/service/diary"
)

// diaryService defines the minimal interface needed by DiaryHandler.
type diaryService interface {
	CreateEntry(ctx context.Context, input diary.CreateEntryInput) (*domain.EntryView, error)
	ListEntries(ctx context.Context) ([]domain.EntryView, error)
	GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.EntryView, error)
	UpdateEntry(ctx context.Context, input diary.UpdateEntryInput) (*domain.EntryView, error)
	DeleteEntry(ctx context.Context, entryID uuid.UUID) error
	LockEntry(ctx context.Context, input diary.LockEntryInput) (*domain.EntryView, error)
	UnlockEntry(ctx context.Context, entryID uuid.UUID) (*domain.EntryView, error)
	ListMoods(ctx context.Context) ([]*domain.Mood, error)
}

// unlockGate is the session unlock entry point used by the verify-pin
// endpoint.
type unlockGate interface {
	Unlock(ctx context.Context, entryID uuid.UUID, pin string) (bool, error)
}

// DiaryHandler serves diary REST endpoints. All routes require an
// authenticated user.
type DiaryHandler struct {
	svc  diaryService
	gate unlockGate
	log  *slog.Logger
}

// NewDiaryHandler creates a DiaryHandler.
func NewDiaryHandler(svc diaryService, gate unlockGate, logger *slog.Logger) *DiaryHandler {
	return &DiaryHandler{svc: svc, gate: gate, log: logger.With("handler", "diary")}
}

type createEntryRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Emotion    string `json:"emotion"`
	Tag        string `json:"tag"`
	Lock       bool   `json:"lock"`
	PIN        string `json:"pin"`
	ConfirmPIN string `json:"confirmPin"`
}

type updateEntryRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Emotion    *string `json:"emotion"`
	Tag        *string `json:"tag"`
	Lock       *bool   `json:"lock"`
	PIN        string  `json:"pin"`
	ConfirmPIN string  `json:"confirmPin"`
}

type lockEntryRequest struct {
	PIN        string `json:"pin"`
	ConfirmPIN string `json:"confirmPin"`
}

type verifyPINRequest struct {
	PIN string `json:"pin"`
}

type entryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Emotion   string    `json:"emotion,omitempty"`
	Glyph     string    `json:"glyph,omitempty"`
	Tag       string    `json:"tag,omitempty"`
	IsLocked  bool      `json:"isLocked"`
	PIN       string    `json:"pin,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type moodResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji,omitempty"`
}

// List handles GET /api/entries. Entries are returned newest first;
// locked entries are included with their lock state.
func (h *DiaryHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListEntries(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]entryResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, toEntryResponse(&v))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /api/entries.
func (h *DiaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.svc.CreateEntry(r.Context(), diary.CreateEntryInput{
		Title:      req.Title,
		Content:    req.Content,
		Emotion:    req.Emotion,
		Tag:        req.Tag,
		Lock:       req.Lock,
		PIN:        req.PIN,
		ConfirmPIN: req.ConfirmPIN,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(view))
}

// Get handles GET /api/entries/{id}. Locked entries that have not been
// unlocked in this session are refused with 423.
func (h *DiaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	entryID, ok := h.entryID(w, r)
	if !ok {
		return
	}

	view, err := h.svc.GetEntry(r.Context(), entryID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(view))
}

// Update handles PATCH /api/entries/{id}. Absent fields keep their
// current values.
func (h *DiaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	entryID, ok := h.entryID(w, r)
	if !ok {
		return
	}

	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.svc.UpdateEntry(r.Context(), diary.UpdateEntryInput{
		EntryID:    entryID,
		Title:      req.Title,
		Content:    req.Content,
		Emotion:    req.Emotion,
		Tag:        req.Tag,
		Lock:       req.Lock,
		PIN:        req.PIN,
		ConfirmPIN: req.ConfirmPIN,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(view))
}

// Delete handles DELETE /api/entries/{id}.
func (h *DiaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	entryID, ok := h.entryID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), entryID); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Lock handles POST /api/entries/{id}/lock.
func (h *DiaryHandler) Lock(w http.ResponseWriter, r *http.Request) {
	entryID, ok := h.entryID(w, r)
	if !ok {
		return
	}

	var req lockEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.svc.LockEntry(r.Context(), diary.LockEntryInput{
		EntryID:    entryID,
		PIN:        req.PIN,
		ConfirmPIN: req.ConfirmPIN,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(view))
}

// Unlock handles POST /api/entries/{id}/unlock. This is the owner-level
// operation that removes the lock and clears the PIN, as opposed to
// VerifyPIN which only unlocks for the current session.
func (h *DiaryHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	entryID, ok := h.entryID(w, r)
	if !ok {
		return
	}

	view, err := h.svc.UnlockEntry(r.Context(), entryID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(view))
}

// VerifyPIN handles POST /api/entries/{id}/verify-pin. A wrong PIN is
// not an error: the response is 200 with verified=false. Unknown entry
// IDs still map to 404 so the client can tell the two cases apart.
func (h *DiaryHandler) VerifyPIN(w http.ResponseWriter, r *http.Request) {
	entryID, ok := h.entryID(w, r)
	if !ok {
		return
	}

	var req verifyPINRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	verified, err := h.gate.Unlock(r.Context(), entryID, req.PIN)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"verified": verified})
}

// Moods handles GET /api/moods.
func (h *DiaryHandler) Moods(w http.ResponseWriter, r *http.Request) {
	moods, err := h.svc.ListMoods(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]moodResponse, 0, len(moods))
	for _, m := range moods {
		mr := moodResponse{ID: m.ID.String(), Name: m.Name}
		if m.Emoji != nil {
			mr.Emoji = *m.Emoji
		}
		resp = append(resp, mr)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *DiaryHandler) entryID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *DiaryHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if writeDomainError(w, err) {
		return
	}
	h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func toEntryResponse(v *domain.EntryView) entryResponse {
	return entryResponse{
		ID:        v.ID.String(),
		Title:     v.Title,
		Content:   v.Content,
		Emotion:   v.Emotion,
		Glyph:     v.Glyph,
		Tag:       v.Tag,
		IsLocked:  v.IsLocked,
		PIN:       v.PIN,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
