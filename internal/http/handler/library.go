package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"betawave/internal/core"
	"betawave/internal/http/handler/middleware"
	"betawave/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Register        = "POST /api/register"
	Login           = "POST /api/login"
	GetSongs        = "GET /api/songs"
	SearchSongs     = "GET /api/search"
	AddSong         = "POST /api/add_song"
	PlaySong        = "POST /api/play"
	DownloadSong    = "POST /api/download"
	DeleteSong      = "POST /api/delete"
	GetFavorites    = "GET /api/favorites"
	ToggleFavorite  = "POST /api/toggle_favorite"
	IsFavorite      = "POST /api/is_favorite"
	GetConfig       = "GET /get_config"
	SaveConfig      = "POST /save_config"
	AdminUsers      = "GET /admin/users"
	AdminDeleteUser = "POST /admin/delete_user"
)

type LibraryHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	library          MusicService
}

func NewLibraryHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, musicService MusicService) *LibraryHandler {
	return &LibraryHandler{
		logs:             logger,
		requestValidator: requestValidator,
		library:          musicService,
	}
}

func (h *LibraryHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var payload payload.RegisterRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err == nil {
		err = payload.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not register",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	err = h.library.Register(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Registration failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserExists) {
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "Registration successful"}, http.StatusCreated, requestId)
}

func (h *LibraryHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var payload payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err == nil {
		err = payload.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	token, err := h.library.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *LibraryHandler) HandleGetSongs(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	ident, ok := h.identity(w, r, GetSongs, requestId)
	if !ok {
		return
	}

	songs, err := h.library.ListSongs(r.Context(), ident)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve songs",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to list songs",
			"error", err,
			"handler", GetSongs,
			"request_id", requestId)
		return
	}

	h.respond(w, songs, http.StatusOK, requestId)
}

func (h *LibraryHandler) HandleSearchSongs(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	ident, ok := h.identity(w, r, SearchSongs, requestId)
	if !ok {
		return
	}

	term := r.URL.Query().Get("term")

	songs, err := h.library.SearchSongs(r.Context(), ident, term)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not search songs",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to search songs",
			"error", err,
			"term", term,
			"handler", SearchSongs,
			"request_id", requestId)
		return
	}

	h.respond(w, songs, http.StatusOK, requestId)
}

func (h *LibraryHandler) HandleAddSong(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	ident, ok := h.identity(w, r, AddSong, requestId)
	if !ok {
		return
	}

	var payload payload.AddSongRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err == nil {
		err = payload.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not add song",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", AddSong,
			"request_id", requestId)
		return
	}

	song, err := h.library.AddSong(r.Context(), ident, payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Could not add song",
		}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrSongExists), errors.Is(err, core.ErrMissingTitle):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to add song",
			"error", err,
			"url", payload.SongURL,
			"handler", AddSong,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"success": true,
		"song_id": song.ID,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *LibraryHandler) HandlePlaySong(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	ident, ok := h.identity(w, r, PlaySong, requestId)
	if !ok {
		return
	}

	var payload payload.SongActionRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err == nil {
		err = payload.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not play song",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", PlaySong,
			"request_id", requestId)
		return
	}

	info, err := h.library.ResolveStream(r.Context(), ident, payload.SongID)
	if err != nil {
		if errors.Is(err, core.ErrSongNotFound) {
			h.respond(w, Response{
				Message: "Could not play song",
				Error:   err.Error(),
			}, http.StatusNotFound,
				requestId)
			h.logs.Errorw("song not found",
				"songId", payload.SongID,
				"handler", PlaySong,
				"request_id", requestId)
			return
		}

		// extraction failed, hand the raw source URL back as a fallback
		resp := map[string]any{
			"error": "could not resolve audio stream",
		}
		if info.SourceURL != "" {
			resp["fallback_url"] = info.SourceURL
		}
		h.respond(w, resp, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to resolve stream",
			"error", err,
			"songId", payload.SongID,
			"handler", PlaySong,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"audio_stream_url": info.StreamURL,
		"song_id":          info.SongID,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *LibraryHandler) HandleDownloadSong(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	ident, ok := h.identity(w, r, DownloadSong, requestId)
	if !ok {
		return
	}

	var payload payload.DownloadRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err == nil {
		err = payload.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not download song",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", DownloadSong,
			"request_id", requestId)
		return
	}

	info, err := h.library.Download(r.Context(), ident, payload.SongID, payload.Format)
	if err != nil {
		resp := Response{
			Message: "Could not download song",
		}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrSongNotFound):
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		case errors.Is(err, core.ErrInvalidFormat):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to resolve download",
			"error", err,
			"songId", payload.SongID,
			"handler", DownloadSong,
			"request_id", requestId)
		return
	}

	h.respond(w, info, http.StatusOK, requestId)
}

func (h *LibraryHandler) HandleDeleteSong(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	ident, ok := h.identity(w, r, DeleteSong, requestId)
	if !ok {
		return
	}

	var payload payload.SongActionRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err == nil {
		err = payload.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not delete song",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", DeleteSong,
			"request_id", requestId)
		return
	}

	err = h.library.DeleteSong(r.Context(), ident, payload.SongID)
	if err != nil {
		resp := Response{
			Message: "Could not delete song",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrSongNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to delete song",
			"error", err,
			"songId", payload.SongID,
			"handler", DeleteSong,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]any{"success": true}, http.StatusOK, requestId)
}

func (h *LibraryHandler) HandleGetFavorites(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	ident, ok := h.identity(w, r, GetFavorites, requestId)
	if !ok {
		return
	}

	songs, err := h.library.ListFavorites(r.Context(), ident)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve favorites",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to list favorites",
			"error", err,
			"handler", GetFavorites,
			"request_id", requestId)
		return
	}

	h.respond(w, songs, http.StatusOK, requestId)
}

func (h *LibraryHandler) HandleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	ident, ok := h.identity(w, r, ToggleFavorite, requestId)
	if !ok {
		return
	}

	var payload payload.SongActionRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err == nil {
		err = payload.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not toggle favorite",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", ToggleFavorite,
			"request_id", requestId)
		return
	}

	state, err := h.library.ToggleFavorite(r.Context(), ident, payload.SongID)
	if err != nil {
		resp := Response{
			Message: "Could not toggle favorite",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrSongNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to toggle favorite",
			"error", err,
			"songId", payload.SongID,
			"handler", ToggleFavorite,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]any{"is_favorite": state}, http.StatusOK, requestId)
}

func (h *LibraryHandler) HandleIsFavorite(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	ident, ok := h.identity(w, r, IsFavorite, requestId)
	if !ok {
		return
	}

	var payload payload.SongActionRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err == nil {
		err = payload.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not check favorite",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", IsFavorite,
			"request_id", requestId)
		return
	}

	state, err := h.library.IsFavorite(r.Context(), ident, payload.SongID)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not check favorite",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to check favorite",
			"error", err,
			"songId", payload.SongID,
			"handler", IsFavorite,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]any{"is_favorite": state}, http.StatusOK, requestId)
}

func (h *LibraryHandler) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	ident, ok := h.identity(w, r, GetConfig, requestId)
	if !ok {
		return
	}

	cfg, err := h.library.GetConfig(r.Context(), ident)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve config",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get user config",
			"error", err,
			"handler", GetConfig,
			"request_id", requestId)
		return
	}

	h.respond(w, cfg, http.StatusOK, requestId)
}

func (h *LibraryHandler) HandleSaveConfig(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	ident, ok := h.identity(w, r, SaveConfig, requestId)
	if !ok {
		return
	}

	var payload payload.SaveConfigRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err == nil {
		err = payload.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not save config",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SaveConfig,
			"request_id", requestId)
		return
	}

	if err := h.library.SaveConfig(r.Context(), ident, payload.ToRecord()); err != nil {
		h.respond(w, Response{
			Message: "Could not save config",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to save user config",
			"error", err,
			"handler", SaveConfig,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]any{"success": true}, http.StatusOK, requestId)
}

func (h *LibraryHandler) HandleAdminUsers(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	ident, ok := h.identity(w, r, AdminUsers, requestId)
	if !ok {
		return
	}

	users, err := h.library.ListUsers(r.Context(), ident)
	if err != nil {
		resp := Response{
			Message: "Could not retrieve users",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrNotAuthorized) {
			httpCode = http.StatusForbidden
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to list users",
			"error", err,
			"handler", AdminUsers,
			"request_id", requestId)
		return
	}

	h.respond(w, users, http.StatusOK, requestId)
}

func (h *LibraryHandler) HandleAdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	ident, ok := h.identity(w, r, AdminDeleteUser, requestId)
	if !ok {
		return
	}

	var payload payload.DeleteUserRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err == nil {
		err = payload.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not delete user",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", AdminDeleteUser,
			"request_id", requestId)
		return
	}

	err = h.library.DeleteUser(r.Context(), ident, payload.UserID)
	if err != nil {
		resp := Response{
			Message: "Could not delete user",
		}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrNotAuthorized), errors.Is(err, core.ErrAdminProtected):
			httpCode = http.StatusForbidden
			resp.Error = err.Error()
		case errors.Is(err, core.ErrUserNotFound):
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to delete user",
			"error", err,
			"userId", payload.UserID,
			"handler", AdminDeleteUser,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]any{"success": true}, http.StatusOK, requestId)
}

func (h *LibraryHandler) requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}

func (h *LibraryHandler) identity(w http.ResponseWriter, r *http.Request, handlerName, requestId string) (core.Identity, bool) {
	ident, ok := r.Context().Value(middleware.IdentityKey).(core.Identity)
	if !ok {
		h.respond(w, Response{
			Message: "Authentication required",
			Error:   "no identity resolved for request",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("request reached handler without identity",
			"handler", handlerName,
			"request_id", requestId)
		return core.Identity{}, false
	}
	return ident, true
}

func (h *LibraryHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
