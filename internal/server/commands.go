package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	syncerr "github.com/alexjbarnes/drive-sync/internal/errors"
	"github.com/alexjbarnes/drive-sync/internal/folders"
	"github.com/alexjbarnes/drive-sync/internal/syncengine"
)

// folderFinder resolves a path to an existing folder. Extracted for testability.
type folderFinder interface {
	Run(ctx context.Context, path folders.FolderPath) (*folders.Folder, error)
}

// folderOperation is satisfied by both folders.Mover and folders.Renamer.
type folderOperation interface {
	Run(ctx context.Context, folder *folders.Folder, to folders.FolderPath) error
}

type offlineRenamer interface {
	Run(ctx context.Context, id folders.FolderUuid, newPath folders.FolderPath) error
}

type offlineReconciler interface {
	RunAll(ctx context.Context) error
}

// Commands serves the folder operations the presentation layer can
// request over IPC.
type Commands struct {
	Finder         folderFinder
	Mover          folderOperation
	Renamer        folderOperation
	OfflineRenamer offlineRenamer
	OfflineSync    offlineReconciler
	// Queue receives driver callbacks posted by the presentation layer,
	// such as hydration requests for placeholders the user opened.
	Queue  chan<- syncengine.QueueItem
	Logger *slog.Logger
}

type folderRequest struct {
	Path string `json:"path"`
	To   string `json:"to"`
}

type offlineRenameRequest struct {
	UUID string `json:"uuid"`
	To   string `json:"to"`
}

func (c *Commands) register(mux *http.ServeMux) {
	mux.HandleFunc("POST /folders/move", c.handleFolderOperation("move", c.Mover))
	mux.HandleFunc("POST /folders/rename", c.handleFolderOperation("rename", c.Renamer))
	mux.HandleFunc("POST /offline/rename", c.handleOfflineRename)
	mux.HandleFunc("POST /offline/sync", c.handleOfflineSync)
	mux.HandleFunc("POST /queue", c.handleEnqueue)
}

func (c *Commands) handleFolderOperation(name string, op folderOperation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req folderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		from, err := folders.NewFolderPath(req.Path)
		if err != nil {
			c.fail(w, name, err)
			return
		}

		to, err := folders.NewFolderPath(req.To)
		if err != nil {
			c.fail(w, name, err)
			return
		}

		folder, err := c.Finder.Run(r.Context(), from)
		if err != nil {
			c.fail(w, name, err)
			return
		}

		if err := op.Run(r.Context(), folder, to); err != nil {
			c.fail(w, name, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *Commands) handleOfflineRename(w http.ResponseWriter, r *http.Request) {
	var req offlineRenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, err := folders.NewFolderUuid(req.UUID)
	if err != nil {
		c.fail(w, "offline rename", err)
		return
	}

	to, err := folders.NewFolderPath(req.To)
	if err != nil {
		c.fail(w, "offline rename", err)
		return
	}

	if err := c.OfflineRenamer.Run(r.Context(), id, to); err != nil {
		c.fail(w, "offline rename", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleOfflineSync is the reconnect hook: it replays every pending
// offline modification.
func (c *Commands) handleOfflineSync(w http.ResponseWriter, r *http.Request) {
	if err := c.OfflineSync.RunAll(r.Context()); err != nil {
		c.fail(w, "offline sync", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Commands) handleEnqueue(w http.ResponseWriter, r *http.Request) {
	var item syncengine.QueueItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if item.Kind != syncengine.KindChangeSize && item.Kind != syncengine.KindHydrate {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "unknown kind "+string(item.Kind))
		return
	}

	if _, err := folders.NewFolderPath(item.Path); err != nil {
		c.fail(w, "enqueue", err)
		return
	}

	select {
	case c.Queue <- item:
		w.WriteHeader(http.StatusAccepted)
	default:
		c.Logger.Warn("queue full, dropping item", slog.String("path", item.Path), slog.String("kind", string(item.Kind)))
		writeJSONError(w, http.StatusServiceUnavailable, "queue_full", "sync queue is full")
	}
}

func (c *Commands) fail(w http.ResponseWriter, op string, err error) {
	status, code := errorStatus(err)

	if status >= http.StatusInternalServerError {
		c.Logger.Error("folder command failed", slog.String("op", op), slog.String("error", err.Error()))
	} else {
		c.Logger.Debug("folder command rejected", slog.String("op", op), slog.String("error", err.Error()))
	}

	writeJSONError(w, status, code, err.Error())
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, syncerr.ErrInvalidPath), errors.Is(err, syncerr.ErrInvalidUUID):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, syncerr.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, syncerr.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, syncerr.ErrActionNotPermitted):
		return http.StatusForbidden, "not_permitted"
	case errors.Is(err, syncerr.ErrRemoteOperation):
		return http.StatusBadGateway, "remote_error"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeJSONError(w http.ResponseWriter, status int, errCode, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error":             errCode,
		"error_description": description,
	})
}
