package e2e_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/alexjbarnes/drive-sync/internal/drive"
	"github.com/alexjbarnes/drive-sync/internal/filesync"
	"github.com/alexjbarnes/drive-sync/internal/folders"
	"github.com/alexjbarnes/drive-sync/internal/ipc"
	"github.com/alexjbarnes/drive-sync/internal/keylock"
	"github.com/alexjbarnes/drive-sync/internal/remote"
	"github.com/alexjbarnes/drive-sync/internal/server"
	"github.com/alexjbarnes/drive-sync/internal/state"
	"github.com/alexjbarnes/drive-sync/internal/syncengine"
	"github.com/alexjbarnes/drive-sync/internal/telemetry"
	"github.com/stretchr/testify/require"
)

const (
	apiToken = "e2e-api-token"
	ipcToken = "e2e-ipc-token"

	rootID folders.FolderUuid = "00000000-0000-0000-0000-0000000000a1"
	docsID folders.FolderUuid = "00000000-0000-0000-0000-0000000000a2"
	workID folders.FolderUuid = "00000000-0000-0000-0000-0000000000a3"
)

// backendCall is one folder mutation received by the fake backend.
type backendCall struct {
	Op   string
	UUID string
	Body map[string]string
}

// backend is a fake drive API that records folder mutations and serves
// file content from memory.
type backend struct {
	mu      sync.Mutex
	calls   []backendCall
	files   map[string][]byte
	uploads int
}

func (b *backend) handler() http.Handler {
	mux := http.NewServeMux()

	folderOp := func(op string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, `{"error":"bad body"}`, http.StatusBadRequest)
				return
			}

			b.mu.Lock()
			b.calls = append(b.calls, backendCall{Op: op, UUID: r.PathValue("uuid"), Body: body})
			b.mu.Unlock()

			w.WriteHeader(http.StatusNoContent)
		}
	}

	mux.HandleFunc("PUT /folders/{uuid}/move", folderOp("move"))
	mux.HandleFunc("PUT /folders/{uuid}/rename", folderOp("rename"))

	mux.HandleFunc("GET /files/content", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		content, ok := b.files[r.URL.Query().Get("path")]
		b.mu.Unlock()

		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"no such file"}`))
			return
		}

		w.Write(content)
	})

	mux.HandleFunc("PUT /files/content", func(w http.ResponseWriter, r *http.Request) {
		content, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, `{"error":"read failed"}`, http.StatusBadRequest)
			return
		}

		b.mu.Lock()
		b.files[r.URL.Query().Get("path")] = content
		b.uploads++
		b.mu.Unlock()

		w.WriteHeader(http.StatusNoContent)
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+apiToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func (b *backend) folderCalls() []backendCall {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]backendCall(nil), b.calls...)
}

func (b *backend) setFile(path string, content []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.files[path] = content
}

func (b *backend) file(path string) ([]byte, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.files[path], b.uploads
}

// harness holds the full e2e stack: a fake backend, a bbolt state
// database, and the IPC server wired exactly as cmd/drive-sync does.
type harness struct {
	URL     string
	SyncDir string
	State   *state.State
	Backend *backend
	Broker  *ipc.Broker
	Client  *http.Client
}

// newHarness seeds the folder index with /, /docs and /work and starts
// the IPC server, broker, and dispatcher until the test ends.
func newHarness(t *testing.T) *harness {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)

	be := &backend{files: map[string][]byte{}}
	apiServer := httptest.NewServer(be.handler())
	t.Cleanup(apiServer.Close)

	appState, err := state.LoadAt(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { appState.Close() })

	repo := appState.Folders()
	for _, f := range []*folders.Folder{
		{UUID: rootID, Path: folders.MustFolderPath("/"), Status: folders.StatusExists},
		{UUID: docsID, Path: folders.MustFolderPath("/docs"), Parent: rootID, Status: folders.StatusExists},
		{UUID: workID, Path: folders.MustFolderPath("/work"), Parent: rootID, Status: folders.StatusExists},
	} {
		require.NoError(t, repo.Update(context.Background(), f))
	}

	client := remote.NewClient(apiServer.URL, apiToken, 0)
	broker := ipc.NewBroker(16, logger)

	locks := keylock.New()
	offline := appState.OfflineFolders()
	events := appState.Events()

	finder := folders.NewFinder(repo)
	mover := folders.NewMover(repo, client, finder, locks, logger)
	renamer := folders.NewRenamer(repo, client, broker, locks, logger)
	synchronizer := folders.NewSynchronizeOfflineModifications(offline, repo, renamer, events, locks, logger)
	offlineSync := folders.NewOfflineSync(offline, synchronizer, 2, logger)
	offlineRenamer := folders.NewOfflineRenamer(offline, repo, events, locks, logger)

	syncDir := t.TempDir()
	root := drive.NewRoot(syncDir)
	reporter := telemetry.NewCollector(appState, "e2e", logger)

	dispatcher := syncengine.NewDispatcher(
		syncengine.NewHandleChangeSize(filesync.NewOrchestrator(root, client, appState, logger), reporter, logger),
		syncengine.NewHandleHydrate(drive.NewHydrator(root, client, appState, logger), reporter, logger),
		2,
		logger,
	)

	queue := make(chan syncengine.QueueItem, 16)

	mux := server.NewMux(server.MuxConfig{
		Events: broker,
		Commands: &server.Commands{
			Finder:         finder,
			Mover:          mover,
			Renamer:        renamer,
			OfflineRenamer: offlineRenamer,
			OfflineSync:    offlineSync,
			Queue:          queue,
			Logger:         logger,
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		broker.Run(ctx)
	}()

	go func() {
		defer wg.Done()
		dispatcher.Run(ctx, queue)
	}()

	ts := httptest.NewServer(server.RequireToken(ipcToken, logger)(mux))

	t.Cleanup(func() {
		ts.Close()
		cancel()
		wg.Wait()
	})

	return &harness{
		URL:     ts.URL,
		SyncDir: syncDir,
		State:   appState,
		Backend: be,
		Broker:  broker,
		Client:  ts.Client(),
	}
}

// post sends an authenticated JSON command to the IPC server.
func (h *harness) post(t *testing.T, path, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, h.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+ipcToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.Client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func (h *harness) folder(t *testing.T, id folders.FolderUuid) *folders.Folder {
	t.Helper()

	f, err := h.State.Folders().SearchByPartial(context.Background(), folders.Criteria{UUID: id})
	require.NoError(t, err)
	require.NotNil(t, f)

	return f
}
