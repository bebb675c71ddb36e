package folders

import (
	"context"
	"slices"
	"sync"
)

// MemoryRepository is an in-memory Repository. Folders are stored and
// returned as copies, so callers only change the index through Update.
type MemoryRepository struct {
	mu      sync.RWMutex
	folders map[FolderUuid]*Folder
}

func NewMemoryRepository(folders ...*Folder) *MemoryRepository {
	r := &MemoryRepository{folders: make(map[FolderUuid]*Folder)}
	for _, f := range folders {
		r.folders[f.UUID] = f.Clone()
	}

	return r
}

func (r *MemoryRepository) SearchByPartial(_ context.Context, criteria Criteria) (*Folder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range sortedKeys(r.folders) {
		if f := r.folders[id]; criteria.Matches(f.Attributes()) {
			return f.Clone(), nil
		}
	}

	return nil, nil
}

func (r *MemoryRepository) Update(_ context.Context, folder *Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.folders[folder.UUID] = folder.Clone()

	return nil
}

// MemoryOfflineRepository is an in-memory OfflineRepository.
type MemoryOfflineRepository struct {
	mu      sync.RWMutex
	folders map[FolderUuid]*OfflineFolder
}

func NewMemoryOfflineRepository(folders ...*OfflineFolder) *MemoryOfflineRepository {
	r := &MemoryOfflineRepository{folders: make(map[FolderUuid]*OfflineFolder)}
	for _, f := range folders {
		r.folders[f.UUID] = f.Clone()
	}

	return r
}

func (r *MemoryOfflineRepository) SearchByPartial(_ context.Context, criteria Criteria) (*OfflineFolder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range sortedKeys(r.folders) {
		if f := r.folders[id]; criteria.Matches(f.Attributes()) {
			return f.Clone(), nil
		}
	}

	return nil, nil
}

func (r *MemoryOfflineRepository) Update(_ context.Context, folder *OfflineFolder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.folders[folder.UUID] = folder.Clone()

	return nil
}

func (r *MemoryOfflineRepository) Delete(_ context.Context, id FolderUuid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.folders, id)

	return nil
}

func (r *MemoryOfflineRepository) UUIDs(_ context.Context) ([]FolderUuid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedKeys(r.folders), nil
}

// MemoryEventRepository is an in-memory EventRepository.
type MemoryEventRepository struct {
	mu     sync.RWMutex
	events map[FolderUuid][]FolderRenamedDomainEvent
}

func NewMemoryEventRepository() *MemoryEventRepository {
	return &MemoryEventRepository{events: make(map[FolderUuid][]FolderRenamedDomainEvent)}
}

func (r *MemoryEventRepository) Store(_ context.Context, event FolderRenamedDomainEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events[event.AggregateID] = append(r.events[event.AggregateID], event)

	return nil
}

func (r *MemoryEventRepository) Search(_ context.Context, aggregateID FolderUuid) ([]FolderRenamedDomainEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.events[aggregateID]), nil
}

func (r *MemoryEventRepository) Delete(_ context.Context, aggregateID FolderUuid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.events, aggregateID)

	return nil
}

func sortedKeys[V any](m map[FolderUuid]V) []FolderUuid {
	keys := make([]FolderUuid, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
