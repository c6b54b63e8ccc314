package tabs

import (
	"context"
	"fmt"
	"sync"

	"github.com/anatolykoptev/go_tubehub/internal/engine"
	"github.com/anatolykoptev/go_tubehub/internal/engine/sources"
)

// fakeSource serves canned data and records every call.
type fakeSource struct {
	mu        sync.Mutex
	calls     []string
	uploadsID string
	uploadErr error
	playlists map[string][]engine.Item
	listErr   error
	events    map[sources.EventType][]engine.Item
	durations map[string]int
	chunks    [][]string
	// gate, when set, is called before answering and may block.
	gate func(call string)
}

func (f *fakeSource) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
	if f.gate != nil {
		f.gate(call)
	}
}

func (f *fakeSource) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeSource) UploadsPlaylistID(_ context.Context, channelID string) (string, error) {
	f.record("uploads:" + channelID)
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return f.uploadsID, nil
}

func (f *fakeSource) PlaylistItems(_ context.Context, playlistID string, progress engine.ProgressFunc) ([]engine.Item, error) {
	f.record("playlist:" + playlistID)
	if f.listErr != nil {
		return nil, f.listErr
	}
	items := f.playlists[playlistID]
	progress.Report(fmt.Sprintf("Loaded %d...", len(items)))
	return append([]engine.Item(nil), items...), nil
}

func (f *fakeSource) SearchBroadcasts(_ context.Context, _ string, event sources.EventType, _ engine.ProgressFunc) ([]engine.Item, error) {
	f.record("search:" + string(event))
	return append([]engine.Item(nil), f.events[event]...), nil
}

func (f *fakeSource) VideoDetails(_ context.Context, ids []string) ([]engine.Item, error) {
	f.record("details")
	f.mu.Lock()
	f.chunks = append(f.chunks, append([]string(nil), ids...))
	f.mu.Unlock()
	out := make([]engine.Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, engine.Item{ID: id, Title: "t-" + id}.WithDuration(f.durations[id]))
	}
	return out, nil
}

func items(ids ...string) []engine.Item {
	out := make([]engine.Item, len(ids))
	for i, id := range ids {
		out[i] = engine.Item{ID: id, Title: "t-" + id}
	}
	return out
}

func ids(list []engine.Item) []string {
	out := make([]string, len(list))
	for i, it := range list {
		out[i] = it.ID
	}
	return out
}

// recordingDisplay captures everything the coordinator shows.
type recordingDisplay struct {
	mu       sync.Mutex
	tab      engine.Tab
	items    []engine.Item
	status   string
	renders  []engine.Tab
	statuses []string
}

func (d *recordingDisplay) Clear(tab engine.Tab) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tab = tab
	d.items = nil
	d.status = ""
}

func (d *recordingDisplay) Render(tab engine.Tab, list []engine.Item) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tab = tab
	d.items = list
	d.renders = append(d.renders, tab)
}

func (d *recordingDisplay) SetStatus(status string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = status
	d.statuses = append(d.statuses, status)
}

func (d *recordingDisplay) snapshot() (engine.Tab, []engine.Item, string, []engine.Tab) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tab, d.items, d.status, append([]engine.Tab(nil), d.renders...)
}
