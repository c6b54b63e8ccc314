package tabs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_tubehub/internal/engine"
	"github.com/anatolykoptev/go_tubehub/internal/engine/sources"
)

func newTestCoordinator(src Source) (*Coordinator, *recordingDisplay) {
	d := &recordingDisplay{}
	rs := NewResolvers(src, Settings{
		ChannelID:          testChannel,
		PodcastsPlaylistID: testPodcasts,
	})
	return NewCoordinator(d, rs), d
}

func TestCoordinator_Renders(t *testing.T) {
	src := &fakeSource{
		uploadsID: testUploads,
		playlists: map[string][]engine.Item{testUploads: items("a", "b")},
	}
	c, d := newTestCoordinator(src)

	tab, token, state := c.State()
	assert.Equal(t, StateIdle, state)
	assert.Zero(t, token)
	assert.Empty(t, tab)

	out := c.Select(context.Background(), engine.TabVideos)
	require.NoError(t, out.Err)
	assert.Equal(t, StateRendered, out.State)
	assert.Equal(t, uint64(1), out.Token)

	gotTab, gotItems, status, _ := d.snapshot()
	assert.Equal(t, engine.TabVideos, gotTab)
	assert.Equal(t, []string{"a", "b"}, ids(gotItems))
	assert.Empty(t, status)

	tab, token, state = c.State()
	assert.Equal(t, engine.TabVideos, tab)
	assert.Equal(t, uint64(1), token)
	assert.Equal(t, StateRendered, state)
}

func TestCoordinator_EmptyStatus(t *testing.T) {
	src := &fakeSource{events: map[sources.EventType][]engine.Item{}}
	c, d := newTestCoordinator(src)

	out := c.Select(context.Background(), engine.TabLive)
	assert.Equal(t, StateRendered, out.State)
	_, gotItems, status, _ := d.snapshot()
	assert.Empty(t, gotItems)
	assert.Equal(t, StatusEmpty, status)
}

func TestCoordinator_NotConfigured(t *testing.T) {
	src := &fakeSource{}
	d := &recordingDisplay{}
	c := NewCoordinator(d, NewResolvers(src, Settings{ChannelID: testChannel}))

	out := c.Select(context.Background(), engine.TabPodcasts)
	require.NoError(t, out.Err)
	assert.Empty(t, src.Calls())
	_, _, status, renders := d.snapshot()
	assert.Equal(t, StatusPodcastsNotConfigured, status)
	assert.Empty(t, renders)
}

func TestCoordinator_Failure(t *testing.T) {
	apiErr := &engine.HTTPError{StatusCode: 403, Message: "API key not valid"}
	src := &fakeSource{uploadErr: apiErr}
	c, d := newTestCoordinator(src)

	out := c.Select(context.Background(), engine.TabVideos)
	assert.Equal(t, StateFailed, out.State)
	var httpErr *engine.HTTPError
	require.ErrorAs(t, out.Err, &httpErr)
	assert.Equal(t, 403, httpErr.StatusCode)

	_, _, status, renders := d.snapshot()
	assert.Equal(t, StatusLoadFailed, status)
	assert.Empty(t, renders)
	_, _, state := c.State()
	assert.Equal(t, StateFailed, state)
}

func TestCoordinator_UnknownTab(t *testing.T) {
	c, d := newTestCoordinator(&fakeSource{})
	out := c.Select(context.Background(), engine.Tab("clips"))
	assert.Equal(t, StateFailed, out.State)
	require.ErrorIs(t, out.Err, ErrUnknownTab)
	_, _, status, _ := d.snapshot()
	assert.Equal(t, StatusUnknownTab, status)
}

// gatedSource blocks chosen calls until released and signals on entry.
type gatedSource struct {
	*fakeSource
	mu      sync.Mutex
	fired   map[string]bool
	entered map[string]chan struct{}
	release map[string]chan struct{}
}

func newGatedSource(src *fakeSource, calls ...string) *gatedSource {
	g := &gatedSource{
		fakeSource: src,
		fired:      make(map[string]bool),
		entered:    make(map[string]chan struct{}),
		release:    make(map[string]chan struct{}),
	}
	for _, call := range calls {
		g.entered[call] = make(chan struct{})
		g.release[call] = make(chan struct{})
	}
	src.gate = func(call string) {
		g.mu.Lock()
		entered, ok := g.entered[call]
		first := ok && !g.fired[call]
		g.fired[call] = true
		release := g.release[call]
		g.mu.Unlock()
		if first {
			close(entered)
			<-release
		}
	}
	return g
}

func (g *gatedSource) waitEntered(t *testing.T, call string) {
	t.Helper()
	g.mu.Lock()
	ch := g.entered[call]
	g.mu.Unlock()
	require.NotNil(t, ch, "unknown gate %s", call)
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatalf("call %s never started", call)
	}
}

func TestCoordinator_OnlyLatestSelectionRenders(t *testing.T) {
	const (
		callVideos   = "uploads:" + testChannel
		callLive     = "search:live"
		callPodcasts = "playlist:" + testPodcasts
	)
	src := &fakeSource{
		uploadsID: testUploads,
		playlists: map[string][]engine.Item{
			testUploads:  items("video"),
			testPodcasts: items("podcast"),
		},
		events: map[sources.EventType][]engine.Item{sources.EventLive: items("live")},
	}
	g := newGatedSource(src, callVideos, callLive, callPodcasts)
	c, d := newTestCoordinator(g)

	outcomes := make(map[engine.Tab]Outcome)
	var mu sync.Mutex
	var wg sync.WaitGroup
	start := func(tab engine.Tab, call string) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := c.Select(context.Background(), tab)
			mu.Lock()
			outcomes[tab] = out
			mu.Unlock()
		}()
		g.waitEntered(t, call)
	}

	start(engine.TabVideos, callVideos)
	start(engine.TabLive, callLive)
	start(engine.TabPodcasts, callPodcasts)

	// Newest finishes first, then the stale ones.
	close(g.release[callPodcasts])
	close(g.release[callVideos])
	close(g.release[callLive])
	wg.Wait()

	assert.Equal(t, StateDiscarded, outcomes[engine.TabVideos].State)
	assert.Equal(t, StateDiscarded, outcomes[engine.TabLive].State)
	assert.Equal(t, StateRendered, outcomes[engine.TabPodcasts].State)
	assert.Equal(t, uint64(3), outcomes[engine.TabPodcasts].Token)

	tab, shown, status, renders := d.snapshot()
	assert.Equal(t, engine.TabPodcasts, tab)
	assert.Equal(t, []string{"podcast"}, ids(shown))
	assert.Empty(t, status)
	assert.Equal(t, []engine.Tab{engine.TabPodcasts}, renders)
}

func TestCoordinator_StaleFailureIsSilent(t *testing.T) {
	const callVideos = "uploads:" + testChannel
	boom := errors.New("boom")
	src := &fakeSource{
		uploadErr: boom,
		playlists: map[string][]engine.Item{testPodcasts: items("podcast")},
	}
	g := newGatedSource(src, callVideos)
	c, d := newTestCoordinator(g)

	done := make(chan Outcome, 1)
	go func() { done <- c.Select(context.Background(), engine.TabVideos) }()
	g.waitEntered(t, callVideos)

	newer := c.Select(context.Background(), engine.TabPodcasts)
	assert.Equal(t, StateRendered, newer.State)

	close(g.release[callVideos])
	stale := <-done
	assert.Equal(t, StateDiscarded, stale.State)
	require.ErrorIs(t, stale.Err, boom)

	_, shown, status, _ := d.snapshot()
	assert.Equal(t, []string{"podcast"}, ids(shown))
	assert.NotEqual(t, StatusLoadFailed, status)
	assert.True(t, c.IsCurrent(newer.Token))
	assert.False(t, c.IsCurrent(stale.Token))
}

func TestCoordinator_StaleProgressIsDropped(t *testing.T) {
	const callVideos = "uploads:" + testChannel
	src := &fakeSource{
		uploadsID: testUploads,
		playlists: map[string][]engine.Item{testUploads: items("a"), testPodcasts: items("p")},
	}
	g := newGatedSource(src, callVideos)
	c, d := newTestCoordinator(g)

	done := make(chan Outcome, 1)
	go func() { done <- c.Select(context.Background(), engine.TabVideos) }()
	g.waitEntered(t, callVideos)
	c.Select(context.Background(), engine.TabPodcasts)

	d.mu.Lock()
	before := len(d.statuses)
	d.mu.Unlock()

	close(g.release[callVideos])
	<-done

	d.mu.Lock()
	defer d.mu.Unlock()
	assert.Len(t, d.statuses, before, "superseded load must not report progress")
}
