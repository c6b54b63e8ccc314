package tubeserver

import (
	"sync"

	"github.com/anatolykoptev/go_tubehub/internal/engine"
	"github.com/anatolykoptev/go_tubehub/internal/toolutil"
)

// MaxCardTitleRunes caps card titles.
const MaxCardTitleRunes = 100

// Card is one rendered grid entry.
type Card struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	EmbedURL string `json:"embed_url"`
	Date     string `json:"date,omitempty"`
}

// Snapshot is a point-in-time copy of the view.
type Snapshot struct {
	Tab    engine.Tab `json:"tab"`
	Status string     `json:"status"`
	Count  int        `json:"count"`
	Cards  []Card     `json:"cards"`
}

// View is the in-memory rendering target of the coordinator.
type View struct {
	mu     sync.RWMutex
	tab    engine.Tab
	status string
	cards  []Card
}

func NewView() *View {
	return &View{cards: []Card{}}
}

func (v *View) Clear(tab engine.Tab) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tab = tab
	v.status = ""
	v.cards = []Card{}
}

func (v *View) Render(tab engine.Tab, items []engine.Item) {
	cards := make([]Card, 0, len(items))
	for _, it := range items {
		cards = append(cards, NewCard(it))
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tab = tab
	v.cards = cards
}

func (v *View) SetStatus(status string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.status = status
}

func (v *View) Snapshot() Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return Snapshot{
		Tab:    v.tab,
		Status: v.status,
		Count:  len(v.cards),
		Cards:  append([]Card{}, v.cards...),
	}
}

// NewCard renders one item.
func NewCard(it engine.Item) Card {
	return Card{
		ID:       it.ID,
		Title:    engine.TruncateRunes(it.Title, MaxCardTitleRunes, "..."),
		EmbedURL: toolutil.EmbedURL(it.ID),
		Date:     toolutil.FormatDate(it.PublishedAt),
	}
}
