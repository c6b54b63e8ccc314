// Package tubeserver exposes the channel tabs as MCP tools.
package tubeserver

import (
	"context"
	"log/slog"

	"github.com/anatolykoptev/go_tubehub/internal/engine"
	"github.com/anatolykoptev/go_tubehub/internal/engine/tabs"
	"github.com/anatolykoptev/go_tubehub/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ChannelTabInput selects a tab.
type ChannelTabInput struct {
	Tab string `json:"tab,omitempty" jsonschema:"Tab to load: videos, shorts, live, podcasts (default: the configured default tab)"`
}

// ChannelViewInput takes no arguments.
type ChannelViewInput struct{}

// ChannelOutput is the view plus the state of the load behind it.
type ChannelOutput struct {
	View       Snapshot `json:"view"`
	Token      uint64   `json:"token"`
	State      string   `json:"state"`
	Superseded bool     `json:"superseded,omitempty"`
}

// Tools binds the tool handlers to one coordinator and its view.
type Tools struct {
	coord      *tabs.Coordinator
	view       *View
	defaultTab engine.Tab
}

func NewTools(coord *tabs.Coordinator, view *View, defaultTab engine.Tab) *Tools {
	return &Tools{coord: coord, view: view, defaultTab: defaultTab}
}

// RegisterTools registers channel_tab and channel_view on the given MCP server.
func RegisterTools(server *mcp.Server, t *Tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "channel_tab",
		Description: "Load one channel tab (videos, shorts, live, podcasts) and return its cards: id, title, embed URL and publish date. Blocks until the load settles. If another selection started meanwhile, superseded is true and the returned view belongs to the newer selection.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ChannelTabInput) (*mcp.CallToolResult, ChannelOutput, error) {
		return nil, t.SelectTab(ctx, input), nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "channel_view",
		Description: "Return the currently displayed channel tab, its status line and cards without loading anything.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, _ ChannelViewInput) (*mcp.CallToolResult, ChannelOutput, error) {
		return nil, t.Current(), nil
	})
}

// SelectTab runs a load for the requested tab.
func (t *Tools) SelectTab(ctx context.Context, input ChannelTabInput) ChannelOutput {
	tab := toolutil.NormTab(input.Tab, t.defaultTab)
	out := t.coord.Select(ctx, tab)
	slog.Info("channel_tab",
		slog.String("tab", string(tab)),
		slog.Uint64("token", out.Token),
		slog.String("state", string(out.State)))
	return ChannelOutput{
		View:       t.view.Snapshot(),
		Token:      out.Token,
		State:      string(out.State),
		Superseded: out.State == tabs.StateDiscarded,
	}
}

// Current reports the view without loading.
func (t *Tools) Current() ChannelOutput {
	_, token, state := t.coord.State()
	return ChannelOutput{
		View:  t.view.Snapshot(),
		Token: token,
		State: string(state),
	}
}
