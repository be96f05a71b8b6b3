package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/lgoncalvess/WordWar-Server/game/engine"
	"github.com/lgoncalvess/WordWar-Server/game/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"WordWar Server",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`WordWar Server - MCP Interface

This is a thin client that proxies all requests to the REST API server.

WordWar is a real-time multiplayer word game. Players gather in rooms,
a countdown runs, and a 20-letter board appears. Each letter can be
claimed by exactly one player; the first claim wins.

AVAILABLE TOOLS:
- list_rooms: List all active rooms
- game_state: Get the latest game state of a room
- dispose_room: Remove a room and notify its players
- list_configs: List available game configurations

Gameplay itself happens over the game WebSocket; these tools are the
administrative and observability surface.`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_rooms",
		Description: "List all active game rooms",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListRooms)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the latest game state of a room",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"room_id": map[string]interface{}{
					"type":        "string",
					"description": "Room ID",
				},
			},
			Required: []string{"room_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "dispose_room",
		Description: "Remove a room, notifying its connected players",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"room_id": map[string]interface{}{
					"type":        "string",
					"description": "Room ID",
				},
			},
			Required: []string{"room_id"},
		},
	}, c.handleDisposeRoom)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available game configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleListRooms(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count int                `json:"count"`
		Rooms []service.RoomInfo `json:"rooms"`
	}

	err := c.apiCall("GET", "/api/rooms", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Rooms (%d):\n\n", response.Count)
	for _, r := range response.Rooms {
		result += fmt.Sprintf("- %s (Players: %d, Status: %s, Created: %s)\n",
			r.RoomID, r.Players, r.GameStatus, r.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	roomID, _ := args["room_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/rooms/%s/state", roomID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(roomID, &state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleDisposeRoom(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	roomID, _ := args["room_id"].(string)

	var response map[string]string
	err := c.apiCall("DELETE", fmt.Sprintf("/api/rooms/%s", roomID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(response["message"]), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s\n  %s\n  Board: %d letters, Game: %ds\n\n",
			config.Name, config.Description, config.BoardSize, config.GameSeconds)
	}

	return mcp.NewToolResultText(result), nil
}

// Formatting helpers

func formatGameState(roomID string, state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("Room: %s | Status: %s | Version: %d\n\n",
		roomID, state.GameStatus, state.Version))

	result.WriteString(fmt.Sprintf("Players (%d):\n", len(state.ConnectedPlayers)))
	for _, player := range state.ConnectedPlayers {
		result.WriteString(fmt.Sprintf("- %s (%s)\n", player.Name, player.ID))
	}

	if len(state.Letters) > 0 {
		result.WriteString("\nBoard:\n")
		for _, letter := range state.Letters {
			if owner, claimed := state.SelectedLetters[letter.ID]; claimed {
				result.WriteString(fmt.Sprintf("[%s:%s→%s] ", letter.ID, letter.Value, owner))
			} else {
				result.WriteString(fmt.Sprintf("[%s:%s] ", letter.ID, letter.Value))
			}
		}
		result.WriteString("\n")
	}

	if state.GameStatus == engine.PhaseFinished {
		result.WriteString("\nScores:\n")
		result.WriteString(formatScores(state))
	}

	return result.String()
}

// formatScores tallies claimed letters per player, highest first.
func formatScores(state *engine.GameState) string {
	counts := make(map[string]int)
	for _, owner := range state.SelectedLetters {
		counts[owner]++
	}

	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(state.ConnectedPlayers))
	for _, player := range state.ConnectedPlayers {
		entries = append(entries, entry{player.Name, counts[player.ID]})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].count > entries[j].count })

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("- %s: %d letters\n", e.name, e.count))
	}
	return b.String()
}
