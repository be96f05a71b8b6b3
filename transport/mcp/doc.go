// Package mcp provides the Model Context Protocol surface for the WordWar
// server.
//
// The mcp package implements:
//   - A thin MCP client that proxies tool calls to the REST API
//   - Room listing, state inspection and disposal tools
//   - Configuration listing
//
// Architecture:
//
// The MCP process runs separately from the game server and talks to it over
// HTTP. This keeps one authoritative server process while allowing agent
// tooling to observe and administrate rooms.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
