// Command client is an interactive terminal client for a WordWar server.
//
// It connects to the game WebSocket, creates or joins a room, and then reads
// commands from stdin while printing room broadcasts:
//
//	client create -room R1 -player p1 -name Ana
//	client join -room R1 -player p2 -name Rui
//
// Interactive commands: "start" begins the match, "claim <letter-id>" claims
// a board letter, "quit" leaves the room.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/lgoncalvess/WordWar-Server/game/broadcast"
	"github.com/lgoncalvess/WordWar-Server/game/engine"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "client",
		Usage: "Interactive terminal client for a WordWar server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "server",
				Value: "ws://localhost:8080/ws",
				Usage: "Game WebSocket URL",
			},
			&cli.StringFlag{
				Name:  "room",
				Usage: "Room ID (generated by the server when empty)",
			},
			&cli.StringFlag{
				Name:  "player",
				Usage: "Player ID (generated by the server when empty)",
			},
			&cli.StringFlag{
				Name:     "name",
				Usage:    "Player display name",
				Required: true,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a room and wait for players",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runSession(ctx, cmd, "create_room")
				},
			},
			{
				Name:  "join",
				Usage: "Join an existing room",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runSession(ctx, cmd, "join_room")
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// runSession connects, sends the opening event and runs the interactive loop.
func runSession(ctx context.Context, cmd *cli.Command, event string) error {
	serverURL := cmd.String("server")
	roomID := cmd.String("room")
	playerID := cmd.String("player")

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, serverURL, nil)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", serverURL, err)
	}
	defer conn.Close()

	frame, err := enterFrame(event, roomID, playerID, cmd.String("name"))
	if err != nil {
		return err
	}
	if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
		return fmt.Errorf("send %s: %w", event, err)
	}

	// Print everything the room broadcasts.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			fmt.Println(render(string(data)))
		}
	}()

	fmt.Printf("Connected to %s. Commands: start, claim <letter-id>, quit\n", serverURL)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-done:
			return fmt.Errorf("connection closed by server")
		default:
		}

		frame, quit, err := commandFrame(scanner.Text(), roomID, playerID)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if quit {
			return nil
		}
		if frame == "" {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
			return fmt.Errorf("send command: %w", err)
		}
	}
	return scanner.Err()
}

// enterFrame builds the create_room/join_room frame.
func enterFrame(event, roomID, playerID, playerName string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"id":         roomID,
		"playerId":   playerID,
		"playerName": playerName,
	})
	if err != nil {
		return "", err
	}
	return event + "#" + string(body), nil
}

// commandFrame translates one line of user input into a protocol frame.
// The quit command is reported separately; unknown input is an error.
func commandFrame(line, roomID, playerID string) (frame string, quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false, nil
	}

	switch fields[0] {
	case "quit", "exit":
		return "", true, nil

	case "start":
		body, _ := json.Marshal(map[string]string{"roomId": roomID})
		return "start_game#" + string(body), false, nil

	case "claim":
		if len(fields) != 2 {
			return "", false, fmt.Errorf("usage: claim <letter-id>")
		}
		body, _ := json.Marshal(map[string]string{
			"letterId": fields[1],
			"roomId":   roomID,
			"playerId": playerID,
		})
		return "select_letter#" + string(body), false, nil
	}

	return "", false, fmt.Errorf("unknown command %q (try: start, claim <letter-id>, quit)", fields[0])
}

// render turns a server frame into terminal output. State broadcasts get a
// compact summary; advisory texts pass through unchanged.
func render(raw string) string {
	var envelope broadcast.ServerMessage
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil || envelope.Event != broadcast.EventGameStateChanged {
		return raw
	}

	var state engine.GameState
	if err := json.Unmarshal([]byte(envelope.Payload), &state); err != nil {
		return raw
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("--- %s (v%d) ---\n", state.GameStatus, state.Version))

	names := make([]string, 0, len(state.ConnectedPlayers))
	for _, p := range state.ConnectedPlayers {
		names = append(names, p.Name)
	}
	b.WriteString("Players: " + strings.Join(names, ", "))

	if len(state.Letters) > 0 {
		b.WriteString("\nBoard:")
		for _, letter := range state.Letters {
			if owner, claimed := state.SelectedLetters[letter.ID]; claimed {
				b.WriteString(fmt.Sprintf(" %s:%s(%s)", letter.ID, letter.Value, owner))
			} else {
				b.WriteString(fmt.Sprintf(" %s:%s", letter.ID, letter.Value))
			}
		}
	}
	return b.String()
}
