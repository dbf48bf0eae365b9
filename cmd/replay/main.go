package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/Nishj0gi/snake-evolution/pkg/config"
	"github.com/Nishj0gi/snake-evolution/pkg/game"
	"github.com/Nishj0gi/snake-evolution/pkg/renderer"
)

// Replays a recorded session in the terminal at the recorded tick cadence.
// Usage: replay [record.jsonl] — defaults to the newest file under records/.
func main() {
	path, err := recordPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open record: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	render := renderer.NewTerminalRenderer()
	render.HideCursor()
	defer render.ShowCursor()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lastTick := 0
	for scanner.Scan() {
		var rec game.StepRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			continue // skip corrupt lines, keep playing
		}

		gap := rec.Tick - lastTick
		if gap < 1 {
			gap = 1
		}
		lastTick = rec.Tick
		time.Sleep(time.Duration(gap) * config.BaseTick)

		if rec.State.Mode == game.ModeGameOver.String() {
			render.RenderGameOver(rec.State)
		} else {
			render.Render(rec.State)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "replay aborted: %v\n", err)
		os.Exit(1)
	}
}

// recordPath picks the record file: explicit argument or newest in records/
func recordPath() (string, error) {
	if len(os.Args) > 1 {
		return os.Args[1], nil
	}

	entries, err := os.ReadDir(config.RecordDir)
	if err != nil {
		return "", fmt.Errorf("no record given and cannot read %s: %w", config.RecordDir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".jsonl" {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no records found in %s", config.RecordDir)
	}
	sort.Strings(names)
	return filepath.Join(config.RecordDir, names[len(names)-1]), nil
}
