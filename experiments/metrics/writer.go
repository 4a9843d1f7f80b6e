package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists experiment records as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	f, err := os.Create(filepath.Join(w.baseDir, "agent_configs.csv"))
	if err != nil {
		return fmt.Errorf("failed to create agent configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "depth", "samples", "goroutines", "full_width"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write agent configs header: %w", err)
	}
	for _, c := range configs {
		row := []string{
			strconv.Itoa(c.ID),
			strconv.Itoa(c.Depth),
			strconv.Itoa(c.Samples),
			strconv.Itoa(c.Goroutines),
			strconv.FormatBool(c.FullWidth),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write agent config row: %w", err)
		}
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	f, err := os.Create(filepath.Join(w.baseDir, "games.csv"))
	if err != nil {
		return fmt.Errorf("failed to create games file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "agent1", "agent2", "winner", "total_moves", "duration_ms"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write games header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Agent1),
			strconv.Itoa(r.Agent2),
			r.Winner,
			strconv.Itoa(r.TotalMoves),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game row: %w", err)
		}
	}
	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	f, err := os.Create(filepath.Join(w.baseDir, "moves.csv"))
	if err != nil {
		return fmt.Errorf("failed to create moves file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{
		"game", "step", "side", "depth", "samples", "goroutines",
		"candidates", "decisions", "chances", "evaluations", "prunes",
		"duration_us",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write moves header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			r.Side,
			strconv.Itoa(r.Depth),
			strconv.Itoa(r.Samples),
			strconv.Itoa(r.Goroutines),
			strconv.Itoa(r.Candidates),
			strconv.Itoa(r.Decisions),
			strconv.Itoa(r.Chances),
			strconv.Itoa(r.Evaluations),
			strconv.Itoa(r.Prunes),
			strconv.FormatInt(r.Duration.Microseconds(), 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write move row: %w", err)
		}
	}
	return nil
}
