package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	Index int // position in the batch
	GameMetric
}

type SeatRecord struct {
	Label   string
	Age     int
	Games   int
	Wins    int
	WinRate float64
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"index", "id", "seed", "players", "starting_player", "winner", "aborted", "rounds", "turns", "passes", "start_time", "end_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Index),
			record.ID.String(),
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.Players),
			record.StartingPlayer,
			record.Winner,
			strconv.FormatBool(record.Aborted),
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Passes),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteSeatRecords(records []SeatRecord) error {
	path := filepath.Join(w.baseDir, "seat_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create seat records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"label", "age", "games", "wins", "win_rate"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write seat records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Label,
			strconv.Itoa(record.Age),
			strconv.Itoa(record.Games),
			strconv.Itoa(record.Wins),
			strconv.FormatFloat(record.WinRate, 'f', 4, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write seat record row: %w", err)
		}
	}

	return nil
}
