package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type RunRecord struct {
	ID    int
	Score float64 // White's point of view
	Label string
	RunMetric
}

type PointRecord struct {
	Point     int
	X, Y      int
	None      int
	Black     int
	White     int
	Estimate  float64
	Judgement string
	Symbol    string
}

type Writer struct {
	baseDir string
}

func NewWriter(outputDir, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405.000000000Z")
	baseDir := filepath.Join(outputDir, name, timestamp)
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

func (w *Writer) WriteRunRecords(records []RunRecord) error {
	header := []string{"id", "goroutines", "duration", "playouts", "merges", "score", "label"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Goroutines),
			record.Duration.String(),
			strconv.Itoa(record.Playouts),
			strconv.Itoa(record.Merges),
			strconv.FormatFloat(record.Score, 'f', 1, 64),
			record.Label,
		})
	}
	return w.write("runs.csv", header, rows)
}

func (w *Writer) WritePointRecords(records []PointRecord) error {
	header := []string{"point", "x", "y", "none", "black", "white", "estimate", "judgement", "symbol"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Point),
			strconv.Itoa(record.X),
			strconv.Itoa(record.Y),
			strconv.Itoa(record.None),
			strconv.Itoa(record.Black),
			strconv.Itoa(record.White),
			strconv.FormatFloat(record.Estimate, 'f', 3, 64),
			record.Judgement,
			record.Symbol,
		})
	}
	return w.write("ownership.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
