package store

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/selene-app/selene/internal/models"
)

const defaultNoteReadConcurrency = 8

var (
	noteNamePattern    = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\.md$`)
	inlineFieldPattern = regexp.MustCompile(`(?m)^([A-Za-z][A-Za-z0-9 _-]*?)::[ \t]*(.+?)[ \t]*$`)
)

// NotesSource is the raw-text-extraction-backed observation source: a
// directory of per-day markdown notes named YYYY-MM-DD.md. Fields come from
// YAML frontmatter when present, with a fallback scan for inline
// "key:: value" lines in the note body. A malformed note is skipped with a
// diagnostic, never a load failure; an unreadable directory is a load
// failure.
type NotesSource struct {
	dir         string
	concurrency int
}

func NewNotesSource(dir string) *NotesSource {
	return &NotesSource{dir: dir, concurrency: defaultNoteReadConcurrency}
}

// Dir returns the watched notes directory.
func (source *NotesSource) Dir() string {
	return source.dir
}

func (source *NotesSource) Load(ctx context.Context, from time.Time, to time.Time) (map[string]models.SymptomRecord, error) {
	entries, err := os.ReadDir(source.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read notes directory: %v", ErrSourceUnavailable, err)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(source.concurrency)

	var mu sync.Mutex
	records := make(map[string]models.SymptomRecord)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		match := noteNamePattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		day, parseErr := time.Parse(models.DateLayout, match[1])
		if parseErr != nil {
			continue
		}
		if day.Before(from) || day.After(to) {
			continue
		}
		name := entry.Name()
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			content, readErr := os.ReadFile(filepath.Join(source.dir, name))
			if readErr != nil {
				log.Printf("skipping unreadable note %s: %v", name, readErr)
				return nil
			}
			record := parseNote(day, content)
			mu.Lock()
			records[day.Format(models.DateLayout)] = record
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return records, nil
}

func parseNote(day time.Time, content []byte) models.SymptomRecord {
	record := models.SymptomRecord{Date: day}

	if frontmatter, body, ok := splitFrontmatter(content); ok {
		raw := make(map[string]any)
		if err := yaml.Unmarshal(frontmatter, &raw); err != nil {
			log.Printf("malformed frontmatter in note for %s: %v", day.Format(models.DateLayout), err)
		} else {
			for key, value := range raw {
				applyField(&record, key, value)
			}
		}
		content = body
	}

	for _, match := range inlineFieldPattern.FindAllStringSubmatch(string(content), -1) {
		applyField(&record, match[1], match[2])
	}
	return record
}

func splitFrontmatter(content []byte) ([]byte, []byte, bool) {
	trimmed := bytes.TrimPrefix(content, []byte("\ufeff"))
	if !bytes.HasPrefix(trimmed, []byte("---\n")) && !bytes.HasPrefix(trimmed, []byte("---\r\n")) {
		return nil, nil, false
	}
	rest := trimmed[bytes.IndexByte(trimmed, '\n')+1:]
	for _, closer := range []string{"\n---\n", "\n---\r\n"} {
		if index := bytes.Index(rest, []byte(closer)); index >= 0 {
			return rest[:index], rest[index+len(closer):], true
		}
	}
	if bytes.HasSuffix(bytes.TrimRight(rest, "\r\n "), []byte("\n---")) {
		trimmedRest := bytes.TrimRight(rest, "\r\n ")
		return trimmedRest[:len(trimmedRest)-len("\n---")], nil, true
	}
	return nil, nil, false
}

func applyField(record *models.SymptomRecord, key string, value any) {
	normalized := strings.ToLower(strings.TrimSpace(key))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	switch normalized {
	case "flow", "period_flow":
		record.Flow = stringField(value)
	case "discharge":
		record.Discharge = stringField(value)
	case "bowel_changes":
		record.BowelChanges = stringField(value)
	case "mood":
		record.Mood = stringField(value)
	case "energy":
		record.Energy = stringField(value)
	case "anxiety":
		record.Anxiety = stringField(value)
	case "concentration":
		record.Concentration = stringField(value)
	case "sex_drive":
		record.SexDrive = stringField(value)
	case "physical_activity":
		record.PhysicalActivity = stringField(value)
	case "nutrition":
		record.Nutrition = stringField(value)
	case "water_intake":
		record.WaterIntake = stringField(value)
	case "alcohol":
		record.Alcohol = stringField(value)
	case "medication":
		record.Medication = stringField(value)
	case "sexual_activity":
		record.SexualActivity = stringField(value)
	case "cramps":
		record.Cramps = boolField(value)
	case "bloating":
		record.Bloating = boolField(value)
	case "breast_tenderness":
		record.BreastTenderness = boolField(value)
	case "headaches":
		record.Headaches = boolField(value)
	}
}

func stringField(value any) *string {
	var text string
	switch typed := value.(type) {
	case string:
		text = strings.TrimSpace(typed)
	case bool:
		text = fmt.Sprintf("%t", typed)
	case int, int64, float64:
		text = fmt.Sprintf("%v", typed)
	default:
		return nil
	}
	if text == "" {
		return nil
	}
	return &text
}

func boolField(value any) *bool {
	switch typed := value.(type) {
	case bool:
		flag := typed
		return &flag
	case string:
		switch strings.ToLower(strings.TrimSpace(typed)) {
		case "true", "yes", "1":
			flag := true
			return &flag
		case "false", "no", "0":
			flag := false
			return &flag
		}
	}
	return nil
}
