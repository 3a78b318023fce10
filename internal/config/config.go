package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/selene-app/selene/internal/cycle"
)

const (
	SourceSQLite = "sqlite"
	SourceNotes  = "notes"
)

type Config struct {
	Port     string
	Timezone string
	// Source selects the observation backend: sqlite or notes.
	Source   string
	DBPath   string
	NotesDir string
	// MonthsBack and MonthsForward bound the load window around today.
	MonthsBack    int
	MonthsForward int
	Policy        cycle.Policy
}

// Load reads configuration from an optional .env file and the environment.
// Missing values fall back to defaults; inference constants default to the
// reference policy.
func Load() Config {
	_ = godotenv.Load()

	policy := cycle.DefaultPolicy()
	policy.MergeGapDays = getEnvInt("MERGE_GAP_DAYS", policy.MergeGapDays)
	policy.MinCycleLength = getEnvInt("CYCLE_MIN_DAYS", policy.MinCycleLength)
	policy.MaxCycleLength = getEnvInt("CYCLE_MAX_DAYS", policy.MaxCycleLength)
	policy.DefaultCycleLength = getEnvInt("DEFAULT_CYCLE_LENGTH", policy.DefaultCycleLength)
	policy.LutealPhaseDays = getEnvInt("LUTEAL_PHASE_DAYS", policy.LutealPhaseDays)

	return Config{
		Port:          getEnv("PORT", "8080"),
		Timezone:      getEnv("TZ", "UTC"),
		Source:        getEnv("SOURCE", SourceNotes),
		DBPath:        getEnv("DB_PATH", filepath.Join("data", "selene.db")),
		NotesDir:      getEnv("NOTES_DIR", filepath.Join("data", "notes")),
		MonthsBack:    getEnvInt("RANGE_MONTHS_BACK", 12),
		MonthsForward: getEnvInt("RANGE_MONTHS_FORWARD", 3),
		Policy:        policy,
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
