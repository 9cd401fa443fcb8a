package persist

import (
	"fmt"
	"os"
	"time"

	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Save writes exactly one serialized recipe to path. The file carries
// no other metadata; an independent process invocation reads it back
// with Load and nothing else.
func Save(path string, r Recipe, s Serializer) error {
	logger, _ := zap.NewProduction()
	start := time.Now()

	data, err := s.Serialize(r)
	if err != nil {
		return fmt.Errorf("failed to serialize recipe %v: %w", r.ID, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write recipe %v to %v: %w", r.ID, path, err)
	}

	span := timespan.BetweenTimes(start, time.Now())
	logger.Sugar().Debugf("saved recipe: id: %v, template: %v, path: %v, took: %v", r.ID, r.Template, path, span.Duration())
	return nil
}

// Load reads one serialized recipe from path. Any failure — missing
// file, corrupt bytes — is terminal to the consuming invocation; there
// are no partial-recovery semantics.
func Load(path string, s Serializer) (Recipe, error) {
	logger, _ := zap.NewProduction()
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return Recipe{}, fmt.Errorf("failed to read recipe from %v: %w", path, err)
	}
	r, err := s.Deserialize(data)
	if err != nil {
		return Recipe{}, fmt.Errorf("failed to deserialize recipe from %v: %w", path, err)
	}

	span := timespan.BetweenTimes(start, time.Now())
	logger.Sugar().Debugf("loaded recipe: id: %v, template: %v, path: %v, took: %v", r.ID, r.Template, path, span.Duration())
	return r, nil
}
