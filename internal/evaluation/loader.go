package evaluation

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadGoldenScenarios reads and parses a golden scenario set from a JSON file.
func LoadGoldenScenarios(path string) ([]GoldenScenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read golden scenarios file: %w", err)
	}

	var scenarios []GoldenScenario
	if err := json.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("failed to parse golden scenarios: %w", err)
	}

	return scenarios, nil
}

var validDifficulties = map[string]bool{
	"easy":   true,
	"medium": true,
	"hard":   true,
}

// ValidateGoldenScenarios checks that all golden scenarios have required fields and valid values.
func ValidateGoldenScenarios(scenarios []GoldenScenario) error {
	seen := make(map[string]struct{}, len(scenarios))

	for i, sc := range scenarios {
		if sc.ID == "" {
			return fmt.Errorf("scenario at index %d: missing id", i)
		}
		if _, dup := seen[sc.ID]; dup {
			return fmt.Errorf("scenario at index %d: duplicate id %q", i, sc.ID)
		}
		seen[sc.ID] = struct{}{}

		if sc.Profile.UserID == "" {
			return fmt.Errorf("scenario %q: missing profile user id", sc.ID)
		}
		if len(sc.Candidates) == 0 {
			return fmt.Errorf("scenario %q: no candidates", sc.ID)
		}
		if len(sc.RelevantID) == 0 {
			return fmt.Errorf("scenario %q: no relevant property ids", sc.ID)
		}
		if !validDifficulties[sc.Difficulty] {
			return fmt.Errorf("scenario %q: invalid difficulty %q (must be easy/medium/hard)", sc.ID, sc.Difficulty)
		}
	}

	return nil
}
