package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/2beens/gymload/internal/workload"
	"github.com/2beens/gymload/pkg"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Plan is a self-contained catalog plus the days to analyze.
type Plan struct {
	Definitions []workload.ExerciseDefinition `json:"definitions" toml:"definitions" yaml:"definitions"`
	Days        []workload.Day                `json:"days" toml:"days" yaml:"days"`
}

func loadPlan(path string) (Plan, error) {
	exists, err := pkg.PathExists(path, false)
	if err != nil {
		return Plan{}, fmt.Errorf("stat plan file: %w", err)
	}
	if !exists {
		return Plan{}, fmt.Errorf("plan file %q does not exist or is a directory", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read plan file: %w", err)
	}
	return parsePlan(pkg.FileExt(path), content)
}

func parsePlan(format string, content []byte) (Plan, error) {
	var plan Plan
	var err error
	switch format {
	case "json":
		err = json.Unmarshal(content, &plan)
	case "yaml", "yml":
		err = yaml.Unmarshal(content, &plan)
	case "toml":
		err = toml.Unmarshal(content, &plan)
	default:
		return Plan{}, fmt.Errorf("unsupported plan format [%s], use json, yaml or toml", format)
	}
	if err != nil {
		return Plan{}, fmt.Errorf("decode %s plan: %w", format, err)
	}
	return plan, nil
}

// Validate collects every invalid definition and entry.
func (p Plan) Validate() error {
	var err error
	for _, def := range p.Definitions {
		if defErr := workload.ValidateDefinition(def); defErr != nil {
			err = multierr.Append(err, fmt.Errorf("definition [%s]: %w", def.ID, defErr))
		}
	}
	for i, day := range p.Days {
		for j, entry := range day.Entries {
			if entryErr := workload.ValidateEntry(entry); entryErr != nil {
				err = multierr.Append(err, fmt.Errorf("day %d entry %d: %w", i, j, entryErr))
			}
		}
	}
	return err
}

func (p Plan) Database() workload.Database {
	return workload.NewDatabase(p.Definitions...)
}

func (p Plan) definition(id string) (workload.ExerciseDefinition, bool) {
	for _, def := range p.Definitions {
		if def.ID == id {
			return def, true
		}
	}
	return workload.ExerciseDefinition{}, false
}
