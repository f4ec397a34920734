package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/maxviazov/football-match-engine/internal/model"
)

// fixtureFile is the on-disk shape of a one-off fixture: two clubs with squads and
// optional tactics. ID pins the seed; without it one is derived from the club names.
type fixtureFile struct {
	ID   string     `yaml:"id"`
	Home model.Club `yaml:"home"`
	Away model.Club `yaml:"away"`
}

func readFixture(path string) (fixtureFile, uuid.UUID, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fixtureFile{}, uuid.Nil, fmt.Errorf("read fixture: %w", err)
	}
	return parseFixture(raw)
}

func parseFixture(raw []byte) (fixtureFile, uuid.UUID, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fixtureFile{}, uuid.Nil, fmt.Errorf("parse fixture: %w", err)
	}
	if f.Home.Name == "" || f.Away.Name == "" {
		return fixtureFile{}, uuid.Nil, fmt.Errorf("parse fixture: both clubs need a name")
	}

	if f.ID == "" {
		return f, uuid.NewSHA1(uuid.NameSpaceURL, []byte(f.Home.Name+" vs "+f.Away.Name)), nil
	}
	id, err := uuid.Parse(f.ID)
	if err != nil {
		return fixtureFile{}, uuid.Nil, fmt.Errorf("parse fixture id: %w", err)
	}
	return f, id, nil
}
