// Package logfile decodes YAML work logs into session entries.
package logfile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"worklog/internal/session"
)

type document struct {
	Payperiod yaml.Node  `yaml:"payperiod"`
	Logs      []entryDoc `yaml:"logs"`
}

type entryDoc struct {
	Date  string   `yaml:"date"`
	Start clock    `yaml:"start"`
	End   clock    `yaml:"end"`
	Notes []string `yaml:"notes"`
}

// clock accepts either a bare integer (minutes after midnight, the original
// log format) or an "HH:MM" string.
type clock struct {
	mins int
	set  bool
}

func (c *clock) UnmarshalYAML(node *yaml.Node) error {
	var mins int
	if err := node.Decode(&mins); err == nil {
		c.mins = mins
		c.set = true
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("invalid time value")
	}
	mins, err := session.ParseClock(s)
	if err != nil {
		return err
	}
	c.mins = mins
	c.set = true
	return nil
}

// payperiodDoc is the current mapping form of the payperiod section. Old log
// files carried a bare string instead; both are accepted.
type payperiodDoc struct {
	Type  string `yaml:"type"`
	Start string `yaml:"start"`
}

// Parse reads and decodes one YAML work log.
func Parse(path string) (*session.Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	log, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return log, nil
}

// Decode parses YAML log data and validates every entry. The first invalid
// entry aborts the decode, identified by its index in the logs list.
func Decode(data []byte) (*session.Log, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid log file: %w", err)
	}

	pp, err := decodePayperiod(&doc.Payperiod)
	if err != nil {
		return nil, err
	}

	log := &session.Log{Payperiod: pp}
	for i, e := range doc.Logs {
		entry, err := decodeEntry(e)
		if err != nil {
			return nil, fmt.Errorf("logs[%d]: %w", i, err)
		}
		log.Entries = append(log.Entries, entry)
	}
	return log, nil
}

func decodeEntry(e entryDoc) (session.Entry, error) {
	if e.Date == "" {
		return session.Entry{}, fmt.Errorf("missing date")
	}
	date, err := session.ParseDate(e.Date)
	if err != nil {
		return session.Entry{}, err
	}
	if !e.Start.set {
		return session.Entry{}, fmt.Errorf("missing start time")
	}
	if !e.End.set {
		return session.Entry{}, fmt.Errorf("missing end time")
	}

	entry := session.Entry{
		Date:  date,
		Start: e.Start.mins,
		End:   e.End.mins,
		Notes: e.Notes,
	}
	if err := entry.Validate(); err != nil {
		return session.Entry{}, err
	}
	return entry, nil
}

func decodePayperiod(node *yaml.Node) (session.Payperiod, error) {
	var pp session.Payperiod

	switch node.Kind {
	case 0: // absent
	case yaml.ScalarNode:
		var t string
		if err := node.Decode(&t); err != nil {
			return pp, fmt.Errorf("payperiod: %w", err)
		}
		pp.Type = session.PayperiodType(strings.ToLower(t))
	case yaml.MappingNode:
		var d payperiodDoc
		if err := node.Decode(&d); err != nil {
			return pp, fmt.Errorf("payperiod: %w", err)
		}
		pp.Type = session.PayperiodType(strings.ToLower(d.Type))
		if d.Start != "" {
			start, err := session.ParseDate(d.Start)
			if err != nil {
				return pp, fmt.Errorf("payperiod: %w", err)
			}
			pp.Start = start
		}
	default:
		return pp, fmt.Errorf("payperiod: expected a mapping or string")
	}

	if err := pp.Validate(); err != nil {
		return pp, err
	}
	return pp.WithDefaults(), nil
}
