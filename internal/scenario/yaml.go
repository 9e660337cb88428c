package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/discs/internal/geom"
)

// YAMLScenario represents the YAML structure for a scenario file.
type YAMLScenario struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name,omitempty"`
	Disks    []YAMLDisk        `yaml:"disks"`
	Expect   *YAMLExpect       `yaml:"expect,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLDisk represents a single disk in YAML format.
type YAMLDisk struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	R float64 `yaml:"r"`
}

// YAMLExpect represents the optional expectations block.
type YAMLExpect struct {
	Common *bool      `yaml:"common,omitempty"`
	Pairs  []YAMLPair `yaml:"pairs,omitempty"`
}

// YAMLPair represents an expected pair classification.
type YAMLPair struct {
	I    int    `yaml:"i"`
	J    int    `yaml:"j"`
	Type string `yaml:"type"`
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// ParseYAML parses and validates a YAML scenario file.
func ParseYAML(data []byte) (Scenario, error) {
	var ys YAMLScenario
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Scenario{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	s := Scenario{
		ID:       ys.ID,
		Name:     ys.Name,
		Disks:    make([]geom.Disk, len(ys.Disks)),
		Metadata: ys.Metadata,
	}
	for i, d := range ys.Disks {
		s.Disks[i] = geom.NewDisk(geom.NewPoint(d.X, d.Y), d.R)
	}

	if ys.Expect != nil {
		s.Expect.Common = ys.Expect.Common
		for _, p := range ys.Expect.Pairs {
			typ, err := geom.ParseIntersectionType(p.Type)
			if err != nil {
				return Scenario{}, fmt.Errorf("pair (%d, %d): %w", p.I, p.J, err)
			}
			s.Expect.Pairs = append(s.Expect.Pairs, PairExpectation{I: p.I, J: p.J, Type: typ})
		}
	}

	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// MarshalYAML encodes a scenario in the file format read by ParseYAML.
func MarshalYAML(s Scenario) ([]byte, error) {
	ys := YAMLScenario{
		ID:       s.ID,
		Name:     s.Name,
		Disks:    make([]YAMLDisk, len(s.Disks)),
		Metadata: s.Metadata,
	}
	for i, d := range s.Disks {
		ys.Disks[i] = YAMLDisk{X: d.Center.X, Y: d.Center.Y, R: d.Radius}
	}

	if !s.Expect.IsEmpty() {
		ys.Expect = &YAMLExpect{Common: s.Expect.Common}
		for _, p := range s.Expect.Pairs {
			ys.Expect.Pairs = append(ys.Expect.Pairs, YAMLPair{I: p.I, J: p.J, Type: p.Type.String()})
		}
	}

	data, err := yaml.Marshal(ys)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}
