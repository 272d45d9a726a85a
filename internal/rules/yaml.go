package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type tableFile struct {
	Skills []Skill `yaml:"skills"`
}

// LoadFile reads a YAML skill table:
//
//	skills:
//	  - key: athletics
//	    stat: str
//	    pretty_name: Athletics
func LoadFile(path string) (*StaticTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read skill table %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML skill table
func Parse(data []byte) (*StaticTable, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse skill table")
	}

	vb := errors.NewValidationBuilder()
	if len(file.Skills) == 0 {
		vb.RequiredField("skills")
	}
	seen := make(map[string]bool, len(file.Skills))
	for i, sk := range file.Skills {
		if sk.Key == "" {
			vb.RequiredField(fieldName(i, "key"))
		}
		if seen[sk.Key] {
			vb.Fieldf(fieldName(i, "key"), "duplicate skill %q", sk.Key)
		}
		seen[sk.Key] = true
		errors.ValidateEnum(fieldName(i, "stat"), string(sk.Stat), sheet.AbilityStrings(), vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return NewStaticTable(file.Skills), nil
}

func fieldName(i int, name string) string {
	return fmt.Sprintf("skills[%d].%s", i, name)
}
