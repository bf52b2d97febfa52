// Package prefs persists the defaults that sizectl applies when a
// conversion does not specify them explicitly.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v2"

	"github.com/bytesize/sizectl/internal/size"
	"github.com/bytesize/sizectl/internal/viper"
	yamlfile "github.com/bytesize/sizectl/internal/yaml"
)

// Unit families a preference can select.
const (
	FamilyDecimal = "decimal"
	FamilyBinary  = "binary"
)

// Prefs contains the user's default conversion settings.
type Prefs struct {
	Family string `yaml:"family,omitempty" mapstructure:"family"`
	Unit   string `yaml:"unit,omitempty" mapstructure:"unit"`
	Output string `yaml:"output,omitempty" mapstructure:"output"`
	Source string `yaml:"-" mapstructure:"-"`
}

// Get returns the configured preferences.
// Effectively a convenience wrapper around FromEnv, followed by a call to FromFile.
// Fields that remain unset fall back to the built-in defaults.
//
// The lookup order is:
//  1. Environment variables (see FromEnv)
//  2. Preferences file (see FromFile)
func Get() Prefs {
	if p := FromEnv(); p.IsSet() {
		return withDefaults(p)
	}

	return withDefaults(FromFile())
}

// Defaults returns the preferences that apply when nothing has been configured.
func Defaults() Prefs {
	return Prefs{Family: FamilyDecimal, Output: "text"}
}

// FromEnv reads the preferences from the user environment.
func FromEnv() Prefs {
	return Prefs{
		Family: os.Getenv("SIZECTL_FAMILY"),
		Unit:   os.Getenv("SIZECTL_UNIT"),
		Output: os.Getenv("SIZECTL_OUTPUT"),
		Source: "environment variables",
	}
}

// FromFile reads the preferences that are stored in the default file location.
func FromFile() Prefs {
	return fromFile(DefaultFilePath())
}

// fromFile reads the preferences from path.
func fromFile(path string) Prefs {
	if _, err := os.Stat(path); err != nil {
		// not a real error but a valid usecase when preferences have not been persisted yet
		return Prefs{}
	}

	ValidateSchema(path)

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	viper.SetConfigName(name)
	viper.AddConfigPath(filepath.Dir(path))
	if err := viper.ReadInConfig(); err != nil {
		log.Error().Msgf("failed to read preferences: %v", err)
		return Prefs{}
	}

	var p Prefs
	err := viper.Unmarshal(&p, func(decodeCfg *mapstructure.DecoderConfig) {
		decodeCfg.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
			func(in reflect.Kind, out reflect.Kind, v interface{}) (interface{}, error) {
				return expandEnv(v), nil
			},
		)
	})
	if err != nil {
		log.Error().Msgf("failed to parse preferences: %v", err)
		return Prefs{}
	}

	p.Source = path
	return p
}

// ToFile stores the provided preferences in the default file location.
func ToFile(p Prefs) error {
	return toFile(p, DefaultFilePath())
}

// toFile stores the provided preferences into the file at path.
func toFile(p Prefs, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("unable to create the preferences folder: %s", err)
	}

	return yamlfile.WriteFile(path, p, 0600)
}

// DefaultFilePath returns the default location of the preferences file.
// It will be based on the user home directory, if defined, or under the current working directory otherwise.
func DefaultFilePath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".sizectl", "prefs.yml")
}

// IsSet checks whether at least one preference has been provided.
func (p *Prefs) IsSet() bool {
	return p.Family != "" || p.Unit != "" || p.Output != ""
}

// IsValid validates that the preferences can be applied as provided.
func (p *Prefs) IsValid() bool {
	if p.Family != "" && p.Family != FamilyDecimal && p.Family != FamilyBinary {
		return false
	}
	if p.Unit != "" && size.UnitFromString(p.Unit) == size.None {
		return false
	}
	if p.Output != "" && p.Output != "text" && p.Output != "json" {
		return false
	}
	return true
}

// withDefaults fills any unset field of p with its built-in default.
func withDefaults(p Prefs) Prefs {
	d := Defaults()
	if p.Family == "" {
		p.Family = d.Family
	}
	if p.Output == "" {
		p.Output = d.Output
	}
	return p
}

func expandEnv(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		return os.ExpandEnv(s)
	}
	return v
}

// schema is what preferences files are checked against.
const schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "sizectl user preferences",
  "type": "object",
  "properties": {
    "family": {
      "enum": ["decimal", "binary"]
    },
    "unit": {
      "type": "string"
    },
    "output": {
      "enum": ["text", "json"]
    }
  },
  "additionalProperties": false
}`

const schemaName = "prefs.schema.json"

// ValidateSchema validates the preferences file against the JSON Schema.
// If validation fails for any reason, fail softly to avoid disturbing execution as this is not critical.
func ValidateSchema(path string) {
	yamlText, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var m interface{}
	err = yaml.Unmarshal(yamlText, &m)
	if err != nil {
		return
	}
	m, err = toStringKeys(m)
	if err != nil {
		return
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaName, strings.NewReader(schema)); err != nil {
		return
	}
	compiled, err := compiler.Compile(schemaName)
	if err != nil {
		return
	}
	err = compiled.Validate(m)
	if err == nil {
		return
	}
	rootCause := findRootCauses(err.(*jsonschema.ValidationError))
	renderSchemaValidationIssues(path, rootCause)
}

func renderSchemaValidationIssues(path string, errs []*jsonschema.ValidationError) {
	errStr := "error"
	if len(errs) > 1 {
		errStr = "errors"
	}
	fmt.Println()
	color.Red("There is %d validation %s found in %s:\n", len(errs), errStr, path)
	for _, d := range errs {
		if d.InstanceLocation != "" {
			color.Red("- %s in %s\n", d.Message, d.InstanceLocation)
		} else {
			color.Red("- %s\n", d.Message)
		}
	}
	println()
}

func findRootCauses(validationError *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if validationError == nil {
		return []*jsonschema.ValidationError{}
	}

	if len(validationError.Causes) == 0 {
		return []*jsonschema.ValidationError{validationError}
	}

	var errs []*jsonschema.ValidationError
	for _, cause := range validationError.Causes {
		errs = append(errs, findRootCauses(cause)...)
	}
	return errs
}

func toStringKeys(val interface{}) (interface{}, error) {
	var err error
	switch val := val.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{})
		for k, v := range val {
			k, ok := k.(string)
			if !ok {
				return nil, errors.New("found non-string key")
			}
			m[k], err = toStringKeys(v)
			if err != nil {
				return nil, err
			}
		}
		return m, nil
	case []interface{}:
		var l = make([]interface{}, len(val))
		for i, v := range val {
			l[i], err = toStringKeys(v)
			if err != nil {
				return nil, err
			}
		}
		return l, nil
	default:
		return val, nil
	}
}
