package config_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/0xalexb/hjarta-settings/config"
	jsoncparser "github.com/0xalexb/hjarta-settings/config/parser/jsonc"
	yamlparser "github.com/0xalexb/hjarta-settings/config/parser/yaml"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HostingConfig represents a hosting section of a settings document.
type HostingConfig struct {
	LocalTempStorage string `json:"localTempStorageLocation" yaml:"localTempStorageLocation"`
	DebugMode        bool   `json:"debugMode"                yaml:"debugMode"`
	TimeOutInMinutes int    `json:"timeOutInMinutes"         yaml:"timeOutInMinutes"`
}

// SetDefaults sets default values for the configuration.
func (c *HostingConfig) SetDefaults() bool {
	changed := false

	if c.LocalTempStorage == "" {
		c.LocalTempStorage = "Default"
		changed = true
	}

	if c.TimeOutInMinutes == 0 {
		c.TimeOutInMinutes = 20
		changed = true
	}

	return changed
}

// Validate validates the configuration.
func (c *HostingConfig) Validate() error {
	if c.TimeOutInMinutes < 0 {
		return errors.New("timeOutInMinutes must not be negative")
	}

	return nil
}

// StaticDataFetcher implements config.DataFetcher with static data.
// Useful for unit tests that don't need file I/O.
type StaticDataFetcher struct {
	Data []byte
}

// Fetch returns the static data.
func (f *StaticDataFetcher) Fetch() ([]byte, error) {
	return f.Data, nil
}

const settingsYAML = `
umbracoConfiguration:
  hosting:
    debugMode: true
  global:
    timeOutInMinutes: 60
`

func ExampleLoad() {
	fetcher := &StaticDataFetcher{Data: []byte(settingsYAML)}

	hosting, err := config.Load[HostingConfig](yamlparser.NewParser(), fetcher, "umbracoConfiguration:hosting")
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Storage: %s, Debug: %t, Timeout: %d\n",
		hosting.LocalTempStorage, hosting.DebugMode, hosting.TimeOutInMinutes)
	// Output: Storage: Default, Debug: true, Timeout: 20
}

func ExampleLoad_jsonc() {
	fetcher := &StaticDataFetcher{Data: []byte(`{
  // settings shipped with the site
  "umbracoConfiguration": {
    "hosting": {
      "localTempStorageLocation": "EnvironmentTemp",
      "timeOutInMinutes": 45, /* trailing commas are accepted */
    },
  },
}`)}

	hosting, err := config.Load[HostingConfig](jsoncparser.NewParser(), fetcher, "umbracoConfiguration:hosting")
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Storage: %s, Timeout: %d\n", hosting.LocalTempStorage, hosting.TimeOutInMinutes)
	// Output: Storage: EnvironmentTemp, Timeout: 45
}

func ExampleProvider() {
	hosting := &HostingConfig{}

	// Every call of the provider refills the same target.
	provider := config.Provider(hosting, "umbracoConfiguration:hosting")

	result, err := provider(yamlparser.NewParser(), &StaticDataFetcher{Data: []byte(settingsYAML)})
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Same target: %t, Debug: %t\n", result == hosting, result.DebugMode)
	// Output: Same target: true, Debug: true
}

// TestParsers_PathNavigation runs both production parsers over the same settings document.
func TestParsers_PathNavigation(t *testing.T) {
	t.Parallel()

	yamlData := []byte(`
umbracoConfiguration:
  hosting:
    debugMode: true
    timeOutInMinutes: 5
`)
	jsonData := []byte(`{"umbracoConfiguration": {"hosting": {"debugMode": true, "timeOutInMinutes": 5}}}`)

	testCases := []struct {
		name   string
		parser config.Parser
		data   []byte
	}{
		{name: "yaml", parser: yamlparser.NewParser(), data: yamlData},
		{name: "jsonc", parser: jsoncparser.NewParser(), data: jsonData},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			fetcher := &StaticDataFetcher{Data: testCase.data}

			hosting, err := config.Load[HostingConfig](testCase.parser, fetcher, "umbracoConfiguration:hosting")
			require.NoError(t, err)
			assert.True(t, hosting.DebugMode)
			assert.Equal(t, 5, hosting.TimeOutInMinutes)
			assert.Equal(t, "Default", hosting.LocalTempStorage)

			_, err = config.Load[HostingConfig](testCase.parser, fetcher, "umbracoConfiguration:missing")
			require.Error(t, err)
		})
	}
}
