package config

import (
	"io/ioutil"
	"log"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	tempDir := t.TempDir()
	if _, err := Initialize(tempDir, log.New(ioutil.Discard, "", 0)); err != nil {
		t.Fatal(err)
	}

	// Check that the config is valid
	cfg, err := Load(tempDir)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("LoadConfigFile", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, ConfigurationName))
		assert.Nil(t, err)
	})

	t.Run("OpenEventLog", func(t *testing.T) {
		cfg.EventLog = "events.log"
		fd, err := cfg.OpenEventLog()
		assert.Nil(t, err)
		fd.Close()

		fd, err = cfg.ReadEventLog()
		assert.Nil(t, err)
		fd.Close()
	})
}

func TestInitialize_keepsExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	custom := []byte("prompt: \"> \"\nmax_args: 4\n")
	assert.Nil(t, afero.WriteFile(fs, "/cfg/config.yaml", custom, 0600))

	cfg, err := InitializeFs(fs, "/cfg", log.New(ioutil.Discard, "", 0))
	assert.Nil(t, err)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, 4, cfg.MaxArgs)

	// Unset keys keep defaults.
	assert.Equal(t, 10, cfg.MaxCommands)
	assert.Equal(t, 100, cfg.AliasCapacity)

	contents, err := afero.ReadFile(fs, "/cfg/config.yaml")
	assert.Nil(t, err)
	assert.Equal(t, custom, contents)
}

func TestLoad_errors(t *testing.T) {
	cases := map[string]string{
		"unknown-field": "not_a_field: true\n",
		"invalid-value": "max_args: 0\n",
		"bad-yaml":      "prompt: [\n",
	}

	for tn, contents := range cases {
		t.Run(tn, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			assert.Nil(t, afero.WriteFile(fs, "/cfg/config.yaml", []byte(contents), 0600))

			_, err := LoadFs(fs, "/cfg")
			assert.NotNil(t, err)
		})
	}

	_, err := LoadFs(afero.NewMemMapFs(), "/missing")
	assert.NotNil(t, err)
}
