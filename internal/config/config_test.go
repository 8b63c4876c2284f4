package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memberpick/internal/domain"
	"memberpick/internal/eventbus"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cs := NewConfigService()
	cfg, err := cs.LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Empty(t, cfg.DomainMembers())
}

func TestLoadMembersAndSettings(t *testing.T) {
	path := writeFile(t, `
version = 1

[ui]
title = "Pick someone"
presentation = "push"
show_close = false
log_level = "debug"

[[members]]
id = 101
name = "Alice Johnson"

[[members]]
id = 102
name = "Bob Smith"
`)

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "Pick someone", cfg.UISettings.Title)
	assert.Equal(t, PresentationPush, cfg.UISettings.Presentation)
	assert.False(t, cfg.UISettings.ShowClose)
	assert.Equal(t, []domain.Member{
		{ID: 101, Name: "Alice Johnson"},
		{ID: 102, Name: "Bob Smith"},
	}, cfg.DomainMembers())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, "version = 1\n")

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().UISettings, cfg.UISettings)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"version":      "version = 2\n",
		"presentation": "version = 1\n[ui]\npresentation = \"drawer\"\n",
		"log level":    "version = 1\n[ui]\nlog_level = \"loud\"\n",
		"syntax":       "version = = 1\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewConfigService().LoadFromPath(writeFile(t, content))
			assert.Error(t, err)
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "nested", DefaultFileName)
	cfg := DefaultConfig()
	cfg.Members = []MemberConfig{{ID: 9, Name: "Zoë"}}

	require.NoError(t, cs.SaveToPath(cfg, path))

	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestResolveOrder(t *testing.T) {
	cs := NewConfigService()

	assert.Equal(t, "flag.toml", cs.Resolve("flag.toml"))

	t.Setenv(EnvConfigPath, "env.toml")
	assert.Equal(t, "env.toml", cs.Resolve(""))

	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, DefaultFileName, cs.Resolve(""))
}

func TestLoadPublishesConfigLoaded(t *testing.T) {
	bus := eventbus.New()
	var got []eventbus.ConfigLoadedEvent
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		got = append(got, e.(eventbus.ConfigLoadedEvent))
	})

	path := writeFile(t, "version = 1\n[[members]]\nid = 1\nname = \"A\"\n")
	_, err := NewConfigServiceWithBus(bus).LoadFromPath(path)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, path, got[0].Path)
	assert.Equal(t, 1, got[0].Members)
}
