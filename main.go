package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"memberpick/internal/catalog"
	"memberpick/internal/config"
	"memberpick/internal/domain"
	"memberpick/internal/eventbus"
	"memberpick/internal/ui"
	"memberpick/internal/ui/services/selection"
)

func main() {
	var (
		configPath   string
		presentation string
		initConfig   bool
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&presentation, "presentation", "", "Presentation style: sheet or push")
	flag.BoolVar(&initConfig, "init", false, "Write the default config file and exit")
	flag.Parse()

	// Nothing is logged until the log file is open; the terminal belongs to the TUI
	log.Logger = zerolog.Nop()

	bus := eventbus.New()
	configSvc := config.NewConfigServiceWithBus(bus)
	path := configSvc.Resolve(configPath)

	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Info().Str("path", event.Path).Int("members", event.Members).Msg("config loaded")
		}
	})

	if initConfig {
		if err := configSvc.SaveToPath(config.DefaultConfig(), path); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
		return
	}

	logFile, err := os.OpenFile("memberpick.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err == nil {
		defer logFile.Close()
		log.Logger = zerolog.New(logFile).With().Timestamp().Logger()
	}

	cfg, err := configSvc.LoadFromPath(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if presentation != "" {
		cfg.UISettings.Presentation = presentation
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	level, _ := zerolog.ParseLevel(cfg.UISettings.LogLevel)
	zerolog.SetGlobalLevel(level)

	store := selection.NewStore(catalog.New(cfg.DomainMembers()))

	bus.Subscribe(eventbus.EventMemberSelected, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.MemberSelectedEvent); ok {
			log.Info().Int("id", event.Member.ID).Str("name", event.Member.Name).Msg("member selected")
		}
	})
	bus.Subscribe(eventbus.EventSelectionCleared, func(eventbus.DomainEvent) {
		log.Info().Msg("selection cleared")
	})
	bus.Subscribe(eventbus.EventCloseRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CloseRequestedEvent); ok {
			log.Info().Bool("selected", event.Selected).Int("id", event.Member.ID).Msg("member list closed")
		}
	})

	uiModel := ui.NewModel(store, cfg, ui.Options{
		OnClose: func() {
			member, ok := store.SelectedMember()
			bus.Publish(eventbus.CloseRequestedEvent{Member: member, Selected: ok})
		},
		OnMemberSelected: func(member domain.Member) {
			bus.Publish(eventbus.MemberSelectedEvent{Member: member})
		},
		OnSelectionCleared: func() {
			bus.Publish(eventbus.SelectionClearedEvent{})
		},
		ReadyMarker: os.Getenv("MEMBERPICK_E2E_TEST") != "",
	})

	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	log.Info().Str("presentation", cfg.UISettings.Presentation).Int("members", store.Catalog().Len()).Msg("starting UI")
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("error running program")
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	log.Info().Bool("closed", uiModel.Closed()).Msg("UI exited")
	if member, ok := store.SelectedMember(); ok {
		fmt.Printf("selected %d %s\n", member.ID, member.Name)
	}
}
