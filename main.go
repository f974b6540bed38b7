package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundearth/internal/app"
	"github.com/llehouerou/soundearth/internal/config"
	"github.com/llehouerou/soundearth/internal/errmsg"
	"github.com/llehouerou/soundearth/internal/icons"
	"github.com/llehouerou/soundearth/internal/install"
	"github.com/llehouerou/soundearth/internal/mpris"
	"github.com/llehouerou/soundearth/internal/notify"
	"github.com/llehouerou/soundearth/internal/playback"
	"github.com/llehouerou/soundearth/internal/player"
	"github.com/llehouerou/soundearth/internal/stderr"
	"github.com/llehouerou/soundearth/internal/ui/worldmap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logger, closeLog := openLog(cfg)
	defer closeLog()
	logger.Info("starting", "audio_dir", cfg.AudioDir)

	icons.Init(cfg.Icons)

	reg, err := cfg.Registry()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	if err := stderr.Start(logger); err != nil {
		logger.Warn("stderr capture unavailable", "err", err)
	}
	defer stderr.Stop()

	out := player.New(player.Options{
		RequireActivation: cfg.Playback.RequireActivation,
		Volume:            cfg.Playback.Volume,
	})
	defer out.Close()

	ctrl := playback.New(reg, out, playback.Options{
		AudioDir:     cfg.AudioDir,
		AdvanceDelay: cfg.Playback.AdvanceDelay,
		Logger:       logger,
	})
	defer ctrl.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ctrl.Run(ctx)

	base, baseErr := worldmap.LoadBasemap(cfg.Map.Tiles)
	if baseErr != nil {
		logger.Error("load basemap", "path", cfg.Map.Tiles, "err", baseErr)
	}

	opts := app.Options{
		Controller: ctrl,
		Output:     out,
		Basemap:    base,
		BasemapErr: baseErr,
		TilesPath:  cfg.Map.Tiles,
		Padding:    cfg.Map.Padding,
		Logger:     logger,
	}

	if prompt, err := install.DefaultPrompt(); err != nil {
		logger.Warn("install prompt unavailable", "err", err)
	} else {
		opts.Install = prompt
	}

	if cfg.Notifications {
		if n, err := notify.New(); err != nil {
			logger.Warn(errmsg.Format(errmsg.OpNotify, err))
		} else {
			opts.Announcer = n
			defer func() {
				if err := n.Dismiss(); err != nil {
					logger.Warn(errmsg.Format(errmsg.OpNotify, err))
				}
			}()
		}
	}

	if cfg.MPRIS {
		adapter, err := mpris.New(ctrl, out)
		if err != nil {
			logger.Warn(errmsg.Format(errmsg.OpMPRIS, err))
		} else {
			defer adapter.Close()
		}
	}

	p := tea.NewProgram(
		app.New(opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	logger.Info("exiting")
	return nil
}

// openLog opens the log file. Logging is discarded when it cannot be
// opened; the terminal belongs to the UI.
func openLog(cfg *config.Config) (*slog.Logger, func()) {
	path, err := cfg.LogPath()
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	var f *os.File
	if err == nil {
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}

	var w io.Writer = io.Discard
	closeLog := func() {}
	if err == nil {
		w = f
		closeLog = func() { _ = f.Close() }
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	return logger, closeLog
}
