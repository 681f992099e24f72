package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"looseeq/config"
	"looseeq/server"
)

const replBanner = "looseeq: type a JavaScript value, :help for commands, Ctrl+D to exit."

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cfg)
	},
}

func runREPL(cfg *config.Config) error {
	fmt.Println(replBanner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.REPL.HistoryFile
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	s := &server.Session{Verify: cfg.Display.Verify}
	for {
		line, err := ln.Prompt(cfg.REPL.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil { // io.EOF on Ctrl+D
			fmt.Println()
			break
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		out, exit := s.Handle(line)
		if exit {
			break
		}
		if out != "" {
			fmt.Println(out)
		}
	}

	if histPath == "" {
		return nil
	}
	f, err := os.Create(histPath)
	if err != nil {
		logger.Warn("failed to save history", zap.String("path", histPath), zap.Error(err))
		return nil
	}
	defer f.Close()
	if _, err := ln.WriteHistory(f); err != nil {
		logger.Warn("failed to save history", zap.String("path", histPath), zap.Error(err))
	}
	return nil
}
