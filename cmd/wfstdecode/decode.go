package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wfstdecode/config"
	"github.com/katalvlaran/wfstdecode/decoder"
	"github.com/katalvlaran/wfstdecode/internal/obslog"
	"github.com/katalvlaran/wfstdecode/scorer"
	"github.com/katalvlaran/wfstdecode/wfst/attfsm"
)

func newDecodeCmd() *cobra.Command {
	var (
		fstPath    string
		configPath string
		replayPath string
		logLevel   string
		logFile    string
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode one utterance against a compiled WFST using a scripted replay scorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := obslog.Init(logLevel, logFile); err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}

			var opts []decoder.Option
			if configPath != "" {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				if fstPath == "" {
					fstPath = cfg.FSTPath
				}
				opts = append(opts, cfg.Options()...)
			}
			if fstPath == "" {
				return fmt.Errorf("decode: --fst (or a config file setting fst_path) is required")
			}

			fstFile, err := os.Open(fstPath)
			if err != nil {
				return fmt.Errorf("decode: opening fst: %w", err)
			}
			defer fstFile.Close()

			g, err := attfsm.Load(fstFile)
			if err != nil {
				return fmt.Errorf("decode: loading fst: %w", err)
			}

			if replayPath == "" {
				return fmt.Errorf("decode: --replay is required (no acoustic model integration in scope)")
			}
			replayFile, err := os.Open(replayPath)
			if err != nil {
				return fmt.Errorf("decode: opening replay script: %w", err)
			}
			defer replayFile.Close()

			script, err := scorer.LoadReplayScript(replayFile)
			if err != nil {
				return err
			}

			d, err := decoder.NewDecoder(g, scorer.NewReplay(script), opts...)
			if err != nil {
				return fmt.Errorf("decode: constructing decoder: %w", err)
			}

			labels, err := d.Decode(context.Background(), nil, nil)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			strLabels := make([]string, len(labels))
			for i, l := range labels {
				strLabels[i] = fmt.Sprintf("%d", l)
			}
			fmt.Println(strings.Join(strLabels, " "))

			return nil
		},
	}

	cmd.Flags().StringVar(&fstPath, "fst", "", "Path to an AT&T FSM text-format WFST")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML decoder config")
	cmd.Flags().StringVar(&replayPath, "replay", "", "Path to a JSON scripted replay scorer script")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Optional path to also append logs to")

	return cmd
}
