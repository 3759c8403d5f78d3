// Command patternc is the CLI front end for the pattern-match decision
// tree compiler: it loads a branch-spec file, runs the
// flatten -> decision-tree -> decider -> choice pipeline, and prints the
// stage the caller asked for (the codegen stage is not run by the CLI).
// It also launches the interactive REPL (internal/replc).
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/glyph-lang/patternc/internal/config"
	"github.com/glyph-lang/patternc/internal/replc"
)

// Version info, set by ldflags during build (mirrors the teacher's
// cmd/ailang/main.go Version/Commit/BuildTime vars).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	var outputFormat string
	var colorFlag bool

	root := &cobra.Command{
		Use:   "patternc",
		Short: "Compile pattern-match branch lists into decision trees and low-level IR",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !colorFlag {
				color.NoColor = true
			}
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default ~/.patternc.yaml)")
	root.PersistentFlags().StringVar(&outputFormat, "format", "tree", "output format: tree, decider, or ir")
	root.PersistentFlags().BoolVar(&colorFlag, "color", true, "colorize output")

	root.AddCommand(newCompileCmd(&cfgPath, &outputFormat, &colorFlag))
	root.AddCommand(newReplCmd(&cfgPath))
	root.AddCommand(newVersionCmd())

	return root
}

func newCompileCmd(cfgPath, outputFormat *string, colorFlag *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "compile <file>",
		Short: "Compile a YAML branch-spec file and print a pipeline stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			format := *outputFormat
			if !cmd.Flags().Changed("format") && cfg.Format != "" {
				format = cfg.Format
			}
			return runCompile(args[0], format)
		},
	}
}

func newReplCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Launch the interactive pattern-match REPL",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.Load(*cfgPath); err != nil {
				return err
			}
			replc.New(Version).Start(os.Stdout)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("patternc %s (%s) built %s\n", Version, Commit, BuildTime)
			return nil
		},
	}
}
