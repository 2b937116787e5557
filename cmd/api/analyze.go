package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bryanwahyu/chaos-engine/internal/domain/analysis"
	"github.com/bryanwahyu/chaos-engine/internal/domain/domains"
)

var (
	analyzeFile   string
	analyzeDomain string
	analyzeAPIKey string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a source file and print the result as JSON",
	Example: `  chaos-engine analyze --file player.py --domain game
  cat handler.js | chaos-engine analyze --domain software`,
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := readSource(cmd.InOrStdin(), analyzeFile)
		if err != nil {
			return err
		}
		svc, err := buildServices(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		res := svc.analysis.Analyze(cmd.Context(), analysis.Request{
			Code:   code,
			APIKey: analyzeAPIKey,
			Domain: analyzeDomain,
		})
		if err := printJSON(cmd.OutOrStdout(), res); err != nil {
			return err
		}
		if res.Status == analysis.StatusError {
			return fmt.Errorf("analysis failed: %s", res.Message)
		}
		return nil
	},
}

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List the analysis domains and their agents",
	RunE: func(cmd *cobra.Command, args []string) error {
		type entry struct {
			Key domains.Key `json:"key"`
			domains.Descriptor
		}
		var out []entry
		for _, d := range domains.All() {
			out = append(out, entry{Key: d.Key, Descriptor: d})
		}
		return printJSON(cmd.OutOrStdout(), out)
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "source file to analyze (default: stdin)")
	analyzeCmd.Flags().StringVarP(&analyzeDomain, "domain", "d", string(domains.Default), "analysis domain")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "provider API key (overrides config)")
}

func readSource(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	if len(data) == 0 {
		return "", errors.New("no source code given")
	}
	return string(data), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
