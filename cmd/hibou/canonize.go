package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/hibouengine/internal/config"
	"github.com/gitrdm/hibouengine/pkg/canon"
)

var (
	canonPhasesFlag    string
	canonSearchAllFlag bool
)

func phasesByName(name string) ([]canon.Phase, error) {
	switch name {
	case "", "basic":
		return canon.Basic(), nil
	case "basic_with_to_seq":
		return canon.BasicWithToSeq(), nil
	case "five_phases":
		return canon.FivePhases(), nil
	default:
		return nil, fmt.Errorf("unknown phase preset %q", name)
	}
}

func newCanonizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canonize",
		Short: "Canonicalize the chosen scenario's interaction term",
		RunE:  runCanonizeCommand,
	}
	cmd.Flags().StringVar(&canonPhasesFlag, "phases", "", "phase preset: basic|basic_with_to_seq|five_phases")
	cmd.Flags().BoolVar(&canonSearchAllFlag, "search-all", false, "enumerate every reachable normal form instead of the first")
	return cmd
}

func runCanonizeCommand(cmd *cobra.Command, args []string) error {
	log := newLogger()
	scenario, err := BuildScenario(scenarioFlag)
	if err != nil {
		return err
	}

	phasesName := canonPhasesFlag
	searchAll := canonSearchAllFlag
	if configFlag != "" {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		if cfg.Canonize != nil {
			if phasesName == "" {
				phasesName = cfg.Canonize.Phases
			}
			if !cmd.Flags().Changed("search-all") {
				searchAll = cfg.Canonize.SearchAll
			}
		}
	}

	phases, err := phasesByName(phasesName)
	if err != nil {
		return err
	}

	log.Info().Str("scenario", scenario.Name).Str("phases", phasesName).Bool("search_all", searchAll).Msg("canonizing")

	if searchAll {
		report := canon.CanonizeAll(scenario.Term, phases, log)
		fmt.Printf("explored %d nodes, %d distinct normal form(s)\n", report.NodeCount, len(report.All))
		for i, t := range report.All {
			fmt.Printf("  [%d] %s\n", i, t.Key())
		}
		return nil
	}

	report := canon.Canonize(scenario.Term, phases, log)
	fmt.Printf("explored %d nodes, %d step(s)\n", report.NodeCount, len(report.Steps))
	fmt.Printf("canonical: %s\n", report.Canonical.Key())
	return nil
}
