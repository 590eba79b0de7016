package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/hibouengine/internal/config"
	"github.com/gitrdm/hibouengine/pkg/explore"
)

var exploreMaxLoopFlag int

func newExploreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Build the reachable-execution automaton for the chosen scenario",
		RunE:  runExploreCommand,
	}
	cmd.Flags().IntVar(&exploreMaxLoopFlag, "max-loop", 0, "bound on loop unrolling depth (0 means unbounded)")
	return cmd
}

func runExploreCommand(cmd *cobra.Command, args []string) error {
	log := newLogger()
	scenario, err := BuildScenario(scenarioFlag)
	if err != nil {
		return err
	}

	maxLoop := exploreMaxLoopFlag
	weights := explore.DefaultPriorityWeights()
	if configFlag != "" {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		if cfg.Explore != nil {
			if !cmd.Flags().Changed("max-loop") {
				maxLoop = int(cfg.Explore.MaxLoop)
			}
			weights = explore.PriorityWeights{
				Emission:         cfg.Explore.Priorities.Emission,
				Reception:        cfg.Explore.Priorities.Reception,
				MultiRendezvous:  cfg.Explore.Priorities.MultiRdv,
				LoopDepthPenalty: cfg.Explore.Priorities.InLoop,
			}
		}
	}

	log.Info().Str("scenario", scenario.Name).Int("max_loop", maxLoop).Msg("exploring")

	nfa := explore.Explore(scenario.Term, explore.Config{MaxLoopInstanciation: maxLoop, Priorities: weights}, log)
	fmt.Printf("states: %d, transitions: %d, alphabet size: %d, final states: %d\n",
		nfa.StateCount, len(nfa.Transitions), len(nfa.Alphabet), len(nfa.Final))
	for _, t := range nfa.Transitions {
		fmt.Printf("  %d --[%s]--> %d\n", t.From, nfa.Alphabet[t.Letter].Key(), t.To)
	}
	return nil
}
