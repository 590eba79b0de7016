package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/hibouengine/internal/config"
	"github.com/gitrdm/hibouengine/pkg/analysis"
	"github.com/gitrdm/hibouengine/pkg/process"
)

var (
	analyzeKindFlag       string
	analyzeUseLocanaFlag  bool
	analyzeMaxNodeFlag    int
	analyzeMaxDepthFlag   int
)

func kindByName(name string) (analysis.Params, error) {
	switch name {
	case "accept":
		return analysis.Params{Kind: analysis.Accept}, nil
	case "prefix":
		return analysis.Params{Kind: analysis.Prefix}, nil
	case "hide":
		return analysis.Params{Kind: analysis.Hide}, nil
	case "simulate_before":
		return analysis.Params{Kind: analysis.Simulate, SimulateBefore: true}, nil
	case "simulate_after":
		return analysis.Params{Kind: analysis.Simulate, SimulateBefore: false}, nil
	default:
		return analysis.Params{}, fmt.Errorf("unknown analysis kind %q", name)
	}
}

func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Check the chosen scenario's interaction against its multi-trace",
		RunE:  runAnalyzeCommand,
	}
	cmd.Flags().StringVar(&analyzeKindFlag, "kind", "accept", "analysis kind: accept|prefix|hide|simulate_before|simulate_after")
	cmd.Flags().BoolVar(&analyzeUseLocanaFlag, "use-locana", false, "enable the local-analysis pruning speed-up")
	cmd.Flags().IntVar(&analyzeMaxNodeFlag, "max-nodes", 0, "MaxNodeNumber filter bound (0 means unbounded)")
	cmd.Flags().IntVar(&analyzeMaxDepthFlag, "max-loop-instanciation", 0, "MaxLoopInstanciation filter bound (0 means unbounded)")
	return cmd
}

func runAnalyzeCommand(cmd *cobra.Command, args []string) error {
	log := newLogger()
	scenario, err := BuildScenario(scenarioFlag)
	if err != nil {
		return err
	}

	kindName := analyzeKindFlag
	useLocana := analyzeUseLocanaFlag
	var weights analysis.PriorityWeights
	if configFlag != "" {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		if cfg.Analyze != nil {
			if !cmd.Flags().Changed("kind") {
				kindName = cfg.Analyze.AnalysisKind
			}
			if !cmd.Flags().Changed("use-locana") {
				useLocana = cfg.Analyze.UseLocana
			}
			weights = analysis.PriorityWeights{
				Emission:         cfg.Analyze.Priorities.Emission,
				Reception:        cfg.Analyze.Priorities.Reception,
				MultiRendezvous:  cfg.Analyze.Priorities.MultiRdv,
				LoopDepthPenalty: cfg.Analyze.Priorities.InLoop,
				SimulationPenalty: cfg.Analyze.Priorities.Simu,
			}
		}
	}

	params, err := kindByName(kindName)
	if err != nil {
		return err
	}
	params.UseLocalAnalysis = useLocana

	log.Info().Str("scenario", scenario.Name).Str("kind", kindName).Bool("use_locana", useLocana).Msg("analyzing")

	report := analysis.Analyze(scenario.Term, scenario.Trace, scenario.Coloc, analysis.Options{
		Params:  params,
		Weights: weights,
		Filters: process.FilterSet{MaxNodeNumber: analyzeMaxNodeFlag, MaxLoopInstanciation: analyzeMaxDepthFlag},
		Logger:  log,
	})

	fmt.Printf("nodes explored: %d\n", report.NodeCount)
	fmt.Printf("global verdict: %s\n", report.Global)
	return nil
}
