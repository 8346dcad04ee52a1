package commands

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wonny/salesperf/internal/analysis"
	"github.com/wonny/salesperf/internal/contracts"
	"github.com/wonny/salesperf/internal/dataset"
	"github.com/wonny/salesperf/internal/policyconfig"
	"github.com/wonny/salesperf/internal/strategy"
	"github.com/wonny/salesperf/pkg/config"
	"github.com/wonny/salesperf/pkg/logger"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Build the seller performance report",
	Long: `Reads a JSON dataset (sellers, products, purchase_records) and prints
one row per seller in rank order.

Precedence of settings: flags > policy file > environment > defaults.

Flags:
  --dataset            JSON dataset (required)
  --policy             YAML report policy (default: $SALES_POLICY_PATH)
  --output             table | json (default: table)
  --top                top products per seller
  --subtract-discount  subtract a receipt's total_discount from its total_amount

Example:
  salesperf analyze --dataset data.json
  salesperf analyze --dataset data.json --top 5 --output json`,
	RunE: runAnalyze,
}

var (
	analyzeDataset          string
	analyzePolicy           string
	analyzeOutput           string
	analyzeTop              int
	analyzeSubtractDiscount bool
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeDataset, "dataset", "", "JSON dataset path (required)")
	analyzeCmd.Flags().StringVar(&analyzePolicy, "policy", "", "YAML report policy path")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "table", "output format (table|json)")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", analysis.TopProductsLimit, "top products per seller")
	analyzeCmd.Flags().BoolVar(&analyzeSubtractDiscount, "subtract-discount", true, "subtract total_discount from total_amount")

	analyzeCmd.MarkFlagRequired("dataset")
}

// analyzeResult is the JSON output document
type analyzeResult struct {
	Run     *policyconfig.RunSnapshot `json:"run"`
	Summary analysis.Summary          `json:"summary"`
	Reports []contracts.SellerReport  `json:"reports"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeOutput != "table" && analyzeOutput != "json" {
		return fmt.Errorf("invalid output format %q (table|json)", analyzeOutput)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	log := logger.New(cfg)

	policy, raw, err := resolvePolicy(cmd, cfg)
	if err != nil {
		log.WithError(err).Error("Failed to load policy")
		return err
	}
	for _, w := range policyconfig.Warn(policy) {
		log.WithField("code", w.Code).Warn(w.Message)
	}

	ds, err := dataset.Load(analyzeDataset)
	if err != nil {
		log.WithError(err).Error("Failed to load dataset")
		return err
	}

	snapshot, err := policyconfig.NewRunSnapshot(policy, raw, filepath.Base(analyzeDataset))
	if err != nil {
		return fmt.Errorf("run snapshot: %w", err)
	}

	runLog := log.WithFields(map[string]interface{}{
		"run_id":    snapshot.RunID,
		"policy_id": snapshot.PolicyID,
		"dataset":   snapshot.DatasetName,
	})

	analyzer := analysis.NewAnalyzer(policy.Options(), runLog)
	reports, err := analyzer.Analyze(ds, strategy.FromTiers(policy.Tiers()))
	if err != nil {
		return fmt.Errorf("analyze %s: %w", analyzeDataset, err)
	}
	summary := analysis.Summarize(reports)

	out := cmd.OutOrStdout()
	if analyzeOutput == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(analyzeResult{Run: snapshot, Summary: summary, Reports: reports})
	}

	printReportTable(out, snapshot, reports, summary)
	return nil
}

// resolvePolicy layers defaults, environment, policy file and flags
func resolvePolicy(cmd *cobra.Command, cfg *config.Config) (*policyconfig.Policy, []byte, error) {
	policy := policyconfig.Default()
	policy.Aggregation.SubtractTotalDiscount = cfg.Report.SubtractTotalDiscount
	policy.Report.TopProductsLimit = cfg.Report.TopProductsLimit
	var raw []byte

	path := analyzePolicy
	if path == "" {
		path = cfg.Report.PolicyPath
	}
	if path != "" {
		loaded, data, err := policyconfig.Load(path)
		if err != nil {
			return nil, nil, err
		}
		policy, raw = loaded, data
	}

	if cmd.Flags().Changed("top") {
		policy.Report.TopProductsLimit = analyzeTop
	}
	if cmd.Flags().Changed("subtract-discount") {
		policy.Aggregation.SubtractTotalDiscount = analyzeSubtractDiscount
	}

	if err := policyconfig.Validate(policy); err != nil {
		return nil, nil, err
	}
	return policy, raw, nil
}
