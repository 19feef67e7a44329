package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kina-health/kina/internal/adapter/presenter"
	"github.com/kina-health/kina/internal/usecase/scoring"
	"github.com/kina-health/kina/pkg/ai"
)

func analyzeCmd() *cobra.Command {
	var (
		text      string
		file      string
		duration  float64
		language  string
		bandsFile string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a speech transcript",
		Long: `Score a transcript offline. The transcript comes from --text, --file,
or stdin when --file is "-". Band thresholds can be overridden under the
"scoring" key of the config file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			transcript, err := readTranscript(text, file)
			if err != nil {
				return err
			}

			cfg, err := scoringConfig(bandsFile)
			if err != nil {
				return err
			}

			engine, err := scoring.NewEngine(cfg, ai.NewLexiconSentiment())
			if err != nil {
				return err
			}

			result, err := engine.Analyze(cmd.Context(), scoring.Input{
				Text:            transcript,
				DurationSeconds: duration,
				Language:        language,
			})
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			printResult(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "transcript text to score")
	cmd.Flags().StringVar(&file, "file", "", `transcript file to score ("-" for stdin)`)
	cmd.Flags().Float64Var(&duration, "duration", 0, "recording duration in seconds")
	cmd.Flags().StringVar(&language, "language", "en", "transcript language code")
	cmd.Flags().StringVar(&bandsFile, "bands", "", "YAML file with band-table overrides")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the raw result as JSON")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}

func readTranscript(text, file string) (string, error) {
	switch {
	case text != "" && file != "":
		return "", fmt.Errorf("--text and --file are mutually exclusive")
	case text != "":
		return text, nil
	case file == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read transcript file: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("a transcript is required: pass --text or --file")
	}
}

// scoringConfig merges band overrides over the default tables, first
// from the "scoring" key of the main config, then from an explicit
// --bands file.
func scoringConfig(bandsFile string) (scoring.Config, error) {
	cfg := scoring.DefaultConfig()
	if viper.IsSet("scoring") {
		if err := viper.UnmarshalKey("scoring", &cfg); err != nil {
			return cfg, fmt.Errorf("invalid scoring overrides: %w", err)
		}
	}
	if bandsFile != "" {
		v := viper.New()
		v.SetConfigFile(bandsFile)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("failed to read bands file: %w", err)
		}
		if err := v.Unmarshal(&cfg); err != nil {
			return cfg, fmt.Errorf("invalid bands file: %w", err)
		}
	}
	return cfg, nil
}

func printResult(result *scoring.Result) {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	tierStyle := lipgloss.NewStyle().Bold(true).Foreground(tierColor(result.RiskTier))

	fmt.Println(headerStyle.Render(fmt.Sprintf("Overall %.1f / 100", result.Overall)),
		"·", tierStyle.Render(result.RiskTier.Display()+" risk"))
	fmt.Println()
	fmt.Print(presenter.Report(result))
}

func tierColor(tier scoring.RiskTier) lipgloss.Color {
	switch tier {
	case scoring.RiskLow:
		return lipgloss.Color("2")
	case scoring.RiskLowModerate:
		return lipgloss.Color("3")
	case scoring.RiskModerate:
		return lipgloss.Color("208")
	default:
		return lipgloss.Color("1")
	}
}
