package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jiaming2012/option-analytics/src/models"
	"github.com/jiaming2012/option-analytics/src/pricing"
	"github.com/jiaming2012/option-analytics/src/utils"
)

type RunArgs struct {
	Contract         models.OptionContract
	TargetPrice      float64
	HasTargetPrice   bool
	SolverConfigPath string
}

type RunResult struct {
	Greeks            models.GreeksResult
	ImpliedVolatility *float64
}

var runCmd = &cobra.Command{
	Use:   "option_report --underlying 4815 --strike 4500 --time-to-maturity 0.0877 --rate 0 --volatility 0.26 --type call --target-price 352.404034",
	Short: "Price a European option, report its greeks and optionally recover the implied volatility from a market price",
	Run: func(cmd *cobra.Command, args []string) {
		underlying, err := cmd.Flags().GetFloat64("underlying")
		if err != nil {
			log.Fatalf("error getting underlying: %v", err)
		}

		strike, err := cmd.Flags().GetFloat64("strike")
		if err != nil {
			log.Fatalf("error getting strike: %v", err)
		}

		timeToMaturity, err := cmd.Flags().GetFloat64("time-to-maturity")
		if err != nil {
			log.Fatalf("error getting time-to-maturity: %v", err)
		}

		rate, err := cmd.Flags().GetFloat64("rate")
		if err != nil {
			log.Fatalf("error getting rate: %v", err)
		}

		volatility, err := cmd.Flags().GetFloat64("volatility")
		if err != nil {
			log.Fatalf("error getting volatility: %v", err)
		}

		optionType, err := cmd.Flags().GetString("type")
		if err != nil {
			log.Fatalf("error getting type: %v", err)
		}

		targetPrice, err := cmd.Flags().GetFloat64("target-price")
		if err != nil {
			log.Fatalf("error getting target-price: %v", err)
		}

		solverConfigPath, err := cmd.Flags().GetString("solver-config")
		if err != nil {
			log.Fatalf("error getting solver-config: %v", err)
		}

		result, err := Run(RunArgs{
			Contract: models.OptionContract{
				UnderlyingPrice: underlying,
				StrikePrice:     strike,
				TimeToMaturity:  timeToMaturity,
				RiskFreeRate:    rate,
				Volatility:      volatility,
				OptionType:      models.OptionType(strings.ToLower(optionType)),
			},
			TargetPrice:      targetPrice,
			HasTargetPrice:   cmd.Flags().Changed("target-price"),
			SolverConfigPath: solverConfigPath,
		})

		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		fmt.Print(renderReport(result))
	},
}

func Run(args RunArgs) (RunResult, error) {
	greeks, err := pricing.Evaluate(args.Contract)
	if err != nil {
		return RunResult{}, fmt.Errorf("error evaluating contract: %w", err)
	}

	result := RunResult{
		Greeks: greeks,
	}

	if args.HasTargetPrice {
		solverConfig := models.NewSolverConfig()
		if args.SolverConfigPath != "" {
			data, err := os.ReadFile(args.SolverConfigPath)
			if err != nil {
				return RunResult{}, fmt.Errorf("error reading solver config %s: %v", args.SolverConfigPath, err)
			}

			solverConfig, err = models.NewSolverConfigFromYAML(data)
			if err != nil {
				return RunResult{}, fmt.Errorf("error parsing solver config %s: %w", args.SolverConfigPath, err)
			}
		}

		iv, err := pricing.SolveImpliedVolatility(args.TargetPrice, args.Contract.WithVolatility(0), solverConfig)
		if err != nil {
			return RunResult{}, fmt.Errorf("error solving implied volatility: %w", err)
		}

		result.ImpliedVolatility = &iv
	}

	return result, nil
}

func renderReport(result RunResult) string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")

	headers := []string{"d1", "d2", "Price", "Delta", "Gamma", "Theta", "Vega", "Rho"}
	row := []string{
		fmt.Sprintf("%.6f", result.Greeks.D1),
		fmt.Sprintf("%.6f", result.Greeks.D2),
		p.Sprintf("%.6f", result.Greeks.Price),
		fmt.Sprintf("%.6f", result.Greeks.Delta),
		fmt.Sprintf("%.6f", result.Greeks.Gamma),
		p.Sprintf("%.6f", result.Greeks.Theta),
		p.Sprintf("%.6f", result.Greeks.Vega),
		p.Sprintf("%.6f", result.Greeks.Rho),
	}

	if result.ImpliedVolatility != nil {
		headers = append(headers, "Implied Volatility")
		row = append(row, fmt.Sprintf("%.6f", *result.ImpliedVolatility))
	}

	table.SetHeader(headers)
	table.Append(row)
	table.Render()

	return display.String()
}

func main() {
	if err := utils.InitEnvironmentVariables(); err != nil {
		log.Fatalf("error loading environment variables: %v", err)
	}

	runCmd.Flags().Float64("underlying", 0, "Current price of the underlying asset")
	runCmd.Flags().Float64("strike", 0, "Strike price of the option")
	runCmd.Flags().Float64("time-to-maturity", 0, "Time to maturity in years")
	runCmd.Flags().Float64("rate", 0, "Continuously compounded annual risk-free rate")
	runCmd.Flags().Float64("volatility", 0, "Annualized volatility")
	runCmd.Flags().String("type", string(models.Call), "Option type: call or put")
	runCmd.Flags().Float64("target-price", 0, "Observed market price to invert for implied volatility")
	runCmd.Flags().String("solver-config", "", "Path to a YAML solver config (tolerance, max_iterations, min/max volatility)")

	_ = runCmd.MarkFlagRequired("underlying")
	_ = runCmd.MarkFlagRequired("strike")
	_ = runCmd.MarkFlagRequired("time-to-maturity")

	if err := runCmd.Execute(); err != nil {
		log.Fatalf("error executing command: %v", err)
	}
}
