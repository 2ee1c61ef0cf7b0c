package estimate

import (
	"fmt"

	"nathanbeddoewebdev/ecoprint/internal/config"
	"nathanbeddoewebdev/ecoprint/internal/emissions"
	"nathanbeddoewebdev/ecoprint/internal/form"
	"nathanbeddoewebdev/ecoprint/internal/report"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// numberFlags maps each numeric flag to the form field it fills. The flags
// are strings so that bad input is coerced to 0 exactly like the form does.
var numberFlags = []struct {
	flag, field, usage string
}{
	{"page-size", form.FieldPageSize, "Average page size in KB"},
	{"visits", form.FieldMonthlyVisits, "Monthly visits"},
	{"bounce-rate", form.FieldBounceRate, "Bounce rate in percent (0-100)"},
	{"session-duration", form.FieldSessionSeconds, "Average session duration in seconds"},
	{"caching", form.FieldCaching, "Fraction of requests served from cache (0-1)"},
}

// NewCommand returns the "estimate" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate a website's carbon footprint",
		Long: "Estimate monthly and yearly CO2 emissions, an eco score and\n" +
			"recommendations from page weight, traffic and hosting setup.\n\n" +
			"Unset flags fall back to the config file, then to 0. Values that\n" +
			"are not numbers count as 0.\n\n" +
			"Examples:\n" +
			"  ecoprint estimate --page-size 2048 --visits 10000 --session-duration 2 --server-location 0.5\n" +
			"  ecoprint estimate --page-size 3000 --visits 5000 --region us-east-1 --cdn --caching 0.8\n" +
			"  ecoprint estimate --page-size 1500 --visits 20000 -o json\n" +
			"  ecoprint estimate --page-size 1500 --visits 20000 --chart impact.svg\n" +
			"  ecoprint estimate -i                     # interactive form",
		Args:         cobra.NoArgs,
		RunE:         runEstimate,
		SilenceUsage: true,
	}

	for _, f := range numberFlags {
		cmd.Flags().String(f.flag, "", f.usage)
	}
	cmd.Flags().String("server-location", "", "Grid carbon intensity in kg CO2/kWh")
	cmd.Flags().String("region", "", "Grid preset to use instead of --server-location")
	cmd.Flags().String("cdn", "", "Site is served through a CDN (true/false)")
	cmd.Flags().Lookup("cdn").NoOptDefVal = "true"
	cmd.Flags().StringP("output", "o", "", "Output format: text or json (default from config, then text)")
	cmd.Flags().String("chart", "", "Also write the comparison chart to a .png or .svg file")
	cmd.Flags().BoolP("interactive", "i", false, "Fill in the values with an interactive form")

	cmd.RegisterFlagCompletionFunc("region", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return emissions.RegionNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	interactive, _ := cmd.Flags().GetBool("interactive")
	if interactive {
		if !IsTerminal(cmd) {
			return fmt.Errorf("interactive mode requires a terminal")
		}
		return RunInteractive(cmd)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	in, err := resolveInput(cmd, cfg)
	if err != nil {
		return err
	}

	logger := zerolog.Ctx(cmd.Context())
	logger.Debug().Interface("input", in).Msg("inputs parsed")

	est := emissions.Calculate(in)
	logger.Debug().
		Float64("monthly_co2_g", est.Metrics.MonthlyCO2Grams).
		Int("eco_score", est.Metrics.EcoScore).
		Msg("estimate computed")

	chartPath, _ := cmd.Flags().GetString("chart")
	if chartPath != "" {
		if err := writeChart(chartPath, est.Chart); err != nil {
			return err
		}
		logger.Debug().Str("path", chartPath).Msg("chart rendered")
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = cfg.Output
	}
	return report.Write(cmd.OutOrStdout(), est, output)
}

// resolveInput layers explicitly set flags over the config defaults and
// parses the result.
func resolveInput(cmd *cobra.Command, cfg *config.Config) (emissions.Input, error) {
	fields, err := cfg.Fields()
	if err != nil {
		return emissions.Input{}, err
	}

	flags := cmd.Flags()
	for _, f := range numberFlags {
		if flags.Changed(f.flag) {
			fields[f.field], _ = flags.GetString(f.flag)
		}
	}
	if flags.Changed("cdn") {
		fields[form.FieldCDN], _ = flags.GetString("cdn")
	}

	if flags.Changed("server-location") || flags.Changed("region") {
		location, _ := flags.GetString("server-location")
		region, _ := flags.GetString("region")
		loc, err := config.ResolveLocation(location, region)
		if err != nil {
			return emissions.Input{}, err
		}
		fields[form.FieldServerLocation] = loc
	}

	return form.Parse(fields), nil
}
