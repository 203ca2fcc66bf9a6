package calc

import (
	"fmt"

	"github.com/scienceol/psat/internal/config"
	"github.com/scienceol/psat/pkg/core/saturation"
	saturationImpl "github.com/scienceol/psat/pkg/core/saturation/saturation"
	"github.com/scienceol/psat/pkg/middleware/db"
	"github.com/scienceol/psat/pkg/repo"
	"github.com/scienceol/psat/pkg/repo/antoine"
	"github.com/spf13/cobra"
)

const (
	SourceBuiltin = "builtin"
	SourceDB      = "db"
)

type options struct {
	name        string
	temperature float64
	source      string
	verbose     bool
}

func New() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "calc",
		Short:        "Compute the saturation pressure of a substance",
		Long:         "Compute the saturation (vapor) pressure in bar of a pure substance at a temperature in Kelvin using the Antoine equation.",
		Example:      "  psat calc --name water --temperature 350",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			provider, closeFn, err := newProvider(cmd, opts.source)
			if err != nil {
				return err
			}
			defer closeFn()
			return run(cmd, saturationImpl.NewSaturation(provider), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "substance name in english")
	cmd.Flags().Float64VarP(&opts.temperature, "temperature", "t", 0, "temperature in Kelvin")
	cmd.Flags().StringVar(&opts.source, "source", SourceBuiltin, "coefficient source: builtin or db")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "print the coefficients used")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("temperature")
	return cmd
}

func newProvider(cmd *cobra.Command, source string) (repo.AntoineProvider, func(), error) {
	switch source {
	case SourceBuiltin:
		return antoine.NewBuiltin(), func() {}, nil
	case SourceDB:
		conf := config.Global()
		db.InitPostgres(cmd.Context(), &db.Config{
			Host: conf.Database.Host, Port: conf.Database.Port,
			User: conf.Database.User, PW: conf.Database.Password,
			DBName: conf.Database.Name, LogConf: db.LogConf{Level: conf.Log.LogLevel},
		})
		return antoine.NewAntoineImpl(), func() { db.ClosePostgres(cmd.Context()) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown coefficient source %q", source)
	}
}

func run(cmd *cobra.Command, svc saturation.Service, opts *options) error {
	resp, err := svc.Calculate(cmd.Context(), &saturation.PressureReq{
		Name:        opts.name,
		Temperature: &opts.temperature,
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if opts.verbose {
		fmt.Fprintf(out, "A=%g B=%g C=%g valid %g-%g K\n",
			resp.Coef.A, resp.Coef.B, resp.Coef.C, resp.Coef.TMin, resp.Coef.TMax)
	}
	fmt.Fprintf(out, "%.6g %s\n", resp.Pressure, resp.Unit)
	return nil
}
