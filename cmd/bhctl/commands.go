package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"blackhole/internal/blackhole"
	"blackhole/internal/config"
	"blackhole/internal/platform/apiclient"
)

type options struct {
	apiURL string
}

func (o *options) client() *apiclient.Client {
	return apiclient.New(o.apiURL, apiclient.WithUserAgent("bhctl"))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "bhctl",
		Short:        "Talk to the black hole catalog API",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.apiURL, "api-url",
		config.GetEnv("API_URL", config.DefaultAPIURL), "Base URL of the API")

	root.AddCommand(
		newPingCmd(opts),
		newHealthCmd(opts),
		newVersionCmd(opts),
		newListCmd(opts),
		newGetCmd(opts),
		newAddCmd(opts),
	)
	return root
}

func newPingCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Call GET /ping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := opts.client().Ping(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func newHealthCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Call GET /health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := opts.client().Health(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out.Status)
			return err
		},
	}
}

func newVersionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Call GET /version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := opts.client().Version(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out.Version)
			return err
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := opts.client().ListBlackHoles(cmd.Context(), limit, offset)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), items)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", blackhole.DefaultLimit, "Page size (1-100)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Rows to skip")
	return cmd
}

func newGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id must be an integer: %q", args[0])
			}
			b, err := opts.client().GetBlackHole(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), b)
		},
	}
}

func newAddCmd(opts *options) *cobra.Command {
	var (
		distance, mass float64
		description    string
	)
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := blackhole.CreateInput{Name: strings.TrimSpace(args[0])}
			if in.Name == "" {
				return fmt.Errorf("name must not be blank")
			}
			if cmd.Flags().Changed("distance") {
				in.DistanceLY = &distance
			}
			if cmd.Flags().Changed("mass") {
				in.MassSolar = &mass
			}
			if description != "" {
				in.Description = &description
			}

			b, err := opts.client().CreateBlackHole(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), b)
		},
	}
	cmd.Flags().Float64Var(&distance, "distance", 0, "Distance in light years")
	cmd.Flags().Float64Var(&mass, "mass", 0, "Mass in solar masses")
	cmd.Flags().StringVar(&description, "description", "", "Free text description")
	return cmd
}
