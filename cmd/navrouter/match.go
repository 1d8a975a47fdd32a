package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/navkit/router"
	"github.com/navkit/router/internal/config"
)

type matchResult struct {
	Pattern     string                  `json:"pattern"`
	View        string                  `json:"view,omitempty"`
	Path        string                  `json:"path"`
	Params      map[string]string       `json:"params"`
	QueryString string                  `json:"queryString"`
	Query       map[string]router.Value `json:"query"`
}

func matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <path> [query]",
		Short: "Resolve a path against the configured routes",
		Long: `Resolve a path against the configured routes and print the match
as JSON. The query may also be given as part of the path, after '?'.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRouter(cmd)
			if err != nil {
				return err
			}

			var route router.Route
			if len(args) == 2 {
				route, err = r.FindMatchingRoute(args[0], args[1])
			} else {
				route, err = r.Navigate(args[0])
			}
			if err != nil {
				return err
			}

			req := route.Request()
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(matchResult{
				Pattern:     route.Pattern(),
				View:        route.View(),
				Path:        req.Path(),
				Params:      req.Params(),
				QueryString: req.QueryString(),
				Query:       req.Query(),
			})
		},
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	return config.Load(path)
}

func loadRouter(cmd *cobra.Command) (*router.Router, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	r := router.New()
	if err := r.Init(cfg.Routes); err != nil {
		return nil, fmt.Errorf("failed to initialise router: %w", err)
	}

	return r, nil
}
