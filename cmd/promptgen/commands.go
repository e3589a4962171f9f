package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sozercan/prompt-generator/apimodels"
	"github.com/sozercan/prompt-generator/internal/engine"
	"github.com/sozercan/prompt-generator/internal/server"
)

func (c *cli) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the prompt generator HTTP API.

Flags override the config file, which overrides SERVER_* and RATE_LIMIT_*
environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(*c.cfg, engine.New())
			slog.Info("starting server", "host", c.cfg.Server.Host, "port", c.cfg.Server.Port)
			return srv.Run()
		},
	}

	cmd.Flags().String("host", "", "address to bind (default from SERVER_HOST)")
	cmd.Flags().String("port", "", "port to listen on (default from SERVER_PORT)")
	cmd.Flags().Float64("rate-limit", 0, "requests per second across all clients, 0 disables")
	cmd.Flags().Int("rate-burst", 0, "burst size for the rate limiter")
	_ = c.v.BindPFlag("server.host", cmd.Flags().Lookup("host"))
	_ = c.v.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	_ = c.v.BindPFlag("rate_limit.rps", cmd.Flags().Lookup("rate-limit"))
	_ = c.v.BindPFlag("rate_limit.burst", cmd.Flags().Lookup("rate-burst"))
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var (
		promptType  string
		count       int
		specificity string
		seed        uint64
		output      string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random prompts for a category",
		Example: `  promptgen generate -t image
  promptgen generate -t code -n 5 -s high -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(output); err != nil {
				return err
			}
			req := apimodels.GenerateRequest{
				PromptType:  promptType,
				Count:       &count,
				Specificity: &specificity,
			}
			params, err := req.Validate()
			if err != nil {
				return err
			}

			var opts []engine.Option
			if seed != 0 {
				opts = append(opts, engine.WithSource(engine.NewSeededSource(seed)))
			}
			prompts, err := engine.New(opts...).Generate(params.Category, params.Count, params.Specificity)
			if err != nil {
				return fmt.Errorf("failed to generate prompts: %w", err)
			}

			resp := apimodels.GenerateResponse{
				Prompts:     prompts,
				Count:       len(prompts),
				PromptType:  string(params.Category),
				Specificity: string(params.Specificity),
			}
			return render(cmd.OutOrStdout(), output, resp, func(w io.Writer) error {
				if err := writeTitle(w, fmt.Sprintf("%d %s prompts (%s)", resp.Count, resp.PromptType, resp.Specificity)); err != nil {
					return err
				}
				return writeNumbered(w, resp.Prompts)
			})
		},
	}

	cmd.Flags().StringVarP(&promptType, "type", "t", "", "prompt category: image, workflow, automation, code")
	cmd.Flags().IntVarP(&count, "count", "n", apimodels.DefaultCount, "number of prompts (1-1000)")
	cmd.Flags().StringVarP(&specificity, "specificity", "s", string(apimodels.DefaultSpecificity), "low, medium, high or extreme")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible output, 0 picks a random one")
	cmd.Flags().StringVarP(&output, "output", "o", formatText, "output format: text, json or yaml")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newOptimizeCmd() *cobra.Command {
	var (
		context string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "optimize <vague prompt>",
		Short: "Rewrite a vague prompt into an explicit one",
		Example: `  promptgen optimize make my hair a bowl cut
  promptgen optimize "automate the data backup process" --context "Runs nightly"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(output); err != nil {
				return err
			}
			req := apimodels.OptimizeRequest{VaguePrompt: strings.Join(args, " ")}
			if cmd.Flags().Changed("context") {
				req.Context = &context
			}
			if err := req.Validate(); err != nil {
				return err
			}

			result := engine.New().Optimize(req.VaguePrompt, req.ContextValue())
			resp := apimodels.OptimizeResponse{
				Original:     result.Original,
				Optimized:    result.Optimized,
				DetectedType: string(result.Category),
			}
			return render(cmd.OutOrStdout(), output, resp, func(w io.Writer) error {
				if err := writeField(w, "Detected type", resp.DetectedType); err != nil {
					return err
				}
				if err := writeField(w, "Original", resp.Original); err != nil {
					return err
				}
				return writeField(w, "Optimized", resp.Optimized)
			})
		},
	}

	cmd.Flags().StringVarP(&context, "context", "c", "", "extra context placed before the optimized prompt")
	cmd.Flags().StringVarP(&output, "output", "o", formatText, "output format: text, json or yaml")
	return cmd
}

func newTypesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List prompt categories and specificity levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(output); err != nil {
				return err
			}
			resp := apimodels.NewTypesResponse()
			return render(cmd.OutOrStdout(), output, resp, func(w io.Writer) error {
				if err := writeList(w, "Types", resp.Types); err != nil {
					return err
				}
				return writeList(w, "Specificity levels", resp.SpecificityLevels)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", formatText, "output format: text, json or yaml")
	return cmd
}

func newCatalogCmd() *cobra.Command {
	var (
		promptType string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the template vocabulary used for generation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(output); err != nil {
				return err
			}
			catalog := engine.DefaultCatalog()

			categories := catalog.Categories()
			if promptType != "" {
				category, err := engine.ParseCategory(promptType)
				if err != nil {
					return err
				}
				categories = []engine.Category{category}
			}

			var templates []engine.Template
			for _, category := range categories {
				found := catalog.TemplatesFor(category)
				if len(found) == 0 {
					return fmt.Errorf("%w: %s", engine.ErrUnknownCategory, category)
				}
				templates = append(templates, found...)
			}

			return render(cmd.OutOrStdout(), output, templates, func(w io.Writer) error {
				for i, t := range templates {
					if i > 0 {
						if _, err := fmt.Fprintln(w); err != nil {
							return err
						}
					}
					if err := writeTitle(w, string(t.Category)); err != nil {
						return err
					}
					if err := writeField(w, "Structure", t.Structure); err != nil {
						return err
					}
					if err := writeList(w, "Modifiers", t.Modifiers); err != nil {
						return err
					}
					if err := writeList(w, "Constraints", t.Constraints); err != nil {
						return err
					}
					if err := writeList(w, "Quality", t.QualityTokens); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&promptType, "type", "t", "", "only show this category")
	cmd.Flags().StringVarP(&output, "output", "o", formatText, "output format: text, json or yaml")
	return cmd
}
