package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/daic-network/daic-node/utils"
)

// Output formats
const (
	OutputFormatYAML = "yaml"
	OutputFormatJSON = "json"
)

// QueryOutput is what query and tx commands print.
type QueryOutput struct {
	Data        interface{} `yaml:"data" json:"data"`
	Height      int64       `yaml:"height" json:"height"`
	LastFetched time.Time   `yaml:"last_fetched" json:"last_fetched"`
}

func queryCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "query",
		Aliases: []string{"q"},
		Short:   "Querying commands against a running node",
	}
	cmd.PersistentFlags().StringP(flagOutput, "o", OutputFormatYAML, "Output format (yaml|json)")

	cmd.AddCommand(
		simpleQueryCmd(v, "proposals", "Query all proposals", "/api/v1/proposals"),
		simpleQueryCmd(v, "proposal-count", "Query the number of proposals ever created", "/api/v1/proposal-count"),
		simpleQueryCmd(v, "matching-pool", "Query the matching pool", "/api/v1/matching-pool"),
		simpleQueryCmd(v, "all-matched-funding", "Query the matched funding share of every proposal", "/api/v1/matched-funding"),
		simpleQueryCmd(v, "params", "Query the ledger parameters", "/api/v1/params"),
		simpleQueryCmd(v, "dids", "Query every registered DID document", "/api/v1/dids"),
		simpleQueryCmd(v, "datasets", "Query the latest version of every dataset", "/api/v1/datasets"),
		proposalQueryCmd(v, "proposal", "Query a proposal by id", "/api/v1/proposals/%d"),
		proposalQueryCmd(v, "matched-funding", "Query the matched funding share of a proposal", "/api/v1/proposals/%d/matched-funding"),
		proposalQueryCmd(v, "contributors", "Query per-contributor totals of a proposal", "/api/v1/proposals/%d/contributors"),
		contributionsCmd(v),
		topProposalsCmd(v),
		pathQueryCmd(v, "did [account]", "Resolve the DID document of an account", "/api/v1/dids/%s"),
		pathQueryCmd(v, "dataset [id]", "Query the latest version of a dataset", "/api/v1/datasets/%s"),
		pathQueryCmd(v, "dataset-history [id]", "Query every version of a dataset, oldest first", "/api/v1/datasets/%s/history"),
		datasetVersionCmd(v),
	)
	return cmd
}

func simpleQueryCmd(v *viper.Viper, use, short, path string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, v, path, nil)
		},
	}
}

func proposalQueryCmd(v *viper.Viper, use, short, pathFormat string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [proposal-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := utils.ParseProposalID(args[0])
			if err != nil {
				return err
			}
			return runQuery(cmd, v, fmt.Sprintf(pathFormat, id), nil)
		},
	}
}

func pathQueryCmd(v *viper.Viper, use, short, pathFormat string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, v, fmt.Sprintf(pathFormat, url.PathEscape(args[0])), nil)
		},
	}
}

func datasetVersionCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "dataset-version [id] [version]",
		Short: "Query one specific version of a dataset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := utils.ParseDatasetVersion(args[1])
			if err != nil {
				return err
			}
			return runQuery(cmd, v, fmt.Sprintf("/api/v1/datasets/%s/versions/%d", url.PathEscape(args[0]), version), nil)
		},
	}
}

func contributionsCmd(v *viper.Viper) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "contributions [proposal-id]",
		Short: "Query the most recent contributions to a proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := utils.ParseProposalID(args[0])
			if err != nil {
				return err
			}
			return runQuery(cmd, v, fmt.Sprintf("/api/v1/proposals/%d/contributions", id), limitQuery(limit))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of contributions to return (server default when 0)")
	return cmd
}

func topProposalsCmd(v *viper.Viper) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top-proposals",
		Short: "Query proposals ordered by contributions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, v, "/api/v1/top-proposals", limitQuery(limit))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of proposals to return (server default when 0)")
	return cmd
}

func limitQuery(limit int) url.Values {
	if limit <= 0 {
		return nil
	}
	return url.Values{"limit": []string{strconv.Itoa(limit)}}
}

func runQuery(cmd *cobra.Command, v *viper.Viper, path string, query url.Values) error {
	baseURL, err := nodeURL(v)
	if err != nil {
		return err
	}

	resp, err := newNodeClient(baseURL).get(path, query)
	if err != nil {
		return err
	}
	return printResponse(cmd, resp)
}

func printResponse(cmd *cobra.Command, resp *QueryResponse) error {
	format, err := cmd.Flags().GetString(flagOutput)
	if err != nil {
		return err
	}

	// json.Number keeps 64-bit counters exact in the YAML rendering
	decoder := json.NewDecoder(bytes.NewReader(resp.Data))
	decoder.UseNumber()
	var data interface{}
	if err := decoder.Decode(&data); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}

	output := QueryOutput{
		Data:        data,
		Height:      resp.Height,
		LastFetched: resp.LastFetched,
	}
	return printOutput(cmd.OutOrStdout(), output, format)
}

// printOutput prints the output in the specified format
func printOutput(w io.Writer, data interface{}, format string) error {
	switch format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return encoder.Encode(data)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
