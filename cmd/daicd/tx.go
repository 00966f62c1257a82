package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/daic-network/daic-node/api"
	"github.com/daic-network/daic-node/utils"
	qftypes "github.com/daic-network/daic-node/x/qfledger/types"
)

const (
	flagEnforceForwardStatus    = "enforce-forward-status"
	flagRejectZeroContributions = "reject-zero-contributions"
)

func txCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Submit ledger calls to a running node",
	}
	cmd.PersistentFlags().String(flagFrom, "", "Caller identity the call is submitted as")
	cmd.PersistentFlags().StringP(flagOutput, "o", OutputFormatYAML, "Output format (yaml|json)")
	_ = cmd.MarkPersistentFlagRequired(flagFrom)

	cmd.AddCommand(
		createProposalCmd(v),
		contributeCmd(v),
		markStatusCmd(v, "mark-funded", "Mark a proposal as Funded (proposer only)"),
		markStatusCmd(v, "mark-completed", "Mark a proposal as Completed (proposer only)"),
		updateParamsCmd(v),
		registerDIDCmd(v),
		revokeDIDCmd(v),
		registerDatasetCmd(v),
	)
	return cmd
}

func createProposalCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "create-proposal [title] [description]",
		Short: "Create a new Active proposal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return submit(cmd, v, "create-proposal", func(from string) (interface{}, error) {
				return api.CreateProposalRequest{
					Caller:      from,
					Title:       args[0],
					Description: args[1],
				}, nil
			})
		},
	}
}

func contributeCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "contribute [proposal-id] [amount]",
		Short: "Contribute an amount to an Active proposal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return submit(cmd, v, "contribute", func(from string) (interface{}, error) {
				id, err := utils.ParseProposalID(args[0])
				if err != nil {
					return nil, err
				}
				amount, err := utils.ParseAmount(args[1])
				if err != nil {
					return nil, err
				}
				return api.ContributeRequest{
					Caller:     from,
					ProposalID: id,
					Amount:     amount.String(),
				}, nil
			})
		},
	}
}

func markStatusCmd(v *viper.Viper, route, short string) *cobra.Command {
	return &cobra.Command{
		Use:   route + " [proposal-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return submit(cmd, v, route, func(from string) (interface{}, error) {
				id, err := utils.ParseProposalID(args[0])
				if err != nil {
					return nil, err
				}
				return api.StatusRequest{Caller: from, ProposalID: id}, nil
			})
		},
	}
}

func updateParamsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-params",
		Short: "Update the ledger parameters (authority only)",
		Long: `Update the ledger parameters. Only the flags that are set change;
the others keep their current on-chain value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return submit(cmd, v, "update-params", func(from string) (interface{}, error) {
				params, err := currentParams(v)
				if err != nil {
					return nil, err
				}
				flags := cmd.Flags()
				if flags.Changed(flagEnforceForwardStatus) {
					if params.EnforceForwardStatus, err = flags.GetBool(flagEnforceForwardStatus); err != nil {
						return nil, err
					}
				}
				if flags.Changed(flagRejectZeroContributions) {
					if params.RejectZeroContributions, err = flags.GetBool(flagRejectZeroContributions); err != nil {
						return nil, err
					}
				}
				return api.UpdateParamsRequest{Caller: from, Params: params}, nil
			})
		},
	}

	cmd.Flags().Bool(flagEnforceForwardStatus, false, "Reject status changes that repeat or move backwards")
	cmd.Flags().Bool(flagRejectZeroContributions, false, "Reject contributions that carry no deposit")
	return cmd
}

// currentParams fetches the ledger parameters from the running node.
func currentParams(v *viper.Viper) (qftypes.Params, error) {
	baseURL, err := nodeURL(v)
	if err != nil {
		return qftypes.Params{}, err
	}
	resp, err := newNodeClient(baseURL).get("/api/v1/params", nil)
	if err != nil {
		return qftypes.Params{}, err
	}

	var params qftypes.Params
	if err := json.Unmarshal(resp.Data, &params); err != nil {
		return qftypes.Params{}, fmt.Errorf("failed to decode params: %w", err)
	}
	return params, nil
}

func registerDIDCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "register-did [verification-method]",
		Short: "Register or replace the DID document of the caller",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return submit(cmd, v, "register-did", func(from string) (interface{}, error) {
				return api.RegisterDIDRequest{Caller: from, VerificationMethod: args[0]}, nil
			})
		},
	}
}

func revokeDIDCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "revoke-did [account]",
		Short: "Revoke the DID document of an account (issuer only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return submit(cmd, v, "revoke-did", func(from string) (interface{}, error) {
				return api.RevokeDIDRequest{Caller: from, Account: args[0]}, nil
			})
		},
	}
}

func registerDatasetCmd(v *viper.Viper) *cobra.Command {
	var (
		description string
		lineage     []string
	)

	cmd := &cobra.Command{
		Use:   "register-dataset [id] [title]",
		Short: "Register a dataset or publish a new version of one the caller owns",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return submit(cmd, v, "register-dataset", func(from string) (interface{}, error) {
				return api.RegisterDatasetRequest{
					Caller:      from,
					ID:          args[0],
					Title:       args[1],
					Description: description,
					Lineage:     lineage,
				}, nil
			})
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Dataset description")
	cmd.Flags().StringSliceVar(&lineage, "lineage", nil, "Parent dataset ids, comma separated")
	return cmd
}

// submit builds a request for the --from identity and posts it to the tx
// route of the running node.
func submit(cmd *cobra.Command, v *viper.Viper, route string, build func(from string) (interface{}, error)) error {
	from, err := cmd.Flags().GetString(flagFrom)
	if err != nil {
		return err
	}
	if strings.TrimSpace(from) == "" {
		return fmt.Errorf("--%s is required", flagFrom)
	}

	body, err := build(from)
	if err != nil {
		return err
	}

	baseURL, err := nodeURL(v)
	if err != nil {
		return err
	}

	resp, err := newNodeClient(baseURL).post("/api/v1/tx/"+route, body)
	if err != nil {
		return err
	}
	return printResponse(cmd, resp)
}
