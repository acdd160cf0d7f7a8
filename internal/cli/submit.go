// internal/cli/submit.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"claim-dashboard/internal/form"
	"claim-dashboard/internal/models"
	"claim-dashboard/internal/predictor"
)

var errSubmissionFailed = errors.New("claim submission failed")

// flag name -> form field
var submitFlags = []struct {
	flag  string
	field string
	usage string
}{
	{"claim-amount", models.FieldClaimAmount, "claim amount in rupees"},
	{"age", models.FieldAge, "policyholder age"},
	{"gender", models.FieldGender, "Male or Female"},
	{"location-policyholder", models.FieldLocationPolicyholder, "policyholder city"},
	{"location-hospital", models.FieldLocationHospital, "hospital city"},
	{"procedure-code", models.FieldProcedureCode, "one of P101, P102, P201, P202, P301, P302"},
}

func newSubmitCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Score one claim",
		Long: `Fill the claim form from flags and submit it once. Fields left unset keep
their form defaults (gender Male, both locations Mumbai, procedure P101).
Numeric fields are sent as typed; text that is not a number is sent as null.`,
		Example: `  claimctl submit --claim-amount 15000.50 --age 34
  claimctl submit --claim-amount 250000 --age 61 --procedure-code P301 --location-hospital Delhi`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd, opts)
		},
	}

	defaults := models.DefaultClaimForm()
	for _, f := range submitFlags {
		def, _ := defaults.Get(f.field)
		cmd.Flags().String(f.flag, def, f.usage)
	}

	return cmd
}

func runSubmit(cmd *cobra.Command, opts *options) error {
	log := opts.logger()
	defer func() { _ = log.Sync() }()

	client := predictor.NewClient(opts.cfg.Predictor.URL, opts.cfg.Predictor.Timeout, nil, log)
	controller := form.NewController(client, log)

	for _, f := range submitFlags {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}
		value, err := cmd.Flags().GetString(f.flag)
		if err != nil {
			return err
		}
		controller.UpdateField(f.field, value)
	}

	view := controller.Submit(cmd.Context())

	out := cmd.OutOrStdout()
	if view.HasResult() {
		fmt.Fprintln(out, view.FraudulentLine())
		fmt.Fprintln(out, view.ProbabilityLine())
	}
	if view.Error != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), view.Error)
		return errSubmissionFailed
	}

	return nil
}
