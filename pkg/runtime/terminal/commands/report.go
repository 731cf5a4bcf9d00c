package commands

import (
	"fmt"

	"github.com/de-tools/growth-scorecard/pkg/adapters"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/services/scorecard"
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	session   *Session
	reporter  func() Reporter
	days      int
	objective string
	compare   bool
}

func NewReportCmd(session *Session, reporter func() Reporter) *cobra.Command {
	rc := &ReportCmd{session: session, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the growth scorecard",
		RunE:  rc.run,
	}

	cmd.Flags().IntVar(&rc.days, "days", 0, "Length of the period in days (default from preferences)")
	cmd.Flags().StringVar(&rc.objective, "objective", "", "Business objective that orders the KPIs (default from preferences)")
	cmd.Flags().BoolVar(&rc.compare, "compare", true, "Compare with the previous period of equal length")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	svc, err := rc.session.Scorecard(ctx)
	if err != nil {
		return err
	}

	period := rc.session.Period(rc.days)
	if cmd.Flags().Changed("compare") {
		period.CompareWithPrevious = rc.compare
	}

	objective := rc.session.Preferences.Objective
	if rc.objective != "" {
		objective = domain.Objective(rc.objective)
		if !objective.Valid() {
			return fmt.Errorf("unknown objective %q", rc.objective)
		}
	}

	sc, err := svc.Build(ctx, scorecard.Request{Period: period, Objective: objective})
	if err != nil {
		return fmt.Errorf("failed to build scorecard: %w", err)
	}

	return rc.reporter().Handle(adapters.MapScorecardToReport(sc))
}
