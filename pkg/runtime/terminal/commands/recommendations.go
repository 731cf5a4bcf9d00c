package commands

import (
	"fmt"

	"github.com/de-tools/growth-scorecard/pkg/adapters"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/services/recommendation"
	"github.com/spf13/cobra"
)

type RecommendationsCmd struct {
	session  *Session
	reporter func() Reporter
	customer string
	kind     string
	priority string
}

func NewRecommendationsCmd(session *Session, reporter func() Reporter) *cobra.Command {
	rc := &RecommendationsCmd{session: session, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "recommendations",
		Short: "Show the recommendation board, or the recommendations of one customer",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.customer, "customer", "", "Customer id")
	cmd.Flags().StringVar(&rc.kind, "kind", "", "Board filter: diagnosis, recommendation or alert")
	cmd.Flags().StringVar(&rc.priority, "priority", "", "Board filter: low, medium or high")

	return cmd
}

func (rc *RecommendationsCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	period := rc.session.Period(0)

	if rc.customer != "" {
		svc, err := rc.session.Scorecard(ctx)
		if err != nil {
			return err
		}
		detail, err := svc.Customer(ctx, rc.customer)
		if err != nil {
			return err
		}
		return rc.reporter().Handle(adapters.MapCustomerDetailToReport(detail, period))
	}

	store, err := rc.session.Store(ctx)
	if err != nil {
		return err
	}
	recs, err := recommendation.NewBoard(store, nil).List(ctx, recommendation.BoardFilter{
		Kind:     domain.RecommendationKind(rc.kind),
		Priority: domain.Priority(rc.priority),
	})
	if err != nil {
		return fmt.Errorf("failed to list recommendations: %w", err)
	}

	return rc.reporter().Handle(adapters.MapBoardToReport(recs, period))
}
