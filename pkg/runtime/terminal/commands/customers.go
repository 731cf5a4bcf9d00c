package commands

import (
	"fmt"

	"github.com/de-tools/growth-scorecard/pkg/adapters"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/services/scorecard"
	"github.com/spf13/cobra"
)

type CustomersCmd struct {
	session  *Session
	reporter func() Reporter
	search   string
	status   string
	product  string
}

func NewCustomersCmd(session *Session, reporter func() Reporter) *cobra.Command {
	cc := &CustomersCmd{session: session, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "customers [id]",
		Short: "List customers with their resolved status, or show one customer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.search, "search", "", "Match contact name or company")
	cmd.Flags().StringVar(&cc.status, "status", "", "Filter by stored status")
	cmd.Flags().StringVar(&cc.product, "product", "", "Filter by product id")

	return cmd
}

func (cc *CustomersCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	svc, err := cc.session.Scorecard(ctx)
	if err != nil {
		return err
	}
	period := cc.session.Period(0)

	if len(args) == 1 {
		detail, err := svc.Customer(ctx, args[0])
		if err != nil {
			return err
		}
		return cc.reporter().Handle(adapters.MapCustomerDetailToReport(detail, period))
	}

	filter := scorecard.Filter{
		Search:    cc.search,
		Status:    domain.CustomerStatus(cc.status),
		ProductID: cc.product,
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return fmt.Errorf("unknown status %q", cc.status)
	}

	views, err := svc.Customers(ctx, filter)
	if err != nil {
		return err
	}
	return cc.reporter().Handle(adapters.MapCustomersToReport(views, period))
}
