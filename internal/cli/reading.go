package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/hastrology/hastrology/pkg/horoscope"
	"github.com/hastrology/hastrology/pkg/horoscope/flow"
)

// readingAPI is the part of the API client the reading flow uses.
type readingAPI interface {
	Status(ctx context.Context, wallet string) (*horoscope.StatusResult, error)
	Confirm(ctx context.Context, req *horoscope.ConfirmRequest) (*horoscope.ConfirmResult, error)
}

// reader walks the flow machine through one reading attempt.
type reader struct {
	api     readingAPI
	machine *flow.Machine
	out     io.Writer
}

// run performs checking, then paying and generating when a signature is given.
// It returns the failure that sent the machine back to Ready, if any.
func (r *reader) run(ctx context.Context, wallet, signature string) error {
	st, err := r.api.Status(ctx, wallet)
	if err != nil {
		_ = r.machine.Fail(err)
		return fmt.Errorf("check status: %w", err)
	}

	if st.Status == horoscope.StatusExists {
		if err := r.machine.Resolve(st.Horoscope); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "Today's horoscope (%s):\n%s\n", st.Date, r.machine.Horoscope())
		return nil
	}

	if err := r.machine.Fire(flow.Clear); err != nil {
		return err
	}
	if signature == "" {
		printStatus(r.out, st)
		fmt.Fprintln(r.out, "Submit the payment, then run again with --signature.")
		return nil
	}

	for _, e := range []flow.Event{flow.Pay, flow.Submitted} {
		if err := r.machine.Fire(e); err != nil {
			return err
		}
	}
	fmt.Fprintln(r.out, "Consulting the stars...")

	res, err := r.api.Confirm(ctx, &horoscope.ConfirmRequest{WalletAddress: wallet, Signature: signature})
	if err != nil {
		_ = r.machine.Fail(err)
		return fmt.Errorf("confirm payment: %w", err)
	}
	if err := r.machine.Resolve(res.HoroscopeText); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "Today's horoscope (%s):\n%s\n", res.Date, r.machine.Horoscope())
	return nil
}
