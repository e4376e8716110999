package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hastrology/hastrology/pkg/horoscope"
	"github.com/hastrology/hastrology/pkg/horoscope/flow"
	"github.com/hastrology/hastrology/pkg/user"
)

func newRegisterCommand(o *options) *cobra.Command {
	var req user.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register birth details for a wallet, or log in if already registered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			wallet, err := o.wallet()
			if err != nil {
				return err
			}
			req.WalletAddress = wallet

			c, err := o.client()
			if err != nil {
				return err
			}
			ctx, cancel := o.context(cmd)
			defer cancel()

			resp, err := c.Register(ctx, &req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if resp.Created {
				fmt.Fprintf(out, "Registered %s\n", resp.User.WalletAddress)
			} else {
				fmt.Fprintf(out, "Welcome back %s\n", resp.User.WalletAddress)
			}
			fmt.Fprintf(out, "Token: %s\n", resp.Token)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.DOB, "dob", "", "Date of birth, e.g. \"April 20, 1995\"")
	cmd.Flags().StringVar(&req.BirthTime, "birth-time", "", "Time of birth, e.g. \"4:30 PM\"")
	cmd.Flags().StringVar(&req.BirthPlace, "birth-place", "", "Place of birth, e.g. \"New Delhi, India\"")
	for _, name := range []string{"dob", "birth-time", "birth-place"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newMeCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the profile of the token owner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			ctx, cancel := o.context(cmd)
			defer cancel()

			u, err := c.Me(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wallet:      %s\nBorn:        %s at %s\nBirthplace:  %s\n",
				u.WalletAddress, u.DOB, u.BirthTime, u.BirthPlace)
			return nil
		},
	}
}

func newStatusCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether today's horoscope exists or a payment is needed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			wallet, err := o.wallet()
			if err != nil {
				return err
			}
			c, err := o.client()
			if err != nil {
				return err
			}
			ctx, cancel := o.context(cmd)
			defer cancel()

			st, err := c.Status(ctx, wallet)
			if err != nil {
				return err
			}
			printStatus(cmd.OutOrStdout(), st)
			return nil
		},
	}
}

func newReadingCommand(o *options) *cobra.Command {
	var signature string

	cmd := &cobra.Command{
		Use:   "reading",
		Short: "Get today's horoscope, confirming a submitted payment when needed",
		Long: "Checks today's status. If a horoscope exists it is printed. Otherwise the\n" +
			"payment quote is shown, and with --signature the submitted payment is\n" +
			"confirmed and the new horoscope printed.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			wallet, err := o.wallet()
			if err != nil {
				return err
			}
			c, err := o.client()
			if err != nil {
				return err
			}
			ctx, cancel := o.context(cmd)
			defer cancel()

			r := &reader{api: c, machine: flow.NewMachine(nil), out: cmd.OutOrStdout()}
			return r.run(ctx, wallet, signature)
		},
	}

	cmd.Flags().StringVar(&signature, "signature", "", "Signature of the submitted payment transaction")
	return cmd
}

func newHistoryCommand(o *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past horoscopes, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			wallet, err := o.wallet()
			if err != nil {
				return err
			}
			c, err := o.client()
			if err != nil {
				return err
			}
			ctx, cancel := o.context(cmd)
			defer cancel()

			list, err := c.History(ctx, wallet, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No horoscopes yet.")
				return nil
			}
			for _, h := range list {
				fmt.Fprintf(out, "%s  %s\n", h.Date, h.Text)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Number of entries (1-100, server default when omitted)")
	return cmd
}

func newHealthCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show server readiness",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			ctx, cancel := o.context(cmd)
			defer cancel()

			h, err := c.Health(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Status: %s (database %s, ai server %s)\n", h.Status, h.Database, h.AIServer)
			return nil
		},
	}
}

func printStatus(out io.Writer, st *horoscope.StatusResult) {
	switch st.Status {
	case horoscope.StatusExists:
		fmt.Fprintf(out, "Today's horoscope (%s):\n%s\n", st.Date, st.Horoscope)
	default:
		fmt.Fprintln(out, st.Message)
		if st.Payment != nil {
			fmt.Fprintf(out, "Price: %s SOL (%d lamports)", st.Payment.AmountSOL, st.Payment.Lamports)
			if st.Payment.Recipient != "" {
				fmt.Fprintf(out, " to %s", st.Payment.Recipient)
			}
			fmt.Fprintln(out)
		}
	}
}
