// Package cli implements the hastrology command line client.
package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hastrology/hastrology/pkg/client"
)

const (
	defaultServer  = "http://localhost:5001"
	defaultTimeout = 60 * time.Second
)

type options struct {
	v *viper.Viper
}

func (o *options) wallet() (string, error) {
	w := o.v.GetString("wallet")
	if w == "" {
		return "", fmt.Errorf("wallet address is required (--wallet or HASTROLOGY_WALLET)")
	}
	return w, nil
}

func (o *options) client() (*client.Client, error) {
	return client.New(o.v.GetString("server"), client.WithToken(o.v.GetString("token")))
}

func (o *options) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), o.v.GetDuration("timeout"))
}

// NewRootCommand builds the hastrology command tree. Every persistent flag
// can also be set through a HASTROLOGY_ prefixed environment variable.
func NewRootCommand() *cobra.Command {
	o := &options{v: viper.New()}
	o.v.SetEnvPrefix("hastrology")
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "hastrology",
		Short:         "Read your daily horoscope from a Hastrology server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String("server", defaultServer, "API server base URL")
	flags.String("wallet", "", "Wallet address")
	flags.String("token", "", "Bearer token from register")
	flags.Duration("timeout", defaultTimeout, "Request timeout")
	for _, name := range []string{"server", "wallet", "token", "timeout"} {
		_ = o.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		newRegisterCommand(o),
		newMeCommand(o),
		newStatusCommand(o),
		newReadingCommand(o),
		newHistoryCommand(o),
		newHealthCommand(o),
	)
	return root
}
