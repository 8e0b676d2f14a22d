package main

// @title getcooked API
// @version 1.0
// @description Roasts a Spotify user's listening habits with a generative model.

// @host localhost:9089
// @BasePath /
// @schemes http
import (
	"os"

	_ "getcooked/docs"
	protocol "getcooked/protocal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var env string

	rootCmd := &cobra.Command{
		Use:           "getcooked",
		Short:         "Spotify roast service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return protocol.ServeHTTP(env)
		},
	}
	rootCmd.PersistentFlags().StringVar(&env, "env", "", "the environment to use")

	if err := rootCmd.Execute(); err != nil {
		logrus.Errorln(err)
		os.Exit(1)
	}
}
