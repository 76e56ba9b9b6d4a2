// Package cli implements the molexa command line: the api server runner
// and an offline molfile converter.
package cli

import (
	"net/http"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	conf "github.com/bazarkua/molexa/config"
	"github.com/bazarkua/molexa/web"
)

var log = conf.NamedLogger("cli")

// Launch ...
func Launch() {
	var rootCmd = &cobra.Command{Use: "molexa"}
	rootCmd.AddCommand(cmdServe, cmdConvert)
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var cmdServe = &cobra.Command{
	Use:   "serve",
	Short: "start the api server",
	Long:  "starts the molecular structure proxy api configured from the environment",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		config := conf.SetupConfig()
		if checkErr := conf.CheckConfig(config); checkErr != nil {
			log.Error(checkErr.Error())
			os.Exit(1)
		}

		router, routerErr := web.NewRouter(config)
		if routerErr != nil {
			log.Error(routerErr.Error())
			os.Exit(1)
		}

		portString := ":" + strconv.FormatInt(config.BackendPort, 10)
		log.Infof("Listening on %v", portString)
		log.Error(http.ListenAndServe(portString, router))
		os.Exit(1)
	},
}
