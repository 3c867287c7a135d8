/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/valpere/trangate/internal/server"
)

var (
	servePort   int
	serveStrict bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP gateway",
	Long: `Run the HTTP gateway and the interactive API documentation.

Upstream failures answer 400 by default for compatibility with existing clients.
With --strict they answer 502 (501 for operations the upstream lacks).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		if cmd.Flags().Changed("strict") {
			cfg.Server.StrictErrors = serveStrict
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc, closeSvc, err := buildService(ctx, cfg.Translator)
		if err != nil {
			return err
		}
		defer closeSvc()

		if err := svc.IsAvailable(ctx); err != nil {
			log.Printf("Warning: upstream %s is not available: %v", svc.Name(), err)
		}

		srv := server.New(cfg.Server, svc)

		log.Printf("Server is running and listening at http://%s (upstream: %s, docs: %s)",
			cfg.Server.Addr(), svc.Name(), cfg.Server.DocsPath)
		return srv.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&servePort, "port", "p", 3000, "Port to listen on (overrides server.port)")
	serveCmd.Flags().BoolVar(&serveStrict, "strict", false, "Answer upstream failures with 502 instead of 400")
}
