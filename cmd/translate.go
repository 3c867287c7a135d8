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
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/valpere/trangate/internal/translator"
	"github.com/valpere/trangate/internal/validator"
)

var targetLang string

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate text through the configured upstream",
	Long: `Send one translation request to the configured upstream and print
the raw answer. Useful to check credentials without starting the server.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := translator.TranslateRequest{
			Text: validator.Sanitize(strings.Join(args, " ")),
			To:   validator.Sanitize(targetLang),
		}
		if err := validator.New().Check(&req); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		svc, closeSvc, err := buildService(ctx, cfg.Translator)
		if err != nil {
			return err
		}
		defer closeSvc()

		out, err := svc.Translate(ctx, req)
		if err != nil {
			return fmt.Errorf("translation failed: %w", err)
		}
		return printJSON(os.Stdout, out)
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&targetLang, "to", "t", "", "Target language code (required)")
	translateCmd.MarkFlagRequired("to")
}
