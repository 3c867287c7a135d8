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
	"time"

	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages [scope]",
	Short: "Print the upstream language catalog",
	Long: `Print the languages supported by the configured upstream.

Scope is one of translation, transliteration or dictionary (default translation).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope := "translation"
		if len(args) == 1 {
			scope = args[0]
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		svc, closeSvc, err := buildService(ctx, cfg.Translator)
		if err != nil {
			return err
		}
		defer closeSvc()

		out, err := svc.Languages(ctx, scope)
		if err != nil {
			return fmt.Errorf("failed to list languages: %w", err)
		}
		return printJSON(os.Stdout, out)
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
