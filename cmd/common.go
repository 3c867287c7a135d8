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
	"encoding/json"
	"fmt"
	"io"

	"github.com/valpere/trangate/internal/config"
	"github.com/valpere/trangate/internal/translator"
)

// buildService constructs the upstream named by the translator config.
// The returned closer releases any client resources.
func buildService(ctx context.Context, tc config.TranslatorConfig) (translator.Service, func(), error) {
	switch tc.Provider {
	case "azure":
		return translator.NewAzureService(tc.ServiceConfig), func() {}, nil
	case "google":
		svc, err := translator.NewGoogleService(ctx, tc.ServiceConfig)
		if err != nil {
			return nil, nil, err
		}
		return svc, func() { svc.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown provider: %s", tc.Provider)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}
