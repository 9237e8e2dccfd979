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
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valpere/perelay/internal/relay"
)

var (
	inputFile  string
	sourceLang string
	targetLang string
)

var translateCmd = &cobra.Command{
	Use:   "translate [text...]",
	Short: "Translate text once and print the relay response",
	Long: `Run a single translation through the same relay the server uses and
print the JSON response. Text is taken from the arguments, or from --input.

Example:
  perelay translate -s en -t vi hello world
  perelay translate -t fr -i note.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		switch {
		case inputFile != "" && len(args) > 0:
			return fmt.Errorf("pass text either as arguments or with --input, not both")
		case inputFile != "":
			data, err := os.ReadFile(inputFile)
			if err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}
			text = string(data)
		case len(args) > 0:
			text = strings.Join(args, " ")
		default:
			return fmt.Errorf("no text to translate")
		}

		_, _, rl, err := loadRelay()
		if err != nil {
			return err
		}

		resp := rl.Translate(cmd.Context(), relay.Request{
			SourceLang: sourceLang,
			TargetLang: targetLang,
			Text:       text,
		})

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}

		if resp.Failed() {
			return fmt.Errorf("translation failed: %s", *resp.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate")
	translateCmd.Flags().StringVarP(&sourceLang, "source", "s", "auto", "Source language code")
	translateCmd.Flags().StringVarP(&targetLang, "target", "t", "", "Target language code (required)")

	translateCmd.MarkFlagRequired("target")
}
