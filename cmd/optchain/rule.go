// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"fillmore-labs.com/optchain/plugin"
)

func (a *app) ruleCmd() *cobra.Command {
	var recommended bool

	cmd := &cobra.Command{
		Use:   "rule",
		Short: "Print the rule metadata as JSON",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			enc := json.NewEncoder(a.stdout)
			enc.SetIndent("", "  ")

			if recommended {
				return enc.Encode(plugin.RecommendedConfig())
			}

			return enc.Encode(plugin.Descriptor())
		},
	}

	cmd.Flags().BoolVar(&recommended, "recommended", false, "print the recommended configuration")

	return cmd
}
