// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

/*
Package plugin decodes the rule configuration of the [optchain] analyzer and describes the rule.

The settings mirror the options of the ESLint rule `auto-optional-chaining`:

	{
	  "severity": "warn",
	  "excludeIdentifiers": ["store", "router"],
	  "excludeChainMethods": ["pipe"]
	}

Additional keys toggle the diagnostic categories (`preferChaining`, `propertyChaining`,
`optionalComputed`), generated file handling (`generated`) and the fix pass limit (`maxPasses`).
Unknown keys are rejected.

[optchain]: https://pkg.go.dev/fillmore-labs.com/optchain/analyzer
*/
package plugin
