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

package gclplugin

import saneifelse "fillmore-labs.com/saneifelse/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Exits treats calls like log.Fatal and os.Exit as terminating a branch.
	Exits *bool `json:"exits,omitzero"`
}

// Options converts [Settings] into a list of [saneifelse.Option] for the saneifelse analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []saneifelse.Option {
	var opts []saneifelse.Option

	opts = appendOption(opts, s.Exits, saneifelse.WithExits)

	return opts
}

// appendOption appends a non-nil setting to a [saneifelse.Option] list.
func appendOption[T any](opts []saneifelse.Option, value *T, constructor func(T) saneifelse.Option) []saneifelse.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
