// Copyright 2025 Blink Labs Software
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

package main

import (
	"github.com/mattn/go-colorable"
	"github.com/schollz/progressbar/v3"
)

// progressSink shows assembly progress messages as a spinner on stderr
type progressSink struct {
	bar *progressbar.ProgressBar
}

func newProgressSink() *progressSink {
	return &progressSink{
		bar: progressbar.NewOptions(
			-1,
			progressbar.OptionSetWriter(colorable.NewColorableStderr()),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(false),
			progressbar.OptionClearOnFinish(),
		),
	}
}

func (p *progressSink) Report(message string) {
	p.bar.Describe(message)
	_ = p.bar.Add(1)
}

func (p *progressSink) Close() {
	if p == nil {
		return
	}
	_ = p.bar.Finish()
}
