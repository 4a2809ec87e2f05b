//
// chesscore - a bitboard chess engine core in Go
//
// MIT License
//
// Copyright (c) 2020-2024 chesscore contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds the engine's globally available configuration:
// search depth, evaluation difficulty, cache sizing and log levels,
// decoded from a TOML file, with an init() that seeds defaults so the
// engine is usable with no config file at all.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Settings is the package-level configuration, seeded with defaults at
// init() and optionally overridden by Setup.
var Settings conf

var initialized = false

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
	Log    logConfiguration
}

type searchConfiguration struct {
	// MaxDepth is the number of plies the engine searches from the root.
	MaxDepth int
}

type evalConfiguration struct {
	// Difficulty gates which evaluation terms are active, in [0,1200].
	Difficulty int
	// EvalCacheSize is the maximum number of entries the evaluation LRU
	// cache holds before evicting from the tail.
	EvalCacheSize int
}

type logConfiguration struct {
	Level       int
	SearchLevel int
}

func init() {
	Settings.Search.MaxDepth = 4

	Settings.Eval.Difficulty = 1200
	Settings.Eval.EvalCacheSize = 400_000

	Settings.Log.Level = 4 // INFO, in op/go-logging's level numbering
	Settings.Log.SearchLevel = 4
}

// Setup reads path as a TOML file and overlays it onto the defaults set
// by init(). It is idempotent: a second call is a no-op. An empty path is
// a deliberate no-op (run on defaults); a non-empty path that can't be
// read or parsed is reported to the caller rather than silently ignored.
func Setup(path string) error {
	if initialized {
		return nil
	}
	initialized = true
	if path == "" {
		return nil
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// String renders the current settings, primarily for verbose search
// reports and debugging.
func (c *conf) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "search.max_depth=%d eval.difficulty=%d eval.cache_size=%d log.level=%d log.search_level=%d",
		c.Search.MaxDepth, c.Eval.Difficulty, c.Eval.EvalCacheSize, c.Log.Level, c.Log.SearchLevel)
	return sb.String()
}
