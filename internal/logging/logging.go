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

// Package logging is a thin helper over "github.com/op/go-logging" that
// reduces every call site to a single GetLog()/GetSearchLog() call. It
// hands back pre-configured *logging.Logger values backed by a shared
// stdout formatter, with the level pulled from internal/config.
package logging

import (
	"os"

	"github.com/op/go-logging"

	"github.com/mkoepke/chesscore/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	testLog     *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
	)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	testLog = logging.MustGetLogger("test")
}

func backend(level logging.Level) logging.LeveledBackend {
	raw := logging.NewLogBackend(os.Stdout, "", 0)
	formatted := logging.NewBackendFormatter(raw, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	return leveled
}

// GetLog returns the standard logger. The search engine writes its
// debug-level messages through it; at the default INFO level they are
// suppressed.
func GetLog() *logging.Logger {
	standardLog.SetBackend(backend(logging.Level(config.Settings.Log.Level)))
	return standardLog
}

// GetSearchLog returns the logger the search engine uses to report
// position counts and cache statistics.
func GetSearchLog() *logging.Logger {
	searchLog.SetBackend(backend(logging.Level(config.Settings.Log.SearchLevel)))
	return searchLog
}

// GetTestLog returns a logger for test code, at the standard level.
func GetTestLog() *logging.Logger {
	testLog.SetBackend(backend(logging.Level(config.Settings.Log.Level)))
	return testLog
}
