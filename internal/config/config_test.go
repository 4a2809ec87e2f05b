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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreSeeded(t *testing.T) {
	assert.Equal(t, 4, Settings.Search.MaxDepth)
	assert.Equal(t, 1200, Settings.Eval.Difficulty)
	assert.Equal(t, 400_000, Settings.Eval.EvalCacheSize)
}

func TestSetupWithEmptyPathIsNoop(t *testing.T) {
	initialized = false
	defer func() { initialized = false }()
	require.NoError(t, Setup(""))
	assert.Equal(t, 4, Settings.Search.MaxDepth)
}

func TestSetupIsIdempotent(t *testing.T) {
	initialized = false
	defer func() { initialized = false; Settings.Search.MaxDepth = 4 }()

	dir := t.TempDir()
	path := filepath.Join(dir, "chesscore.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Search]\nMaxDepth = 6\n"), 0o644))

	require.NoError(t, Setup(path))
	assert.Equal(t, 6, Settings.Search.MaxDepth)

	// A second Setup call is a no-op: it does not re-read the file.
	Settings.Search.MaxDepth = 99
	require.NoError(t, Setup(path))
	assert.Equal(t, 99, Settings.Search.MaxDepth)
}

func TestSetupRejectsMissingFile(t *testing.T) {
	initialized = false
	defer func() { initialized = false }()
	err := Setup("/nonexistent/path/to/chesscore.toml")
	assert.Error(t, err)
}

func TestStringRendersSettings(t *testing.T) {
	s := Settings.String()
	assert.Contains(t, s, "search.max_depth")
	assert.Contains(t, s, "eval.difficulty")
}
