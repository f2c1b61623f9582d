package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/tools/go/analysis/analysistest"
)

func TestNoOsExitAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), NoOsExitAnalyzer, "exitmain", "exitlib")
}

func TestAnalyzers(t *testing.T) {
	names := make(map[string]bool)
	for _, a := range analyzers() {
		names[a.Name] = true
	}

	assert.True(t, names["noosexit"])
	assert.True(t, names["bodyclose"])
	assert.True(t, names["nilerr"])
	assert.True(t, names["ineffassign"])
	assert.True(t, names["errcheck"])
	assert.True(t, names["ST1005"])
	assert.True(t, names["SA1012"])
	assert.False(t, names["ST1003"])
}
