package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "skstress", configBaseName)
	assert.Equal(t, "skstress.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "mode", planModeFlagName)
	assert.Equal(t, "page", planPageFlagName)
	assert.Equal(t, "parallel", planParallelFlagName)
	assert.Equal(t, "plan.mode", planModeConfigKey)
	assert.Equal(t, "plan.parallel", planParallelConfigKey)
	assert.Equal(t, ".skstress-failures.ndjson", defaultStreamPath)
	assert.Equal(t, "basic", defaultPlanMode)
	assert.Equal(t, 1, defaultPlanParallel)
	assert.Equal(t, "SKSTRESS", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}
