package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foolchen/lifeRestart/internal/config"
	"github.com/foolchen/lifeRestart/internal/errors"
	"github.com/foolchen/lifeRestart/internal/orchestrators/draw"
	"github.com/foolchen/lifeRestart/internal/orchestrators/replacement"
	"github.com/foolchen/lifeRestart/internal/testutils"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		GRPCPort:      50051,
		CatalogSource: config.SourceFile,
		CatalogFile:   testutils.WriteCatalogFile(t, testutils.SampleCatalog()),
		CatalogKey:    "test_catalog",
		GradeScope:    "held",
		LogLevel:      "info",
	}
}

func TestNewAppFromFile(t *testing.T) {
	a, err := newApp(context.Background(), testConfig(t))
	require.NoError(t, err)
	defer a.close()

	assert.Equal(t, testutils.CommonCount+testutils.RareCount+testutils.EpicCount+testutils.LegendaryCount+4,
		a.registry.Count())

	out, err := a.draw.DrawTalents(context.Background(), &draw.DrawTalentsInput{})
	require.NoError(t, err)
	assert.Len(t, out.Draw.Talents, 10)

	replaced, err := a.replacement.ReplaceTalents(context.Background(), &replacement.ReplaceTalentsInput{
		TalentIDs: []int{2001},
	})
	require.NoError(t, err)
	assert.Empty(t, replaced.Replacements)
}

func TestNewAppMissingFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.CatalogFile = cfg.CatalogFile + ".missing"

	_, err := newApp(context.Background(), cfg)
	assert.True(t, errors.IsNotFound(err))
}

func TestSeedThenLoadFromRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg = testConfig(t)
	cfg.RedisAddr = mr.Addr()

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	require.NoError(t, runSeedCatalog(cmd, nil))
	assert.True(t, mr.Exists("test_catalog"))

	cfg.CatalogSource = config.SourceRedis
	a, err := newApp(context.Background(), cfg)
	require.NoError(t, err)
	defer a.close()

	def, err := a.registry.Get(testutils.ImmortalsBoxID)
	require.NoError(t, err)
	assert.Equal(t, "Mysterious Box", def.Name)
}

func TestExportCatalogToFile(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg = testConfig(t)
	cfg.RedisAddr = mr.Addr()

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	require.NoError(t, runSeedCatalog(cmd, nil))

	exportPath = filepath.Join(t.TempDir(), "exported.json")
	t.Cleanup(func() { exportPath = "" })
	require.NoError(t, runExportCatalog(cmd, nil))

	cfg.CatalogFile = exportPath
	a, err := newApp(context.Background(), cfg)
	require.NoError(t, err)
	defer a.close()

	assert.Equal(t, len(testutils.SampleCatalog()), a.registry.Count())
	def, err := a.registry.Get(2001)
	require.NoError(t, err)
	assert.Equal(t, 2, def.Status)
}

func TestRedisUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	c := testConfig(t)
	c.CatalogSource = config.SourceRedis
	c.RedisAddr = mr.Addr()
	mr.Close()

	_, err := newApp(context.Background(), c)
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnavailable, errors.GetCode(err))
}

func TestShippedCatalogLoads(t *testing.T) {
	c := testConfig(t)
	c.CatalogFile = "../../data/talents.json"

	a, err := newApp(context.Background(), c)
	require.NoError(t, err)
	defer a.close()

	out, err := a.draw.DrawTalents(context.Background(), &draw.DrawTalentsInput{})
	require.NoError(t, err)
	assert.Len(t, out.Draw.Talents, 10)

	def, err := a.registry.Get(2105)
	require.NoError(t, err)
	assert.Equal(t, 3, def.MaxTriggers)
}
