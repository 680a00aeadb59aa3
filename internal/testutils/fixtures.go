package testutils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foolchen/lifeRestart/internal/entities"
)

// Sample catalog id ranges, one block per grade
const (
	CommonIDStart    = 2001
	CommonCount      = 30
	RareIDStart      = 2101
	RareCount        = 10
	EpicIDStart      = 2201
	EpicCount        = 6
	LegendaryIDStart = 2301
	LegendaryCount   = 4
)

// Variant special talents present in the sample catalog
const (
	ImmortalsBoxID = 1048
	MagicWandID    = 1131
	AnimeMasterID  = 1005
	BornFemaleID   = 1004
)

// Talent builds a raw talent of the given grade
func Talent(grade int, name string) entities.RawTalent {
	return entities.RawTalent{
		Grade:       entities.NewFlexInt(grade),
		Name:        name,
		Description: name + " description",
	}
}

// SampleCatalog returns a catalog large enough for full draws in every grade,
// including the variant special talents
func SampleCatalog() entities.RawCatalog {
	raw := entities.RawCatalog{}
	add := func(start, count, grade int, prefix string) {
		for i := 0; i < count; i++ {
			id := start + i
			raw[strconv.Itoa(id)] = Talent(grade, fmt.Sprintf("%s %d", prefix, id))
		}
	}
	add(CommonIDStart, CommonCount, 0, "common")
	add(RareIDStart, RareCount, 1, "rare")
	add(EpicIDStart, EpicCount, 2, "epic")
	add(LegendaryIDStart, LegendaryCount, 3, "legendary")

	raw[strconv.Itoa(ImmortalsBoxID)] = Talent(3, "Mysterious Box")
	raw[strconv.Itoa(MagicWandID)] = Talent(2, "Magic Wand")
	raw[strconv.Itoa(AnimeMasterID)] = Talent(2, "Anime Master")
	raw[strconv.Itoa(BornFemaleID)] = Talent(1, "Born Female")

	withStatus := raw["2001"]
	withStatus.Status = entities.NewFlexInt(2)
	withStatus.Effect = json.RawMessage(`{"SPR":1}`)
	raw["2001"] = withStatus

	return raw
}

// WriteCatalogFile writes raw as JSON into a temporary directory and returns its path
func WriteCatalogFile(t *testing.T, raw entities.RawCatalog) string {
	t.Helper()

	data, err := json.Marshal(raw)
	require.NoError(t, err, "failed to marshal catalog")

	path := filepath.Join(t.TempDir(), "talents.json")
	require.NoError(t, os.WriteFile(path, data, 0o600), "failed to write catalog")
	return path
}
