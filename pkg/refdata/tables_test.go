package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qerrors "github.com/fairfix/quote-engine/pkg/errors"
)

// mapProvider serves tables from an in-memory map, overriding the embedded
// defaults for the files it carries.
type mapProvider struct {
	files map[string]string
}

func (p *mapProvider) ReadFile(name string) ([]byte, error) {
	if data, ok := p.files[name]; ok {
		return []byte(data), nil
	}
	return NewEmbeddedDataProvider().ReadFile(name)
}

func (p *mapProvider) Source(name string) string { return "test" }

func TestLoad_Embedded(t *testing.T) {
	tables, err := Load(NewEmbeddedDataProvider())
	require.NoError(t, err)

	hours, ok := tables.LaborHours("Oil Change")
	require.True(t, ok)
	assert.Equal(t, 0.5, hours)

	rate, ok := tables.LaborRate(ShopDealer, "mid")
	require.True(t, ok)
	assert.Equal(t, 120.0, rate.Mean)
	assert.Equal(t, 15.0, rate.Std)

	parts, ok := tables.PartsEstimate("Oil Change", "mid")
	require.True(t, ok)
	assert.Equal(t, 40.0, parts.Mean)
	assert.Equal(t, 5.0, parts.Std)

	tier, ok := tables.VehicleTier("Toyota", "Camry")
	require.True(t, ok)
	assert.Equal(t, "mid", tier)

	services := tables.Services()
	assert.Len(t, services, 26)
	assert.Contains(t, services, "Brake Pad Replacement (Front)")
}

func TestLoad_MakeFallbackUsesFirstListedModel(t *testing.T) {
	p := &mapProvider{files: map[string]string{
		FileVehicleTiers: "make,model,tier\nbmw,3 series,luxury\nbmw,i3,mid\n",
	}}

	tables, err := Load(p)
	require.NoError(t, err)

	tier, ok := tables.MakeTier("BMW")
	require.True(t, ok)
	assert.Equal(t, "luxury", tier)
}

func TestLoad_MissingColumnFailsLoad(t *testing.T) {
	p := &mapProvider{files: map[string]string{
		FileLaborRates: "shop_type,vehicle_tier,rate_mean\ndealer,mid,120\n",
	}}

	_, err := Load(p)
	require.Error(t, err)
	assert.Equal(t, qerrors.ErrCodeInvalidData, qerrors.CodeOf(err))
}

func TestLoad_UnparseableNumericSkipsRow(t *testing.T) {
	p := &mapProvider{files: map[string]string{
		FileLaborRates: "shop_type,vehicle_tier,rate_mean,rate_std\n" +
			"dealer,mid,oops,15\n" +
			"indy,mid,95,12\n",
	}}

	tables, err := Load(p)
	require.NoError(t, err)

	_, ok := tables.LaborRate(ShopDealer, "mid")
	assert.False(t, ok, "row with bad rate_mean should be skipped")

	rate, ok := tables.LaborRate(ShopIndy, "mid")
	require.True(t, ok)
	assert.Equal(t, 95.0, rate.Mean)
}

func TestTables_IntervalsReturnsCopy(t *testing.T) {
	tables, err := Load(NewEmbeddedDataProvider())
	require.NoError(t, err)

	m := tables.Intervals("toyota", "camry")
	require.NotNil(t, m)
	m["Oil Change"] = 1

	again := tables.Intervals("toyota", "camry")
	assert.Equal(t, 10000, again["Oil Change"])
}

func TestTables_VehicleTierNormalizesKeys(t *testing.T) {
	tables, err := Load(NewEmbeddedDataProvider())
	require.NoError(t, err)

	tier, ok := tables.VehicleTier("  TOYOTA ", " Camry ")
	require.True(t, ok)
	assert.Equal(t, "mid", tier)
}
