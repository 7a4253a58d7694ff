package measurement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDisplayAmountWeight(t *testing.T) {
	assert.Equal(t, "400 g", FormatDisplayAmount(400, "g", SystemMetric))
	assert.Equal(t, "1.5 kg", FormatDisplayAmount(1500, "g", SystemMetric))
	assert.Equal(t, "10.6 oz", FormatDisplayAmount(300, "g", SystemUS))
	assert.Equal(t, "2.0 lb", FormatDisplayAmount(907.184, "g", SystemUS))
}

func TestFormatDisplayAmountVolume(t *testing.T) {
	assert.Equal(t, "250 ml", FormatDisplayAmount(250, "ml", SystemMetric))
	assert.Equal(t, "1.5 l", FormatDisplayAmount(1500, "ml", SystemMetric))
	assert.Equal(t, "2.0 cups", FormatDisplayAmount(473.176, "ml", SystemUS))
	assert.Equal(t, "2.0 tbsp", FormatDisplayAmount(29.574, "ml", SystemUS))
}

func TestFormatDisplayAmountCount(t *testing.T) {
	assert.Equal(t, "2 pc", FormatDisplayAmount(2, "pc", SystemUS))
	assert.Equal(t, "3 clove", FormatDisplayAmount(3.2, "clove", SystemMetric))
}

func TestFormatAmountMetric(t *testing.T) {
	assert.Equal(t, "1.5", FormatAmount(1500, SystemMetric))
	assert.Equal(t, "250", FormatAmount(250, SystemMetric))
	assert.Equal(t, "12.5", FormatAmount(12.5, SystemMetric))
	assert.Equal(t, "2.25", FormatAmount(2.25, SystemMetric))
	assert.Equal(t, "2", FormatAmount(2, SystemMetric))
}

func TestFormatAmountUSFractions(t *testing.T) {
	assert.Equal(t, "½", FormatAmount(0.5, SystemUS))
	assert.Equal(t, "1 ½", FormatAmount(1.5, SystemUS))
	assert.Equal(t, "⅔", FormatAmount(0.67, SystemUS))
	assert.Equal(t, "2 ¼", FormatAmount(2.25, SystemUS))
	// No close fraction: trimmed decimal fallback.
	assert.Equal(t, "2.9", FormatAmount(2.9, SystemUS))
}

func TestUnitInstructionsMentionSystem(t *testing.T) {
	assert.Contains(t, UnitInstructions(SystemMetric), "METRIC")
	assert.Contains(t, UnitInstructions(SystemUS), "US/IMPERIAL")
}
