package options

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewCalcOptionsNil(t *testing.T) {
	opt := NewCalcOptions(nil)
	assert.NotNil(t, opt)
	assert.False(t, opt.Checked)
	assert.False(t, opt.Debug)
}

func TestNewCalcOptionsCopies(t *testing.T) {
	orig := &CalcOptions{Checked: true, Debug: true}
	opt := NewCalcOptions(orig)
	assert.Equal(t, *orig, *opt)

	orig.Checked = false
	assert.True(t, opt.Checked)
}

func TestApplyLogLevel(t *testing.T) {
	orig := log.GetLevel()
	defer log.SetLevel(orig)

	log.SetLevel(log.InfoLevel)
	NewCalcOptions(nil).ApplyLogLevel()
	assert.Equal(t, log.InfoLevel, log.GetLevel())

	NewCalcOptions(&CalcOptions{Debug: true}).ApplyLogLevel()
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}
