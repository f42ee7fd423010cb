package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/openkraft/storefront/internal/adapters/outbound/logging"
)

func TestNewWithWriter_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, false)

	logger.Info("added to cart")
	logger.Warn("add to cart failed", zap.String("product_id", "7"))
	_ = logger.Sync()

	out := buf.String()
	assert.NotContains(t, out, "added to cart")
	assert.Contains(t, out, "add to cart failed")
	assert.Contains(t, out, "storefront")
	assert.Contains(t, out, `"product_id": "7"`)
}

func TestNewWithWriter_VerboseIncludesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, true)

	logger.Debug("api request", zap.Int("status", 200))
	_ = logger.Sync()

	assert.Contains(t, buf.String(), "api request")
}
