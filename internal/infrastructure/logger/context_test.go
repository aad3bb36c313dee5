package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestWithContextRoundTrip(t *testing.T) {
	base := zap.NewNop()
	ctx := WithContext(context.Background(), base)

	assert.Same(t, base, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}

func TestRequestIDPropagation(t *testing.T) {
	ctx, enriched := WithRequestID(context.Background(), zap.NewNop(), "req-123")

	assert.NotNil(t, enriched)
	assert.Equal(t, "req-123", GetRequestID(ctx))
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestOperatorIDPropagation(t *testing.T) {
	ctx, _ := WithOperatorID(context.Background(), zap.NewNop(), "op-42")

	assert.Equal(t, "op-42", GetOperatorID(ctx))
	assert.Empty(t, GetOperatorID(context.Background()))
}
