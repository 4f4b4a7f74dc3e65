package reqctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestMetaRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", RequestIDFromContext(ctx))
	assert.Nil(t, LogAttrs(ctx))

	ctx = WithRequestMeta(ctx, &RequestMeta{RequestID: "rid-1", ClientIP: "10.0.0.1", RequestedAt: time.Now()})
	assert.Equal(t, "rid-1", RequestIDFromContext(ctx))
	assert.Len(t, LogAttrs(ctx), 2)
}

func TestRequestMetaNilPointer(t *testing.T) {
	ctx := WithRequestMeta(context.Background(), nil)
	_, ok := RequestMetaFromContext(ctx)
	assert.False(t, ok)
}
