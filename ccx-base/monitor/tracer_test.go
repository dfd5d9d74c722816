package monitor

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/ext"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/mocktracer"
)

func TestDDSpan(t *testing.T) {
	mt := mocktracer.Start()
	defer mt.Stop()

	span, ctx := StartDDSpan(context.Background(), "rpc.call", "/json_rpc", SpanTags{"port": 16000})
	require.NotNil(t, ctx)
	FinishDDSpan(span, SpanTags{"status": "rpc_error"}, errors.New("boom"))

	spans := mt.FinishedSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "rpc.call", spans[0].OperationName())
	assert.Equal(t, "/json_rpc", spans[0].Tag(ext.ResourceName))
	assert.Equal(t, 16000, spans[0].Tag("port"))
	assert.Equal(t, "rpc_error", spans[0].Tag("status"))
	assert.NotNil(t, spans[0].Tag(ext.Error))
}
