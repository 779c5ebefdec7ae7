package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOtlpTransport(t *testing.T) {
	cases := []struct {
		conn     OtlpConnConfig
		empty    bool
		kind     string
		endpoint string
	}{
		{conn: OtlpConnConfig{}, empty: true, kind: "http"},
		{conn: OtlpConnConfig{HttpEndpoint: "http://localhost:4318"}, kind: "http", endpoint: "http://localhost:4318"},
		{conn: OtlpConnConfig{GrpcEndpoint: "http://localhost:4317"}, kind: "grpc", endpoint: "http://localhost:4317"},
		{
			conn: OtlpConnConfig{
				GrpcEndpoint: "http://localhost:4317",
				HttpEndpoint: "http://localhost:4318",
			},
			kind:     "grpc",
			endpoint: "http://localhost:4317",
		},
	}
	for _, c := range cases {
		require.Equal(t, c.empty, c.conn.empty())
		kind, endpoint := c.conn.transport()
		require.Equal(t, c.kind, kind)
		require.Equal(t, c.endpoint, endpoint)
	}
}

func TestSetupWithoutExporters(t *testing.T) {
	tel, err := Setup(context.Background(), "test:otlp", Config{})
	if err != nil {
		t.Fatal(err)
	}
	require.NotNil(t, tel.TracerProvider)
	require.NotNil(t, tel.MeterProvider)

	_, span := tel.TracerProvider.Tracer("test").Start(context.Background(), "span")
	span.End()

	err = tel.Shutdown(context.Background())
	if err != nil {
		t.Fatal(err)
	}
}
