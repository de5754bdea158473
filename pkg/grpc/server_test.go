package grpc_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"

	rgrpc "github.com/shashiranjanraj/rentaldeploy/pkg/grpc"
	"github.com/shashiranjanraj/rentaldeploy/pkg/metrics"
)

func dial(t *testing.T, srv *rgrpc.Server) grpc_health_v1.HealthClient {
	t.Helper()
	conn, err := grpc.NewClient(srv.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return grpc_health_v1.NewHealthClient(conn)
}

func check(t *testing.T, c grpc_health_v1.HealthClient, service string) grpc_health_v1.HealthCheckResponse_ServingStatus {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := c.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHealthFollowsReadiness(t *testing.T) {
	srv, err := rgrpc.Start("127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(srv.Stop)

	c := dial(t, srv)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, check(t, c, ""))

	srv.SetReady(true)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, check(t, c, ""))
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, check(t, c, rgrpc.Service))

	srv.SetReady(false)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, check(t, c, rgrpc.Service))
}

func TestCallsAreCounted(t *testing.T) {
	srv, err := rgrpc.Start("127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(srv.Stop)

	check(t, dial(t, srv), "")

	n, err := testutil.GatherAndCount(metrics.DefaultRegistry, "grpc_server_handled_total")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1)
}

func TestStartRejectsBadAddress(t *testing.T) {
	_, err := rgrpc.Start("not-an-address")
	assert.Error(t, err)
}

func TestStopOnNil(t *testing.T) {
	var srv *rgrpc.Server
	assert.NotPanics(t, srv.Stop)
}
