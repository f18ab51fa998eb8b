package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetsense/fleetsense/pkg/config"
	"github.com/fleetsense/fleetsense/pkg/database"
	"github.com/fleetsense/fleetsense/pkg/services"
	testdb "github.com/fleetsense/fleetsense/test/database"
)

func seedCallContext(t *testing.T, client *database.Client, callSid string, age time.Duration) {
	t.Helper()
	err := client.CallContext.Create().
		SetID(callSid).
		SetCommunicationID("comm_1").
		SetEngagementID("engagement_1").
		SetCaseID("case_1").
		SetVehicleID("veh_1").
		SetCustomerPhone("+919876543210").
		SetCreatedAt(time.Now().Add(-age)).
		Exec(context.Background())
	require.NoError(t, err)
}

func seedBusMessage(t *testing.T, client *database.Client, topic, status string, age time.Duration) {
	t.Helper()
	_, err := client.DB().Exec(
		`INSERT INTO bus_messages (topic, payload, status, available_at, created_at) VALUES ($1, '{}', $2, $3, $3)`,
		topic, status, time.Now().Add(-age))
	require.NoError(t, err)
}

func busMessageCount(t *testing.T, client *database.Client) int {
	t.Helper()
	var n int
	require.NoError(t, client.DB().QueryRow(`SELECT count(*) FROM bus_messages`).Scan(&n))
	return n
}

func TestService_RunAll(t *testing.T) {
	client := testdb.NewPipelineTestClient(t)
	ctx := context.Background()

	cfg := config.DefaultRetentionConfig()
	svc := NewService(cfg, client.Client, services.NewCommunicationService(client.Client))

	seedCallContext(t, client, "CA_old", 25*time.Hour)
	seedCallContext(t, client, "CA_fresh", 1*time.Hour)

	seedBusMessage(t, client, "telemetry-ingested", "delivered", 8*24*time.Hour)
	seedBusMessage(t, client, "telemetry-ingested", "failed", 8*24*time.Hour)
	seedBusMessage(t, client, "telemetry-ingested", "delivered", 1*time.Hour)
	// Pending rows stay regardless of age: undelivered work is not garbage.
	seedBusMessage(t, client, "telemetry-ingested", "pending", 30*24*time.Hour)

	svc.RunAll(ctx)

	contexts, err := client.CallContext.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, contexts, 1)
	assert.Equal(t, "CA_fresh", contexts[0].ID)

	assert.Equal(t, 2, busMessageCount(t, client))
	var pending int
	require.NoError(t, client.DB().QueryRow(
		`SELECT count(*) FROM bus_messages WHERE status = 'pending'`).Scan(&pending))
	assert.Equal(t, 1, pending)
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewPipelineTestClient(t)

	cfg := config.DefaultRetentionConfig()
	cfg.SweepInterval = 50 * time.Millisecond
	svc := NewService(cfg, client.Client, services.NewCommunicationService(client.Client))

	seedCallContext(t, client, "CA_old", 25*time.Hour)

	svc.Start(context.Background())
	require.Eventually(t, func() bool {
		n, err := client.CallContext.Query().Count(context.Background())
		return err == nil && n == 0
	}, 5*time.Second, 25*time.Millisecond)
	svc.Stop()
}

func TestService_DisabledInterval(t *testing.T) {
	client := testdb.NewPipelineTestClient(t)

	cfg := config.DefaultRetentionConfig()
	cfg.SweepInterval = 0
	svc := NewService(cfg, client.Client, services.NewCommunicationService(client.Client))

	svc.Start(context.Background())
	// Stop on a never-started loop must not hang.
	svc.Stop()
}
