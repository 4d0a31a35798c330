package server

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novaengine/shipwright/internal/config"
	"github.com/novaengine/shipwright/internal/engine"
	"github.com/novaengine/shipwright/internal/testutil"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	root, cleanup := testutil.TempDir(t)
	t.Cleanup(cleanup)

	cfg := &config.Config{}
	cfg.Assets.Root = root

	ectx, err := engine.New(cfg.WithDefaults())
	require.NoError(t, err)
	_, err = ectx.Init(context.Background())
	require.NoError(t, err)

	return New(ectx, ":0")
}

func dial(t *testing.T, s *Server) *websocket.Conn {
	t.Helper()
	httpSrv := httptest.NewServer(s.Handler())
	t.Cleanup(httpSrv.Close)

	wsURL := "ws" + strings.TrimPrefix(httpSrv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, env Envelope) Envelope {
	t.Helper()
	require.NoError(t, conn.WriteJSON(&env))
	var reply Envelope
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func TestCatalogQuery(t *testing.T) {
	s := testServer(t)
	conn := dial(t, s)

	reply := roundTrip(t, conn, Envelope{Type: TypeCatalog})

	require.Equal(t, TypeCatalog, reply.Type)
	var payload CatalogPayload
	require.NoError(t, json.Unmarshal(reply.Payload, &payload))
	assert.Greater(t, payload.Components, 0)
	assert.Greater(t, payload.Hulls, 0)
}

func TestAssembleRequest(t *testing.T) {
	s := testServer(t)
	conn := dial(t, s)

	req := AssemblePayload{
		HullID: "fighter_mk1",
		Assignments: map[string]string{
			"PowerPlant_0":       "fusion_core_mk1",
			"MainThruster_0":     "main_thruster_viper",
			"ManeuverThruster_0": "rcs_cluster_micro",
			"ManeuverThruster_1": "rcs_cluster_micro",
			"ManeuverThruster_2": "rcs_cluster_micro",
			"ManeuverThruster_3": "rcs_cluster_micro",
			"Shield_0":           "shield_array_light",
			"Weapon_0":           "weapon_twin_cannon",
			"Weapon_1":           "weapon_twin_cannon",
			"Sensor_0":           "sensor_targeting_mk1",
			"Support_0":          "support_life_pod",
		},
	}
	payload, err := json.Marshal(req)
	require.NoError(t, err)

	reply := roundTrip(t, conn, Envelope{Type: TypeAssemble, Payload: payload})

	require.Equal(t, TypeResult, reply.Type)
	var result ResultPayload
	require.NoError(t, json.Unmarshal(reply.Payload, &result))

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(result.Report, &doc))
	assert.Contains(t, doc, "hull")
	assert.Contains(t, doc, "stats")
}

func TestAssembleUnknownHullStillAnswers(t *testing.T) {
	s := testServer(t)
	conn := dial(t, s)

	payload, err := json.Marshal(AssemblePayload{HullID: "no_such_hull"})
	require.NoError(t, err)

	reply := roundTrip(t, conn, Envelope{Type: TypeAssemble, Payload: payload})

	require.Equal(t, TypeResult, reply.Type)
	var result ResultPayload
	require.NoError(t, json.Unmarshal(reply.Payload, &result))
	assert.Contains(t, string(result.Report), "INVALID_HULL_ID")
}

func TestUnknownMessageType(t *testing.T) {
	s := testServer(t)
	conn := dial(t, s)

	reply := roundTrip(t, conn, Envelope{Type: "teleport"})

	require.Equal(t, TypeError, reply.Type)
	var payload ErrorPayload
	require.NoError(t, json.Unmarshal(reply.Payload, &payload))
	assert.Contains(t, payload.Message, "teleport")
}

func TestMalformedAssemblePayload(t *testing.T) {
	s := testServer(t)
	conn := dial(t, s)

	reply := roundTrip(t, conn, Envelope{Type: TypeAssemble, Payload: json.RawMessage(`[1,2]`)})

	assert.Equal(t, TypeError, reply.Type)
}

func TestBroadcastReachesClients(t *testing.T) {
	s := testServer(t)
	conn := dial(t, s)

	// Registration happens on the handler goroutine; wait for it.
	require.Eventually(t, func() bool { return s.ClientCount() == 1 },
		time.Second, 5*time.Millisecond)

	// The read side of the connection is idle; push directly.
	s.Broadcast(Envelope{Type: TypeReload, Payload: mustPayload(ReloadPayload{Generation: 42})})

	var reply Envelope
	require.NoError(t, conn.ReadJSON(&reply))
	require.Equal(t, TypeReload, reply.Type)
	var payload ReloadPayload
	require.NoError(t, json.Unmarshal(reply.Payload, &payload))
	assert.Equal(t, uint64(42), payload.Generation)
}
