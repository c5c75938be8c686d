package ebgs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 5*time.Second, 100, 10), srv
}

func TestSystem(t *testing.T) {
	t.Run("decodes a matching document", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/systems", r.URL.Path)
			w.Write([]byte(`{
				"total": 1,
				"docs": [{
					"name": "Qa'wakana",
					"state": "boom",
					"controlling_minor_faction": "qa'wakana purple society",
					"factions": [{"name": "Qa'wakana Purple Society", "name_lower": "qa'wakana purple society"}],
					"updated_at": "2026-08-30T12:00:00Z"
				}]
			}`))
		})
		defer srv.Close()

		system, err := client.System(context.Background(), "Qa'wakana")
		require.NoError(t, err)
		assert.Equal(t, "Qa'wakana", system.Name)
		assert.Equal(t, "boom", system.State)
		require.Len(t, system.Factions, 1)
		assert.Equal(t, "qa'wakana purple society", system.Factions[0].NameLower)
	})

	t.Run("query name is lowercased", func(t *testing.T) {
		var gotName string
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			gotName = r.URL.Query().Get("name")
			w.Write([]byte(`{"total": 1, "docs": [{"name": "Sol"}]}`))
		})
		defer srv.Close()

		_, err := client.System(context.Background(), "SOL")
		require.NoError(t, err)
		assert.Equal(t, "sol", gotName)
	})

	t.Run("zero matches is ErrNotFound", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"total": 0, "docs": []}`))
		})
		defer srv.Close()

		_, err := client.System(context.Background(), "nowhere")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("server error is a TransportError", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		defer srv.Close()

		_, err := client.System(context.Background(), "sol")
		var terr *TransportError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, http.StatusInternalServerError, terr.StatusCode)
	})

	t.Run("malformed body is a TransportError", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"total": `))
		})
		defer srv.Close()

		_, err := client.System(context.Background(), "sol")
		var terr *TransportError
		assert.ErrorAs(t, err, &terr)
	})
}

func TestFaction(t *testing.T) {
	t.Run("decodes presence details", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/factions", r.URL.Path)
			w.Write([]byte(`{
				"total": 1,
				"docs": [{
					"name": "Qa'wakana Purple Society",
					"government": "anarchy",
					"allegiance": "independent",
					"faction_presence": [{
						"system_name": "Qa'wakana",
						"system_name_lower": "qa'wakana",
						"state": "boom",
						"influence": 0.45,
						"pending_states": [{"state": "war", "trend": 1}],
						"recovering_states": []
					}]
				}]
			}`))
		})
		defer srv.Close()

		faction, err := client.Faction(context.Background(), "Qa'wakana Purple Society")
		require.NoError(t, err)
		require.Len(t, faction.FactionPresence, 1)
		presence := faction.FactionPresence[0]
		assert.Equal(t, "qa'wakana", presence.SystemNameLower)
		assert.InDelta(t, 0.45, presence.Influence, 1e-9)
		require.Len(t, presence.PendingStates, 1)
		assert.Equal(t, TrendState{State: "war", Trend: 1}, presence.PendingStates[0])
	})

	t.Run("zero matches is ErrNotFound", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"total": 0, "docs": []}`))
		})
		defer srv.Close()

		_, err := client.Faction(context.Background(), "ghost collective")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
