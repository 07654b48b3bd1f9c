package wowsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCharacterValidation(t *testing.T) {
	t.Parallel()

	client, stub := newTestClient(t, nil)

	t.Run("missing realm", func(t *testing.T) {
		_, err := client.CharacterItems(context.Background(), "", "Thrall")

		var missing *MissingParamError
		require.ErrorAs(t, err, &missing)
		require.Equal(t, "realm", missing.Param)
		require.Equal(t, "realm slug", missing.Kind)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := client.Character(context.Background(), "proudmoore", "  ")

		var missing *MissingParamError
		require.ErrorAs(t, err, &missing)
		require.Equal(t, "name", missing.Param)
	})

	// Validation failures never reach the network, not even for a token
	require.Zero(t, stub.TokenCalls())
	require.Empty(t, stub.APICalls())
}

func TestCharacterFieldUnwrap(t *testing.T) {
	t.Parallel()

	client, stub := newTestClient(t, jsonHandler(`{"name":"Thrall","realm":"Proudmoore","items":{"averageItemLevel":500}}`))

	raw, err := client.CharacterItems(context.Background(), "proudmoore", "Thrall")
	require.NoError(t, err)
	require.JSONEq(t, `{"averageItemLevel":500}`, string(raw))

	calls := stub.APICalls()
	require.Len(t, calls, 1)
	require.Equal(t, "/wow/character/proudmoore/Thrall", calls[0].Path)
	require.Equal(t, "items", calls[0].Query().Get("fields"))
}

func TestCharacterProgressionUnwrap(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, jsonHandler(`{"name":"Thrall","progression":{"raids":[]}}`))

	raw, err := client.CharacterProgression(context.Background(), "proudmoore", "Thrall")
	require.NoError(t, err)
	require.JSONEq(t, `{"raids":[]}`, string(raw))
}

func TestCharacterFieldMissingKey(t *testing.T) {
	t.Parallel()

	// Profile came back without the requested view; reads as absent
	client, _ := newTestClient(t, jsonHandler(`{"name":"Thrall"}`))

	raw, err := client.CharacterMounts(context.Background(), "proudmoore", "Thrall")
	require.NoError(t, err)
	require.Nil(t, raw)
}

// echoFieldHandler answers every profile request with a body whose only
// view is the one the request selected.
func echoFieldHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"name":"whatever",%q:{"ok":true}}`, r.URL.Query().Get("fields"))
}

func TestCharacterAccessorsMatchFieldTable(t *testing.T) {
	t.Parallel()

	client, stub := newTestClient(t, echoFieldHandler)

	accessors := map[string]func(context.Context, string, string) (json.RawMessage, error){
		"achievements": client.CharacterAchievements,
		"appearance":   client.CharacterAppearance,
		"audit":        client.CharacterAudit,
		"feed":         client.CharacterFeed,
		"guild":        client.CharacterGuild,
		"hunterPets":   client.CharacterHunterPets,
		"items":        client.CharacterItems,
		"mounts":       client.CharacterMounts,
		"pets":         client.CharacterPets,
		"petSlots":     client.CharacterPetSlots,
		"professions":  client.CharacterProfessions,
		"progression":  client.CharacterProgression,
		"pvp":          client.CharacterPvP,
		"quests":       client.CharacterQuests,
		"reputation":   client.CharacterReputation,
		"statistics":   client.CharacterStatistics,
		"stats":        client.CharacterStats,
		"talents":      client.CharacterTalents,
		"titles":       client.CharacterTitles,
	}

	// The accessor set and the declared field table cover each other
	fields := make([]string, 0, len(accessors))
	for field := range accessors {
		fields = append(fields, field)
	}
	require.ElementsMatch(t, CharacterFields, fields)

	// Each accessor selects exactly its field and unwraps the view
	for field, accessor := range accessors {
		raw, err := accessor(context.Background(), "proudmoore", "Thrall")
		require.NoError(t, err, field)
		require.JSONEq(t, `{"ok":true}`, string(raw), field)

		calls := stub.APICalls()
		require.Equal(t, field, calls[len(calls)-1].Query().Get("fields"), field)
	}
}

func TestGuildAccessorsMatchFieldTable(t *testing.T) {
	t.Parallel()

	client, stub := newTestClient(t, echoFieldHandler)

	accessors := map[string]func(context.Context, string, string) (json.RawMessage, error){
		"achievements": client.GuildAchievements,
		"challenge":    client.GuildChallenge,
		"members":      client.GuildMembers,
		"news":         client.GuildNews,
	}

	fields := make([]string, 0, len(accessors))
	for field := range accessors {
		fields = append(fields, field)
	}
	require.ElementsMatch(t, GuildFields, fields)

	for field, accessor := range accessors {
		raw, err := accessor(context.Background(), "proudmoore", "The Guild")
		require.NoError(t, err, field)
		require.JSONEq(t, `{"ok":true}`, string(raw), field)

		calls := stub.APICalls()
		require.Equal(t, field, calls[len(calls)-1].Query().Get("fields"), field)
	}
}

func TestGuildFieldUnwrap(t *testing.T) {
	t.Parallel()

	client, stub := newTestClient(t, jsonHandler(`{"name":"The Guild","members":[{"rank":0}]}`))

	raw, err := client.GuildMembers(context.Background(), "proudmoore", "The Guild")
	require.NoError(t, err)
	require.JSONEq(t, `[{"rank":0}]`, string(raw))

	calls := stub.APICalls()
	require.Len(t, calls, 1)
	require.Equal(t, "/wow/guild/proudmoore/The%20Guild", calls[0].EscapedPath())
	require.Equal(t, "members", calls[0].Query().Get("fields"))
}

func TestGuildValidation(t *testing.T) {
	t.Parallel()

	client, stub := newTestClient(t, nil)

	_, err := client.GuildNews(context.Background(), "proudmoore", "")

	var missing *MissingParamError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "name", missing.Param)
	require.Equal(t, "guild name", missing.Kind)
	require.Empty(t, stub.APICalls())
}
