//go:build unit

package gateway_test

import (
	"context"
	"net/http"
	"testing"

	"lardocepet-api/internal/infra"
	"lardocepet-api/internal/infra/gateway"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewStoreFindByBookingAndRater(t *testing.T) {
	var gotQuery map[string][]string
	store := gateway.NewReviewStore(newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[{"id_avaliacao": 500, "id_reserva": 1000, "id_avaliador": 1, "id_avaliado": 10, "nota": 5}]`))
	}))

	rows, err := store.FindByBookingAndRater(context.Background(), 1000, 1)

	require.NoError(t, err)
	want := map[string][]string{
		"id_reserva":   {"eq.1000"},
		"id_avaliador": {"eq.1"},
	}
	assert.Empty(t, cmp.Diff(want, gotQuery))
	require.Len(t, rows, 1)
	assert.Equal(t, int64(500), rows[0].ID)
}

func TestHostStoreFindByID(t *testing.T) {
	t.Run("decodes host columns", func(t *testing.T) {
		store := gateway.NewHostStore(newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rest/v1/anfitrioes", r.URL.Path)
			assert.Equal(t, "eq.10", r.URL.Query().Get("id_anfitriao"))
			_, _ = w.Write([]byte(`[{
				"id_anfitriao": 10,
				"capacidade_maxima": 3,
				"especie": ["cachorro", "gato"],
				"preco": 80,
				"status": "ativo"
			}]`))
		}))

		got, err := store.FindByID(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, 3, got.CapacidadeMax)
		assert.Equal(t, []string{"cachorro", "gato"}, got.Especies)
		assert.Equal(t, "ativo", got.Status)
	})

	t.Run("missing host", func(t *testing.T) {
		store := gateway.NewHostStore(newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))

		_, err := store.FindByID(context.Background(), 404)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestPetStoreListByTutor(t *testing.T) {
	store := gateway.NewPetStore(newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/pets", r.URL.Path)
		assert.Equal(t, "eq.1", r.URL.Query().Get("id_tutor"))
		_, _ = w.Write([]byte(`[{"id_pet": 100, "id_tutor": 1, "nome": "Rex", "especie": "cachorro"}]`))
	}))

	rows, err := store.ListByTutor(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Rex", rows[0].Nome)
}
