package transport

import (
	"net/url"
	"testing"

	"github.com/coinwave/coinwave/internal/domain/project"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseCriteria(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  project.Criteria
	}{
		{
			name:  "empty",
			query: "",
			want:  project.Criteria{Filters: project.Filters{Status: []string{}, Tier: []string{}, Cost: []string{}}},
		},
		{
			name:  "repeated and comma separated",
			query: "q=+zk+&tier=S&tier=A,B&cost=Free&status=testnet,testnet",
			want: project.Criteria{Search: " zk ", Filters: project.Filters{
				Status: []string{"testnet"}, Tier: []string{"S", "A", "B"}, Cost: []string{"Free"},
			}},
		},
		{
			name:  "toggle adds and removes",
			query: "tier=S&toggle=tier:S&toggle=cost:Paid",
			want: project.Criteria{Filters: project.Filters{
				Status: []string{}, Tier: []string{}, Cost: []string{"Paid"},
			}},
		},
		{
			name:  "clear keeps search",
			query: "q=layer&tier=S&status=farming&clear=1",
			want: project.Criteria{Search: "layer", Filters: project.Filters{
				Status: []string{}, Tier: []string{}, Cost: []string{},
			}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)
			got, err := parseCriteria(q)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("criteria mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseCriteria_BadToggle(t *testing.T) {
	for _, raw := range []string{"toggle=tier", "toggle=color:red", "toggle=tier:"} {
		q, err := url.ParseQuery(raw)
		require.NoError(t, err)
		_, err = parseCriteria(q)
		require.ErrorIs(t, err, project.ErrInvalidInput, raw)
	}
}
