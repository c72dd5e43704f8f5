//go:build unit

package queries_test

import (
	"context"
	"testing"

	"lardocepet-api/internal/usecase/queries"
	"lardocepet-api/internal/usecase/shared"
	sharedmock "lardocepet-api/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func reviewsWithScores(scores ...int) []shared.Review {
	out := make([]shared.Review, len(scores))
	for i, n := range scores {
		out[i] = shared.Review{ID: int64(i + 1), RatedID: 10, Nota: n}
	}
	return out
}

func TestRatingSummary(t *testing.T) {
	cases := []struct {
		name   string
		scores []int
		media  float64
		total  int
	}{
		{name: "no reviews", scores: nil, media: 0, total: 0},
		{name: "single review", scores: []int{4}, media: 4, total: 1},
		{name: "rounded to two decimals", scores: []int{5, 4, 4}, media: 4.33, total: 3},
		{name: "rounds half up", scores: []int{4, 3}, media: 3.5, total: 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reviews := sharedmock.NewMockReviewReader(ctrl)
			reviews.EXPECT().ListByRated(gomock.Any(), int64(10)).
				Return(reviewsWithScores(tc.scores...), nil)

			q := queries.NewReviewQueries(reviews)
			summary, err := q.RatingSummary(context.Background(), 10)

			require.NoError(t, err)
			assert.Equal(t, int64(10), summary.UserID)
			assert.Equal(t, tc.total, summary.Total)
			assert.InDelta(t, tc.media, summary.Media, 1e-9)
		})
	}
}
