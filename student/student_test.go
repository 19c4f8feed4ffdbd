package student_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/mechanics/student"
)

func TestAverage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		scores []int
		want   float64
	}{
		{"Lucie", []int{4, 6}, 5.0},
		{"Sophie", []int{10, 13}, 11.5},
		{"Pierre David", []int{18, 20}, 19.0},
		{"single", []int{7}, 7.0},
		{"negative", []int{-3, 3, 6}, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := student.New(tt.name, tt.scores...).Average()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAverageEmptyScores(t *testing.T) {
	t.Parallel()

	for _, s := range []student.Student{student.New("nobody"), {}} {
		got, err := s.Average()
		require.ErrorIs(t, err, student.ErrEmptyScores)
		assert.Zero(t, got)
	}
}

func TestAverageDoesNotMutate(t *testing.T) {
	t.Parallel()

	s := student.New("Lucie", 4, 6)
	_, err := s.Average()
	require.NoError(t, err)

	assert.Equal(t, []int{4, 6}, s.Scores())
}

func TestNewCopiesScores(t *testing.T) {
	t.Parallel()

	scores := []int{10, 13}
	s := student.New("Sophie", scores...)
	scores[0] = 0

	got := s.Scores()
	assert.Equal(t, []int{10, 13}, got)

	got[1] = 99
	assert.Equal(t, []int{10, 13}, s.Scores(), "Scores must return a copy")
}

func TestCohortAverage(t *testing.T) {
	t.Parallel()

	cohort := []student.Student{
		student.New("Lucie", 4, 6),
		student.New("Sophie", 10, 13),
		student.New("Pierre David", 18, 20),
	}

	got, err := student.CohortAverage(cohort)
	require.NoError(t, err)
	assert.InDelta(t, (5.0+11.5+19.0)/3, got, 1e-9)
	assert.InDelta(t, 11.8333, got, 1e-4)
}

func TestCohortAverageErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty cohort", func(t *testing.T) {
		_, err := student.CohortAverage(nil)
		assert.ErrorIs(t, err, student.ErrEmptyCohort)
	})

	t.Run("student without scores", func(t *testing.T) {
		_, err := student.CohortAverage([]student.Student{
			student.New("Lucie", 4, 6),
			student.New("Absent"),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, student.ErrEmptyScores))
		assert.Contains(t, err.Error(), `"Absent"`)
	})
}

func TestMean(t *testing.T) {
	t.Parallel()

	m, ok := student.Mean([]float64{1.5, 2.5})
	assert.True(t, ok)
	assert.InDelta(t, 2.0, m, 1e-9)

	_, ok = student.Mean([]int(nil))
	assert.False(t, ok)
}

func TestMeanDoesNotWrap(t *testing.T) {
	t.Parallel()

	m, ok := student.Mean([]int8{100, 100})
	assert.True(t, ok)
	assert.InDelta(t, 100.0, m, 1e-9)

	m, ok = student.Mean([]uint8{200, 200})
	assert.True(t, ok)
	assert.InDelta(t, 200.0, m, 1e-9)

	m, ok = student.Mean([]int64{math.MaxInt64, math.MaxInt64})
	assert.True(t, ok)
	assert.InDelta(t, float64(math.MaxInt64), m, 1e6)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Lucie [4 6]", student.New("Lucie", 4, 6).String())
}
