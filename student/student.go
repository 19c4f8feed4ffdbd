// Package student models a student with a fixed list of integer scores and
// the averages computed from them.
package student

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

var (
	// ErrEmptyScores is returned when an average is requested for a student
	// that has no scores.
	ErrEmptyScores = errors.New("empty score set")

	// ErrEmptyCohort is returned by CohortAverage when there is nobody to average.
	ErrEmptyCohort = errors.New("empty cohort")
)

// Number is any integer or floating point type a mean can be taken over.
type Number interface {
	constraints.Integer | constraints.Float
}

// Mean returns the arithmetic mean of xs as a float64.
// An empty slice has no mean: the caller decides which error to report.
// The sum is accumulated in float64 so narrow integer types cannot wrap.
func Mean[T Number](xs []T) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	sum := lo.SumBy(xs, func(x T) float64 { return float64(x) })
	return sum / float64(len(xs)), true
}

// Student holds a name and an ordered list of scores.
// The zero value is a nameless student with no scores.
type Student struct {
	name   string
	scores []int
}

// New builds a Student. The scores are copied, so later changes to the
// caller's slice do not leak into the Student.
func New(name string, scores ...int) Student {
	return Student{name: name, scores: append([]int(nil), scores...)}
}

func (s Student) Name() string { return s.name }

// Scores returns a copy of the scores in their original order.
func (s Student) Scores() []int { return append([]int(nil), s.scores...) }

func (s Student) String() string { return fmt.Sprintf("%s %v", s.name, s.scores) }

// Average returns the mean of the student's scores, or ErrEmptyScores.
func (s Student) Average() (float64, error) {
	m, ok := Mean(s.scores)
	if !ok {
		return 0, ErrEmptyScores
	}
	return m, nil
}

// CohortAverage returns the mean of every student's own average.
// Each student weighs the same, whatever the number of scores they have.
func CohortAverage(students []Student) (float64, error) {
	if len(students) == 0 {
		return 0, ErrEmptyCohort
	}

	avgs := make([]float64, 0, len(students))
	for _, s := range students {
		avg, err := s.Average()
		if err != nil {
			return 0, fmt.Errorf("student %q: %w", s.name, err)
		}
		avgs = append(avgs, avg)
	}

	m, _ := Mean(avgs)
	return m, nil
}
