package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/marcodamonte/mechanics/student"
)

func demoAverages(w io.Writer, cohort []student.Student) error {
	for _, s := range cohort {
		avg, err := s.Average()
		if err != nil {
			return fmt.Errorf("student %q: %w", s.Name(), err)
		}
		fmt.Fprintf(w, "  %-14s %v → %g\n", s.Name(), s.Scores(), avg)
	}

	total, err := student.CohortAverage(cohort)
	if err != nil {
		return err
	}
	// Six significant digits, as a C++ stream prints a float by default.
	fmt.Fprintf(w, "Student average: %.6g\n", total)
	return nil
}

func demoEmpty(w io.Writer) {
	_, err := student.New("Absent").Average()
	fmt.Fprintf(w, "  Absent → err=%v  errors.Is(ErrEmptyScores)=%v\n",
		err, errors.Is(err, student.ErrEmptyScores))

	_, err = student.CohortAverage(nil)
	fmt.Fprintf(w, "  no students → err=%v\n", err)
}
