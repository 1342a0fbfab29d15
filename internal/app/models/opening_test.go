package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCriterionFor(t *testing.T) {
	opening := &Opening{
		CgpaCriteria: []CgpaCriterion{
			{Branch: "CSE", CGPA: 7.5},
			{Branch: "ECE", CGPA: 7},
		},
	}

	c := opening.CriterionFor("CSE")
	if assert.NotNil(t, c) {
		assert.Equal(t, 7.5, c.CGPA)
	}

	assert.Nil(t, opening.CriterionFor("ME"))
	// Matching is case sensitive.
	assert.Nil(t, opening.CriterionFor("cse"))
}

func TestClampCGPA(t *testing.T) {
	assert.Equal(t, 0.0, ClampCGPA(-1))
	assert.Equal(t, 0.0, ClampCGPA(math.NaN()))
	assert.Equal(t, 10.0, ClampCGPA(12.3))
	assert.Equal(t, 8.25, ClampCGPA(8.25))
}
