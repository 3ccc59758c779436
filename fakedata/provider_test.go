package fakedata_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pyama86/incidentseed/fakedata"
)

func TestProviderIsReproducible(t *testing.T) {
	draw := func() []string {
		p := fakedata.New(rand.NewPCG(42, 42))
		return []string{p.FirstName(), p.LastName(), p.Company(), p.CompanySuffix(), p.Phrase()}
	}

	first := draw()
	assert.Equal(t, first, draw())
	for _, v := range first {
		assert.NotEmpty(t, v)
	}
}
