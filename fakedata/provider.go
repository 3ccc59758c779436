// Package fakedata supplies human-looking names and phrases for generated rows.
package fakedata

import (
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v7"
)

type Provider interface {
	FirstName() string
	LastName() string
	Company() string
	CompanySuffix() string
	// Phrase returns a short marketing-style phrase.
	Phrase() string
}

type gofakeitProvider struct {
	faker *gofakeit.Faker
}

// New builds a provider that draws from src. Sharing src with the generator's
// *rand.Rand keeps a single reproducible stream.
func New(src rand.Source) Provider {
	return &gofakeitProvider{faker: gofakeit.NewFaker(src, false)}
}

func (p *gofakeitProvider) FirstName() string {
	return p.faker.FirstName()
}

func (p *gofakeitProvider) LastName() string {
	return p.faker.LastName()
}

func (p *gofakeitProvider) Company() string {
	return p.faker.Company()
}

func (p *gofakeitProvider) CompanySuffix() string {
	return p.faker.CompanySuffix()
}

func (p *gofakeitProvider) Phrase() string {
	return p.faker.HackerPhrase()
}
