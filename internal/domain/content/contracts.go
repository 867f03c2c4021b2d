package content

import (
	"context"
	"errors"
)

var (
	// ErrNotSeeded indicates the singleton row (id = 1) does not exist yet.
	// Reads substitute the fixed default payload; updates fail with 404.
	ErrNotSeeded = errors.New("content section not seeded")

	// ErrNotFound indicates an update against an unseeded section.
	ErrNotFound = errors.New("sección no encontrada")
)

// Service defines the content reads and updates exposed over HTTP.
// Get operations return either the seeded row or the fixed default
// payload; callers cannot distinguish the two structurally.
type Service interface {
	GetHeader(ctx context.Context) (*Header, error)
	GetAbout(ctx context.Context) (*About, error)
	GetContact(ctx context.Context) (*Contact, error)
	GetFooter(ctx context.Context) (*Footer, error)

	// Updates target the singleton row and return the updated copy, or
	// ErrNotFound when the section was never seeded.
	UpdateHeader(ctx context.Context, header *Header) (*Header, error)
	UpdateAbout(ctx context.Context, about *About) (*About, error)
	UpdateContact(ctx context.Context, contact *Contact) (*Contact, error)
	UpdateFooter(ctx context.Context, footer *Footer) (*Footer, error)
}

// Repository defines the persistence operations for content singletons.
// Get operations report ErrNotSeeded when the row is absent.
type Repository interface {
	GetHeader(ctx context.Context) (*Header, error)
	GetAbout(ctx context.Context) (*About, error)
	GetContact(ctx context.Context) (*Contact, error)
	GetFooter(ctx context.Context) (*Footer, error)

	UpdateHeader(ctx context.Context, header *Header) error
	UpdateAbout(ctx context.Context, about *About) error
	UpdateContact(ctx context.Context, contact *Contact) error
	UpdateFooter(ctx context.Context, footer *Footer) error
}
