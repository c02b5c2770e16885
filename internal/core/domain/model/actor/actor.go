package actor

import (
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the authenticated identity behind a session. Location is optional:
// couriers report a live position, stores may carry a fixed one, and either
// may have none yet.
type Actor struct {
	id       kernel.UUID
	role     Role
	name     string
	phone    string
	location *kernel.Location

	isConstructed bool
}

// NewActor creates an Actor with a validated identifier, role and name.
func NewActor(id kernel.UUID, role Role, name, phone string, location *kernel.Location) (*Actor, error) {
	a := &Actor{
		phone:         phone,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setRole(role),
		a.setName(name),
		a.setLocation(location),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Actor was created via NewActor.
func (a *Actor) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the actor's unique identifier.
func (a *Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a *Actor) Role() Role {
	return a.role
}

// Name returns the actor's display name.
func (a *Actor) Name() string {
	return a.name
}

// Phone returns the actor's phone number, possibly empty.
func (a *Actor) Phone() string {
	return a.phone
}

// Location returns the last known position, nil when none was reported.
func (a *Actor) Location() *kernel.Location {
	return a.location
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *Actor) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Actor) setLocation(location *kernel.Location) error {
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}
	a.location = location
	return nil
}

// Detail is the read-only counterpart projection: what a store sees about a
// courier or a courier about a store. Fetched on demand for display and not
// cached beyond the request.
type Detail struct {
	ID       kernel.UUID
	Role     Role
	Name     string
	Phone    string
	Address  string
	Location *kernel.Location
}
