package commands

import (
	"context"
	"strings"

	"lardocepet-api/internal/domain/booking"
	"lardocepet-api/internal/domain/host"
	"lardocepet-api/internal/infra"
	"lardocepet-api/internal/pkg/clock"
	"lardocepet-api/internal/pkg/errs"
	"lardocepet-api/internal/usecase/shared"
)

// ErrStoreUnavailable marks any record-store failure during validation. It is
// never a rejection: callers report it as a retryable upstream error.
var ErrStoreUnavailable = errs.New("record store unavailable")

// BookingInput is a candidate booking to be validated.
type BookingInput struct {
	TutorID    int64
	HostID     int64
	DataInicio booking.Date
	DataFim    booking.Date
	PetIDs     []int64
	// QtdPets is the pet count the caller claims; it must match the number of
	// pets that actually resolve.
	QtdPets int
}

// BookingValidator decides whether a candidate booking may be accepted. It
// only reads from the store; persistence is the caller's concern.
//
// Checks run cheapest-first and fail fast: date sanity and pet-list shape
// before any fetch, then host existence/status/capacity, pet resolution and
// species, and finally the two conflict searches. The first failing check
// determines the rejection reason.
type BookingValidator struct {
	hosts    shared.HostReader
	pets     shared.PetReader
	bookings shared.BookingReader
	clock    clock.Clock
}

func NewBookingValidator(hosts shared.HostReader, pets shared.PetReader, bookings shared.BookingReader, clk clock.Clock) *BookingValidator {
	return &BookingValidator{hosts: hosts, pets: pets, bookings: bookings, clock: clk}
}

func (v *BookingValidator) Validate(ctx context.Context, in BookingInput) (*Rejection, error) {
	today := booking.DateOf(v.clock.Now())

	// 1-2. Date sanity, before any store round-trip.
	if in.DataInicio.Before(today) {
		return reject(ClassInvalidInput, "start date cannot be in the past"), nil
	}
	if !in.DataFim.After(in.DataInicio) {
		return reject(ClassInvalidInput, "end date must be after start date"), nil
	}
	period, err := booking.NewDateRange(in.DataInicio, in.DataFim)
	if err != nil {
		return reject(ClassInvalidInput, "end date must be after start date"), nil
	}

	// 3. At least one pet.
	if len(in.PetIDs) == 0 || in.QtdPets == 0 {
		return reject(ClassInvalidInput, "select at least one pet"), nil
	}

	// 4-5. Host exists and is bookable.
	hostRec, err := v.hosts.FindByID(ctx, in.HostID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return reject(ClassNotFound, "host not found"), nil
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	if !host.Status(hostRec.Status).Bookable() {
		return reject(ClassConflict, "host not available"), nil
	}

	// 6. Capacity: pets within a single booking, not concurrent tutors.
	if in.QtdPets > hostRec.CapacidadeMax {
		return reject(ClassConflict,
			"host accepts at most %d pet(s) per booking, %d selected",
			hostRec.CapacidadeMax, in.QtdPets), nil
	}

	// 7. Every pet id must resolve, and the resolved count must match the
	// claimed count. Duplicated or unknown ids resolve short and land here,
	// never in the capacity or species checks.
	pets, err := v.resolvePets(ctx, in.PetIDs)
	if err != nil {
		return nil, err
	}
	if len(pets) != in.QtdPets {
		return reject(ClassNotFound, "some selected pets were not found"), nil
	}

	// 8. Species compatibility, case-insensitive.
	accepted := host.NewSpeciesSet(hostRec.Especies)
	for _, pet := range pets {
		if !accepted.Accepts(pet.Especie) {
			return reject(ClassConflict,
				"host does not accept species %q (pet: %s); accepted: %s",
				strings.ToLower(pet.Especie), pet.Nome, accepted.String()), nil
		}
	}

	// 9. Host exclusivity: one active booking at a time, regardless of
	// remaining capacity.
	hostBookings, err := v.bookings.ActiveByHost(ctx, in.HostID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	if conflict := firstConflict(period, hostBookings); conflict != nil {
		return reject(ClassConflict,
			"host already has a booking from %s to %s; choose dates after %s",
			conflict.DataInicio.FormatBR(), conflict.DataFim.FormatBR(), conflict.DataFim.FormatBR()), nil
	}

	// 10. No pet may appear in another active booking over the same period.
	tutorBookings, err := v.bookings.ActiveByTutor(ctx, in.TutorID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	if rej := petConflict(period, tutorBookings, in.PetIDs, pets); rej != nil {
		return rej, nil
	}

	// 11. Accepted.
	return nil, nil
}

// resolvePets fetches each pet by id. A missing pet is not an error here; it
// shows up as a short resolved list. Only store failures abort validation.
// Fetches are independent and idempotent, so order does not affect outcome.
func (v *BookingValidator) resolvePets(ctx context.Context, ids []int64) ([]shared.Pet, error) {
	seen := make(map[int64]struct{}, len(ids))
	pets := make([]shared.Pet, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		pet, err := v.pets.FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return nil, errs.Mark(err, ErrStoreUnavailable)
		}
		pets = append(pets, *pet)
	}
	return pets, nil
}

// firstConflict returns the first existing booking whose range overlaps the
// candidate, in store order. Stored bookings with malformed dates are skipped.
func firstConflict(period booking.DateRange, existing []shared.Booking) *shared.Booking {
	for i := range existing {
		rng, ok := existing[i].Period()
		if !ok {
			continue
		}
		if period.Overlaps(rng) {
			return &existing[i]
		}
	}
	return nil
}

func petConflict(period booking.DateRange, existing []shared.Booking, candidateIDs []int64, pets []shared.Pet) *Rejection {
	for i := range existing {
		rng, ok := existing[i].Period()
		if !ok {
			continue
		}
		if !period.Overlaps(rng) {
			continue
		}
		booked := make(map[int64]struct{}, len(existing[i].PetIDs))
		for _, id := range existing[i].PetIDs {
			booked[id] = struct{}{}
		}
		for _, id := range candidateIDs {
			if _, taken := booked[id]; taken {
				return reject(ClassConflict,
					"%s is already included in another booking in this period", petName(pets, id))
			}
		}
	}
	return nil
}

func petName(pets []shared.Pet, id int64) string {
	for i := range pets {
		if pets[i].ID == id {
			return pets[i].Nome
		}
	}
	return "one of the pets"
}
